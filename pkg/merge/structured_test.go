// Test Type: Unit Test
// Description: Tests for the JSON and YAML deep-merge strategies

package merge_test

import (
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	remoteJSON = `{"a": 1, "b": {"c": 3, "d": null}, "x": 9}`
	localJSON  = `{"a": 1.5, "b": {"c": null, "d": 4}}`
)

func TestJSONRemoteDefaults(t *testing.T) {
	got := apply(t, merge.JSONRemoteDefaults, remoteJSON, merge.LocalString(localJSON))
	assert.JSONEq(t, `{"a": 1.5, "b": {"c": 3, "d": 4}, "x": 9}`, got)
	assert.Equal(t, "{\n  \"a\": 1.5,\n  \"b\": {\n    \"c\": 3,\n    \"d\": 4\n  },\n  \"x\": 9\n}\n", got)
}

func TestJSONAggressiveMerge(t *testing.T) {
	got := apply(t, merge.JSONAggressiveMerge, remoteJSON, merge.LocalString(localJSON))
	assert.JSONEq(t, `{"a": 1, "b": {"c": 3, "d": 4}, "x": 9}`, got)
}

func TestJSON_AbsentOrBlankLocal(t *testing.T) {
	for _, local := range []*string{nil, merge.LocalString(""), merge.LocalString("  \n")} {
		for _, kind := range []merge.StrategyKind{merge.JSONRemoteDefaults, merge.JSONAggressiveMerge} {
			got := apply(t, kind, `{"compilerOptions": {"strict": true}}`, local)
			assert.Equal(t, "{\n  \"compilerOptions\": {\n    \"strict\": true\n  }\n}\n", got)
		}
	}
}

func TestJSON_Idempotent(t *testing.T) {
	for _, kind := range []merge.StrategyKind{merge.JSONRemoteDefaults, merge.JSONAggressiveMerge} {
		once := apply(t, kind, remoteJSON, merge.LocalString(localJSON))
		twice := apply(t, kind, remoteJSON, &once)
		assert.Equal(t, once, twice, "kind %q", kind)
	}
}

func TestJSON_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		local  *string
	}{
		{"invalid remote", `{"a":`, nil},
		{"empty remote", ``, nil},
		{"invalid local", `{}`, merge.LocalString(`{"a"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := merge.Apply(merge.JSONRemoteDefaults, merge.Input{
				Remote: tt.remote,
				Local:  tt.local,
				Meta:   merge.Meta{Path: "tsconfig.json"},
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMergeParse))
			assert.Contains(t, err.Error(), "tsconfig.json")
		})
	}
}

func TestYAMLRemoteDefaults(t *testing.T) {
	remote := "name: CI\njobs:\n  build:\n    runs-on: ubuntu-latest\nenv:\n  NODE: \"20\"\n"
	local := "name: Build\nenv:\n  EXTRA: \"1\"\n"

	got := apply(t, merge.YAMLRemoteDefaults, remote, merge.LocalString(local))
	assert.Equal(t, "name: Build\nenv:\n  EXTRA: \"1\"\n  NODE: \"20\"\njobs:\n  build:\n    runs-on: ubuntu-latest\n", got)
}

func TestYAMLAggressiveMerge(t *testing.T) {
	remote := "name: CI\nenv:\n  NODE: \"20\"\n"
	local := "name: Build\nenv:\n  EXTRA: \"1\"\n  NODE: \"18\"\n"

	got := apply(t, merge.YAMLAggressiveMerge, remote, merge.LocalString(local))
	assert.Equal(t, "name: CI\nenv:\n  EXTRA: \"1\"\n  NODE: \"20\"\n", got)
}

func TestYAML_Idempotent(t *testing.T) {
	remote := "a: 1\nb:\n  c: true\n"
	for _, kind := range []merge.StrategyKind{merge.YAMLRemoteDefaults, merge.YAMLAggressiveMerge} {
		once := apply(t, kind, remote, merge.LocalString("b:\n  d: x\n"))
		twice := apply(t, kind, remote, &once)
		assert.Equal(t, once, twice, "kind %q", kind)
	}
}

func TestYAML_EmptyRemote(t *testing.T) {
	got := apply(t, merge.YAMLRemoteDefaults, "", merge.LocalString("a: 1\n"))
	assert.Equal(t, "a: 1\n", got)
}

func TestStructured_NonObjectRemoteWithoutLocal(t *testing.T) {
	tests := []struct {
		name   string
		kind   merge.StrategyKind
		remote string
		want   string
	}{
		{"json defaults", merge.JSONRemoteDefaults, `["a", "b"]`, "[\n  \"a\",\n  \"b\"\n]\n"},
		{"json aggressive", merge.JSONAggressiveMerge, `["a", "b"]`, "[\n  \"a\",\n  \"b\"\n]\n"},
		{"yaml defaults", merge.YAMLRemoteDefaults, "- a\n- b\n", "- a\n- b\n"},
		{"yaml aggressive", merge.YAMLAggressiveMerge, "- a\n- b\n", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(t, tt.kind, tt.remote, nil))
			assert.Equal(t, tt.want, apply(t, tt.kind, tt.remote, merge.LocalString("")))
		})
	}
}

func TestYAML_EmptyRemoteWithoutLocal(t *testing.T) {
	assert.Equal(t, "", apply(t, merge.YAMLRemoteDefaults, "", nil))
}

func TestYAMLRemoteDefaults_KeepsComments(t *testing.T) {
	remote := "# CI\nname: CI\njobs:\n  # main build\n  build:\n    runs-on: ubuntu-latest\n"
	assert.Equal(t, remote, apply(t, merge.YAMLRemoteDefaults, remote, nil))
}
