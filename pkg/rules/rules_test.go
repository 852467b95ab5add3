// Test Type: Unit Test
// Description: Tests for the rule set - priority order, presets and aggressive mapping

package rules_test

import (
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/errors"
	"github.com/arthur-debert/copyconfig/pkg/glob"
	"github.com/arthur-debert/copyconfig/pkg/merge"
	"github.com/arthur-debert/copyconfig/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := rules.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Rules, 9)

	assert.Equal(t, "{.,.vscode,.devcontainer,config}/*.json", cfg.Rules[0].Pattern)
	assert.Equal(t, merge.JSONRemoteDefaults, cfg.Rules[0].Merge)

	last := cfg.Rules[len(cfg.Rules)-1]
	assert.Equal(t, "./package.json", last.Pattern)
	assert.Equal(t, merge.PackageJSON, last.Merge)

	assert.Contains(t, cfg.Variables.CopyableDevDependencies, "typescript")
}

func TestByDecreasingPriority(t *testing.T) {
	cfg := rules.Config{Rules: []rules.Rule{
		{Pattern: "a", Merge: merge.Replace},
		{Pattern: "b", Merge: merge.Concat},
		{Pattern: "c", Merge: merge.PreferLocal},
	}}

	ordered := cfg.ByDecreasingPriority()
	assert.Equal(t, []string{"c", "b", "a"}, patterns(ordered))
	assert.Equal(t, []string{"a", "b", "c"}, patterns(cfg.Rules), "declaration order must be untouched")
}

func TestByDecreasingPriority_ManifestBeatsBroadJSON(t *testing.T) {
	for _, r := range rules.DefaultConfig().ByDecreasingPriority() {
		ok, err := glob.Match(r.Pattern, "package.json")
		require.NoError(t, err)
		if ok {
			assert.Equal(t, merge.PackageJSON, r.Merge)
			return
		}
	}
	t.Fatal("no default rule matched package.json")
}

func TestMakeAggressive(t *testing.T) {
	def := rules.DefaultConfig()
	agg := rules.MakeAggressive(def)

	require.Len(t, agg.Rules, len(def.Rules))
	for i := range def.Rules {
		assert.Equal(t, def.Rules[i].Pattern, agg.Rules[i].Pattern)
		assert.Equal(t, merge.AggressiveOf(def.Rules[i].Merge), agg.Rules[i].Merge)
	}
	assert.Equal(t, def.Variables, agg.Variables)

	assert.Equal(t, merge.PackageJSON, def.Rules[len(def.Rules)-1].Merge, "input must not be modified")
	assert.Equal(t, agg, rules.AggressiveConfig())
}

func TestMakeAggressive_KeepsIgnore(t *testing.T) {
	cfg := rules.Config{Rules: []rules.Rule{
		{Pattern: "**/*.json", Ignore: []string{"node_modules/**"}, Merge: merge.JSONRemoteDefaults},
	}}

	agg := rules.MakeAggressive(cfg)
	assert.Equal(t, []string{"node_modules/**"}, agg.Rules[0].Ignore)
	assert.Equal(t, merge.JSONAggressiveMerge, agg.Rules[0].Merge)

	agg.Rules[0].Ignore[0] = "changed"
	assert.Equal(t, "node_modules/**", cfg.Rules[0].Ignore[0])
}

func TestMakeAggressive_PanicsOnUnregisteredStrategy(t *testing.T) {
	cfg := rules.Config{Rules: []rules.Rule{{Pattern: "*.txt", Merge: merge.StrategyKind("newest-wins")}}}
	assert.Panics(t, func() { rules.MakeAggressive(cfg) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  rules.Config
	}{
		{"no rules", rules.Config{}},
		{"empty pattern", rules.Config{Rules: []rules.Rule{{Pattern: " ", Merge: merge.Replace}}}},
		{"bad pattern", rules.Config{Rules: []rules.Rule{{Pattern: "{a,b", Merge: merge.Replace}}}},
		{"bad ignore", rules.Config{Rules: []rules.Rule{{Pattern: "*", Ignore: []string{"[x"}, Merge: merge.Replace}}}},
		{"unknown merge", rules.Config{Rules: []rules.Rule{{Pattern: "*", Merge: "magic"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		})
	}
}

func patterns(rs []rules.Rule) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Pattern
	}
	return out
}
