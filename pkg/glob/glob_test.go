// Test Type: Unit Test
// Description: Tests for the glob primitive - brace expansion, dot handling and walking

package glob_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/copyconfig/pkg/filesystem"
	"github.com/arthur-debert/copyconfig/pkg/glob"
	"github.com/arthur-debert/copyconfig/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T, files ...string) (types.FS, string) {
	t.Helper()
	fs := filesystem.NewMemory()
	root := "/remote"
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, fs.WriteFile(p, []byte(f), 0644))
	}
	return fs, root
}

func TestExpand(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"./package.json", []string{"package.json"}},
		{"{.,.vscode,.devcontainer}/*.json", []string{"*.json", ".vscode/*.json", ".devcontainer/*.json"}},
		{"./.*.{js,cjs}", []string{".*.js", ".*.cjs"}},
		{".{gitignore,npmignore}", []string{".gitignore", ".npmignore"}},
		{"a/{b,{c,d}}/e", []string{"a/b/e", "a/c/e", "a/d/e"}},
		{".github/**/*.{yml,yaml}", []string{".github/**/*.yml", ".github/**/*.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := glob.Expand(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_Invalid(t *testing.T) {
	for _, p := range []string{"", "{a,b", "a}", "[abc"} {
		_, err := glob.Expand(p)
		assert.Error(t, err, "pattern %q", p)
	}
}

func TestGlob(t *testing.T) {
	fs, root := setupTree(t,
		"package.json",
		"tsconfig.json",
		"tsconfig.lib.json",
		".eslintrc.cjs",
		".prettierrc.js",
		"jest.config.js",
		".gitignore",
		".vscode/settings.json",
		".github/workflows/ci.yml",
		".github/workflows/release.yaml",
		".github/PULL_REQUEST_TEMPLATE.md",
		"src/index.ts",
		"src/nested/deep.json",
		".git/config.json",
	)

	tests := []struct {
		name    string
		pattern string
		ignore  []string
		want    []string
	}{
		{
			name:    "top_level_json_and_vscode",
			pattern: "{.,.vscode,.devcontainer,config}/*.json",
			want:    []string{".vscode/settings.json", "package.json", "tsconfig.json", "tsconfig.lib.json"},
		},
		{
			name:    "dotfiles_included_by_star",
			pattern: "./*.{js,cjs,ts,mjs}",
			want:    []string{".eslintrc.cjs", ".prettierrc.js", "jest.config.js"},
		},
		{
			name:    "dot_prefixed_pattern",
			pattern: "./.*.{js,cjs}",
			want:    []string{".eslintrc.cjs", ".prettierrc.js"},
		},
		{
			name:    "double_star",
			pattern: ".github/**/*.{yml,yaml}",
			want:    []string{".github/workflows/ci.yml", ".github/workflows/release.yaml"},
		},
		{
			name:    "double_star_matches_zero_dirs",
			pattern: ".github/**/*.md",
			want:    []string{".github/PULL_REQUEST_TEMPLATE.md"},
		},
		{
			name:    "exact_file",
			pattern: "./package.json",
			want:    []string{"package.json"},
		},
		{
			name:    "ignore_excludes",
			pattern: "./*.json",
			ignore:  []string{"tsconfig*.json"},
			want:    []string{"package.json"},
		},
		{
			name:    "git_dir_never_walked",
			pattern: "**/*.json",
			want:    []string{".vscode/settings.json", "package.json", "src/nested/deep.json", "tsconfig.json", "tsconfig.lib.json"},
		},
		{
			name:    "missing_base_dir",
			pattern: ".devcontainer/*.json",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := glob.Glob(fs, root, tt.pattern, tt.ignore)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		rel     string
		want    bool
	}{
		{"./tsconfig*.json", "tsconfig.json", true},
		{"./tsconfig*.json", "tsconfig.lib.json", true},
		{"./tsconfig*.json", "package.json", false},
		{"{.,.vscode}/*.json", ".vscode/settings.json", true},
		{"./*.json", "src/a.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.rel, func(t *testing.T) {
			got, err := glob.Match(tt.pattern, tt.rel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
