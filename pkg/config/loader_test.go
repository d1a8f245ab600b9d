package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "facefix.yaml", `
root: mods
recursive: false
process_disabled: true
exclude:
  - "*old*"
match_policy: named
jobs: 4
`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mods", cfg.Root)
	assert.False(t, cfg.Recursive)
	assert.True(t, cfg.ProcessDisabled)
	assert.Equal(t, []string{"*old*"}, cfg.Exclude)
	assert.Equal(t, "named", cfg.MatchPolicy)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Backup, "absent keys keep their defaults")
}

func TestLoadConfig_YAML_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "facefix.yml", "root: mods\n")

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mods", cfg.Root)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Backup)
	assert.Equal(t, "generalized", cfg.MatchPolicy)
}

func TestLoadConfig_YAML_UnknownField(t *testing.T) {
	path := writeConfig(t, "facefix.yaml", "rooot: mods\n")

	_, err := LoadConfig(context.Background(), path)
	require.Error(t, err)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "facefix.json", `{"root": "mods", "backup": false, "jobs": 2}`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mods", cfg.Root)
	assert.False(t, cfg.Backup)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoadConfig_HCL(t *testing.T) {
	path := writeConfig(t, "facefix.hcl", `
root             = "mods"
recursive        = false
backup           = false
exclude          = ["*old*", "vendor/**"]
match_policy     = "generalized"
`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mods", cfg.Root)
	assert.False(t, cfg.Recursive)
	assert.False(t, cfg.Backup)
	assert.Equal(t, []string{"*old*", "vendor/**"}, cfg.Exclude)
}

func TestLoadConfig_HCL_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "facefix.hcl", `root = "mods"`)

	cfg, err := LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "mods", cfg.Root)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Backup)
}

func TestLoadConfig_FacefixrcTriesBothFormats(t *testing.T) {
	t.Run("yaml_content", func(t *testing.T) {
		path := writeConfig(t, ".facefixrc", "recursive: false\n")

		cfg, err := LoadConfig(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, cfg.Recursive)
	})

	t.Run("hcl_content", func(t *testing.T) {
		path := writeConfig(t, ".facefixrc", `root = "mods"`+"\n")

		cfg, err := LoadConfig(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "mods", cfg.Root)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported_extension",
			file:    "facefix.toml",
			content: "root = 'mods'",
			wantErr: "unsupported config extension",
		},
		{
			name:    "invalid_match_policy",
			file:    "facefix.yaml",
			content: "match_policy: fuzzy\n",
			wantErr: "unknown match policy",
		},
		{
			name:    "negative_jobs",
			file:    "facefix.yaml",
			content: "jobs: -1\n",
			wantErr: "jobs must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := LoadConfig(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.Root)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Backup)
	assert.False(t, cfg.ProcessDisabled)
	assert.Equal(t, "generalized", cfg.MatchPolicy)
	require.NoError(t, cfg.Validate())
}
