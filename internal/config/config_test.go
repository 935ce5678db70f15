package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"project_name": "taskboard",
		"num_ideas": 5,
		"output_dir": "out",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "taskboard", cfg.ProjectName)
	assert.Equal(t, 5, cfg.NumIdeas)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{not json`))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("negative num_ideas", func(t *testing.T) {
		cfg := Config{NumIdeas: -1}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing requirements file", func(t *testing.T) {
		cfg := Config{Requirements: filepath.Join(t.TempDir(), "missing.txt")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		reqPath := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(reqPath, []byte("build a task board"), 0644))
		cfg := Config{Requirements: reqPath, NumIdeas: 2}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	flags := Config{ProjectName: "from-flags", NumIdeas: 7}
	fromFile := Config{
		ProjectName: "from-file",
		NumIdeas:    2,
		OutputDir:   "file-out",
		APIKey:      "file-key",
	}

	merged := flags.MergeWithDefaults(fromFile)
	assert.Equal(t, "from-flags", merged.ProjectName, "flag value wins over config file")
	assert.Equal(t, 7, merged.NumIdeas)
	assert.Equal(t, "file-out", merged.OutputDir, "config file fills unset flags")
	assert.Equal(t, "file-key", merged.APIKey)
}

func TestWithFallbacks(t *testing.T) {
	cfg := Config{}.WithFallbacks()
	assert.Equal(t, DefaultNumIdeas, cfg.NumIdeas)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultCodeDir, cfg.CodeDir)

	custom := Config{OutputDir: "elsewhere"}.WithFallbacks()
	assert.Equal(t, "elsewhere", custom.OutputDir)
}
