package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeCheck, cfg.Mode)
	assert.Positive(t, cfg.Workers)
}

func TestLoadLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinematool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: export\nworkers: 3\noutput_dir: out\ninputs: [a.yaml, b.yaml]\n"), 0644))

	t.Setenv("CINEMA_WORKERS", "5")
	t.Setenv("CINEMA_STRICT", "true")
	t.Setenv("CINEMA_PREVIEW_WIDTH", "not a number")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeExport, cfg.Mode)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Inputs)
	assert.Equal(t, 5, cfg.Workers)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 512, cfg.PreviewWidth)
	assert.Equal(t, "input", cfg.InputDir)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("CINEMA_MODE", "merge")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeMerge, cfg.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: [1, 2"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "bad.yaml")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown mode", func(c *Config) { c.Mode = "render" }, `unknown mode "render"`},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "workers must be positive"},
		{"no output", func(c *Config) { c.OutputDir = "" }, "output dir"},
		{"preview size", func(c *Config) { c.Mode = ModePreview; c.PreviewHeight = 0 }, "preview size"},
		{"new without name", func(c *Config) { c.Mode = ModeNew; c.Name = "  " }, "needs a name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
