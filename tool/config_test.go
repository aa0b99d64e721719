package tool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "mm", cfg.Unit)
	assert.Equal(t, "0", cfg.ActiveLayer)
	assert.Equal(t, 1.0, cfg.StrokeWidth)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(*Config) {}, false},
		{"precision 0", func(c *Config) { c.Precision = 0 }, false},
		{"precision 4", func(c *Config) { c.Precision = 4 }, false},
		{"precision 5", func(c *Config) { c.Precision = 5 }, true},
		{"negative precision", func(c *Config) { c.Precision = -1 }, true},
		{"negative stroke width", func(c *Config) { c.StrokeWidth = -2 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 3\nunit: in\ndash: [6, 4]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Precision)
	assert.Equal(t, "in", cfg.Unit)
	assert.Equal(t, []float64{6, 4}, cfg.Dash)
	// Absent fields keep their defaults.
	assert.Equal(t, "0", cfg.ActiveLayer)
	assert.Equal(t, 1.0, cfg.StrokeWidth)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("precision: 9\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err, "out-of-range precision should fail validation")

	mangled := filepath.Join(dir, "mangled.yaml")
	require.NoError(t, os.WriteFile(mangled, []byte("precision: [not an int\n"), 0o644))
	_, err = LoadConfig(mangled)
	assert.Error(t, err)
}

func TestConfigStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrokeWidth = 2.5
	cfg.Dash = []float64{6, 4}

	s := cfg.Style()
	assert.Equal(t, 2.5, s.StrokeWidth)
	assert.Equal(t, []float64{6, 4}, s.Dash)

	plain := DefaultConfig().Style()
	assert.Equal(t, 1.0, plain.StrokeWidth)
	assert.Nil(t, plain.Dash)
}

func TestConfigFormatValue(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "100.00 mm", cfg.FormatValue(100, false))
	assert.Equal(t, "90.00°", cfg.FormatValue(90, true))

	cfg.Precision = 0
	assert.Equal(t, "100 mm", cfg.FormatValue(100.4, false))

	cfg.Precision = 3
	cfg.Unit = ""
	assert.Equal(t, "1.500", cfg.FormatValue(1.5, false))
}
