package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scmc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingDefaultFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	assert.Error(t, err)
}

func TestLoadValues(t *testing.T) {
	path := writeConfig(t, `
[check]
jobs = 3
color = "off"

[labels]
strict = true
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Check.Jobs)
	assert.Equal(t, ColorOff, cfg.Check.Color)
	assert.True(t, cfg.Labels.Strict)
	assert.Equal(t, 3, cfg.Workers())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[labels]\nstrict = true\n")
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.Check.Color)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers())
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "[check]\nthreads = 2\n", "unknown keys: check.threads"},
		{"unknown table", "[emit]\nx = 1\n", "unknown keys"},
		{"negative jobs", "[check]\njobs = -1\n", "must not be negative"},
		{"bad color", "[check]\ncolor = \"sometimes\"\n", "unknown color mode"},
		{"bad toml", "[check\n", "failed to parse TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUseColor(t *testing.T) {
	assert.True(t, UseColor(ColorOn, nil))
	assert.False(t, UseColor(ColorOff, os.Stdout))
	assert.False(t, UseColor(ColorAuto, nil))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, UseColor(ColorAuto, f))
}
