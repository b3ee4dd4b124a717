package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/siftgo/filter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, ",", c.Delimiter)
	assert.Empty(t, c.NullLiterals)
	assert.Empty(t, c.DateLayouts)
	assert.Equal(t, filter.MaxCategoricalOptions, c.CategoricalCap)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 8.0, c.PlotWidth)
	assert.Equal(t, 6.0, c.PlotHeight)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `delimiter: ";"
null_literals: [missing, "-"]
date_layouts: ["02.01.2006"]
categorical_cap: 10
log_level: debug
plot_width: 10
plot_height: 7.5
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ";", c.Delimiter)
	assert.Equal(t, []string{"missing", "-"}, c.NullLiterals)
	assert.Equal(t, []string{"02.01.2006"}, c.DateLayouts)
	assert.Equal(t, 10, c.CategoricalCap)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 10.0, c.PlotWidth)
	assert.Equal(t, 7.5, c.PlotHeight)

	d, err := c.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ';', d)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("SIFT_LOG_LEVEL", "warn")
	c, err := Load(writeConfig(t, "log_level: info\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".sift")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("delimiter: \"\\t\"\n"), 0o644))

	c, err := Load("")
	require.NoError(t, err)
	d, err := c.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, '\t', d)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad log level", "log_level: verbose\n", "log_level"},
		{"multi-rune delimiter", "delimiter: \";;\"\n", "single character"},
		{"zero categorical cap", "categorical_cap: 0\n", "categorical_cap"},
		{"negative plot size", "plot_width: -1\n", "plot size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := &Config{
		Delimiter:      ";",
		NullLiterals:   []string{"missing"},
		CategoricalCap: 20,
		LogLevel:       "debug",
		PlotWidth:      12,
		PlotHeight:     9,
	}
	require.NoError(t, Save(c, path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Delimiter, back.Delimiter)
	assert.Equal(t, c.NullLiterals, back.NullLiterals)
	assert.Equal(t, c.CategoricalCap, back.CategoricalCap)
	assert.Equal(t, c.LogLevel, back.LogLevel)
	assert.Equal(t, c.PlotWidth, back.PlotWidth)
	assert.Equal(t, c.PlotHeight, back.PlotHeight)
}
