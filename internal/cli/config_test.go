package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Success(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-m", "a.yaml",
		"--manifest", "b.yaml",
		"-o", "out",
		"-c", "propgen.toml",
		"-j", "3",
		"--check",
		"--color", "never",
		"--fail-on-warning",
		"-vv",
		"c.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, cfg.Manifests)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, "propgen.toml", cfg.ConfigPath)
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.Check)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.FailOnWarning)
	assert.Equal(t, 2, cfg.Verbosity)
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, &Config{}, cfg)
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown flag", []string{"--nope"}, "unknown flag"},
		{"negative jobs", []string{"-j", "-1"}, "--jobs must not be negative"},
		{"bad color", []string{"--color", "sometimes"}, "unknown color mode"},
		{"bad jobs", []string{"-j", "many"}, "invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	cfg, err := ParseArgs([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowHelp)

	cfg, err = ParseArgs([]string{"--version", "--color", "bogus"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)

	assert.Contains(t, Usage(), "--manifest")
	assert.Contains(t, Usage(), "--fail-on-warning")
}
