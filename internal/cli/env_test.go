package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_FileAndProcess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, path, "PROPGEN_OUT=from-file\nPROPGEN_JOBS=4\n")

	t.Setenv(EnvOut, "from-process")

	env, err := LoadEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "from-process", env.Out)
	assert.Equal(t, 4, env.Jobs)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Setenv(EnvJobs, "")
	t.Setenv(EnvNoColor, "1")

	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Zero(t, env.Jobs)
	assert.True(t, env.NoColor)
}

func TestLoadEnv_BadJobs(t *testing.T) {
	t.Setenv(EnvJobs, "lots")

	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvJobs)
}
