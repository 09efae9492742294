package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyyoshino/bron-kerbosch/config"
	"github.com/lovelyyoshino/bron-kerbosch/core"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, "resolution: 0.05\nmin_cluster_size: 3\nmax_model_radius: 1.5\n")
	params, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.Params{Resolution: 0.05, MinClusterSize: 3, MaxModelRadius: 1.5}, params)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidParamsRejected(t *testing.T) {
	path := writeConfig(t, "resolution: 0\nmin_cluster_size: 3\n")
	_, err := config.Load(path)
	require.ErrorIs(t, err, core.ErrInvalidResolution)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "resolution: [this is not a number\n")
	_, err := config.Load(path)
	require.Error(t, err)
}
