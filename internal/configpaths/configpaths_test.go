package configpaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	j, y, tm := ConfigCandidatePaths("/tmp/custom.yaml")
	require.NotEmpty(t, y)
	assert.Equal(t, "/tmp/custom.yaml", y[0])
	assert.NotContains(t, j, "/tmp/custom.yaml")
	assert.NotContains(t, tm, "/tmp/custom.yaml")

	j, y, tm = ConfigCandidatePaths("/tmp/custom")
	assert.Equal(t, "/tmp/custom", j[0])
	assert.Equal(t, "/tmp/custom", y[0])
	assert.Equal(t, "/tmp/custom", tm[0])
}

func TestConfigCandidatePathsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("APPDATA", home)

	dir, err := DefaultConfigDir()
	require.NoError(t, err)

	j, y, tm := ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(dir, "padlink.json"))
	assert.Contains(t, y, filepath.Join(dir, "padlink.yaml"))
	assert.Contains(t, y, filepath.Join(dir, "padlink.yml"))
	assert.Contains(t, tm, filepath.Join(dir, "padlink.toml"))
}
