package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claude-profile/config"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.HasRepository())
	assert.True(t, cfg.LastUpdated.IsZero())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "loading must not create the file")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claude-profile", "config.json")
	before := time.Now().Add(-time.Second)

	saved, err := config.Save(path, config.Config{Repository: "https://github.com/acme/agents"})
	require.NoError(t, err)
	assert.True(t, saved.LastUpdated.After(before))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/agents", loaded.Repository)
	assert.True(t, saved.LastUpdated.Equal(loaded.LastUpdated))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"repository\": ")

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	_, err = time.Parse(time.RFC3339, raw["lastUpdated"])
	assert.NoError(t, err)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := config.Save(path, config.Config{Repository: "https://github.com/acme/agents"})
	require.NoError(t, err)

	require.NoError(t, config.Clear(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, config.Clear(path), "clearing twice is fine")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	path := config.DefaultPath()
	assert.Equal(t, "config.json", filepath.Base(path))
	assert.Equal(t, "claude-profile", filepath.Base(filepath.Dir(path)))
}
