package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmix/tagmix/internal/config"
)

// setConfigHome points the xdg config root at a fresh temp dir so tests never
// touch the real user configuration.
func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	setConfigHome(t)
	t.Setenv("BOT_TOKEN", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Token)
	assert.Equal(t, config.DefaultBlockSize, cfg.BlockSize)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFromFile(t *testing.T) {
	dir := setConfigHome(t)
	t.Setenv("BOT_TOKEN", "")

	path := filepath.Join(dir, "tagmix", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("token = \"123:abc\"\nblock_size = 15\nlog_format = \"json\"\n"), 0600))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, 15, cfg.BlockSize)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := setConfigHome(t)

	path := filepath.Join(dir, "tagmix", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("token = \"from-file\"\n"), 0600))
	t.Setenv("BOT_TOKEN", "from-env")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Token)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setConfigHome(t)
	t.Setenv("BOT_TOKEN", "")

	require.NoError(t, config.Save(&config.Config{
		Token:     "123:abc",
		BlockSize: 40,
		LogFormat: "json",
	}))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, 40, cfg.BlockSize)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestGetToken(t *testing.T) {
	cfg := &config.Config{Token: "123:abc"}

	token, err := cfg.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", token)

	_, err = (&config.Config{}).GetToken()
	assert.Error(t, err)
}

func TestGetBlockSize(t *testing.T) {
	assert.Equal(t, config.DefaultBlockSize, (&config.Config{}).GetBlockSize())
	assert.Equal(t, 50, (&config.Config{BlockSize: 50}).GetBlockSize())
	assert.Equal(t, config.DefaultBlockSize, (&config.Config{BlockSize: -1}).GetBlockSize())
}

func TestGetLogFormat(t *testing.T) {
	assert.Equal(t, "text", (&config.Config{}).GetLogFormat())
	assert.Equal(t, "json", (&config.Config{LogFormat: "json"}).GetLogFormat())
}
