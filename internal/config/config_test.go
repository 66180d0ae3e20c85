package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "data/miniblog.sq3", cfg.Database)
	require.Equal(t, "admin", cfg.AdminUser)
	require.Equal(t, "default", cfg.AdminPassword)
	require.Equal(t, "development key", cfg.SecretKey)
	require.False(t, cfg.Debug)
	require.Equal(t, 8080, cfg.Web.ListenPort)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MINIBLOG_DATABASE", "/tmp/other.sq3")
	t.Setenv("MINIBLOG_ADMIN_USER", "root")
	t.Setenv("MINIBLOG_ADMIN_PASSWORD", "hunter2")
	t.Setenv("MINIBLOG_SECRET_KEY", "prod key")
	t.Setenv("MINIBLOG_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.sq3", cfg.Database)
	require.Equal(t, "root", cfg.AdminUser)
	require.Equal(t, "hunter2", cfg.AdminPassword)
	require.Equal(t, "prod key", cfg.SecretKey)
	require.True(t, cfg.Debug)
}

func TestLoad_InvalidDebugValue(t *testing.T) {
	t.Setenv("MINIBLOG_DEBUG", "maybe")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	settings := `
database = "/data/blog.sq3"
admin_user = "editor"
secret_key = "file key"

[web]
listen_port = 9999
`
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o644))
	t.Setenv(SettingsEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/data/blog.sq3", cfg.Database)
	require.Equal(t, "editor", cfg.AdminUser)
	require.Equal(t, "file key", cfg.SecretKey)
	require.Equal(t, 9999, cfg.Web.ListenPort)
	// not named in the file, defaults survive
	require.Equal(t, "default", cfg.AdminPassword)
}

func TestLoad_EnvBeatsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`admin_user = "editor"`), 0o644))
	t.Setenv(SettingsEnvVar, path)
	t.Setenv("MINIBLOG_ADMIN_USER", "root")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "root", cfg.AdminUser)
}

func TestLoad_MissingSettingsFile(t *testing.T) {
	t.Setenv(SettingsEnvVar, filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}
