package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.True(t, cfg.Vocabulary.Strict)
	require.Equal(t, 10, cfg.Current.Limit)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
db:
  backend: memory
log:
  level: debug
vocabulary:
  strict: false
current:
  limit: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.DB.Backend)
	require.Equal(t, "commissions.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Vocabulary.Strict)
	require.Equal(t, 3, cfg.Current.Limit)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "current:\n  limit: 7\n")
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Current.Limit)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "db:\n  path: from-file.db\nlog:\n  level: warn\n")
	t.Setenv("COMMISSIONS_DB_PATH", "from-env.db")
	t.Setenv("COMMISSIONS_VOCABULARY_STRICT", "false")
	t.Setenv("COMMISSIONS_CURRENT_LIMIT", "25")
	t.Setenv("COMMISSIONS_LOG_PATH", "logs/commissions.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env.db", cfg.DB.Path)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "logs/commissions.log", cfg.Log.Path)
	require.False(t, cfg.Vocabulary.Strict)
	require.Equal(t, 25, cfg.Current.Limit)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "read config file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "db: [unclosed"))
		require.ErrorContains(t, err, "parse config file")
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		t.Setenv("COMMISSIONS_CURRENT_LIMIT", "many")
		_, err := Load("")
		require.ErrorContains(t, err, "parse env")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		t.Setenv("COMMISSIONS_DB_BACKEND", "postgres")
		_, err := Load("")
		require.ErrorContains(t, err, `unknown db.backend "postgres"`)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DB.Path = ""
	require.Error(t, cfg.Validate())

	cfg.DB.Backend = BackendMemory
	require.NoError(t, cfg.Validate())

	cfg.Current.Limit = 0
	require.ErrorContains(t, cfg.Validate(), "current.limit")
}
