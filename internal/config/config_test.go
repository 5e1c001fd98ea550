package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const validConfig = `
server:
  host: 127.0.0.1
  port: 8080
jwt:
  secret: 0123456789abcdef0123456789abcdef
owner:
  identity: operator-1
log:
  level: debug
  format: json
`

func TestLoad(t *testing.T) {
	t.Run("Valid file with defaults applied", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, "operator-1", cfg.Owner.Identity)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 1000, cfg.Events.HistoryLimit)
		assert.Equal(t, "0 */5 * * * *", cfg.Scheduler.LedgerSnapshot)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("OWNER_IDENTITY", "operator-2")

		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "operator-2", cfg.Owner.Identity)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Short JWT secret rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
jwt:
  secret: tooshort
owner:
  identity: operator-1
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("Missing owner rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
jwt:
  secret: 0123456789abcdef0123456789abcdef
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "owner identity")
	})
}
