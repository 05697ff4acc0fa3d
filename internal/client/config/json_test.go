package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("full file", func(t *testing.T) {
		os.Args = []string{"wallet", "-config", writeTempJSON(t, map[string]any{
			"db_path":             "/var/lib/wallet.db",
			"log_level":           "warn",
			"log_format":          "json",
			"log_file":            "/var/log/wallet.log",
			"words_per_page":      3,
			"pin_length":          4,
			"biometric_available": true,
			"default_network":     "Testnet",
			"idle_lock":           "30s",
		})}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/var/lib/wallet.db", cfg.DBPath)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "/var/log/wallet.log", cfg.LogFile)
		assert.Equal(t, 3, cfg.WordsPerPage)
		assert.Equal(t, 4, cfg.PinLength)
		assert.True(t, cfg.BiometricAvailable)
		assert.Equal(t, models.NetworkTestnet, cfg.DefaultNetwork)
		assert.Equal(t, 30*time.Second, cfg.IdleLock)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		os.Args = []string{"wallet", "-c", writeTempJSON(t, map[string]any{"pin_length": 8})}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 8, cfg.PinLength)
		assert.Equal(t, "wallet.db", cfg.DBPath)
		assert.Equal(t, models.NetworkMainnet, cfg.DefaultNetwork)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		os.Args = []string{"wallet"}

		cfg := &Config{DBPath: "keep.db"}
		parseJson(cfg)
		assert.Equal(t, "keep.db", cfg.DBPath)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"wallet", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"wallet", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("unknown network panics", func(t *testing.T) {
		os.Args = []string{"wallet", "-c", writeTempJSON(t, map[string]any{"default_network": "regtest"})}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
