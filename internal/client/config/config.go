package config

import (
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
)

// Config holds runtime settings for the wallet CLI.
//
// Fields:
//   - DBPath: path of the local SQLite database.
//   - LogLevel, LogFormat, LogFile: logger setup (see logging.Options).
//   - WordsPerPage: mnemonic words shown per page during the seed reveal.
//   - PinLength: number of digits a PIN must have.
//   - BiometricAvailable: whether the host offers biometric unlock.
//   - DefaultNetwork: network used until the user picks one.
//   - IdleLock: inactivity after which an enabled lock is re-applied.
type Config struct {
	DBPath             string
	LogLevel           string
	LogFormat          string
	LogFile            string
	WordsPerPage       int
	PinLength          int
	BiometricAvailable bool
	DefaultNetwork     models.Network
	IdleLock           time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "wallet.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogFile = ""
	c.WordsPerPage = 6
	c.PinLength = 6
	c.BiometricAvailable = false
	c.DefaultNetwork = models.NetworkMainnet
	c.IdleLock = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
