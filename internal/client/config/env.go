package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/joho/godotenv"
)

// envFile is loaded, if present, before reading the environment. Variables
// already set in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays cfg with WALLET_* variables. Malformed values panic.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(envFile)

	if v, ok := os.LookupEnv("WALLET_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("WALLET_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("WALLET_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("WALLET_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("WALLET_WORDS_PER_PAGE"); ok {
		cfg.WordsPerPage = mustAtoi("WALLET_WORDS_PER_PAGE", v)
	}
	if v, ok := os.LookupEnv("WALLET_PIN_LENGTH"); ok {
		cfg.PinLength = mustAtoi("WALLET_PIN_LENGTH", v)
	}
	if v, ok := os.LookupEnv("WALLET_BIOMETRIC"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("WALLET_BIOMETRIC: %w", err))
		}
		cfg.BiometricAvailable = b
	}
	if v, ok := os.LookupEnv("WALLET_NETWORK"); ok {
		n, err := models.ParseNetwork(v)
		if err != nil {
			panic(fmt.Errorf("WALLET_NETWORK: %w", err))
		}
		cfg.DefaultNetwork = n
	}
	if v, ok := os.LookupEnv("WALLET_IDLE_LOCK"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("WALLET_IDLE_LOCK: %w", err))
		}
		cfg.IdleLock = d
	}
}

func mustAtoi(name, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
	return n
}
