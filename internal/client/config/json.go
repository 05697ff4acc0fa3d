package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/flagx"
	"github.com/dmitrijs2005/gophwallet/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling. Pointer fields tell an
// absent key from a zero value, so a partial file overrides only what it sets.
type JsonConfig struct {
	DBPath             *string         `json:"db_path"`
	LogLevel           *string         `json:"log_level"`
	LogFormat          *string         `json:"log_format"`
	LogFile            *string         `json:"log_file"`
	WordsPerPage       *int            `json:"words_per_page"`
	PinLength          *int            `json:"pin_length"`
	BiometricAvailable *bool           `json:"biometric_available"`
	DefaultNetwork     *string         `json:"default_network"`
	IdleLock           *timex.Duration `json:"idle_lock"`
}

// parseJson overlays cfg with the file named by -c/-config. Without the flag
// it does nothing. Read, decode and validation errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.DBPath, jc.DBPath)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.LogFile, jc.LogFile)
	setIf(&cfg.WordsPerPage, jc.WordsPerPage)
	setIf(&cfg.PinLength, jc.PinLength)
	setIf(&cfg.BiometricAvailable, jc.BiometricAvailable)
	if jc.DefaultNetwork != nil {
		n, err := models.ParseNetwork(*jc.DefaultNetwork)
		if err != nil {
			panic(err)
		}
		cfg.DefaultNetwork = n
	}
	if jc.IdleLock != nil {
		cfg.IdleLock = jc.IdleLock.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
