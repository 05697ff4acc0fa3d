package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are parsed; the rest of os.Args is left to other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-f", "-o", "-w", "-p", "-b", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text, json or zap")
	fs.StringVar(&cfg.LogFile, "o", cfg.LogFile, "log file (stderr when empty)")
	fs.IntVar(&cfg.WordsPerPage, "w", cfg.WordsPerPage, "words per page in the seed reveal")
	fs.IntVar(&cfg.PinLength, "p", cfg.PinLength, "PIN length")
	fs.BoolVar(&cfg.BiometricAvailable, "b", cfg.BiometricAvailable, "biometric unlock available")
	network := fs.String("n", string(cfg.DefaultNetwork), "default network")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	n, err := models.ParseNetwork(*network)
	if err != nil {
		panic(err)
	}
	cfg.DefaultNetwork = n
}
