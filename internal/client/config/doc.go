// Package config loads runtime configuration for the wallet CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, optionally read from a .env file in the working
//     directory.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database path
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text, json, zap)
//	-o string   log file; empty logs to stderr
//	-w int      words per page in the seed reveal
//	-p int      PIN length
//	-b          biometric unlock available on this host
//	-n string   default network (mainnet, testnet, signet)
//
// Environment
//
//	WALLET_DB_PATH, WALLET_LOG_LEVEL, WALLET_LOG_FORMAT, WALLET_LOG_FILE,
//	WALLET_WORDS_PER_PAGE, WALLET_PIN_LENGTH, WALLET_BIOMETRIC,
//	WALLET_NETWORK, WALLET_IDLE_LOCK
//
// # JSON schema
//
// Durations use timex.Duration, so "5m" and integer nanoseconds both work:
//
//	{
//	  "db_path": "wallet.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_file": "",
//	  "words_per_page": 6,
//	  "pin_length": 6,
//	  "biometric_available": false,
//	  "default_network": "mainnet",
//	  "idle_lock": "5m"
//	}
//
// Malformed input panics at start-up.
package config
