// Package services contains application services for the wallet client:
// the persisted settings store, the process-wide AppState built on it, PIN
// storage and verification, mnemonic generation and wallet creation.
//
// Services are defined as interfaces and returned by constructors so the CLI
// and the settings coordinator can be tested with fakes.
package services
