// Package cli provides the interactive wallet command-line client.
//
// It wires configuration, local storage and services, unlocks the app when
// authentication is on, and runs a REPL. Typical flow: load settings, route
// to the wallet list (or to wallet creation on first run), execute commands.
//
// Key features:
//   - Wallet list for the selected network, wallet details
//   - Hot wallet creation with a paged, forward-only mnemonic reveal
//   - Settings screen with a confirmed network switch, auth toggles, theme
//   - PIN setup with confirmation, PIN or biometric unlock, idle lock
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Settings and runREPL for details.
package cli
