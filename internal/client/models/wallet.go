// Package models defines client-side data models used by the wallet CLI.
package models

import "time"

// Wallet is a hot wallet persisted locally.
// The mnemonic is stored sealed with AES-GCM; SealedMnemonic and Nonce are
// the ciphertext and its nonce.
type Wallet struct {
	// ID is a globally unique identifier for the wallet.
	ID string

	// Name is a user-visible label.
	Name string

	// Network is the network the wallet was created for.
	Network Network

	// Words is the mnemonic length (12 or 24).
	Words NumberOfWords

	SealedMnemonic []byte
	Nonce          []byte

	// CreatedAt is the creation time in UTC.
	CreatedAt time.Time
}

// NumberOfWords is a supported BIP-39 mnemonic length.
type NumberOfWords int

const (
	Twelve     NumberOfWords = 12
	TwentyFour NumberOfWords = 24
)

// EntropyBits returns the entropy size that yields n words.
func (n NumberOfWords) EntropyBits() int {
	switch n {
	case TwentyFour:
		return 256
	default:
		return 128
	}
}

// Valid reports whether n is a supported length.
func (n NumberOfWords) Valid() bool {
	return n == Twelve || n == TwentyFour
}
