package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/tyler-smith/go-bip39"
)

// WordGenerator produces a fresh mnemonic. Every call returns new words.
type WordGenerator interface {
	Generate(n models.NumberOfWords) ([]string, error)
}

// Bip39Generator draws entropy from crypto/rand and encodes it with the
// English BIP-39 word list.
type Bip39Generator struct{}

func (Bip39Generator) Generate(n models.NumberOfWords) ([]string, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("unsupported mnemonic length %d", n)
	}
	entropy, err := bip39.NewEntropy(n.EntropyBits())
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("mnemonic: %w", err)
	}
	return strings.Fields(mnemonic), nil
}
