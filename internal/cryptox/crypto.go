// Package cryptox holds the wallet client's key derivation and sealing
// primitives.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// SaltSize is the argon2 salt length in bytes.
	SaltSize = 16
)

var ErrKeySize = errors.New("key must be 32 bytes")

// DerivePinKey stretches a PIN with argon2id. PINs have little entropy, so
// the memory cost is what makes offline guessing expensive.
func DerivePinKey(pin []byte, salt []byte) []byte {
	return argon2.IDKey(pin, salt, 1, 64*1024, 4, KeySize)
}

// MakeVerifier hashes a derived key so it can be stored and compared without
// storing the key itself.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// Seal encrypts plaintext with AES-256-GCM under key. A fresh random nonce is
// generated for every call and returned next to the ciphertext.
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Open reverses Seal. It fails if the key, nonce or ciphertext do not match.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
