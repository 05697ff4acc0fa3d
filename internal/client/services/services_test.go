package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/authconfig"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fakes ----

// fakeStore is an in-memory SettingsStore with injectable failures.
type fakeStore struct {
	auth      authconfig.Config
	network   models.Network
	scheme    models.ColorScheme
	onboarded bool

	loadErr error
	saveErr error
	saves   int
}

func (f *fakeStore) LoadAuth(context.Context) (authconfig.Config, error) { return f.auth, f.loadErr }

func (f *fakeStore) SaveAuth(_ context.Context, c authconfig.Config) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.auth = c
	return nil
}

func (f *fakeStore) LoadNetwork(context.Context) (models.Network, error) { return f.network, f.loadErr }

func (f *fakeStore) SaveNetwork(_ context.Context, n models.Network) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.network = n
	return nil
}

func (f *fakeStore) LoadColorScheme(context.Context) (models.ColorScheme, error) {
	if f.scheme == "" {
		return models.ColorSchemeAuto, f.loadErr
	}
	return f.scheme, f.loadErr
}

func (f *fakeStore) SaveColorScheme(_ context.Context, cs models.ColorScheme) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.scheme = cs
	return nil
}

func (f *fakeStore) LoadCompletedOnboarding(context.Context) (bool, error) {
	return f.onboarded, f.loadErr
}

func (f *fakeStore) SaveCompletedOnboarding(_ context.Context, done bool) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.onboarded = done
	return nil
}

// fixedWords returns a known mnemonic of the requested length.
type fixedWords struct {
	err   error
	calls int
}

func (g *fixedWords) Generate(n models.NumberOfWords) ([]string, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	words := make([]string, int(n))
	for i := range words {
		words[i] = "abandon"
	}
	words[len(words)-1] = "about"
	return words, nil
}
