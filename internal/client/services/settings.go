package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophwallet/internal/authconfig"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophwallet/internal/dbx"
)

// Metadata keys used by the settings store.
const (
	keyAuthEnabled         = "auth_enabled"
	keyAuthMethod          = "auth_method"
	keyAuthPrevious        = "auth_previous"
	keySelectedNetwork     = "selected_network"
	keyColorScheme         = "color_scheme"
	keyCompletedOnboarding = "completed_onboarding"
)

// SettingsStore persists user settings. Missing values load as their zero
// value: auth disabled, no network (""), auto colour scheme, not onboarded.
type SettingsStore interface {
	LoadAuth(ctx context.Context) (authconfig.Config, error)
	SaveAuth(ctx context.Context, c authconfig.Config) error

	LoadNetwork(ctx context.Context) (models.Network, error)
	SaveNetwork(ctx context.Context, n models.Network) error

	LoadColorScheme(ctx context.Context) (models.ColorScheme, error)
	SaveColorScheme(ctx context.Context, cs models.ColorScheme) error

	LoadCompletedOnboarding(ctx context.Context) (bool, error)
	SaveCompletedOnboarding(ctx context.Context, done bool) error
}

type settingsStore struct {
	db *sql.DB
}

// NewSettingsStore returns a SettingsStore over the metadata table of db.
func NewSettingsStore(db *sql.DB) SettingsStore {
	return &settingsStore{db: db}
}

func (s *settingsStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *settingsStore) LoadAuth(ctx context.Context) (authconfig.Config, error) {
	m, err := s.repo().List(ctx)
	if err != nil {
		return authconfig.Config{}, err
	}

	enabled, _ := strconv.ParseBool(string(m[keyAuthEnabled]))
	method, err := authconfig.ParseMethod(string(m[keyAuthMethod]))
	if err != nil {
		return authconfig.Config{}, fmt.Errorf("load auth config: %w", err)
	}
	previous, err := authconfig.ParseMethod(string(m[keyAuthPrevious]))
	if err != nil {
		return authconfig.Config{}, fmt.Errorf("load auth config: %w", err)
	}
	return authconfig.New(enabled, method, previous), nil
}

// SaveAuth writes all three auth keys in one transaction.
func (s *settingsStore) SaveAuth(ctx context.Context, c authconfig.Config) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAuthEnabled, []byte(strconv.FormatBool(c.Enabled))); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyAuthMethod, []byte(c.Method)); err != nil {
			return err
		}
		return repo.Set(ctx, keyAuthPrevious, []byte(c.Previous))
	})
}

func (s *settingsStore) LoadNetwork(ctx context.Context) (models.Network, error) {
	v, err := s.repo().Get(ctx, keySelectedNetwork)
	if err != nil || v == nil {
		return "", err
	}
	n, err := models.ParseNetwork(string(v))
	if err != nil {
		return "", fmt.Errorf("load network: %w", err)
	}
	return n, nil
}

func (s *settingsStore) SaveNetwork(ctx context.Context, n models.Network) error {
	return s.repo().Set(ctx, keySelectedNetwork, []byte(n))
}

func (s *settingsStore) LoadColorScheme(ctx context.Context) (models.ColorScheme, error) {
	v, err := s.repo().Get(ctx, keyColorScheme)
	if err != nil {
		return "", err
	}
	if v == nil {
		return models.ColorSchemeAuto, nil
	}
	return models.ParseColorScheme(string(v))
}

func (s *settingsStore) SaveColorScheme(ctx context.Context, cs models.ColorScheme) error {
	return s.repo().Set(ctx, keyColorScheme, []byte(cs))
}

func (s *settingsStore) LoadCompletedOnboarding(ctx context.Context) (bool, error) {
	v, err := s.repo().Get(ctx, keyCompletedOnboarding)
	if err != nil || v == nil {
		return false, err
	}
	done, err := strconv.ParseBool(string(v))
	if err != nil {
		return false, fmt.Errorf("load onboarding flag: %w", err)
	}
	return done, nil
}

func (s *settingsStore) SaveCompletedOnboarding(ctx context.Context, done bool) error {
	return saveCompletedOnboarding(ctx, s.repo(), done)
}

// saveCompletedOnboarding writes the flag through repo, which may be bound to
// a transaction.
func saveCompletedOnboarding(ctx context.Context, repo metadata.Repository, done bool) error {
	return repo.Set(ctx, keyCompletedOnboarding, []byte(strconv.FormatBool(done)))
}
