package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophwallet/internal/authconfig"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
)

// AppState is the single in-memory copy of the settings the whole app reads:
// auth config, selected network, colour scheme and the onboarding flag.
//
// Every mutation persists through the SettingsStore first and only then
// updates memory, so a failed write leaves the previous value in effect.
// AppState is created once in main and passed to the components that need it.
type AppState struct {
	mu             sync.RWMutex
	store          SettingsStore
	defaultNetwork models.Network

	auth        authconfig.Config
	network     models.Network
	colorScheme models.ColorScheme
	onboarded   bool
}

// NewAppState returns an AppState that starts from defaults until Load is
// called. defaultNetwork is used while no network has been saved.
func NewAppState(store SettingsStore, defaultNetwork models.Network) *AppState {
	return &AppState{
		store:          store,
		defaultNetwork: defaultNetwork,
		auth:           authconfig.New(false, authconfig.MethodNone, authconfig.MethodNone),
		network:        defaultNetwork,
		colorScheme:    models.ColorSchemeAuto,
	}
}

// Load replaces the in-memory values with the persisted ones.
func (s *AppState) Load(ctx context.Context) error {
	auth, err := s.store.LoadAuth(ctx)
	if err != nil {
		return fmt.Errorf("load auth: %w", err)
	}
	network, err := s.store.LoadNetwork(ctx)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	if network == "" {
		network = s.defaultNetwork
	}
	cs, err := s.store.LoadColorScheme(ctx)
	if err != nil {
		return fmt.Errorf("load color scheme: %w", err)
	}
	onboarded, err := s.store.LoadCompletedOnboarding(ctx)
	if err != nil {
		return fmt.Errorf("load onboarding flag: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
	s.network = network
	s.colorScheme = cs
	s.onboarded = onboarded
	return nil
}

// Auth returns a copy of the auth config.
func (s *AppState) Auth() authconfig.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// UpdateAuth applies fn to a copy of the auth config and persists the result.
// Nothing changes if fn or the save fails.
func (s *AppState) UpdateAuth(ctx context.Context, fn func(c *authconfig.Config) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.auth
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.store.SaveAuth(ctx, next); err != nil {
		return fmt.Errorf("save auth: %w", err)
	}
	s.auth = next
	return nil
}

// Network returns the committed network.
func (s *AppState) Network() models.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

// SetNetwork persists and commits n.
func (s *AppState) SetNetwork(ctx context.Context, n models.Network) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveNetwork(ctx, n); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	s.network = n
	return nil
}

func (s *AppState) ColorScheme() models.ColorScheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorScheme
}

func (s *AppState) SetColorScheme(ctx context.Context, cs models.ColorScheme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveColorScheme(ctx, cs); err != nil {
		return fmt.Errorf("save color scheme: %w", err)
	}
	s.colorScheme = cs
	return nil
}

// CompletedOnboarding reports whether the user has saved a wallet before.
func (s *AppState) CompletedOnboarding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

func (s *AppState) SetCompletedOnboarding(ctx context.Context, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveCompletedOnboarding(ctx, done); err != nil {
		return fmt.Errorf("save onboarding flag: %w", err)
	}
	s.onboarded = done
	return nil
}

// markOnboarded records in memory a flag that was already persisted as part
// of a larger write.
func (s *AppState) markOnboarded() {
	s.mu.Lock()
	s.onboarded = true
	s.mu.Unlock()
}

// ToggleCompletedOnboarding flips the flag and returns the new value.
func (s *AppState) ToggleCompletedOnboarding(ctx context.Context) (bool, error) {
	next := !s.CompletedOnboarding()
	if err := s.SetCompletedOnboarding(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}
