package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWalletService(t *testing.T, gen WordGenerator) (*walletService, *AppState) {
	t.Helper()
	db := setupDB(t)
	state := NewAppState(NewSettingsStore(db), models.NetworkMainnet)
	require.NoError(t, state.Load(context.Background()))

	svc := NewWalletService(db, state, gen, 6).(*walletService)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, state
}

func TestWalletService_NewPending(t *testing.T) {
	svc, state := newWalletService(t, &fixedWords{})
	ctx := context.Background()
	require.NoError(t, state.SetNetwork(ctx, models.NetworkTestnet))

	p, err := svc.NewPending(ctx, models.TwentyFour)
	require.NoError(t, err)
	assert.Equal(t, models.NetworkTestnet, p.Network)
	assert.Equal(t, models.TwentyFour, p.Words)
	require.Len(t, p.Pages, 4)
	assert.Equal(t, models.WordGroup{Index: 24, Word: "about"}, p.Pages[3][5])
}

func TestWalletService_NewPendingErrors(t *testing.T) {
	ctx := context.Background()

	svc, _ := newWalletService(t, &fixedWords{})
	_, err := svc.NewPending(ctx, models.NumberOfWords(13))
	require.ErrorIs(t, err, common.ErrorInvalidInput)

	boom := errors.New("no entropy")
	svc, _ = newWalletService(t, &fixedWords{err: boom})
	_, err = svc.NewPending(ctx, models.Twelve)
	require.ErrorIs(t, err, boom)
}

func TestWalletService_SaveSealsAndLists(t *testing.T) {
	svc, state := newWalletService(t, &fixedWords{})
	ctx := context.Background()

	p, err := svc.NewPending(ctx, models.Twelve)
	require.NoError(t, err)
	mnemonic := string(p.mnemonic)

	w, err := svc.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Wallet 1", w.Name)
	assert.Equal(t, models.NetworkMainnet, w.Network)
	assert.True(t, state.CompletedOnboarding())
	assert.Nil(t, p.mnemonic, "pending wallet is wiped")
	assert.NotContains(t, string(w.SealedMnemonic), "abandon")

	key := getMeta(t, svc.db, keyDeviceKey)
	require.Len(t, key, cryptox.KeySize)
	plain, err := cryptox.Open(w.SealedMnemonic, w.Nonce, key)
	require.NoError(t, err)
	assert.Equal(t, mnemonic, string(plain))
	assert.Len(t, strings.Fields(string(plain)), 12)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, w.ID, list[0].ID)

	got, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	_, err = svc.Save(ctx, p)
	require.ErrorIs(t, err, common.ErrorInvalidInput, "a saved wallet cannot be saved twice")
}

func TestWalletService_ListFollowsSelectedNetwork(t *testing.T) {
	svc, state := newWalletService(t, &fixedWords{})
	ctx := context.Background()

	p, err := svc.NewPending(ctx, models.Twelve)
	require.NoError(t, err)

	// network is captured at generation time
	require.NoError(t, state.SetNetwork(ctx, models.NetworkSignet))
	w, err := svc.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, models.NetworkMainnet, w.Network)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, state.SetNetwork(ctx, models.NetworkMainnet))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWalletService_DeviceKeyIsReused(t *testing.T) {
	svc, _ := newWalletService(t, &fixedWords{})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		p, err := svc.NewPending(ctx, models.Twelve)
		require.NoError(t, err)
		_, err = svc.Save(ctx, p)
		require.NoError(t, err)
	}
	key := getMeta(t, svc.db, keyDeviceKey)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Wallet 2", list[1].Name)
	for _, w := range list {
		_, err := cryptox.Open(w.SealedMnemonic, w.Nonce, key)
		require.NoError(t, err)
	}
}

func TestBip39Generator(t *testing.T) {
	var g Bip39Generator

	for _, n := range []models.NumberOfWords{models.Twelve, models.TwentyFour} {
		words, err := g.Generate(n)
		require.NoError(t, err)
		assert.Len(t, words, int(n))
	}

	a, err := g.Generate(models.Twelve)
	require.NoError(t, err)
	b, err := g.Generate(models.Twelve)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = g.Generate(models.NumberOfWords(15))
	require.Error(t, err)
}

// failingOnboardingStore persists everything except the onboarding flag.
type failingOnboardingStore struct {
	SettingsStore
	err error
}

func (s failingOnboardingStore) SaveCompletedOnboarding(context.Context, bool) error { return s.err }

func TestWalletService_SaveWritesOnboardingWithWallet(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	state := NewAppState(failingOnboardingStore{SettingsStore: NewSettingsStore(db), err: errors.New("disk full")}, models.NetworkMainnet)
	require.NoError(t, state.Load(ctx))
	svc := NewWalletService(db, state, &fixedWords{}, 6)

	p, err := svc.NewPending(ctx, models.Twelve)
	require.NoError(t, err)

	w, err := svc.Save(ctx, p)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, state.CompletedOnboarding())
	assert.Equal(t, []byte("true"), getMeta(t, db, keyCompletedOnboarding))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWalletService_SaveFailureStoresNothing(t *testing.T) {
	svc, state := newWalletService(t, &fixedWords{})
	ctx := context.Background()

	_, err := svc.db.Exec(`CREATE TRIGGER block_onboarding BEFORE INSERT ON metadata
		WHEN NEW.key = 'completed_onboarding'
		BEGIN SELECT RAISE(ABORT, 'disk full'); END`)
	require.NoError(t, err)

	p, err := svc.NewPending(ctx, models.Twelve)
	require.NoError(t, err)

	_, err = svc.Save(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save onboarding flag")
	assert.False(t, state.CompletedOnboarding())
	assert.NotNil(t, p.mnemonic, "words survive a failed save")
	assert.Nil(t, getMeta(t, svc.db, keyDeviceKey), "device key rolled back")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.db.Exec(`DROP TRIGGER block_onboarding`)
	require.NoError(t, err)

	w, err := svc.Save(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Wallet 1", w.Name)
	assert.True(t, state.CompletedOnboarding())
}
