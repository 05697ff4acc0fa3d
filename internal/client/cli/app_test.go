package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FirstStartRoutesToWalletCreation(t *testing.T) {
	silenceREPL(t)
	a, out := newTestApp(t, "", false)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, models.NewWalletSelectRoute(), a.router.Current())
	assert.Contains(t, out.String(), "No wallet yet.")
}

func TestRun_OnboardedStartsOnWalletList(t *testing.T) {
	lines := silenceREPL(t)
	a, out := newTestApp(t, "exit\n", false)
	require.NoError(t, a.state.SetCompletedOnboarding(context.Background(), true))

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, models.ListWalletsRoute(), a.router.Current())
	assert.NotContains(t, out.String(), "No wallet yet.")
	assert.Contains(t, strings.Join(*lines, ""), "wallet Mainnet wallets> ")
}

func TestRun_FailedUnlockStops(t *testing.T) {
	silenceREPL(t)
	scriptPins(t, "000000", "000000", "000000")
	a, _ := newTestApp(t, "wallets\n", false)
	require.NoError(t, a.settings.EnablePin(context.Background(), []byte("123456")))

	require.ErrorIs(t, a.Run(context.Background()), ErrTooManyAttempts)
}

func TestVersion(t *testing.T) {
	a, out := newTestApp(t, "", false)
	require.NoError(t, a.Version(context.Background()))
	assert.Equal(t, "gophwallet v0.0.0-test\n", out.String())
}

func TestNewApp_OpensDatabase(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DBPath = filepath.Join(t.TempDir(), "data", "wallet.db")

	a, err := NewApp(context.Background(), cfg, logging.NewNop(), "dev")
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.state.Load(context.Background()))
	assert.Equal(t, cfg.DefaultNetwork, a.state.Network())
	assert.False(t, a.settings.ShowBiometricControl())
}
