package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		in   string
		want Network
	}{
		{"mainnet", NetworkMainnet},
		{"Mainnet", NetworkMainnet},
		{"bitcoin", NetworkMainnet},
		{" Testnet ", NetworkTestnet},
		{"SIGNET", NetworkSignet},
	}
	for _, tt := range tests {
		got, err := ParseNetwork(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseNetwork("regtest")
	require.Error(t, err)
}

func TestNetwork_DisplayName(t *testing.T) {
	assert.Equal(t, "Mainnet", NetworkMainnet.String())
	assert.Equal(t, "Testnet", NetworkTestnet.DisplayName())
	assert.Equal(t, "Signet", NetworkSignet.DisplayName())
	assert.Len(t, AllNetworks(), 3)
}

func TestParseColorScheme(t *testing.T) {
	for _, cs := range AllColorSchemes() {
		got, err := ParseColorScheme(string(cs))
		require.NoError(t, err)
		assert.Equal(t, cs, got)
	}
	_, err := ParseColorScheme("sepia")
	require.Error(t, err)
}

func TestNumberOfWords(t *testing.T) {
	assert.Equal(t, 128, Twelve.EntropyBits())
	assert.Equal(t, 256, TwentyFour.EntropyBits())
	assert.True(t, Twelve.Valid())
	assert.False(t, NumberOfWords(18).Valid())
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "wallets", ListWalletsRoute().String())
	assert.Equal(t, "hot-wallet/24", HotWalletCreateRoute(TwentyFour).String())
	assert.Equal(t, "wallet/abc", WalletRoute("abc").String())
}
