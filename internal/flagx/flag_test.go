package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "wallet.json", "-d", "wallet.db"},
			allowed: []string{"-c"},
			want:    []string{"-c", "wallet.json"},
		},
		{
			name:    "joined value",
			args:    []string{"--config=alt.json", "-n", "testnet"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-n", "signet", "-x", "1", "-w", "4"},
			allowed: []string{"-w", "-n"},
			want:    []string{"-n", "signet", "-w", "4"},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next token is a flag, not a value",
			args:    []string{"-c", "-b"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-x", "1", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "empty",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/wallet.json", ConfigFile([]string{"-c", "/etc/wallet.json"}))
	assert.Equal(t, "long.json", ConfigFile([]string{"-d", "x.db", "-config", "long.json"}))
	assert.Equal(t, "eq.json", ConfigFile([]string{"--config=eq.json"}))
	assert.Equal(t, "2.json", ConfigFile([]string{"-c", "1.json", "-config", "2.json"}))
	assert.Empty(t, ConfigFile([]string{"-n", "testnet"}))
	assert.Empty(t, ConfigFile(nil))
}
