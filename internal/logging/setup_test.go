package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileSinkPerFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "zap"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wallet.log")

			l, closeFn, err := New(Options{Level: "debug", Format: format, File: path})
			require.NoError(t, err)

			l.With("screen", "settings").Info(context.Background(), "network selected", "network", "testnet")
			require.NoError(t, closeFn())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			out := string(data)
			assert.Contains(t, out, "network selected")
			assert.Contains(t, out, "testnet")
			assert.Contains(t, out, "settings")
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.log")

	l, closeFn, err := New(Options{Level: "warn", File: path})
	require.NoError(t, err)

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(Options{Format: "xml"})
	require.Error(t, err)

	_, _, err = New(Options{Format: "zap", Level: "loud"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := NewNop()
	ctx := context.Background()
	l.Debug(ctx, "a")
	l.Info(ctx, "b")
	l.With("k", "v").Warn(ctx, "c")
	l.Error(ctx, "d")
}
