package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/router"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/client/settings"
	"github.com/dmitrijs2005/gophwallet/internal/client/storage"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/stretchr/testify/require"
)

// numberedWords generates "word01", "word02", ...
type numberedWords struct{}

func (numberedWords) Generate(n models.NumberOfWords) ([]string, error) {
	words := make([]string, int(n))
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i+1)
	}
	return words, nil
}

// newTestApp builds an App over an in-memory database, reading input and
// writing to the returned buffer.
func newTestApp(t *testing.T, input string, biometric bool) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BiometricAvailable = biometric

	state := services.NewAppState(services.NewSettingsStore(db), cfg.DefaultNetwork)
	require.NoError(t, state.Load(ctx))

	canUse := func() bool { return cfg.BiometricAvailable }
	pins := services.NewPinService(db)
	nav := router.New(models.ListWalletsRoute())
	log := logging.NewNop()
	out := &bytes.Buffer{}

	a := &App{
		config:            cfg,
		log:               log,
		version:           "v0.0.0-test",
		db:                db,
		state:             state,
		wallets:           services.NewWalletService(db, state, numberedWords{}, cfg.WordsPerPage),
		pins:              pins,
		settings:          settings.NewCoordinator(state, pins, nav, canUse, log),
		router:            nav,
		canUseBiometrics:  canUse,
		evaluateBiometric: assumeBiometricPass(canUse),
		reader:            rdr(input),
		out:               out,
		now:               time.Now,
	}
	return a, out
}

// scriptPins makes getPin return the given entries in order, then io.EOF.
// It returns a pointer to the number of prompts shown.
func scriptPins(t *testing.T, pins ...string) *int {
	t.Helper()
	old := getPin
	t.Cleanup(func() { getPin = old })

	calls := 0
	getPin = func(io.Writer, string) ([]byte, error) {
		if calls >= len(pins) {
			return nil, io.EOF
		}
		p := []byte(pins[calls])
		calls++
		return p, nil
	}
	return &calls
}

func silenceREPL(t *testing.T) *[]string {
	t.Helper()
	old := printlnFn
	t.Cleanup(func() { printlnFn = old })

	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	return &lines
}
