package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/client/config"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/router"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/client/settings"
	"github.com/dmitrijs2005/gophwallet/internal/client/storage"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
)

// App is the interactive wallet client. It owns the database handle and the
// process-wide AppState and hands them to the services and screens.
type App struct {
	config  *config.Config
	log     logging.Logger
	version string
	db      *sql.DB

	state    *services.AppState
	wallets  services.WalletService
	pins     services.PinService
	settings *settings.Coordinator
	router   *router.Router

	canUseBiometrics  func() bool
	evaluateBiometric func(ctx context.Context) bool

	reader *bufio.Reader
	out    io.Writer

	now          func() time.Time
	lastActivity time.Time
	locked       bool
}

// NewApp opens the database at c.DBPath and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, version string) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	canUse := func() bool { return c.BiometricAvailable }
	state := services.NewAppState(services.NewSettingsStore(db), c.DefaultNetwork)
	pins := services.NewPinService(db)
	nav := router.New(models.ListWalletsRoute())

	return &App{
		config:            c,
		log:               log,
		version:           version,
		db:                db,
		state:             state,
		wallets:           services.NewWalletService(db, state, services.Bip39Generator{}, c.WordsPerPage),
		pins:              pins,
		settings:          settings.NewCoordinator(state, pins, nav, canUse, log),
		router:            nav,
		canUseBiometrics:  canUse,
		evaluateBiometric: assumeBiometricPass(canUse),
		reader:            bufio.NewReader(os.Stdin),
		out:               os.Stdout,
		now:               time.Now,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run loads the saved settings, unlocks the app when authentication is on and
// runs the REPL until the user exits. It returns ErrTooManyAttempts when
// unlocking fails.
func (a *App) Run(ctx context.Context) error {
	if err := a.state.Load(ctx); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if a.state.CompletedOnboarding() {
		a.router.ResetTo(models.ListWalletsRoute())
	} else {
		a.router.ResetTo(models.NewWalletSelectRoute())
	}

	if err := a.Unlock(ctx); err != nil {
		return err
	}

	a.println("Bitcoin wallet (type 'help' for commands)")
	if !a.state.CompletedOnboarding() {
		a.println("No wallet yet. Type 'new 12' or 'new 24' to create a hot wallet.")
	}
	return runREPL(ctx, a, a.status, a.reader)
}

// status is shown in the prompt, e.g. "Mainnet wallets".
func (a *App) status() string {
	return fmt.Sprintf("%s %s", a.state.Network().DisplayName(), a.router.Current())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Version prints the build version.
func (a *App) Version(context.Context) error {
	a.printf("gophwallet %s\n", a.version)
	return nil
}

// assumeBiometricPass stands in for a platform biometric prompt, which a
// terminal session cannot show. It passes whenever the host reports the
// capability, so the biometric method on its own does not verify anyone; Lock
// refuses to run without the PIN method.
func assumeBiometricPass(canUse func() bool) func(context.Context) bool {
	return func(context.Context) bool { return canUse() }
}
