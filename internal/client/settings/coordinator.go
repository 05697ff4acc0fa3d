// Package settings drives the settings screen: the guarded network picker,
// the authentication toggles and the appearance setting.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/authconfig"
	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/guard"
	"github.com/dmitrijs2005/gophwallet/internal/logging"
)

// ErrPinSetupRequired is returned when a change needs the PIN method but no
// PIN is stored. The caller runs the PIN setup flow and then calls EnablePin.
var ErrPinSetupRequired = errors.New("pin setup required")

// Navigator resets the navigation stack.
type Navigator interface {
	ResetTo(route models.Route)
}

// Coordinator composes the auth toggles and the network guard.
//
// A network change is only staged by SelectNetwork. It takes effect on
// ConfirmExit, which commits it and resets navigation to the wallet list
// because screens opened on the old network no longer apply.
type Coordinator struct {
	state            *services.AppState
	pins             services.PinService
	nav              Navigator
	canUseBiometrics func() bool
	log              logging.Logger

	network *guard.Guard[models.Network]
}

// NewCoordinator wires a Coordinator. canUseBiometrics may be nil, which means
// the host has no biometric support.
func NewCoordinator(state *services.AppState, pins services.PinService, nav Navigator,
	canUseBiometrics func() bool, log logging.Logger) *Coordinator {
	if canUseBiometrics == nil {
		canUseBiometrics = func() bool { return false }
	}
	return &Coordinator{
		state:            state,
		pins:             pins,
		nav:              nav,
		canUseBiometrics: canUseBiometrics,
		log:              log,
		network:          guard.New(state.Network, state.SetNetwork),
	}
}

// Networks lists the selectable networks.
func (c *Coordinator) Networks() []models.Network { return models.AllNetworks() }

// SelectNetwork stages n. It is not applied until ConfirmExit.
func (c *Coordinator) SelectNetwork(n models.Network) {
	c.network.Select(n)
}

// SelectedNetwork is the network the picker shows: the staged one if any.
func (c *Coordinator) SelectedNetwork() models.Network { return c.network.Value() }

// CommittedNetwork is the network in effect.
func (c *Coordinator) CommittedNetwork() models.Network { return c.network.Committed() }

// IsDirty reports whether a network change is staged.
func (c *Coordinator) IsDirty() bool { return c.network.IsDirty() }

// AttemptExit must be called by every way of leaving the settings screen.
func (c *Coordinator) AttemptExit(ctx context.Context, src guard.Source) guard.Decision {
	d := c.network.AttemptExit(src)
	c.log.Debug(ctx, "settings exit attempt", "source", src.String(), "decision", d.String())
	return d
}

// ConfirmExit commits the staged network and resets navigation to the wallet
// list. If the commit fails the change stays staged and navigation is left
// alone.
func (c *Coordinator) ConfirmExit(ctx context.Context) error {
	from := c.network.Committed()
	applied, err := c.network.Confirm(ctx)
	if err != nil {
		c.log.Error(ctx, "network change failed", "error", err)
		return fmt.Errorf("change network: %w", err)
	}
	if !applied {
		return nil
	}
	c.log.Info(ctx, "network changed", "from", from, "to", c.network.Committed())
	c.nav.ResetTo(models.ListWalletsRoute())
	return nil
}

// CancelExit drops the staged network.
func (c *Coordinator) CancelExit(ctx context.Context) {
	if c.network.Cancel() {
		c.log.Debug(ctx, "network change discarded")
	}
}

// Auth returns the current auth config.
func (c *Coordinator) Auth() authconfig.Config { return c.state.Auth() }

// ShowBiometricControl reports whether the biometric toggle should be shown.
func (c *Coordinator) ShowBiometricControl() bool { return c.canUseBiometrics() }

// ToggleAuth turns authentication on or off.
//
// Turning it on restores the last method used. With no history it picks PIN
// when one is stored, biometric when only that is available, and PIN
// otherwise. A restored biometric bit is dropped if the host lost support.
// ErrPinSetupRequired is returned, with nothing changed, when the result would
// need a PIN that is not stored.
func (c *Coordinator) ToggleAuth(ctx context.Context) error {
	if c.state.Auth().Enabled {
		return c.disableAuth(ctx)
	}

	hasPin, err := c.pins.HasPin(ctx)
	if err != nil {
		return err
	}
	canBio := c.canUseBiometrics()

	def := authconfig.MethodPin
	if !hasPin && canBio {
		def = authconfig.MethodBiometric
	}

	err = c.state.UpdateAuth(ctx, func(a *authconfig.Config) error {
		if err := a.ToggleAuthEnabled(def); err != nil {
			return err
		}
		if !a.Enabled {
			return nil
		}
		if a.Method.HasBiometric() && !canBio {
			// removing the bit never consults the capability
			_ = a.ToggleBiometric(nil)
			if !a.Enabled {
				return authconfig.ErrBiometricUnavailable
			}
		}
		if a.Method.HasPin() && !hasPin {
			return ErrPinSetupRequired
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.log.Info(ctx, "authentication toggled", "enabled", c.state.Auth().Enabled, "method", c.state.Auth().Method)
	return nil
}

// disableAuth turns authentication off. The stored PIN is kept so that
// turning it back on can restore the PIN method.
func (c *Coordinator) disableAuth(ctx context.Context) error {
	err := c.state.UpdateAuth(ctx, func(a *authconfig.Config) error {
		if !a.Enabled {
			return nil
		}
		return a.ToggleAuthEnabled(authconfig.MethodNone)
	})
	if err != nil {
		return err
	}
	c.log.Info(ctx, "authentication toggled", "enabled", false)
	return nil
}

// ToggleBiometric adds or removes biometric unlock.
func (c *Coordinator) ToggleBiometric(ctx context.Context) error {
	err := c.state.UpdateAuth(ctx, func(a *authconfig.Config) error {
		return a.ToggleBiometric(c.canUseBiometrics)
	})
	if err != nil {
		return err
	}
	c.log.Info(ctx, "biometric toggled", "method", c.state.Auth().Method)
	return nil
}

// TogglePin removes the PIN method when it is on. Turning it on needs a new
// PIN, so that direction returns ErrPinSetupRequired.
func (c *Coordinator) TogglePin(ctx context.Context) error {
	if c.state.Auth().Method.HasPin() {
		return c.DisablePin(ctx)
	}
	return ErrPinSetupRequired
}

// EnablePin stores pin and switches the PIN method on.
func (c *Coordinator) EnablePin(ctx context.Context, pin []byte) error {
	if err := c.pins.SetPin(ctx, pin); err != nil {
		return fmt.Errorf("store pin: %w", err)
	}
	err := c.state.UpdateAuth(ctx, func(a *authconfig.Config) error {
		if !a.Method.HasPin() {
			a.TogglePin()
		}
		return nil
	})
	if err != nil {
		return err
	}
	c.log.Info(ctx, "pin enabled", "method", c.state.Auth().Method)
	return nil
}

// DisablePin switches the PIN method off and deletes the stored verifier.
func (c *Coordinator) DisablePin(ctx context.Context) error {
	err := c.state.UpdateAuth(ctx, func(a *authconfig.Config) error {
		if a.Method.HasPin() {
			a.TogglePin()
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := c.pins.ClearPin(ctx); err != nil {
		return fmt.Errorf("clear pin: %w", err)
	}
	c.log.Info(ctx, "pin disabled", "method", c.state.Auth().Method)
	return nil
}

// ColorScheme returns the appearance setting.
func (c *Coordinator) ColorScheme() models.ColorScheme { return c.state.ColorScheme() }

// SetColorScheme applies cs immediately. Appearance is not guarded.
func (c *Coordinator) SetColorScheme(ctx context.Context, cs models.ColorScheme) error {
	return c.state.SetColorScheme(ctx, cs)
}
