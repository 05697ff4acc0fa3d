package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/client/services"
	"github.com/dmitrijs2005/gophwallet/internal/common"
)

// maxPinAttempts is how many wrong PINs end the session.
const maxPinAttempts = 3

// ErrTooManyAttempts ends the program after repeated wrong PINs.
var ErrTooManyAttempts = errors.New("too many failed unlock attempts")

// getPin is an indirection over GetPin so tests can script PIN entry.
var getPin = GetPin

// Unlock asks for the enabled unlock method. Biometric is tried first when it
// is enabled and available; otherwise the PIN is requested. With
// authentication off it returns immediately.
func (a *App) Unlock(ctx context.Context) error {
	auth := a.state.Auth()
	if !auth.Enabled {
		a.unlocked()
		return nil
	}

	if auth.Method.HasBiometric() && a.canUseBiometrics() {
		if a.evaluateBiometric(ctx) {
			a.log.Info(ctx, "unlocked", "method", "biometric")
			a.unlocked()
			return nil
		}
		a.println("Biometric check failed.")
	}

	if !auth.Method.HasPin() {
		// Biometric only, and the host no longer offers it: there is nothing
		// left to ask for.
		a.log.Warn(ctx, "biometric unlock unavailable, continuing unlocked")
		a.println("Biometric unlock is not available on this device.")
		a.unlocked()
		return nil
	}

	for attempt := 1; attempt <= maxPinAttempts; attempt++ {
		pin, err := getPin(a.out, "Enter PIN")
		if err != nil {
			return fmt.Errorf("read pin: %w", err)
		}
		err = a.pins.VerifyPin(ctx, pin)
		common.WipeByteArray(pin)

		switch {
		case err == nil:
			a.log.Info(ctx, "unlocked", "method", "pin")
			a.unlocked()
			return nil
		case errors.Is(err, services.ErrWrongPin):
			a.log.Warn(ctx, "wrong pin", "attempt", attempt)
			a.printf("Wrong PIN (%d of %d).\n", attempt, maxPinAttempts)
		default:
			return err
		}
	}
	return ErrTooManyAttempts
}

func (a *App) unlocked() {
	a.locked = false
	a.lastActivity = a.now()
}

// Lock makes the next command ask for unlocking. It needs the PIN method:
// biometric unlock is not evaluated in a terminal, so a biometric-only lock
// would open on any input.
func (a *App) Lock(ctx context.Context) error {
	auth := a.state.Auth()
	if !auth.Enabled {
		a.println("Authentication is off; turn it on in settings to use lock.")
		return nil
	}
	if !auth.Method.HasPin() {
		a.log.Warn(ctx, "lock refused", "method", string(auth.Method))
		a.println("Lock needs a PIN; biometric unlock is not checked in the terminal. Turn on the PIN in settings.")
		return nil
	}
	a.locked = true
	a.log.Info(ctx, "locked")
	a.println("Locked.")
	return nil
}

// ensureUnlocked runs before every command. It asks to unlock after Lock or
// after IdleLock of inactivity, then records the activity.
func (a *App) ensureUnlocked(ctx context.Context) error {
	now := a.now()
	idle := a.config.IdleLock > 0 && !a.lastActivity.IsZero() && now.Sub(a.lastActivity) > a.config.IdleLock

	if a.state.Auth().Enabled && (a.locked || idle) {
		if idle && !a.locked {
			a.println("Locked after inactivity.")
		}
		if err := a.Unlock(ctx); err != nil {
			return err
		}
	}
	a.lastActivity = now
	return nil
}
