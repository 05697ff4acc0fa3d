// Package authconfig holds the wallet's authentication settings: whether
// unlocking is required and which methods (biometric, PIN) are enabled.
//
// Config keeps one invariant at all times: Method is MethodNone exactly when
// Enabled is false. Every toggle re-derives the pair so that a caller can never
// observe an enabled config without a method, or a method on a disabled one.
package authconfig

import (
	"errors"
	"fmt"
)

// Method is the set of enabled unlock methods.
type Method string

const (
	MethodNone      Method = "none"
	MethodBiometric Method = "biometric"
	MethodPin       Method = "pin"
	MethodBoth      Method = "both"
)

// ErrBiometricUnavailable is returned when biometric unlock is requested on a
// host without biometric support.
var ErrBiometricUnavailable = errors.New("biometric authentication unavailable")

// ParseMethod converts a stored value back into a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodNone, MethodBiometric, MethodPin, MethodBoth:
		return m, nil
	case "":
		return MethodNone, nil
	default:
		return MethodNone, fmt.Errorf("unknown auth method %q", s)
	}
}

// methodFrom recomputes the enum from its two flags.
func methodFrom(biometric, pin bool) Method {
	switch {
	case biometric && pin:
		return MethodBoth
	case biometric:
		return MethodBiometric
	case pin:
		return MethodPin
	default:
		return MethodNone
	}
}

// HasBiometric reports whether the biometric bit is set.
func (m Method) HasBiometric() bool { return m == MethodBiometric || m == MethodBoth }

// HasPin reports whether the PIN bit is set.
func (m Method) HasPin() bool { return m == MethodPin || m == MethodBoth }

// Config is the authentication state of the app.
//
// Previous remembers the last non-none method so that re-enabling
// authentication can restore it.
type Config struct {
	Enabled  bool
	Method   Method
	Previous Method
}

// New returns a Config with the invariant applied to the given values.
// Persisted data that violates it (enabled without a method or the reverse)
// is normalised to disabled.
func New(enabled bool, method, previous Method) Config {
	c := Config{Enabled: enabled, Method: method, Previous: previous}
	if !c.Enabled || c.Method == MethodNone {
		c.Enabled = false
		if c.Method != MethodNone {
			c.Previous = c.Method
		}
		c.Method = MethodNone
	}
	return c
}

// Valid reports whether the Enabled/Method invariant holds.
func (c Config) Valid() bool {
	return c.Enabled == (c.Method != MethodNone)
}

// ToggleAuthEnabled flips Enabled.
//
// Disabling forces MethodNone and remembers the method that was active.
// Enabling restores the remembered method, or falls back to def when none was
// ever set. def must not be MethodNone.
func (c *Config) ToggleAuthEnabled(def Method) error {
	if c.Enabled {
		c.Previous = c.Method
		c.Enabled = false
		c.Method = MethodNone
		return nil
	}

	m := c.Previous
	if m == MethodNone || m == "" {
		m = def
	}
	if m == MethodNone || m == "" {
		return fmt.Errorf("no default auth method")
	}

	c.Enabled = true
	c.Method = m
	return nil
}

// ToggleBiometric adds or removes the biometric bit. Adding it requires
// canUse to report true.
func (c *Config) ToggleBiometric(canUse func() bool) error {
	on := !c.Method.HasBiometric()
	if on && (canUse == nil || !canUse()) {
		return ErrBiometricUnavailable
	}
	c.set(methodFrom(on, c.Method.HasPin()))
	return nil
}

// TogglePin adds or removes the PIN bit.
func (c *Config) TogglePin() {
	c.set(methodFrom(c.Method.HasBiometric(), !c.Method.HasPin()))
}

func (c *Config) set(m Method) {
	if m == MethodNone && c.Method != MethodNone {
		c.Previous = c.Method
	}
	c.Method = m
	c.Enabled = m != MethodNone
}
