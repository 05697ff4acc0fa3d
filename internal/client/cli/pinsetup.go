package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/pinflow"
)

var errPinSetupAbandoned = errors.New("pin setup cancelled")

// setupPin asks for a new PIN twice and returns it once both entries match.
// An empty entry cancels. Entries with the wrong format are rejected before
// they reach the flow, so they never count as a first entry.
func (a *App) setupPin(ctx context.Context) ([]byte, error) {
	var chosen []byte
	flow := pinflow.New(func(pin string) { chosen = []byte(pin) })

	mismatches := 0
	for {
		prompt := "Choose a PIN"
		if flow.State() == pinflow.StateConfirm {
			prompt = "Confirm the PIN"
		}
		pin, err := getPin(a.out, fmt.Sprintf("%s (%d digits, empty to cancel)", prompt, a.config.PinLength))
		if err != nil {
			flow.Abandon()
			return nil, err
		}
		if len(pin) == 0 {
			flow.Abandon()
			return nil, errPinSetupAbandoned
		}
		if err := ValidatePin(pin, a.config.PinLength); err != nil {
			common.WipeByteArray(pin)
			a.println(err)
			continue
		}

		res, err := flow.Enter(string(pin))
		common.WipeByteArray(pin)
		if err != nil {
			return nil, err
		}

		switch res {
		case pinflow.ResultMismatch:
			mismatches++
			a.log.Debug(ctx, "pin confirmation mismatch", "count", mismatches)
			a.println("PINs do not match. Enter the same PIN again.")
		case pinflow.ResultComplete:
			return chosen, nil
		}
	}
}

// enablePin runs PIN setup and switches the PIN method on.
func (a *App) enablePin(ctx context.Context) error {
	pin, err := a.setupPin(ctx)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	if err := a.settings.EnablePin(ctx, pin); err != nil {
		return err
	}
	a.println("PIN set.")
	return nil
}
