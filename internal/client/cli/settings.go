package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/client/settings"
	"github.com/dmitrijs2005/gophwallet/internal/guard"
)

// Settings runs the settings screen until the user leaves it.
//
// Network changes are staged and only applied when leaving is confirmed.
// "back" and "close" go through the same exit check and prompt. End of input
// (Ctrl-D) asks the same check but cannot be answered, so a staged change is
// discarded and the screen closes.
func (a *App) Settings(ctx context.Context) error {
	a.router.Push(models.SettingsRoute())
	a.printSettings()

	for {
		fmt.Fprint(a.out, "settings> ")
		line, err := readLine(a.reader)
		if err != nil {
			a.println()
			if errors.Is(err, io.EOF) {
				a.closeSettings(ctx)
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.printSettings()
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "back", "close":
			src := guard.SourceBack
			if cmd == "close" {
				src = guard.SourceGesture
			}
			closed, err := a.leaveSettings(ctx, src)
			if err != nil {
				a.println("Error:", err)
			}
			if closed {
				return nil
			}
			a.printSettings()
			continue

		case "network":
			err = a.selectNetwork(args)
		case "theme":
			err = a.selectColorScheme(ctx, args)
		case "auth":
			err = a.toggleAuth(ctx)
		case "pin":
			err = a.togglePin(ctx)
		case "biometric":
			if !a.settings.ShowBiometricControl() {
				a.println("Unknown command:", cmd)
				continue
			}
			err = a.settings.ToggleBiometric(ctx)
		case "help":
			a.printSettingsHelp()
			continue
		default:
			a.println("Unknown command:", cmd)
			continue
		}

		if err != nil {
			a.println("Error:", err)
			continue
		}
		a.printSettings()
	}
}

// leaveSettings asks the guard whether the screen may close and reports
// whether it did. With a network change staged the user confirms (apply, then
// navigation resets to the wallet list) or cancels (discard and stay). The
// answer is the same for both exit sources.
func (a *App) leaveSettings(ctx context.Context, src guard.Source) (bool, error) {
	if a.settings.AttemptExit(ctx, src) == guard.Proceed {
		a.router.Pop()
		return true, nil
	}

	from, to := a.settings.CommittedNetwork(), a.settings.SelectedNetwork()
	question := fmt.Sprintf("Switch from %s to %s? Open screens will be closed.", from.DisplayName(), to.DisplayName())
	ok, err := Confirm(a.reader, question, a.out)
	if errors.Is(err, io.EOF) {
		a.closeSettings(ctx)
		return true, nil
	}
	if err != nil || !ok {
		a.settings.CancelExit(ctx)
		a.println("Network change discarded.")
		return false, nil
	}

	if err := a.settings.ConfirmExit(ctx); err != nil {
		return false, err
	}
	a.printf("Switched to %s.\n", a.state.Network().DisplayName())
	return true, nil
}

// closeSettings leaves the screen after input has ended. Nothing can be
// confirmed any more, so a staged network change is dropped.
func (a *App) closeSettings(ctx context.Context) {
	if a.settings.AttemptExit(ctx, guard.SourceGesture) == guard.NeedsConfirmation {
		a.settings.CancelExit(ctx)
		a.println("Input closed. Network change discarded.")
	}
	a.router.Pop()
}

func (a *App) selectNetwork(args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(a.settings.Networks()))
		for _, n := range a.settings.Networks() {
			names = append(names, strings.ToLower(n.DisplayName()))
		}
		return fmt.Errorf("usage: network <%s>", strings.Join(names, "|"))
	}
	n, err := models.ParseNetwork(args[0])
	if err != nil {
		return err
	}
	a.settings.SelectNetwork(n)
	return nil
}

func (a *App) selectColorScheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: theme <auto|light|dark>")
	}
	cs, err := models.ParseColorScheme(args[0])
	if err != nil {
		return err
	}
	return a.settings.SetColorScheme(ctx, cs)
}

func (a *App) toggleAuth(ctx context.Context) error {
	err := a.settings.ToggleAuth(ctx)
	if errors.Is(err, settings.ErrPinSetupRequired) {
		a.println("Authentication needs a PIN.")
		return a.enablePin(ctx)
	}
	return err
}

func (a *App) togglePin(ctx context.Context) error {
	err := a.settings.TogglePin(ctx)
	if errors.Is(err, settings.ErrPinSetupRequired) {
		return a.enablePin(ctx)
	}
	return err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) printSettings() {
	auth := a.settings.Auth()

	network := a.settings.SelectedNetwork().DisplayName()
	if a.settings.IsDirty() {
		network += " (not applied)"
	}

	a.println("Settings")
	a.printf("  network         %s\n", network)
	a.printf("  theme           %s\n", a.settings.ColorScheme())
	a.printf("  authentication  %s\n", onOff(auth.Enabled))
	a.printf("  pin             %s\n", onOff(auth.Method.HasPin()))
	if a.settings.ShowBiometricControl() {
		a.printf("  biometric       %s\n", onOff(auth.Method.HasBiometric()))
	}
}

func (a *App) printSettingsHelp() {
	cmds := "network <name>, theme <auto|light|dark>, auth, pin"
	if a.settings.ShowBiometricControl() {
		cmds += ", biometric"
	}
	a.println("Available commands:", cmds+", back, close")
}
