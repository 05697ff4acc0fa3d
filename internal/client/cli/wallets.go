package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/guard"
	"github.com/dmitrijs2005/gophwallet/internal/seedflow"
)

// ListWallets prints the wallets saved for the selected network.
func (a *App) ListWallets(ctx context.Context) error {
	list, err := a.wallets.List(ctx)
	if err != nil {
		return err
	}
	a.router.ResetTo(models.ListWalletsRoute())

	network := a.state.Network().DisplayName()
	if len(list) == 0 {
		a.printf("No wallets on %s. Type 'new' to create one.\n", network)
		return nil
	}
	a.printf("Wallets on %s:\n", network)
	for _, w := range list {
		a.printf("  %s  %-12s %d words  %s\n", w.ID, w.Name, w.Words, w.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// ShowWallet prints one wallet. The mnemonic stays sealed.
func (a *App) ShowWallet(ctx context.Context, id string) error {
	w, err := a.wallets.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("no wallet with id %s", id)
	}
	if err != nil {
		return err
	}
	a.router.ResetTo(models.WalletRoute(w.ID))
	a.printWallet(w)
	return nil
}

func (a *App) printWallet(w *models.Wallet) {
	a.printf("%s\n  id       %s\n  network  %s\n  words    %d\n  created  %s\n",
		w.Name, w.ID, w.Network.DisplayName(), w.Words, w.CreatedAt.Local().Format("2006-01-02 15:04"))
}

// NewWallet opens wallet creation. kind is "12" or "24" for a hot wallet,
// "cold" for a hardware wallet, or empty to list the choices.
func (a *App) NewWallet(ctx context.Context, kind string) error {
	switch strings.ToLower(kind) {
	case "":
		a.router.Push(models.NewWalletSelectRoute())
		a.println("New wallet:")
		a.println("  new 12    hot wallet on this device, 12 words")
		a.println("  new 24    hot wallet on this device, 24 words")
		a.println("  new cold  hardware wallet")
		a.router.Pop()
		return nil
	case "12":
		return a.createHotWallet(ctx, models.Twelve)
	case "24":
		return a.createHotWallet(ctx, models.TwentyFour)
	case "cold":
		return a.ColdWallet(ctx)
	default:
		return fmt.Errorf("usage: new [12|24|cold]")
	}
}

// ColdWallet reports that hardware wallets are not supported.
func (a *App) ColdWallet(context.Context) error {
	a.router.Push(models.ColdWalletRoute())
	defer a.router.Pop()
	a.println("Cold (hardware) wallets are not supported yet.")
	return nil
}

// createHotWallet generates a mnemonic and walks the user through it page by
// page. Saving from the last page stores the wallet and resets navigation to
// it. Leaving earlier discards the words.
func (a *App) createHotWallet(ctx context.Context, n models.NumberOfWords) error {
	pending, err := a.wallets.NewPending(ctx, n)
	if err != nil {
		return err
	}
	defer pending.Wipe()

	var saved *models.Wallet
	flow, err := seedflow.New(pending.Pages, func(ctx context.Context) error {
		w, err := a.wallets.Save(ctx, pending)
		if err != nil {
			return err
		}
		saved = w
		return nil
	})
	if err != nil {
		return err
	}

	a.router.Push(models.HotWalletCreateRoute(n))
	a.printf("Write these %d words down in order. They are shown once.\n", n)

	for flow.Active() {
		a.printSeedPage(flow)
		cmd, err := a.seedPrompt(flow)
		if errors.Is(err, io.EOF) {
			a.abandonSeed(ctx, flow)
			a.router.Pop()
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd {
		case "next":
			if flow.Advance() {
				a.log.Debug(ctx, "seed page advanced", "page", flow.Current()+1, "of", flow.PageCount())
			} else {
				a.println("This is the last page. Type 'save' when the words are written down.")
			}

		case "save":
			err := flow.Save(ctx)
			if errors.Is(err, seedflow.ErrNotOnLastPage) {
				a.println("Save is available on the last page.")
				continue
			}
			if err != nil {
				a.println("Error:", err)
			}

		case "back", "close":
			src := guard.SourceBack
			if cmd == "close" {
				src = guard.SourceGesture
			}
			if a.leaveSeed(ctx, flow, src) {
				a.router.Pop()
				return nil
			}

		case "":
		default:
			a.println("Unknown command:", cmd)
		}
	}

	a.router.ResetTo(models.WalletRoute(saved.ID))
	a.log.Info(ctx, "wallet created", "id", saved.ID, "network", saved.Network, "words", int(saved.Words))
	a.println("Wallet saved.")
	a.printWallet(saved)
	return nil
}

// leaveSeed asks before abandoning the reveal and reports whether the user
// left. Cancelling keeps the current page. If input ends at the question the
// words are discarded.
func (a *App) leaveSeed(ctx context.Context, flow *seedflow.Flow, src guard.Source) bool {
	if flow.AttemptExit(src) == guard.Proceed {
		return true
	}
	ok, err := Confirm(a.reader, "Leave now? These words will be discarded and a new set generated next time.", a.out)
	if errors.Is(err, io.EOF) {
		a.abandonSeed(ctx, flow)
		return true
	}
	if ok {
		flow.ConfirmExit()
		a.log.Info(ctx, "seed reveal abandoned", "source", src.String())
		a.println("Words discarded.")
		return true
	}
	page := flow.CancelExit()
	a.log.Debug(ctx, "seed reveal exit cancelled", "page", page+1)
	return false
}

// abandonSeed ends the reveal after input has ended. The exit check still
// runs; with nobody to answer it the words are dropped.
func (a *App) abandonSeed(ctx context.Context, flow *seedflow.Flow) {
	if flow.AttemptExit(guard.SourceGesture) == guard.NeedsConfirmation {
		flow.ConfirmExit()
		a.log.Info(ctx, "seed reveal abandoned", "source", "end of input")
		a.println("Input closed. Words discarded.")
	}
}

func (a *App) seedPrompt(flow *seedflow.Flow) (string, error) {
	action := "next"
	if flow.IsLastPage() {
		action = "save"
	}
	fmt.Fprintf(a.out, "seed [%s|back|close]> ", action)
	line, err := readLine(a.reader)
	if err != nil {
		a.println()
		return "", err
	}
	return strings.ToLower(line), nil
}

func (a *App) printSeedPage(flow *seedflow.Flow) {
	a.printf("Page %d of %d\n", flow.Current()+1, flow.PageCount())
	for _, g := range flow.Page() {
		a.printf("  %2d. %s\n", g.Index, g.Word)
	}
}
