package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ensureUnlocked(ctx context.Context) error
	ListWallets(ctx context.Context) error
	ShowWallet(ctx context.Context, id string) error
	NewWallet(ctx context.Context, kind string) error
	Settings(ctx context.Context) error
	Lock(ctx context.Context) error
	Version(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the wallet CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. The loop ends on EOF or "exit"/"quit".
//
// Commands:
//
//	help                 show available commands
//	wallets | list       list wallets on the selected network
//	show <id>            show one wallet
//	new [12|24|cold]     create a wallet
//	settings             open the settings screen
//	lock                 lock now; the next command asks to unlock
//	version              print the build version
//	exit | quit          leave the program
//
// Handler errors are printed and the loop continues. The only error that
// ends the loop is a failed unlock, which is returned.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) error {
	for {
		printlnFn(fmt.Sprintf("wallet %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return nil
		}
		if err := a.ensureUnlocked(ctx); err != nil {
			return err
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: wallets, show <id>, new [12|24|cold], settings, lock, version, exit")

		case "wallets", "list", "l":
			err = a.ListWallets(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			err = a.ShowWallet(ctx, args[0])

		case "new":
			kind := ""
			if len(args) > 0 {
				kind = args[0]
			}
			err = a.NewWallet(ctx, kind)

		case "settings":
			err = a.Settings(ctx)

		case "lock":
			err = a.Lock(ctx)

		case "version":
			err = a.Version(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
