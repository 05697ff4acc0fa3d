package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls     []string
	unlockErr error
	cmdErr    error
}

func (f *fakeExec) record(c string) error {
	f.calls = append(f.calls, c)
	return f.cmdErr
}

func (f *fakeExec) ensureUnlocked(context.Context) error {
	f.calls = append(f.calls, "unlock")
	return f.unlockErr
}
func (f *fakeExec) ListWallets(context.Context) error { return f.record("wallets") }
func (f *fakeExec) ShowWallet(_ context.Context, id string) error {
	return f.record("show " + id)
}
func (f *fakeExec) NewWallet(_ context.Context, kind string) error {
	return f.record("new " + kind)
}
func (f *fakeExec) Settings(context.Context) error { return f.record("settings") }
func (f *fakeExec) Lock(context.Context) error { return f.record("lock") }
func (f *fakeExec) Version(context.Context) error { return f.record("version") }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silenceREPL(t)

	input := strings.Join([]string{
		"help",
		"",
		"wallets",
		"show",
		"show abc",
		"new",
		"new 24",
		"settings",
		"lock",
		"version",
		"foobar",
		"exit",
		"wallets",
	}, "\n")

	exec := &fakeExec{}
	require.NoError(t, runREPL(context.Background(), exec, func() string { return "status" }, rdr(input)))

	var cmds []string
	for _, c := range exec.calls {
		if c != "unlock" {
			cmds = append(cmds, c)
		}
	}
	assert.Equal(t, []string{"wallets", "show abc", "new ", "new 24", "settings", "lock", "version"}, cmds)
	assert.Equal(t, "unlock", exec.calls[0], "every command checks the lock first")
}

func TestRunREPL_EOFEnds(t *testing.T) {
	silenceREPL(t)

	exec := &fakeExec{}
	require.NoError(t, runREPL(context.Background(), exec, func() string { return "" }, rdr("wallets")))
	assert.Contains(t, exec.calls, "wallets")
}

func TestRunREPL_HandlerErrorsArePrinted(t *testing.T) {
	lines := silenceREPL(t)

	exec := &fakeExec{cmdErr: errors.New("db is locked")}
	require.NoError(t, runREPL(context.Background(), exec, func() string { return "" }, rdr("wallets\nversion\n")))

	assert.Contains(t, exec.calls, "version", "loop continues after an error")
	assert.Contains(t, strings.Join(*lines, ""), "Error: db is locked")
}

func TestRunREPL_FailedUnlockEndsLoop(t *testing.T) {
	silenceREPL(t)

	exec := &fakeExec{unlockErr: ErrTooManyAttempts}
	err := runREPL(context.Background(), exec, func() string { return "" }, rdr("wallets\nversion\n"))
	require.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Equal(t, []string{"unlock"}, exec.calls)
}
