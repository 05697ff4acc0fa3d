// Package pinflow implements the two-step PIN setup: the user enters a PIN,
// then enters it again to confirm. The PIN is handed to the caller only after
// both entries match.
package pinflow

import (
	"crypto/subtle"
	"errors"

	"github.com/dmitrijs2005/gophwallet/internal/common"
)

// State is the step the flow is waiting on.
type State int

const (
	// StateNew waits for the first entry.
	StateNew State = iota
	// StateConfirm waits for the confirmation entry.
	StateConfirm
	// StateDone is reached after a matching confirmation or Abandon.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateConfirm:
		return "confirm"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result describes what a single entry did to the flow.
type Result int

const (
	// ResultConfirmRequired means the first entry was accepted and the flow
	// now waits for confirmation.
	ResultConfirmRequired Result = iota
	// ResultMismatch means the confirmation did not match; re-prompt.
	ResultMismatch
	// ResultComplete means the confirmation matched and onComplete fired.
	ResultComplete
)

// ErrFinished is returned by Enter once the flow has completed or been
// abandoned.
var ErrFinished = errors.New("pin setup already finished")

// Flow is a single PIN setup session. It is not safe for concurrent use.
type Flow struct {
	state      State
	pending    []byte
	onComplete func(pin string)
}

// New starts a session in StateNew. onComplete receives the confirmed PIN
// exactly once.
func New(onComplete func(pin string)) *Flow {
	return &Flow{state: StateNew, onComplete: onComplete}
}

// State returns the current step.
func (f *Flow) State() State { return f.state }

// Enter feeds one complete PIN entry into the flow. Entry format (length,
// digits only) is checked by the input layer, not here.
//
// A mismatching confirmation leaves the flow in StateConfirm with the first
// entry unchanged; the rejected candidate is not kept.
func (f *Flow) Enter(pin string) (Result, error) {
	switch f.state {
	case StateNew:
		f.pending = []byte(pin)
		f.state = StateConfirm
		return ResultConfirmRequired, nil

	case StateConfirm:
		if len(pin) != len(f.pending) || subtle.ConstantTimeCompare([]byte(pin), f.pending) != 1 {
			return ResultMismatch, nil
		}
		confirmed := string(f.pending)
		f.finish()
		if f.onComplete != nil {
			f.onComplete(confirmed)
		}
		return ResultComplete, nil

	default:
		return 0, ErrFinished
	}
}

// Abandon ends the session without completing it and drops any collected
// input. It is safe to call in any state.
func (f *Flow) Abandon() {
	f.finish()
}

func (f *Flow) finish() {
	common.WipeByteArray(f.pending)
	f.pending = nil
	f.state = StateDone
}
