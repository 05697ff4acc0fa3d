// Package guard provides a confirmation gate for settings whose change has
// consequences the user should acknowledge before it takes effect.
//
// A Guard holds a pending candidate next to the committed value. Selecting a
// candidate does not apply it. Leaving the screen while a candidate is pending
// requires an explicit Confirm (apply) or Cancel (discard), and every exit path
// asks the same AttemptExit question.
package guard

import (
	"context"
	"fmt"
)

// Decision is the answer to an exit attempt.
type Decision int

const (
	// Proceed means nothing is pending and the caller may leave.
	Proceed Decision = iota
	// NeedsConfirmation means the user must confirm or cancel first.
	NeedsConfirmation
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case NeedsConfirmation:
		return "needs-confirmation"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Source identifies the input that triggered an exit attempt. It does not
// change the outcome.
type Source int

const (
	// SourceBack is the explicit back command.
	SourceBack Source = iota
	// SourceGesture is an implicit dismissal (end of input, interrupt).
	SourceGesture
)

func (s Source) String() string {
	switch s {
	case SourceBack:
		return "back"
	case SourceGesture:
		return "gesture"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Guard gates changes to a single value of type T.
// It is meant to be driven from one goroutine.
type Guard[T comparable] struct {
	committed func() T
	commit    func(ctx context.Context, v T) error

	pending T
	dirty   bool
}

// New returns a Guard that reads the live value through committed and applies
// a confirmed candidate through commit.
func New[T comparable](committed func() T, commit func(ctx context.Context, v T) error) *Guard[T] {
	return &Guard[T]{committed: committed, commit: commit}
}

// Select records v as the pending change. Repeated calls overwrite it.
func (g *Guard[T]) Select(v T) {
	g.pending = v
	g.dirty = true
}

// IsDirty reports whether a change is pending.
func (g *Guard[T]) IsDirty() bool { return g.dirty }

// Pending returns the candidate and whether one is set.
func (g *Guard[T]) Pending() (T, bool) {
	if !g.dirty {
		var zero T
		return zero, false
	}
	return g.pending, true
}

// Committed returns the live value.
func (g *Guard[T]) Committed() T { return g.committed() }

// Value is what a selection control should display: the candidate while one
// is pending, otherwise the live value.
func (g *Guard[T]) Value() T {
	if g.dirty {
		return g.pending
	}
	return g.committed()
}

// AttemptExit must be called by every exit path before leaving.
func (g *Guard[T]) AttemptExit(_ Source) Decision {
	if g.dirty {
		return NeedsConfirmation
	}
	return Proceed
}

// Confirm applies the pending change and clears it. It returns false without
// calling commit when nothing is pending. If commit fails the change stays
// pending so the user can retry or cancel.
func (g *Guard[T]) Confirm(ctx context.Context) (bool, error) {
	if !g.dirty {
		return false, nil
	}
	if err := g.commit(ctx, g.pending); err != nil {
		return false, err
	}
	g.reset()
	return true, nil
}

// Cancel discards the pending change. It returns false when nothing was
// pending.
func (g *Guard[T]) Cancel() bool {
	if !g.dirty {
		return false
	}
	g.reset()
	return true
}

func (g *Guard[T]) reset() {
	var zero T
	g.pending = zero
	g.dirty = false
}
