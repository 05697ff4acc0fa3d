// Package seedflow walks the user through a freshly generated mnemonic, one
// page of words at a time.
//
// The walk is forward-only. The last page offers Save instead of Advance, and
// any exit before Save has to be confirmed because the words are not kept: a
// new mnemonic is generated next time.
package seedflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophwallet/internal/client/models"
	"github.com/dmitrijs2005/gophwallet/internal/guard"
)

var (
	ErrInvalidPages  = errors.New("invalid seed pages")
	ErrNotOnLastPage = errors.New("save is only available on the last page")
	ErrFinished      = errors.New("seed reveal already finished")
)

type state int

const (
	stateRevealing state = iota
	stateSaved
	stateExited
)

// Flow is one reveal session. It is not safe for concurrent use.
type Flow struct {
	pages   []models.SeedPage
	current int
	state   state
	onSave  func(ctx context.Context) error
}

// New validates pages and starts the session on the first page. onSave runs
// when the user saves from the last page.
func New(pages []models.SeedPage, onSave func(ctx context.Context) error) (*Flow, error) {
	if err := Validate(pages); err != nil {
		return nil, err
	}
	return &Flow{pages: pages, onSave: onSave}, nil
}

// Current is the zero-based index of the page on screen.
func (f *Flow) Current() int { return f.current }

// PageCount is the number of pages, fixed for the session.
func (f *Flow) PageCount() int { return len(f.pages) }

// Page returns the words on the current page. It is nil once the session has
// ended.
func (f *Flow) Page() models.SeedPage {
	if f.state != stateRevealing {
		return nil
	}
	return f.pages[f.current]
}

// IsLastPage reports whether the terminal Save action should be offered.
func (f *Flow) IsLastPage() bool { return f.current == len(f.pages)-1 }

// Active reports whether the session is still revealing words.
func (f *Flow) Active() bool { return f.state == stateRevealing }

// Advance moves to the next page. It does nothing and returns false on the
// last page or after the session ended.
func (f *Flow) Advance() bool {
	if f.state != stateRevealing || f.IsLastPage() {
		return false
	}
	f.current++
	return true
}

// Save finishes the session from the last page.
// If onSave fails the session stays on the last page.
func (f *Flow) Save(ctx context.Context) error {
	if f.state != stateRevealing {
		return ErrFinished
	}
	if !f.IsLastPage() {
		return ErrNotOnLastPage
	}
	if f.onSave != nil {
		if err := f.onSave(ctx); err != nil {
			return fmt.Errorf("save wallet: %w", err)
		}
	}
	f.end(stateSaved)
	return nil
}

// AttemptExit answers an exit request from any source. While words are being
// revealed the answer is always NeedsConfirmation.
func (f *Flow) AttemptExit(_ guard.Source) guard.Decision {
	if f.state == stateRevealing {
		return guard.NeedsConfirmation
	}
	return guard.Proceed
}

// ConfirmExit abandons the session and drops the words.
func (f *Flow) ConfirmExit() {
	if f.state == stateRevealing {
		f.end(stateExited)
	}
}

// CancelExit keeps the user on the current page.
func (f *Flow) CancelExit() int { return f.current }

func (f *Flow) end(s state) {
	for _, p := range f.pages {
		for i := range p {
			p[i].Word = ""
		}
	}
	f.pages = nil
	f.state = s
}

// Validate checks that pages are non-empty and that word indices run 1..N
// without gaps across all pages.
func Validate(pages []models.SeedPage) error {
	if len(pages) == 0 {
		return fmt.Errorf("%w: no pages", ErrInvalidPages)
	}
	next := 1
	for pi, p := range pages {
		if len(p) == 0 {
			return fmt.Errorf("%w: page %d is empty", ErrInvalidPages, pi+1)
		}
		for _, g := range p {
			if g.Index != next {
				return fmt.Errorf("%w: expected word %d, got %d", ErrInvalidPages, next, g.Index)
			}
			if g.Word == "" {
				return fmt.Errorf("%w: word %d is blank", ErrInvalidPages, g.Index)
			}
			next++
		}
	}
	return nil
}

// GroupWords numbers words from 1 and splits them into pages of perPage words.
// The last page may be shorter.
func GroupWords(words []string, perPage int) ([]models.SeedPage, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("%w: words per page must be positive", ErrInvalidPages)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidPages)
	}

	pages := make([]models.SeedPage, 0, (len(words)+perPage-1)/perPage)
	for start := 0; start < len(words); start += perPage {
		end := min(start+perPage, len(words))
		page := make(models.SeedPage, 0, end-start)
		for i := start; i < end; i++ {
			page = append(page, models.WordGroup{Index: i + 1, Word: words[i]})
		}
		pages = append(pages, page)
	}
	return pages, nil
}
