package source

import (
	"context"
	"fmt"

	"github.com/charmbracelet/infinite/internal/csync"
)

// Synthetic generates rows of the form "data : N" where N is the one-based
// row number.
type Synthetic struct {
	// Limit is the total number of rows available. Zero means unlimited, in
	// which case no page is ever marked last.
	Limit int

	fetches *csync.Value[int]
}

// NewSynthetic returns a synthetic source holding limit rows, or an endless
// one when limit is zero.
func NewSynthetic(limit int) *Synthetic {
	return &Synthetic{
		Limit:   limit,
		fetches: csync.NewValue(0),
	}
}

// Row returns the text of the row at the zero-based index i.
func Row(i int) string {
	return fmt.Sprintf("data : %d", i+1)
}

// Fetch implements Source.
func (s *Synthetic) Fetch(ctx context.Context, start, limit int) (Page, error) {
	if err := checkRange(start, limit); err != nil {
		return Page{}, err
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	s.fetches.Update(func(n int) int { return n + 1 })

	end := start + limit
	last := false
	if s.Limit > 0 && end >= s.Limit {
		end = max(s.Limit, start)
		last = true
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, Row(i))
	}
	return Page{Rows: rows, Last: last}, nil
}

// Fetches returns how many fetches have been served.
func (s *Synthetic) Fetches() int {
	return s.fetches.Get()
}
