// Package source provides the data sources a paginated list fetches rows
// from.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Page is one batch of rows returned by a Source.
type Page struct {
	Rows []string
	// Last is set when the source has nothing after this page.
	Last bool
}

// Source returns up to limit rows starting at the zero-based index start.
type Source interface {
	Fetch(ctx context.Context, start, limit int) (Page, error)
}

// ErrInvalidRange is returned for negative starts or non-positive limits.
var ErrInvalidRange = errors.New("invalid page range")

func checkRange(start, limit int) error {
	if start < 0 || limit <= 0 {
		return fmt.Errorf("%w: start=%d limit=%d", ErrInvalidRange, start, limit)
	}
	return nil
}

// shortPage builds a Page from rows, marking it last when fewer than limit
// rows came back.
func shortPage(rows []string, limit int) Page {
	return Page{Rows: rows, Last: len(rows) < limit}
}

type delayed struct {
	src   Source
	delay time.Duration
}

// Delayed wraps src so that every fetch first waits for delay. The wait ends
// early with ctx.Err() when ctx is done.
func Delayed(src Source, delay time.Duration) Source {
	if delay <= 0 {
		return src
	}
	return &delayed{src: src, delay: delay}
}

func (d *delayed) Fetch(ctx context.Context, start, limit int) (Page, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Page{}, ctx.Err()
	case <-timer.C:
	}
	return d.src.Fetch(ctx, start, limit)
}
