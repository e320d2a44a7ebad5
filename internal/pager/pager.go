// Package pager implements the state machine that decides when a scrolling
// list should load its next page.
//
// A Pager is Idle until the visible window reaches the end of the loaded
// rows, Loading while exactly one request is in flight, and Exhausted once
// the data source has nothing left. Exhausted is terminal.
package pager

import (
	"log/slog"

	"github.com/google/uuid"
)

// State is the pagination state.
type State uint8

// Possible State values.
const (
	StateIdle State = iota
	StateLoading
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Window describes what a list currently shows, in the terms a linear
// layout manager reports them.
type Window struct {
	// First is the position of the first visible item, or -1 when nothing
	// is visible.
	First int
	// Visible is the number of items at least partly on screen.
	Visible int
	// Total is the number of items the list holds, including any trailing
	// loading row.
	Total int
}

// AtEnd reports whether the window reaches the last item.
func (w Window) AtEnd() bool {
	return w.First >= 0 && w.Visible+w.First >= w.Total
}

// Request identifies one page load.
type Request struct {
	ID    string
	Start int
	Limit int
}

// Pager tracks pagination state for one list. It is not safe for concurrent
// use; the UI goroutine owns it.
type Pager struct {
	state    State
	pageSize int
	inflight *Request
}

// New returns an idle pager that loads pageSize rows at a time.
func New(pageSize int) *Pager {
	return &Pager{pageSize: pageSize}
}

// State returns the current state.
func (p *Pager) State() State {
	return p.state
}

// PageSize returns the number of rows requested per page.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// IsLoading reports whether a request is in flight.
func (p *Pager) IsLoading() bool {
	return p.state == StateLoading
}

// IsLastPage reports whether the source is exhausted.
func (p *Pager) IsLastPage() bool {
	return p.state == StateExhausted
}

// InFlight returns the request currently in flight, if any.
func (p *Pager) InFlight() (Request, bool) {
	if p.inflight == nil {
		return Request{}, false
	}
	return *p.inflight, true
}

// ShouldLoad reports whether w warrants loading the next page. It is meant
// to be called on every scroll event; repeated calls while a page is loading
// return false.
func (p *Pager) ShouldLoad(w Window) bool {
	if p.state != StateIdle {
		return false
	}
	return w.AtEnd() && w.Total >= p.pageSize
}

// Begin moves the pager from Idle to Loading and returns the request for the
// page starting at start. It returns false if the pager is not idle.
func (p *Pager) Begin(start int) (Request, bool) {
	if p.state != StateIdle {
		return Request{}, false
	}
	req := Request{
		ID:    uuid.NewString(),
		Start: start,
		Limit: p.pageSize,
	}
	p.inflight = &req
	p.state = StateLoading
	slog.Debug("Page load started", "id", req.ID, "start", req.Start, "limit", req.Limit)
	return req, true
}

// Complete finishes req. When last is set the pager becomes Exhausted,
// otherwise it returns to Idle. It returns false, changing nothing, if req is
// not the request in flight; its rows must then be dropped.
func (p *Pager) Complete(req Request, last bool) bool {
	if !p.owns(req) {
		slog.Debug("Dropping stale page", "id", req.ID, "start", req.Start)
		return false
	}
	p.inflight = nil
	switch {
	case last:
		p.state = StateExhausted
	case p.state == StateLoading:
		p.state = StateIdle
	}
	slog.Debug("Page load completed", "id", req.ID, "state", p.state)
	return true
}

// Fail finishes req without rows. The pager returns to Idle so the next
// qualifying scroll retries. It returns false if req is not in flight.
func (p *Pager) Fail(req Request, err error) bool {
	if !p.owns(req) {
		return false
	}
	p.inflight = nil
	if p.state == StateLoading {
		p.state = StateIdle
	}
	slog.Warn("Page load failed", "id", req.ID, "start", req.Start, "error", err)
	return true
}

// Exhaust marks the source as having no more data. No further loads begin.
// A request already in flight may still complete.
func (p *Pager) Exhaust() {
	p.state = StateExhausted
}

// Cancel forgets the request in flight so that its completion is rejected.
func (p *Pager) Cancel() {
	if p.inflight == nil {
		return
	}
	slog.Debug("Page load cancelled", "id", p.inflight.ID)
	p.inflight = nil
	if p.state == StateLoading {
		p.state = StateIdle
	}
}

func (p *Pager) owns(req Request) bool {
	return p.inflight != nil && p.inflight.ID == req.ID
}
