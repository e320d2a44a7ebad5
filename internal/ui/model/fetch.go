package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/infinite/internal/log"
	"github.com/charmbracelet/infinite/internal/pager"
	"github.com/charmbracelet/infinite/internal/source"
	"github.com/charmbracelet/infinite/internal/uiutil"
	"github.com/dustin/go-humanize"
)

// pageLoadedMsg carries the rows of a finished request.
type pageLoadedMsg struct {
	req  pager.Request
	page source.Page
}

// pageFailedMsg reports a request that failed.
type pageFailedMsg struct {
	req pager.Request
	err error
}

// loadMore starts loading the page that follows the loaded rows. It returns
// nil if the pager is not idle.
func (m *Screen) loadMore() tea.Cmd {
	req, ok := m.pager.Begin(m.rows.Len())
	if !ok {
		return nil
	}
	return fetchPage(m.ctx, m.src, req)
}

// fetchPage returns a command that fetches req from src. A fetch abandoned
// through ctx produces no message.
func fetchPage(ctx context.Context, src source.Source, req pager.Request) tea.Cmd {
	return func() (msg tea.Msg) {
		defer log.RecoverPanic("page fetch", func() {
			msg = pageFailedMsg{req: req, err: errors.New("page fetch panicked")}
		})

		page, err := src.Fetch(ctx, req.Start, req.Limit)
		switch {
		case errors.Is(err, context.Canceled):
			slog.Debug("Page fetch abandoned", "id", req.ID)
			return nil
		case err != nil:
			return pageFailedMsg{req: req, err: err}
		}
		return pageLoadedMsg{req: req, page: page}
	}
}

// applyPage appends the rows of a finished request and refreshes the list.
// Results for requests the pager no longer tracks are dropped.
func (m *Screen) applyPage(msg pageLoadedMsg) tea.Cmd {
	if m.closed || !m.pager.Complete(msg.req, msg.page.Last) {
		return nil
	}

	m.rows.Append(msg.page.Rows...)
	var cmds []tea.Cmd
	if msg.page.Last && !m.adapter.Exhausted() {
		m.adapter.SetExhausted(true)
		slog.Info("Source exhausted", "rows", m.rows.Len())
		cmds = append(cmds, uiutil.ReportSuccess(
			fmt.Sprintf("All %s rows loaded", humanize.Comma(int64(m.rows.Len()))),
		))
	}
	m.list.NotifyDataSetChanged()
	slog.Debug("Page applied", "id", msg.req.ID, "added", len(msg.page.Rows), "rows", m.rows.Len())

	cmds = append(cmds, m.onLayout())
	return tea.Batch(cmds...)
}

// failPage returns the pager to idle so that the next scroll to the end
// retries, and reports the error.
func (m *Screen) failPage(msg pageFailedMsg) tea.Cmd {
	if m.closed || !m.pager.Fail(msg.req, msg.err) {
		return nil
	}
	return uiutil.ReportError(fmt.Errorf("failed to load rows from %d: %w", msg.req.Start+1, msg.err))
}
