package model

import (
	"fmt"

	"github.com/charmbracelet/infinite/internal/pager"
	"github.com/charmbracelet/infinite/internal/ui/common"
	"github.com/charmbracelet/infinite/internal/ui/list"
	"github.com/charmbracelet/infinite/internal/ui/styles"
	"github.com/charmbracelet/infinite/internal/uiutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// rowIndent is the width taken by the row styles before the text.
const rowIndent = 2

// renderRow renders a bound list row.
func (m *Screen) renderRow(row list.Row, width int, selected bool) string {
	t := &m.com.Styles
	switch row.Kind {
	case list.KindLoading:
		return t.LoadingRow.Render(m.spinner.View() + " Loading more…")
	default:
		text := ansi.Truncate(row.Text, width-rowIndent, "…")
		if selected {
			return t.RowSelected.Render(text)
		}
		return t.Row.Render(text)
	}
}

// statusView renders the status line: a transient message if there is one,
// otherwise the pagination state and the number of rows loaded.
func (m *Screen) statusView(width int) string {
	t := &m.com.Styles
	if m.status.Msg != "" {
		opts := common.StatusOpts{Description: m.status.Msg}
		switch m.status.Type {
		case uiutil.InfoTypeError:
			opts.Icon, opts.Title, opts.TitleColor = styles.ErrorIcon, "error", t.StatusError.GetForeground()
		case uiutil.InfoTypeWarn:
			opts.Icon, opts.Title, opts.TitleColor = styles.WarningIcon, "warning", t.StatusWarn.GetForeground()
		case uiutil.InfoTypeSuccess:
			opts.Icon, opts.Title, opts.TitleColor = styles.CheckIcon, "done", t.StatusDone.GetForeground()
		default:
			opts.Icon, opts.Title, opts.TitleColor = styles.InfoIcon, "info", t.StatusInfo.GetForeground()
		}
		opts.Icon = t.Base.Foreground(opts.TitleColor).Render(opts.Icon)
		return t.Status.Render(common.Status(t, opts, width-1))
	}

	count := fmt.Sprintf("%s rows", humanize.Comma(int64(m.rows.Len())))
	opts := common.StatusOpts{Description: count}
	switch m.pager.State() {
	case pager.StateLoading:
		opts.Icon = t.StatusLoading.Render(styles.LoadingIcon)
		opts.Title = "loading"
		opts.TitleColor = t.StatusLoading.GetForeground()
		if req, ok := m.pager.InFlight(); ok {
			opts.Description = fmt.Sprintf("%s, fetching %d–%d", count, req.Start+1, req.Start+req.Limit)
		}
	case pager.StateExhausted:
		opts.Icon = t.StatusDone.Render(styles.CheckIcon)
		opts.Title = "end of data"
		opts.TitleColor = t.StatusDone.GetForeground()
	default:
		opts.Title = "idle"
	}
	if row, ok := m.list.SelectedRow(); ok && row.Kind == list.KindContent {
		opts.ExtraContent = t.Subtle.Render(styles.StatusSeparator + row.Text)
	}
	return t.Status.Render(common.Status(t, opts, width-1))
}
