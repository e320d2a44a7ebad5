package model

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/infinite/internal/pager"
	"github.com/charmbracelet/infinite/internal/source"
	"github.com/charmbracelet/infinite/internal/ui/common"
	"github.com/charmbracelet/infinite/internal/ui/feed"
	"github.com/charmbracelet/infinite/internal/ui/list"
	"github.com/charmbracelet/infinite/internal/uiutil"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"
	"github.com/charmbracelet/x/ansi"
)

const (
	title = "Infinite Scroll"

	// wheelLines is how far one mouse wheel step scrolls.
	wheelLines = 3
)

// Screen is the single screen of the application: a list of rows that loads
// the next page from its source whenever the user scrolls to the end.
//
// All state is owned by the bubbletea update loop. Page fetches run as
// commands on their own goroutines and report back with messages.
type Screen struct {
	com *common.Common

	// ctx lives as long as the screen. Cancelling it abandons any fetch in
	// flight.
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	src     source.Source
	rows    *feed.Rows
	adapter *feed.Adapter
	list    *list.List
	pager   *pager.Pager

	spinner spinner.Model
	help    help.Model
	keyMap  KeyMap

	// The width and height of the terminal in cells.
	width  int
	height int
	layout layout

	status   uiutil.InfoMsg
	statusID int
}

// New creates the screen over rows, which must already hold the initial
// page. Further pages are fetched from src.
func New(com *common.Common, src source.Source, rows *feed.Rows) *Screen {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Screen{
		com:     com,
		ctx:     ctx,
		cancel:  cancel,
		src:     src,
		rows:    rows,
		adapter: feed.NewAdapter(rows),
		pager:   pager.New(com.PageSize()),
		keyMap:  DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(com.Styles.Spinner),
		),
	}
	m.list = list.New(m.adapter, m.renderRow)
	m.list.Focus()
	m.help.Styles = com.Styles.Help
	return m
}

// Init initializes the screen.
func (m *Screen) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.onLayout())
}

// Update handles updates to the screen.
func (m *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.updateLayoutAndSize()
		cmds = append(cmds, m.onLayout())
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKeyPressMsg(msg))
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			cmds = append(cmds, m.scrollBy(-wheelLines))
		case tea.MouseWheelDown:
			cmds = append(cmds, m.scrollBy(wheelLines))
		}
	case tea.MouseClickMsg:
		m.selectAt(msg.X-m.layout.main.Min.X, msg.Y-m.layout.main.Min.Y)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case pageLoadedMsg:
		cmds = append(cmds, m.applyPage(msg))
	case pageFailedMsg:
		cmds = append(cmds, m.failPage(msg))
	case uiutil.InfoMsg:
		m.statusID++
		m.status = msg
		cmds = append(cmds, uiutil.ClearStatusAfter(m.statusID, msg.TTL))
	case uiutil.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = uiutil.InfoMsg{}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Screen) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayoutAndSize()
		return m.onLayout()
	case key.Matches(msg, m.keyMap.Up):
		return m.selectPrev()
	case key.Matches(msg, m.keyMap.Down):
		return m.selectNext()
	case key.Matches(msg, m.keyMap.PageUp):
		return m.scrollBy(-max(m.list.Height(), 1))
	case key.Matches(msg, m.keyMap.PageDown):
		return m.scrollBy(max(m.list.Height(), 1))
	case key.Matches(msg, m.keyMap.Home):
		m.list.SelectFirst()
		return m.scrollWith(m.list.ScrollToTop)
	case key.Matches(msg, m.keyMap.End):
		m.list.SetSelected(m.rows.Len() - 1)
		return m.scrollWith(m.list.ScrollToBottom)
	case key.Matches(msg, m.keyMap.Stop):
		return m.reachedEndOfData()
	}
	return nil
}

// scrollBy scrolls the list by lines and reacts to the new position.
func (m *Screen) scrollBy(lines int) tea.Cmd {
	m.list.ScrollBy(lines)
	return m.onScrolled(lines)
}

// scrollWith applies a scroll that is not expressed in lines.
func (m *Screen) scrollWith(scroll func()) tea.Cmd {
	before := m.list.FirstVisible()
	scroll()
	return m.onScrolled(m.list.FirstVisible() - before)
}

// selectNext moves the selection to the next loaded row and scrolls it into
// view. Past the last loaded row the list scrolls a line instead, which brings
// the loading row into view.
func (m *Screen) selectNext() tea.Cmd {
	if m.reselectInView() {
		return nil
	}
	if m.list.Selected()+1 < m.rows.Len() && m.list.SelectNext() {
		return m.scrollWith(m.list.ScrollToSelected)
	}
	return m.scrollBy(1)
}

// selectPrev moves the selection to the previous row, scrolling a line when
// the first row is already selected.
func (m *Screen) selectPrev() tea.Cmd {
	if m.reselectInView() {
		return nil
	}
	if m.list.SelectPrev() {
		return m.scrollWith(m.list.ScrollToSelected)
	}
	return m.scrollBy(-1)
}

// reselectInView moves a selection that was scrolled out of view to the first
// visible row. It reports whether it did so.
func (m *Screen) reselectInView() bool {
	if m.list.Selected() < 0 || m.list.SelectedItemInView() {
		return false
	}
	if first := m.list.FirstVisible(); first >= 0 && first < m.rows.Len() {
		m.list.SetSelected(first)
		return true
	}
	return false
}

// window returns the list's current visible window.
func (m *Screen) window() pager.Window {
	return pager.Window{
		First:   m.list.FirstVisible(),
		Visible: m.list.VisibleCount(),
		Total:   m.list.ItemCount(),
	}
}

// onScrolled runs after every scroll event, including the zero-delta event
// that follows a layout pass. It starts loading the next page when the end
// of the list is in view.
func (m *Screen) onScrolled(dy int) tea.Cmd {
	w := m.window()
	if !m.pager.ShouldLoad(w) {
		return nil
	}
	slog.Debug("End of list in view", "dy", dy, "visible", w.Visible, "total", w.Total, "first", w.First)
	return m.loadMore()
}

// onLayout re-evaluates the window after the list was laid out again, so
// that a list shorter than the viewport keeps loading until it fills it.
func (m *Screen) onLayout() tea.Cmd {
	return m.onScrolled(0)
}

// selectAt selects the row under the viewport-relative point x, y.
func (m *Screen) selectAt(x, y int) {
	idx, _ := m.list.ItemIndexAtPosition(x, y)
	if idx < 0 {
		return
	}
	m.list.SetSelected(idx)
}

// reachedEndOfData stops all further loading: the pager becomes exhausted and
// the loading row goes away.
func (m *Screen) reachedEndOfData() tea.Cmd {
	if m.pager.IsLastPage() {
		return nil
	}
	m.Exhaust()
	slog.Info("Reached end of data", "rows", m.rows.Len())
	return uiutil.ReportInfo("No more rows will be loaded")
}

// Exhaust marks the source as having no more rows. The loading row is removed
// and no further pages are requested.
func (m *Screen) Exhaust() {
	m.pager.Exhaust()
	m.adapter.SetExhausted(true)
	m.list.NotifyDataSetChanged()
}

// Close releases the screen. A fetch in flight is cancelled and its result,
// should it still arrive, is ignored. Close is idempotent.
func (m *Screen) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
	m.pager.Cancel()
}

// Draw draws the screen into area.
func (m *Screen) Draw(scr uv.Screen, area uv.Rectangle) {
	screen.Clear(scr)

	t := &m.com.Styles
	if area.Dx() < minWidth || area.Dy() < minHeight {
		msg := t.WindowTooSmall.Render(ansi.Truncate("Window too small", area.Dx(), "…"))
		uv.NewStyledString(msg).Draw(scr, common.CenterRect(area, ansi.StringWidth(msg), 1))
		return
	}

	layout := m.generateLayout(area)
	if m.layout != layout {
		m.layout = layout
		m.updateSize()
	}

	uv.NewStyledString(common.Title(t, title, layout.header.Dx())).Draw(scr, layout.header)
	m.list.Draw(scr, layout.main)
	uv.NewStyledString(m.statusView(layout.status.Dx())).Draw(scr, layout.status)
	uv.NewStyledString(m.help.View(m)).Draw(scr, layout.help)
}

// View renders the screen.
func (m *Screen) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.BackgroundColor = m.com.Styles.Background
	v.MouseMode = tea.MouseModeCellMotion

	canvas := uv.NewScreenBuffer(m.width, m.height)
	m.Draw(canvas, canvas.Bounds())

	content := strings.ReplaceAll(canvas.Render(), "\r\n", "\n") // normalize newlines
	contentLines := strings.Split(content, "\n")
	for i, line := range contentLines {
		// Trim trailing spaces for concise rendering
		contentLines[i] = strings.TrimRight(line, " ")
	}

	v.Content = strings.Join(contentLines, "\n")
	return v
}

// ShortHelp implements [help.KeyMap].
func (m *Screen) ShortHelp() []key.Binding {
	k := &m.keyMap
	binds := []key.Binding{k.Down, k.PageDown}
	if !m.list.AtBottom() {
		binds = append(binds, k.End)
	}
	if !m.pager.IsLastPage() {
		binds = append(binds, k.Stop)
	}
	return append(binds, k.Quit, k.Help)
}

// FullHelp implements [help.KeyMap].
func (m *Screen) FullHelp() [][]key.Binding {
	k := &m.keyMap
	helpBinding := k.Help
	helpBinding.SetHelp("?", "less")
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PageUp, k.PageDown},
		{k.Home, k.End},
		{k.Stop, k.Quit, helpBinding},
	}
}
