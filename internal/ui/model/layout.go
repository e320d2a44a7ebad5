package model

import (
	uv "github.com/charmbracelet/ultraviolet"
)

const (
	headerHeight = 1
	statusHeight = 1

	minWidth  = 20
	minHeight = 5
)

// layout holds the areas of the screen.
type layout struct {
	// area is the overall available area.
	area uv.Rectangle

	// header shows the title.
	header uv.Rectangle

	// main is the list.
	main uv.Rectangle

	// status is the one line status bar under the list.
	status uv.Rectangle

	// help is the area for the help view.
	help uv.Rectangle
}

// generateLayout splits area into, from top to bottom, the header, the list,
// the status line and the help.
func (m *Screen) generateLayout(area uv.Rectangle) layout {
	helpHeight := 1
	if m.help.ShowAll {
		for _, row := range m.FullHelp() {
			helpHeight = max(helpHeight, len(row))
		}
	}

	headerRect, rest := uv.SplitVertical(area, uv.Fixed(headerHeight))
	rest, helpRect := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-helpHeight))
	mainRect, statusRect := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-statusHeight))

	return layout{
		area:   area,
		header: headerRect,
		main:   mainRect,
		status: statusRect,
		help:   helpRect,
	}
}

// updateLayoutAndSize recomputes the layout for the current terminal size and
// resizes the components to fit.
func (m *Screen) updateLayoutAndSize() {
	m.layout = m.generateLayout(uv.Rect(0, 0, m.width, m.height))
	m.updateSize()
}

// updateSize updates the sizes of UI components based on the current layout.
func (m *Screen) updateSize() {
	m.help.SetWidth(m.layout.help.Dx())
	m.list.SetSize(m.layout.main.Dx(), max(m.layout.main.Dy(), 0))
}
