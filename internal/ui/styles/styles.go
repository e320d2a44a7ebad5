package styles

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "×"
	WarningIcon string = "⚠"
	InfoIcon    string = "ⓘ"
	LoadingIcon string = "⟳"

	BorderThick string = "▌"

	SectionSeparator string = "─"
	StatusSeparator  string = " • "
)

type Styles struct {
	WindowTooSmall lipgloss.Style

	// Reusable text styles
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Header
	Title    lipgloss.Style
	TitleBar lipgloss.Style

	// Rows
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	LoadingRow  lipgloss.Style
	Spinner     lipgloss.Style

	// Status line
	Status        lipgloss.Style
	StatusLoading lipgloss.Style
	StatusDone    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style

	// Help
	Help help.Styles

	// Background
	Background color.Color
}

func DefaultStyles() Styles {
	var (
		primary   = charmtone.Charple
		secondary = charmtone.Dolly

		// Backgrounds
		bgBase = charmtone.Pepper

		// Foregrounds
		fgBase   = charmtone.Ash
		fgMuted  = charmtone.Squid
		fgSubtle = charmtone.Oyster

		// Borders
		border = charmtone.Charcoal

		// Status
		warning = charmtone.Zest
		info    = charmtone.Malibu
		green   = charmtone.Julep
		red     = charmtone.Coral
	)

	base := lipgloss.NewStyle().Foreground(fgBase)

	s := Styles{}

	s.Background = bgBase

	s.Base = base
	s.Muted = base.Foreground(fgMuted)
	s.Subtle = base.Foreground(fgSubtle)

	s.WindowTooSmall = s.Muted

	s.Title = base.Foreground(primary).Bold(true)
	s.TitleBar = base.Foreground(border)

	s.Row = base.PaddingLeft(2)
	s.RowSelected = base.
		Foreground(secondary).
		Border(lipgloss.Border{Left: BorderThick}, false, false, false, true).
		BorderForeground(primary).
		PaddingLeft(1)
	s.LoadingRow = s.Muted.PaddingLeft(2)
	s.Spinner = base.Foreground(primary)

	s.Status = s.Muted.PaddingLeft(1)
	s.StatusLoading = base.Foreground(info)
	s.StatusDone = base.Foreground(green)
	s.StatusInfo = base.Foreground(info)
	s.StatusWarn = base.Foreground(warning)
	s.StatusError = base.Foreground(red)

	s.Help = help.Styles{
		ShortKey:       base.Foreground(fgMuted),
		ShortDesc:      base.Foreground(fgSubtle),
		ShortSeparator: base.Foreground(border),
		Ellipsis:       base.Foreground(border),
		FullKey:        base.Foreground(fgMuted),
		FullDesc:       base.Foreground(fgSubtle),
		FullSeparator:  base.Foreground(border),
	}

	return s
}
