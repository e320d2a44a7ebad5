package common

import (
	"image"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/infinite/internal/ui/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestTitleFillsWidth(t *testing.T) {
	t.Parallel()

	st := styles.DefaultStyles()
	out := Title(&st, "infinite", 30)
	require.Equal(t, 30, lipgloss.Width(out))
	require.Contains(t, ansi.Strip(out), "infinite ─")
}

func TestTitleTruncates(t *testing.T) {
	t.Parallel()

	st := styles.DefaultStyles()
	out := Title(&st, "infinite", 4)
	require.LessOrEqual(t, lipgloss.Width(out), 4)
}

func TestStatusTruncatesDescription(t *testing.T) {
	t.Parallel()

	st := styles.DefaultStyles()
	out := Status(&st, StatusOpts{
		Title:       "loading",
		Description: "rows 21 to 40 from a very slow source",
	}, 20)
	plain := ansi.Strip(out)
	require.LessOrEqual(t, lipgloss.Width(plain), 20)
	require.Contains(t, plain, "loading")
	require.Contains(t, plain, "…")
}

func TestCenterRect(t *testing.T) {
	t.Parallel()

	r := CenterRect(image.Rect(0, 0, 80, 24), 10, 4)
	require.Equal(t, image.Rect(35, 10, 45, 14), r)
}

func TestCenterRectClampsToArea(t *testing.T) {
	t.Parallel()

	r := CenterRect(image.Rect(0, 0, 10, 3), 16, 1)
	require.Equal(t, image.Rect(0, 1, 10, 2), r)

	r = CenterRect(image.Rect(5, 5, 15, 7), 4, 9)
	require.Equal(t, image.Rect(8, 5, 12, 7), r)
}
