package common

import (
	"github.com/charmbracelet/infinite/internal/config"
	"github.com/charmbracelet/infinite/internal/ui/styles"
	uv "github.com/charmbracelet/ultraviolet"
)

// Common is the state shared by every part of the list screen: the settings
// it was started with and the styles it draws with.
type Common struct {
	Config *config.Config
	Styles styles.Styles
}

// NewCommon returns the shared state for cfg, drawn with the default styles.
func NewCommon(cfg *config.Config) *Common {
	return &Common{
		Config: cfg,
		Styles: styles.DefaultStyles(),
	}
}

// PageSize returns the number of rows requested per fetch.
func (c *Common) PageSize() int {
	return c.Config.PageSize
}

// CenterRect returns a width by height rectangle centered in area. The size
// is clamped to area, so the result never starts outside of it.
func CenterRect(area uv.Rectangle, width, height int) uv.Rectangle {
	width = max(min(width, area.Dx()), 0)
	height = max(min(height, area.Dy()), 0)
	x := area.Min.X + (area.Dx()-width)/2
	y := area.Min.Y + (area.Dy()-height)/2
	return uv.Rect(x, y, width, height)
}
