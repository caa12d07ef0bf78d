package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

const (
	minFontScale = 0.6
	maxFontScale = 2.0
)

// clampFontScale keeps the font scale within readable bounds
func clampFontScale(scale float32) float32 {
	if scale < minFontScale {
		return minFontScale
	}
	if scale > maxFontScale {
		return maxFontScale
	}
	return scale
}

// scaledTheme wraps another theme and multiplies every size by a
// constant factor. Used by the font size controls.
type scaledTheme struct {
	base  fyne.Theme
	scale float32
}

func (t *scaledTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *scaledTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *scaledTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *scaledTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name) * t.scale
}
