// Package ui provides the BadgePatternTool application UI components.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// BadgeTheme tightens the default theme's text and padding sizes so the
// parameter panel and the page preview fit side by side on small screens.
// Everything else delegates to the embedded default theme.
type BadgeTheme struct {
	fyne.Theme
}

func NewBadgeTheme() *BadgeTheme {
	return &BadgeTheme{Theme: theme.DefaultTheme()}
}

func (t *BadgeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.Theme.Size(name)
	}
}
