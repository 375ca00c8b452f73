package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SizeNameDisplayText is the font size of the large text display
const SizeNameDisplayText fyne.ThemeSizeName = "spelloutDisplayText"

// Dark palette shared with the Anki card styling
var (
	colorPrimary       = color.NRGBA{R: 0xe6, G: 0xe1, B: 0xd6, A: 0xff}
	colorBackground    = color.NRGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff}
	colorPaper         = color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	colorTextPrimary   = color.NRGBA{R: 0xf5, G: 0xf1, B: 0xea, A: 0xff}
	colorTextSecondary = color.NRGBA{R: 0xc9, G: 0xc2, B: 0xb7, A: 0xff}
	colorDivider       = color.NRGBA{R: 0xf5, G: 0xf1, B: 0xea, A: 0x24} // 14% alpha
)

// DarkTheme is the fixed dark theme of the application
type DarkTheme struct {
	displayTextSize float32
}

// NewDarkTheme creates the theme; displayTextSize <= 0 uses the default
func NewDarkTheme(displayTextSize float32) fyne.Theme {
	if displayTextSize <= 0 {
		displayTextSize = DefaultDisplayTextSize
	}
	return &DarkTheme{displayTextSize: displayTextSize}
}

// Color returns theme colors. The variant is ignored, the app is always dark.
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorBackground
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return colorPaper
	case theme.ColorNameForeground:
		return colorTextPrimary
	case theme.ColorNamePlaceHolder:
		return colorTextSecondary
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorPrimary
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return colorDivider
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameDisplayText:
		return t.displayTextSize
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 30
	}

	return theme.DefaultTheme().Size(name)
}
