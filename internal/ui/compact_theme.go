package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the streamer look
var (
	ColorCream  = color.NRGBA{R: 0xFE, G: 0xF9, B: 0xE7, A: 0xFF}
	ColorInk    = color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0xFF}
	ColorPop    = color.NRGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	ColorButter = color.NRGBA{R: 0xFF, G: 0xF1, B: 0xC9, A: 0xFF}
)

// CompactTheme is a light, high-contrast theme with reduced padding.
// The palette is the same for light and dark variants.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return ColorCream
	case theme.ColorNameForeground, theme.ColorNameForegroundOnWarning:
		return ColorInk
	case theme.ColorNamePrimary, theme.ColorNameError, theme.ColorNameFocus:
		return ColorPop
	case theme.ColorNameForegroundOnPrimary, theme.ColorNameForegroundOnError:
		return ColorInk
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameHover:
		return ColorButter
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return ColorInk
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return color.NRGBA{R: 0x0F, G: 0x17, B: 0x2A, A: 0x80}
	}

	// Use default light colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 26 // bold title
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputBorder:
		return 2 // thick ink borders
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
