package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance shared by the built-in panels.
type Theme struct {
	AccentColor         sdl.Color // Selection highlight, option underline
	TextColor           sdl.Color // Default text color
	HintColor           sdl.Color // Help text, unselected options
	BackgroundColor     sdl.Color // Screen background color
	DimColor            sdl.Color // Translucent overlay behind modal panels
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image, empty for none
}

// DefaultTheme returns the theme used when the host application does not
// provide one.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:     sdl.Color{R: 255, G: 255, B: 255, A: 255},
		TextColor:       sdl.Color{R: 220, G: 220, B: 220, A: 255},
		HintColor:       sdl.Color{R: 120, G: 120, B: 120, A: 255},
		BackgroundColor: sdl.Color{R: 0, G: 0, B: 0, A: 255},
		DimColor:        sdl.Color{R: 0, G: 0, B: 0, A: 180},
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
