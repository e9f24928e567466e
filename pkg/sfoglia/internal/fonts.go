package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes defines the point sizes for the three framework font slots.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes are tuned for 720p-class handheld displays.
var DefaultFontSizes = FontSizes{Large: 40, Medium: 28, Small: 20}

// FontSet holds the loaded framework fonts. All slots are nil when the
// theme has no font path (headless tests, custom renderers).
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts is the framework font set, populated during Init.
var Fonts FontSet

func openFont(path string, size int) *ttf.Font {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
		return nil
	}
	return font
}

func initFonts(sizes FontSizes) {
	path := GetTheme().FontPath
	if path == "" {
		GetInternalLogger().Warn("Theme has no font path; text rendering disabled")
		return
	}

	Fonts = FontSet{
		LargeFont:  openFont(path, sizes.Large),
		MediumFont: openFont(path, sizes.Medium),
		SmallFont:  openFont(path, sizes.Small),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
