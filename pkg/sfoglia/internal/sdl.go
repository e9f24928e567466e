package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, the window and renderer, and the fonts. Must be
// called before any rendering.
func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		GetInternalLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Error("SDL_image init failed", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetInternalLogger().Error("SDL_ttf init failed", "error", err)
		os.Exit(1)
	}

	window = initWindow(title, winOpts)

	initFonts(DefaultFontSizes)
}

// SDLCleanup releases every SDL resource Init acquired.
func SDLCleanup() {
	iconCache.Destroy()
	if window != nil {
		window.closeWindow()
	}
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
