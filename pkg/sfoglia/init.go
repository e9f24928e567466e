// Package sfoglia is a panel-stack UI core for SDL2 applications on
// embedded Linux devices, particularly handheld gaming consoles. It owns an
// ordered stack of panels (screens and overlays), routes platform input to
// exactly one panel per event with top-down priority and occlusion, and
// defers stack mutations so panels can safely push and pop each other from
// inside their own event handlers.
//
// The package also handles SDL initialization, logging, theming, key and
// gesture bindings, and provides a modal message panel.
package sfoglia

import (
	"log/slog"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/screen"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	ShowBackground bool                   // Whether to render the theme background image each frame
	WindowOptions  internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	AccentColorHex uint32                 // Custom accent color as 0xRRGGBB, 0 for the default
	FontPath       string                 // Path to the UI font; empty disables text rendering
	BackgroundPath string                 // Path to a background image, empty for none
	ZoomPercent    int                    // Initial UI zoom level, 0 for 100
	LogPath        string                 // Full path for the log file, empty for console-only
	BindingsPath   string                 // Optional TOML key/gesture bindings file

	// HardwareKeyDevice names an evdev device whose keys bypass SDL
	// (power and volume buttons on most handhelds). Key codes found in
	// HardwareKeyBindings are injected as commands.
	HardwareKeyDevice   string
	HardwareKeyBindings map[uint16]command.Command
}

var (
	showBackground bool
	hardKeys       *internal.HardwareKeyBridge
)

// Init initializes SDL, the window, fonts, theming, bindings and input
// handling. Must be called before any other sfoglia function.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme()
	theme.FontPath = options.FontPath
	theme.BackgroundImagePath = options.BackgroundPath
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.WindowOptions)
	showBackground = options.ShowBackground

	window := internal.GetWindow()
	screen.SetRaw(int(window.GetWidth()), int(window.GetHeight()))
	if options.ZoomPercent > 0 {
		screen.SetZoom(options.ZoomPercent)
	}

	if options.BindingsPath != "" {
		if err := command.LoadBindings(options.BindingsPath); err != nil {
			GetLogger().Warn("Failed to load bindings; using defaults", "error", err)
		}
	}

	if options.HardwareKeyDevice != "" {
		bindings := make(map[evdev.EvCode]command.Command, len(options.HardwareKeyBindings))
		for code, cmd := range options.HardwareKeyBindings {
			bindings[evdev.EvCode(code)] = cmd
		}

		bridge, err := internal.StartHardwareKeys(internal.HardwareKeyConfig{
			DevicePath: options.HardwareKeyDevice,
			Bindings:   bindings,
		})
		if err != nil {
			GetLogger().Warn("Hardware key bridge unavailable", "device", options.HardwareKeyDevice, "error", err)
		} else {
			hardKeys = bridge
		}
	}
}

// Close releases all SDL resources and shuts down the framework. Must be
// called before program exit to prevent resource leaks.
func Close() {
	if hardKeys != nil {
		hardKeys.Stop()
		hardKeys = nil
	}
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug",
// "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// LoadTranslations adds a TOML message file to the translation bundle used
// for the framework's built-in strings.
func LoadTranslations(path string) error {
	return internal.LoadTranslations(path)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
