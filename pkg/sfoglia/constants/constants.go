// Package constants defines shared constants and configuration values
// used throughout the sfoglia UI framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// BackgroundPathEnvVar is the environment variable name for a custom background image path.
const BackgroundPathEnvVar = "BACKGROUND_PATH"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	// DoubleTapMillis is the maximum interval between two taps for the
	// second one to count as a double tap.
	DoubleTapMillis uint32 = 500

	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events

	// FrameDelayMillis is the per-frame delay used by the convenience
	// run loop when VSync is unavailable (~60fps).
	FrameDelayMillis uint32 = 16
)
