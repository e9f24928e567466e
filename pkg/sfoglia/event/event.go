// Package event defines the discriminated input events consumed by the
// panel-stack dispatcher. The platform layer translates raw SDL events into
// these types (see FromSDL); tests and alternative event sources can
// construct them directly, so nothing in this file touches SDL.
//
// Coordinates on mouse events are in device pixels; the dispatcher converts
// them to logical coordinates using the screen package. Finger coordinates
// are in SDL's normalized 0..1 space. Timestamps are milliseconds since
// platform init, matching SDL's event timestamps.
package event

import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
import "github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"

// Event is the closed set of input events. Exactly one event is delivered
// per dispatch call.
type Event interface {
	isEvent()
}

// Mouse button identifiers, matching SDL numbering.
const (
	ButtonLeft  uint8 = 1
	ButtonRight uint8 = 3
)

// ButtonLeftMask is the held-button mask bit for the primary button on
// MouseMove events.
const ButtonLeftMask uint32 = 1

// MouseMove is pointer motion, with or without buttons held.
type MouseMove struct {
	Timestamp uint32
	X, Y      int32  // device position
	DX, DY    int32  // relative motion in device pixels
	Buttons   uint32 // held-button mask
}

// MouseDown is a mouse button press. Clicks distinguishes single and
// double clicks and is supplied by the platform.
type MouseDown struct {
	Timestamp uint32
	X, Y      int32
	Button    uint8
	Clicks    uint8
}

// MouseUp is a mouse button release.
type MouseUp struct {
	Timestamp uint32
	X, Y      int32
	Button    uint8
}

// Wheel is scroll input with raw horizontal and vertical deltas.
type Wheel struct {
	Timestamp uint32
	DX, DY    int32
}

// FingerDown is a touch press. X and Y are normalized to 0..1.
type FingerDown struct {
	Timestamp uint32
	X, Y      float32
	ID        int64
}

// FingerMove is touch motion. DX and DY are normalized deltas.
type FingerMove struct {
	Timestamp uint32
	X, Y      float32
	DX, DY    float32
	ID        int64
}

// FingerUp is a touch release.
type FingerUp struct {
	Timestamp uint32
	X, Y      float32
	ID        int64
}

// KeyDown is a keyboard press. Repeat is true for auto-repeat events.
type KeyDown struct {
	Timestamp uint32
	Key       int32 // raw key code (SDL keycode)
	Mod       uint16
	Repeat    bool
}

// Command is an injected logical command with no physical key behind it.
type Command struct {
	Timestamp uint32
	Command   command.Command
	Pressed   bool
}

// Gesture is a recognized touch gesture.
type Gesture struct {
	Timestamp uint32
	Kind      gesture.Kind
}

func (MouseMove) isEvent()  {}
func (MouseDown) isEvent()  {}
func (MouseUp) isEvent()    {}
func (Wheel) isEvent()      {}
func (FingerDown) isEvent() {}
func (FingerMove) isEvent() {}
func (FingerUp) isEvent()   {}
func (KeyDown) isEvent()    {}
func (Command) isEvent()    {}
func (Gesture) isEvent()    {}
