package event

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// pinchThreshold is the minimum per-event normalized pinch distance for a
// MultiGestureEvent to register as a pinch.
const pinchThreshold = 0.02

// FromSDL translates a raw SDL event into a dispatcher event. The second
// return value is false for SDL events the dispatcher does not consume
// (window events, quit, text input, and so on).
func FromSDL(raw sdl.Event) (Event, bool) {
	switch e := raw.(type) {
	case *sdl.MouseMotionEvent:
		return MouseMove{
			Timestamp: e.Timestamp,
			X:         e.X,
			Y:         e.Y,
			DX:        e.XRel,
			DY:        e.YRel,
			Buttons:   e.State,
		}, true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return MouseDown{
				Timestamp: e.Timestamp,
				X:         e.X,
				Y:         e.Y,
				Button:    e.Button,
				Clicks:    e.Clicks,
			}, true
		}
		return MouseUp{
			Timestamp: e.Timestamp,
			X:         e.X,
			Y:         e.Y,
			Button:    e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		return Wheel{Timestamp: e.Timestamp, DX: e.X, DY: e.Y}, true

	case *sdl.TouchFingerEvent:
		switch e.Type {
		case sdl.FINGERDOWN:
			return FingerDown{
				Timestamp: e.Timestamp,
				X:         e.X,
				Y:         e.Y,
				ID:        int64(e.FingerID),
			}, true
		case sdl.FINGERMOTION:
			return FingerMove{
				Timestamp: e.Timestamp,
				X:         e.X,
				Y:         e.Y,
				DX:        e.DX,
				DY:        e.DY,
				ID:        int64(e.FingerID),
			}, true
		case sdl.FINGERUP:
			return FingerUp{
				Timestamp: e.Timestamp,
				X:         e.X,
				Y:         e.Y,
				ID:        int64(e.FingerID),
			}, true
		}
		return nil, false

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return nil, false
		}
		return KeyDown{
			Timestamp: e.Timestamp,
			Key:       int32(e.Keysym.Sym),
			Mod:       e.Keysym.Mod,
			Repeat:    e.Repeat != 0,
		}, true

	case *sdl.MultiGestureEvent:
		// SDL reports pinches as per-event distance deltas. Anything
		// below the threshold is finger jitter.
		if e.DDist > pinchThreshold {
			return Gesture{Timestamp: e.Timestamp, Kind: gesture.PinchOut}, true
		}
		if e.DDist < -pinchThreshold {
			return Gesture{Timestamp: e.Timestamp, Kind: gesture.PinchIn}, true
		}
		return nil, false
	}

	return nil, false
}
