package event_test

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/event"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

func TestFromSDLMouseMotion(t *testing.T) {
	raw := &sdl.MouseMotionEvent{
		Type:      sdl.MOUSEMOTION,
		Timestamp: 42,
		X:         10, Y: 20,
		XRel: 3, YRel: -4,
		State: event.ButtonLeftMask,
	}
	ev, ok := event.FromSDL(raw)
	if !ok {
		t.Fatal("mouse motion should translate")
	}
	mm, ok := ev.(event.MouseMove)
	if !ok {
		t.Fatalf("expected MouseMove, got %T", ev)
	}
	if mm.X != 10 || mm.Y != 20 || mm.DX != 3 || mm.DY != -4 {
		t.Errorf("coordinates not carried: %+v", mm)
	}
	if mm.Buttons&event.ButtonLeftMask == 0 {
		t.Error("left button state lost")
	}
}

func TestFromSDLMouseButtons(t *testing.T) {
	down := &sdl.MouseButtonEvent{
		Type:      sdl.MOUSEBUTTONDOWN,
		Timestamp: 1,
		X:         5, Y: 6,
		Button: sdl.BUTTON_RIGHT,
		Clicks: 2,
	}
	ev, ok := event.FromSDL(down)
	if !ok {
		t.Fatal("button down should translate")
	}
	md, ok := ev.(event.MouseDown)
	if !ok {
		t.Fatalf("expected MouseDown, got %T", ev)
	}
	if md.Button != event.ButtonRight || md.Clicks != 2 {
		t.Errorf("button fields not carried: %+v", md)
	}

	up := &sdl.MouseButtonEvent{
		Type:      sdl.MOUSEBUTTONUP,
		Timestamp: 2,
		X:         5, Y: 6,
		Button: sdl.BUTTON_LEFT,
	}
	ev, ok = event.FromSDL(up)
	if !ok {
		t.Fatal("button up should translate")
	}
	if _, ok := ev.(event.MouseUp); !ok {
		t.Fatalf("expected MouseUp, got %T", ev)
	}
}

func TestFromSDLWheel(t *testing.T) {
	ev, ok := event.FromSDL(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 1, Y: -2})
	if !ok {
		t.Fatal("wheel should translate")
	}
	w, ok := ev.(event.Wheel)
	if !ok {
		t.Fatalf("expected Wheel, got %T", ev)
	}
	if w.DX != 1 || w.DY != -2 {
		t.Errorf("wheel deltas not carried: %+v", w)
	}
}

func TestFromSDLFingers(t *testing.T) {
	cases := []struct {
		typ  uint32
		want string
	}{
		{sdl.FINGERDOWN, "down"},
		{sdl.FINGERMOTION, "move"},
		{sdl.FINGERUP, "up"},
	}
	for _, tc := range cases {
		raw := &sdl.TouchFingerEvent{
			Type:      tc.typ,
			Timestamp: 9,
			X:         0.25, Y: 0.75,
			DX: 0.1, DY: -0.1,
			FingerID: 7,
		}
		ev, ok := event.FromSDL(raw)
		if !ok {
			t.Fatalf("finger %s should translate", tc.want)
		}
		switch tc.want {
		case "down":
			fd, ok := ev.(event.FingerDown)
			if !ok {
				t.Fatalf("expected FingerDown, got %T", ev)
			}
			if fd.ID != 7 || fd.X != 0.25 {
				t.Errorf("finger down fields not carried: %+v", fd)
			}
		case "move":
			fm, ok := ev.(event.FingerMove)
			if !ok {
				t.Fatalf("expected FingerMove, got %T", ev)
			}
			if fm.DX != 0.1 || fm.DY != -0.1 {
				t.Errorf("finger move deltas not carried: %+v", fm)
			}
		case "up":
			if _, ok := ev.(event.FingerUp); !ok {
				t.Fatalf("expected FingerUp, got %T", ev)
			}
		}
	}
}

func TestFromSDLKeyboard(t *testing.T) {
	down := &sdl.KeyboardEvent{
		Type:      sdl.KEYDOWN,
		Timestamp: 3,
		Repeat:    1,
		Keysym:    sdl.Keysym{Sym: sdl.K_RETURN, Mod: sdl.KMOD_LSHIFT},
	}
	ev, ok := event.FromSDL(down)
	if !ok {
		t.Fatal("key down should translate")
	}
	kd, ok := ev.(event.KeyDown)
	if !ok {
		t.Fatalf("expected KeyDown, got %T", ev)
	}
	if kd.Key != int32(sdl.K_RETURN) || kd.Mod != sdl.KMOD_LSHIFT || !kd.Repeat {
		t.Errorf("key fields not carried: %+v", kd)
	}

	up := &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_RETURN}}
	if _, ok := event.FromSDL(up); ok {
		t.Error("key up must not translate")
	}
}

func TestFromSDLPinch(t *testing.T) {
	ev, ok := event.FromSDL(&sdl.MultiGestureEvent{Type: sdl.MULTIGESTURE, DDist: 0.05})
	if !ok {
		t.Fatal("outward pinch should translate")
	}
	if g := ev.(event.Gesture); g.Kind != gesture.PinchOut {
		t.Errorf("expected PinchOut, got %v", g.Kind)
	}

	ev, ok = event.FromSDL(&sdl.MultiGestureEvent{Type: sdl.MULTIGESTURE, DDist: -0.05})
	if !ok {
		t.Fatal("inward pinch should translate")
	}
	if g := ev.(event.Gesture); g.Kind != gesture.PinchIn {
		t.Errorf("expected PinchIn, got %v", g.Kind)
	}

	if _, ok := event.FromSDL(&sdl.MultiGestureEvent{Type: sdl.MULTIGESTURE, DDist: 0.01}); ok {
		t.Error("jitter below threshold must be dropped")
	}
}

func TestFromSDLIgnoredEvents(t *testing.T) {
	if _, ok := event.FromSDL(&sdl.QuitEvent{Type: sdl.QUIT}); ok {
		t.Error("quit events are not dispatcher events")
	}
	if _, ok := event.FromSDL(&sdl.WindowEvent{Type: sdl.WINDOWEVENT}); ok {
		t.Error("window events are not dispatcher events")
	}
}
