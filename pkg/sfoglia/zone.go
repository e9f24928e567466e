package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/screen"
)

// Zone is a clickable hit-test region in logical coordinates. Panels
// register zones while drawing; the dispatcher tests them before falling
// back to generic click handling, so a panel can get button behavior
// without implementing any mouse logic itself.
//
// Zones are cleared at the start of every draw pass and rebuilt as a side
// effect of drawing, so their positions always match what is on screen.
type Zone struct {
	X, Y, W, H float64

	// Command, if not None, is injected for delivery on the next
	// dispatch pass when the zone is released.
	Command command.Command

	// OnRelease, if set, is called when the zone is released.
	OnRelease func()
}

// Contains reports whether p lies inside the zone.
func (z *Zone) Contains(p Point) bool {
	return p.X >= z.X && p.X < z.X+z.W && p.Y >= z.Y && p.Y < z.Y+z.H
}

func (z *Zone) release() {
	if z.OnRelease != nil {
		z.OnRelease()
	}
	if z.Command != command.None {
		command.Inject(z.Command)
	}
}

// ZoneFromPixels builds a zone from a rectangle in window pixel
// coordinates, converting to the logical space panels are hit-tested in.
// Use this when registering zones for shapes drawn with the SDL renderer.
func ZoneFromPixels(x, y, w, h int32) *Zone {
	zoom := float64(screen.Zoom())
	return &Zone{
		X: float64(screen.Left()) + float64(x)*100/zoom,
		Y: float64(screen.Top()) + float64(y)*100/zoom,
		W: float64(w) * 100 / zoom,
		H: float64(h) * 100 / zoom,
	}
}
