package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// Panel is a stackable UI unit. The stack controller routes exactly one
// input event per dispatch call to the topmost panel willing to take it;
// each input method returns whether the panel consumed the event.
//
// Most panels should embed BasePanel, which provides no-op defaults for
// everything here plus zone bookkeeping, and override only the methods
// they care about.
type Panel interface {
	// Drag is pointer motion with the primary button held, in logical units.
	Drag(dx, dy float64) bool
	// Hover is pointer motion with no button held.
	Hover(x, y int) bool
	// ZoneMouseDown is tried before Click for primary button presses.
	ZoneMouseDown(p Point) bool
	// Click is a primary button press that no zone claimed. clicks is 1
	// for a single click, 2 for a double click.
	Click(x, y, clicks int) bool
	// RClick is a secondary button press.
	RClick(x, y int) bool
	// ZoneMouseUp is tried before Release for primary button releases.
	ZoneMouseUp(p Point) bool
	// Release is a primary button release that no zone claimed.
	Release(x, y int) bool
	// Scroll is wheel input with raw deltas.
	Scroll(dx, dy int) bool

	FingerDown(x, y int, id int64) bool
	FingerMove(x, y int, id int64) bool
	FingerUp(x, y int, id int64) bool

	// KeyDown delivers a key press together with the logical command
	// bound to it. firstPress is false for auto-repeat. Injected
	// commands arrive with a zero key code and mod mask.
	KeyDown(key int32, mod uint16, cmd command.Command, firstPress bool) bool

	// Gesture offers a recognized touch gesture. If the panel declines,
	// the dispatcher converts the gesture to its bound command and
	// retries as a key press.
	Gesture(kind gesture.Kind) bool

	// Step advances time-based state. Called once per frame, before
	// drawing, with no event delivery in between.
	Step()

	// Draw renders the panel and rebuilds its zones.
	Draw()

	// ClearZones discards the zones registered during the previous draw.
	ClearZones()

	// IsFullScreen reports whether the panel covers the whole screen.
	// Panels below the topmost full-screen panel are not drawn.
	IsFullScreen() bool

	// TrapAllEvents reports whether panels below this one are allowed to
	// receive events at all once the dispatch walk reaches it.
	TrapAllEvents() bool

	// SetUI hands the panel a back-reference to its stack controller so
	// it can pop itself or push siblings. Called at push time, before
	// the panel can receive any dispatch.
	SetUI(ui *UI)
}

// BasePanel is the embeddable default Panel implementation. The zero value
// traps events (modal behavior) and is not full-screen, matching what most
// overlay panels want.
type BasePanel struct {
	ui          *UI
	zones       []*Zone
	fullScreen  bool
	passThrough bool
}

// SetUI stores the controller back-reference. The relation is lookup-only;
// the controller's stack is what keeps the panel alive.
func (p *BasePanel) SetUI(ui *UI) { p.ui = ui }

// UI returns the stack controller this panel was pushed onto, or nil if it
// has never been pushed.
func (p *BasePanel) UI() *UI { return p.ui }

// SetFullScreen marks the panel as fully occluding everything below it.
func (p *BasePanel) SetFullScreen(fullScreen bool) { p.fullScreen = fullScreen }

// SetPassThrough allows events the panel declines to continue down the
// stack. By default a panel traps everything below it.
func (p *BasePanel) SetPassThrough(passThrough bool) { p.passThrough = passThrough }

// AddZone registers a clickable zone for the current frame. Call during
// Draw; zones are cleared before every draw pass.
func (p *BasePanel) AddZone(zone *Zone) {
	if zone != nil {
		p.zones = append(p.zones, zone)
	}
}

// ClearZones discards all registered zones.
func (p *BasePanel) ClearZones() { p.zones = p.zones[:0] }

// ZoneMouseDown claims the press if any zone contains the point. Nothing
// fires yet; zones act on release.
func (p *BasePanel) ZoneMouseDown(point Point) bool {
	for _, zone := range p.zones {
		if zone.Contains(point) {
			return true
		}
	}
	return false
}

// ZoneMouseUp fires the topmost zone containing the release point. Zones
// registered later sit on top, matching draw order.
func (p *BasePanel) ZoneMouseUp(point Point) bool {
	for i := len(p.zones) - 1; i >= 0; i-- {
		if p.zones[i].Contains(point) {
			p.zones[i].release()
			return true
		}
	}
	return false
}

func (p *BasePanel) Drag(dx, dy float64) bool                                      { return false }
func (p *BasePanel) Hover(x, y int) bool                                           { return false }
func (p *BasePanel) Click(x, y, clicks int) bool                                   { return false }
func (p *BasePanel) RClick(x, y int) bool                                          { return false }
func (p *BasePanel) Release(x, y int) bool                                         { return false }
func (p *BasePanel) Scroll(dx, dy int) bool                                        { return false }
func (p *BasePanel) FingerDown(x, y int, id int64) bool                            { return false }
func (p *BasePanel) FingerMove(x, y int, id int64) bool                            { return false }
func (p *BasePanel) FingerUp(x, y int, id int64) bool                              { return false }
func (p *BasePanel) KeyDown(key int32, mod uint16, cmd command.Command, firstPress bool) bool {
	return false
}
func (p *BasePanel) Gesture(kind gesture.Kind) bool { return false }
func (p *BasePanel) Step()                          {}
func (p *BasePanel) Draw()                          {}
func (p *BasePanel) IsFullScreen() bool             { return p.fullScreen }
func (p *BasePanel) TrapAllEvents() bool            { return !p.passThrough }
