package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/event"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/screen"
)

const noFinger int64 = -1

// UI owns an ordered stack of panels and routes each input event to exactly
// one of them, topmost first. Panels may push or pop panels (including
// themselves) from inside their own event handlers: structural changes are
// buffered and applied between dispatch calls, so iteration over the live
// stack never observes them mid-walk.
//
// UI is single-threaded. Handle, StepAll and DrawAll are sequential phases
// driven once per frame by the host loop.
type UI struct {
	stack  []Panel
	toPush []Panel
	toPop  []Panel

	// Touch bookkeeping: which finger owns the active zone press, which
	// finger is emulating the mouse, and when the last tap landed.
	zoneFinger  int64
	panelFinger int64
	lastTap     uint32

	isDone  bool
	canSave bool
}

// New returns an empty stack controller.
func New() *UI {
	return &UI{zoneFinger: noFinger, panelFinger: noFinger}
}

// Handle delivers one input event. The event is offered to each panel from
// the top of the stack down until one of them handles it; if none do, this
// returns false. Deferred pushes and pops are applied before returning.
func (ui *UI) Handle(ev event.Event) bool {
	handled := false

	for i := len(ui.stack) - 1; i >= 0 && !handled; i-- {
		panel := ui.stack[i]

		// Panels that are about to be popped cannot handle any other events.
		if ui.popPending(panel) {
			continue
		}

		switch e := ev.(type) {
		case event.MouseMove:
			if e.Buttons&event.ButtonLeftMask != 0 {
				handled = panel.Drag(
					float64(e.DX)*100/float64(screen.Zoom()),
					float64(e.DY)*100/float64(screen.Zoom()))
			} else {
				handled = panel.Hover(
					screen.Left()+int(e.X)*100/screen.Zoom(),
					screen.Top()+int(e.Y)*100/screen.Zoom())
			}

		case event.MouseDown:
			x := screen.Left() + int(e.X)*100/screen.Zoom()
			y := screen.Top() + int(e.Y)*100/screen.Zoom()
			switch e.Button {
			case event.ButtonLeft:
				handled = panel.ZoneMouseDown(Pt(float64(x), float64(y)))
				if !handled {
					handled = panel.Click(x, y, int(e.Clicks))
				}
			case event.ButtonRight:
				handled = panel.RClick(x, y)
			}

		case event.MouseUp:
			x := screen.Left() + int(e.X)*100/screen.Zoom()
			y := screen.Top() + int(e.Y)*100/screen.Zoom()
			handled = panel.ZoneMouseUp(Pt(float64(x), float64(y)))
			if !handled {
				handled = panel.Release(x, y)
			}

		case event.Wheel:
			handled = panel.Scroll(int(e.DX), int(e.DY))

		case event.FingerDown:
			// Finger coordinates are 0 to 1; normalize to logical
			// coordinates centered on the viewport.
			x := int((float64(e.X) - 0.5) * float64(screen.Width()))
			y := int((float64(e.Y) - 0.5) * float64(screen.Height()))

			// Order:
			//   1. Zones (these will be buttons).
			//   2. Finger down (game controls). Trigger a hover as
			//      well, as some UIs use it to determine where a
			//      drag begins from.
			//   3. Click fallback with double-tap detection.
			if handled = panel.ZoneMouseDown(Pt(float64(x), float64(y))); handled {
				ui.zoneFinger = e.ID
			}
			if !handled {
				panel.Hover(x, y)
				handled = panel.FingerDown(x, y, e.ID)
			}
			if !handled {
				clicks := 2
				if e.Timestamp-ui.lastTap > constants.DoubleTapMillis {
					clicks = 1
				}
				if handled = panel.Click(x, y, clicks); handled {
					ui.panelFinger = e.ID
				}
				ui.lastTap = e.Timestamp
			}

		case event.FingerMove:
			x := int((float64(e.X) - 0.5) * float64(screen.Width()))
			y := int((float64(e.Y) - 0.5) * float64(screen.Height()))
			dx := int(float64(e.DX) * float64(screen.Width()))
			dy := int(float64(e.DY) * float64(screen.Height()))

			// Finger move first (game controls), then drag (UI events)
			// if this finger owns the mouse emulation.
			handled = panel.FingerMove(x, y, e.ID)
			if !handled && ui.panelFinger == e.ID {
				handled = panel.Drag(float64(dx), float64(dy))
			}

		case event.FingerUp:
			x := int((float64(e.X) - 0.5) * float64(screen.Width()))
			y := int((float64(e.Y) - 0.5) * float64(screen.Height()))

			// Ownership state resets on the up event no matter what
			// the panel does with it.
			if ui.zoneFinger == e.ID {
				handled = panel.ZoneMouseUp(Pt(float64(x), float64(y)))
				ui.zoneFinger = noFinger
			}
			if !handled {
				handled = panel.FingerUp(x, y, e.ID)
			}
			if !handled && ui.panelFinger == e.ID {
				handled = panel.Release(x, y)
				ui.panelFinger = noFinger
			}

		case event.KeyDown:
			cmd := command.FromKey(e.Key)
			handled = panel.KeyDown(e.Key, e.Mod, cmd, !e.Repeat)

		case event.Command:
			if e.Pressed {
				handled = panel.KeyDown(0, 0, e.Command, true)
			}

		case event.Gesture:
			// If the panel doesn't want the gesture, convert it to a
			// command and try again. The command is also queued so a
			// later dispatch pass sees it.
			if handled = panel.Gesture(e.Kind); !handled {
				cmd := command.FromGesture(e.Kind)
				command.Inject(cmd)
				handled = panel.KeyDown(0, 0, cmd, true)
			}
		}

		// If this panel does not want anything below it to receive
		// events, do not let this event trickle further down the stack.
		if panel.TrapAllEvents() {
			break
		}
	}

	ui.pushOrPop()

	return handled
}

// StepAll advances every panel's time-based state, bottom to top. Queued
// pushes and pops are applied first, so panels added during the previous
// event batch get stepped.
func (ui *UI) StepAll() {
	ui.pushOrPop()

	for _, panel := range ui.stack {
		panel.Step()
	}
}

// DrawAll renders the visible part of the stack. Every panel's zones are
// cleared first; new ones are registered in the course of drawing. Panels
// below the topmost full-screen panel are skipped entirely, and the rest
// draw bottom to top so later panels layer on top.
func (ui *UI) DrawAll() {
	for _, panel := range ui.stack {
		panel.ClearZones()
	}

	first := 0
	for i := len(ui.stack) - 1; i >= 0; i-- {
		if ui.stack[i].IsFullScreen() {
			first = i
			break
		}
	}

	for _, panel := range ui.stack[first:] {
		panel.Draw()
	}
}

// Push schedules a panel for addition to the top of the stack. The panel
// receives its controller back-reference immediately, so it can pop itself
// even before the push is applied. Nil panels are dropped at apply time.
func (ui *UI) Push(panel Panel) {
	if panel != nil {
		panel.SetUI(ui)
	}
	ui.toPush = append(ui.toPush, panel)
}

// Pop schedules a panel for removal from the stack. The removal happens
// between dispatch calls, so it is safe for a panel to pop itself from
// inside its own event handler. Popping a panel that is not in the stack
// is a no-op.
func (ui *UI) Pop(panel Panel) {
	ui.toPop = append(ui.toPop, panel)
}

// PopThrough schedules the given panel and every panel above it for
// removal. If the panel is not in the stack, the whole stack is scheduled.
func (ui *UI) PopThrough(panel Panel) {
	for i := len(ui.stack) - 1; i >= 0; i-- {
		ui.toPop = append(ui.toPop, ui.stack[i])
		if ui.stack[i] == panel {
			break
		}
	}
}

// IsTop reports whether the panel is on top of the applied stack, i.e. is
// the active one this frame. Panels pushed this frame are not considered.
func (ui *UI) IsTop(panel Panel) bool {
	return len(ui.stack) > 0 && ui.stack[len(ui.stack)-1] == panel
}

// Top returns the absolute top panel, including panels whose push has not
// been applied yet. Returns nil for an empty controller.
func (ui *UI) Top() Panel {
	if len(ui.toPush) > 0 {
		return ui.toPush[len(ui.toPush)-1]
	}
	if len(ui.stack) > 0 {
		return ui.stack[len(ui.stack)-1]
	}
	return nil
}

// Root returns the bottom panel, falling back to the oldest pending push
// when the stack is empty. Returns nil for an empty controller.
func (ui *UI) Root() Panel {
	if len(ui.stack) > 0 {
		return ui.stack[0]
	}
	if len(ui.toPush) > 0 {
		return ui.toPush[0]
	}
	return nil
}

// Reset drops every panel and queued mutation, clears the touch
// bookkeeping, and re-arms the done flag. Used when restarting the whole
// UI session, e.g. returning to a main menu.
func (ui *UI) Reset() {
	ui.stack = nil
	ui.toPush = nil
	ui.toPop = nil
	ui.zoneFinger = noFinger
	ui.panelFinger = noFinger
	ui.lastTap = 0
	ui.isDone = false
}

// Quit tells the host loop it is time to stop.
func (ui *UI) Quit() {
	ui.isDone = true
}

// IsDone reports whether Quit has been called since the last Reset.
func (ui *UI) IsDone() bool {
	return ui.isDone
}

// IsEmpty reports whether there are no panels at all, pending pushes
// included. The host loop typically treats this as a termination signal.
func (ui *UI) IsEmpty() bool {
	return len(ui.stack) == 0 && len(ui.toPush) == 0
}

// SetCanSave records whether a higher layer considers persistence safe.
// Pass-through state; nothing here depends on it.
func (ui *UI) SetCanSave(canSave bool) {
	ui.canSave = canSave
}

// CanSave reports the value last given to SetCanSave.
func (ui *UI) CanSave() bool {
	return ui.canSave
}

func (ui *UI) popPending(panel Panel) bool {
	for _, p := range ui.toPop {
		if p == panel {
			return true
		}
	}
	return false
}

// pushOrPop applies the queued stack mutations: pushes append in request
// order, then each pop removes at most one matching panel, searched from
// the top. The stack never changes outside this function.
func (ui *UI) pushOrPop() {
	for _, panel := range ui.toPush {
		if panel != nil {
			ui.stack = append(ui.stack, panel)
		}
	}
	ui.toPush = ui.toPush[:0]

	// Popped panels are removed but not destroyed; whoever else holds
	// them manages their lifetime.
	for _, target := range ui.toPop {
		for i := len(ui.stack) - 1; i >= 0; i-- {
			if ui.stack[i] == target {
				ui.stack = append(ui.stack[:i], ui.stack[i+1:]...)
				break
			}
		}
	}
	ui.toPop = ui.toPop[:0]
}
