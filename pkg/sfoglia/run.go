package sfoglia

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/event"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/screen"
)

// PumpEvents drains the SDL event queue into the stack, then delivers any
// commands injected since the previous pass (gesture fallbacks, hardware
// buttons, zone commands) as key-down events.
func PumpEvents(ui *UI) {
	for raw := sdl.PollEvent(); raw != nil; raw = sdl.PollEvent() {
		if _, ok := raw.(*sdl.QuitEvent); ok {
			ui.Quit()
			continue
		}
		if ev, ok := event.FromSDL(raw); ok {
			ui.Handle(ev)
		}
	}

	now := uint32(sdl.GetTicks64())
	for _, cmd := range command.DrainInjected() {
		ui.Handle(event.Command{Timestamp: now, Command: cmd, Pressed: true})
	}
}

// RenderFrame clears the screen, draws the visible panels and presents.
func RenderFrame(ui *UI) {
	window := internal.GetWindow()
	renderer := window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, theme.BackgroundColor.A)
	renderer.Clear()

	if showBackground {
		window.RenderBackground()
	}

	ui.DrawAll()
	window.Present()
}

// Run drives the stack until Quit is called or the last panel is popped.
// Convenience host loop; applications needing to interleave their own
// per-frame work should run the three phases themselves in this order.
func Run(ui *UI) {
	for !ui.IsDone() && !ui.IsEmpty() {
		PumpEvents(ui)
		ui.StepAll()
		RenderFrame(ui)
	}
}

// GetMouse returns the current mouse position in logical coordinates.
func GetMouse() Point {
	x, y, _ := sdl.GetMouseState()
	return Pt(
		float64(screen.Left()+int(x)*100/screen.Zoom()),
		float64(screen.Top()+int(y)*100/screen.Zoom()),
	)
}
