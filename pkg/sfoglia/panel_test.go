package sfoglia_test

import (
	"testing"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/command"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/screen"
)

type zonePanel struct {
	sfoglia.BasePanel
}

func TestZoneClaimAndRelease(t *testing.T) {
	p := &zonePanel{}

	fired := 0
	p.AddZone(&sfoglia.Zone{X: -50, Y: -50, W: 100, H: 100, OnRelease: func() { fired++ }})

	if !p.ZoneMouseDown(sfoglia.Pt(0, 0)) {
		t.Fatal("press inside the zone should be claimed")
	}
	if fired != 0 {
		t.Fatal("zones must not fire on press")
	}

	if p.ZoneMouseDown(sfoglia.Pt(200, 0)) {
		t.Error("press outside every zone should not be claimed")
	}

	if !p.ZoneMouseUp(sfoglia.Pt(0, 0)) {
		t.Fatal("release inside the zone should be claimed")
	}
	if fired != 1 {
		t.Errorf("zone fired %d times, want 1", fired)
	}

	if p.ZoneMouseUp(sfoglia.Pt(200, 0)) {
		t.Error("release outside every zone should fall through")
	}
}

func TestTopmostZoneWins(t *testing.T) {
	p := &zonePanel{}

	var hit string
	p.AddZone(&sfoglia.Zone{X: 0, Y: 0, W: 100, H: 100, OnRelease: func() { hit = "below" }})
	p.AddZone(&sfoglia.Zone{X: 0, Y: 0, W: 100, H: 100, OnRelease: func() { hit = "above" }})

	p.ZoneMouseUp(sfoglia.Pt(10, 10))
	if hit != "above" {
		t.Errorf("zone %q fired, want the one registered last", hit)
	}
}

func TestZoneCommandInjection(t *testing.T) {
	command.DrainInjected()

	p := &zonePanel{}
	p.AddZone(&sfoglia.Zone{X: 0, Y: 0, W: 10, H: 10, Command: command.Confirm})
	p.ZoneMouseUp(sfoglia.Pt(5, 5))

	queued := command.DrainInjected()
	if len(queued) != 1 || queued[0] != command.Confirm {
		t.Errorf("zone release should inject its command, got %v", queued)
	}
}

func TestClearZones(t *testing.T) {
	p := &zonePanel{}
	p.AddZone(&sfoglia.Zone{X: 0, Y: 0, W: 10, H: 10})
	p.ClearZones()

	if p.ZoneMouseDown(sfoglia.Pt(5, 5)) {
		t.Error("cleared zones should not claim presses")
	}
}

func TestZoneFromPixels(t *testing.T) {
	screen.SetRaw(1000, 600)
	screen.SetZoom(100)

	z := sfoglia.ZoneFromPixels(500, 300, 100, 50)
	if z.X != 0 || z.Y != 0 {
		t.Errorf("window center should map to logical origin, got (%v, %v)", z.X, z.Y)
	}
	if z.W != 100 || z.H != 50 {
		t.Errorf("size changed at zoom 100: (%v, %v)", z.W, z.H)
	}

	screen.SetZoom(200)
	z = sfoglia.ZoneFromPixels(0, 0, 100, 50)
	if z.W != 50 || z.H != 25 {
		t.Errorf("zoom 200 should halve logical size, got (%v, %v)", z.W, z.H)
	}
	screen.SetZoom(100)
}

func TestBasePanelDefaults(t *testing.T) {
	p := &zonePanel{}

	if !p.TrapAllEvents() {
		t.Error("panels trap events by default")
	}
	if p.IsFullScreen() {
		t.Error("panels are not full-screen by default")
	}

	p.SetPassThrough(true)
	if p.TrapAllEvents() {
		t.Error("SetPassThrough should disable trapping")
	}

	p.SetFullScreen(true)
	if !p.IsFullScreen() {
		t.Error("SetFullScreen should mark the panel full-screen")
	}
}
