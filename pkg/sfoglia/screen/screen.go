// Package screen tracks the logical viewport used to convert device pixel
// coordinates into the UI coordinate space. The logical space is centered on
// the viewport: (0, 0) is the middle of the screen, Left() and Top() are
// negative. Zoom is expressed in percent, where 100 means one logical unit
// per device pixel.
//
// Like the window and theme in this framework, the viewport is a
// package-level singleton: there is exactly one screen per process and the
// host loop configures it once at startup (and again on resize).
package screen

var (
	rawWidth  = 0
	rawHeight = 0
	zoom      = 100
)

// SetRaw sets the viewport size in device pixels.
func SetRaw(width, height int) {
	rawWidth = width
	rawHeight = height
}

// SetZoom sets the zoom level in percent. Values below 1 are ignored.
func SetZoom(percent int) {
	if percent < 1 {
		return
	}
	zoom = percent
}

// Zoom returns the current zoom level in percent.
func Zoom() int {
	return zoom
}

// Width returns the logical viewport width.
func Width() int {
	return rawWidth * 100 / zoom
}

// Height returns the logical viewport height.
func Height() int {
	return rawHeight * 100 / zoom
}

// Left returns the logical X coordinate of the viewport's left edge.
func Left() int {
	return -Width() / 2
}

// Top returns the logical Y coordinate of the viewport's top edge.
func Top() int {
	return -Height() / 2
}
