package sfoglia

// Point is a position in logical screen coordinates. The logical space is
// centered on the viewport, so (0, 0) is the middle of the screen.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
