package grid

// Point is a 2D pixel coordinate or vector, used for scroll positions and
// hit-test coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
