package geometry

import "math"

// Point2D is a point in scene space.
type Point2D struct {
	X, Y float64
}

// Pt is a convenience constructor for Point2D.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Rotate returns the point rotated by angle radians about the origin.
func (p Point2D) Rotate(angle float64) Point2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point2D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Mirror returns the point reflected across the x-axis.
func (p Point2D) Mirror() Point2D {
	return Point2D{X: p.X, Y: -p.Y}
}

// Approx reports whether p and q differ by at most eps on each axis.
func (p Point2D) Approx(q Point2D, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Distance returns the Euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rotate applies the 2D rotation matrix to each point in order. The input is not modified.
func Rotate(points []Point2D, angle float64) []Point2D {
	out := make([]Point2D, len(points))
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	for i, p := range points {
		out[i] = Point2D{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Mirror negates the y-coordinate of each point, preserving x and order.
func Mirror(points []Point2D) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[i] = p.Mirror()
	}
	return out
}
