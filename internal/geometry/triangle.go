package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Triangle is an ordered set of three vertices.
type Triangle [3]Point2D

// Tri builds a triangle from three points.
func Tri(a, b, c Point2D) Triangle {
	return Triangle{a, b, c}
}

// Rotate returns the triangle rotated by angle radians about the origin.
func (t Triangle) Rotate(angle float64) Triangle {
	r := Rotate(t[:], angle)
	return Triangle{r[0], r[1], r[2]}
}

// Mirror returns the triangle reflected across the x-axis.
func (t Triangle) Mirror() Triangle {
	return Triangle{t[0].Mirror(), t[1].Mirror(), t[2].Mirror()}
}

// Area returns the signed area. Positive for counter-clockwise winding.
func (t Triangle) Area() float64 {
	return planar.Area(t.Ring())
}

// Ring returns the triangle as a closed orb ring.
func (t Triangle) Ring() orb.Ring {
	return orb.Ring{
		{t[0].X, t[0].Y},
		{t[1].X, t[1].Y},
		{t[2].X, t[2].Y},
		{t[0].X, t[0].Y},
	}
}

// EdgeLengths returns |ab|, |bc| and |ca|.
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t[0].Distance(t[1]),
		t[1].Distance(t[2]),
		t[2].Distance(t[0]),
	}
}

// Approx reports whether every vertex of t is within eps of the matching vertex of u.
func (t Triangle) Approx(u Triangle, eps float64) bool {
	for i := range t {
		if !t[i].Approx(u[i], eps) {
			return false
		}
	}
	return true
}
