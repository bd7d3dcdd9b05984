// Package shapes projects a session into the flat lists the scene draws. Base triangles and
// their symmetry instances live in separate slices; every shape carries the id of the base
// triangle it came from.
package shapes

import (
	"github.com/chewxy/math32"
	"github.com/google/uuid"

	"snowflake/internal/session"
	"snowflake/internal/symmetry"
)

// Vertex is a scene-space vertex in the renderer's float32 precision. Z is always 0.
type Vertex struct {
	X, Y float32
}

// Shape is one drawable triangle. Owner is the id of the base triangle it was built from.
type Shape struct {
	Owner    uuid.UUID
	Vertices [3]Vertex
}

// Segment is a guideline from A to B.
type Segment struct {
	A, B Vertex
}

// GuidelineRays is the number of rays drawn from the origin, one every 30°.
const GuidelineRays = 12

// Build returns the base and derived shapes for the session's current state.
func Build(entries []session.Entry, instances []symmetry.Instance) (base, derived []Shape) {
	base = make([]Shape, 0, len(entries))
	derived = make([]Shape, 0, len(instances))
	for i, e := range entries {
		s := Shape{Owner: e.ID}
		for j, p := range e.Triangle {
			s.Vertices[j] = Vertex{X: float32(p.X), Y: float32(p.Y)}
		}
		base = append(base, s)

		lo := i * symmetry.InstancesPerTriangle
		hi := lo + symmetry.InstancesPerTriangle
		if hi > len(instances) {
			continue
		}
		for _, in := range instances[lo:hi] {
			d := Shape{Owner: e.ID}
			for j, p := range in.Triangle {
				d.Vertices[j] = Vertex{X: float32(p.X), Y: float32(p.Y)}
			}
			derived = append(derived, d)
		}
	}
	return base, derived
}

// FromSession is Build over the session's entries and instances.
func FromSession(s *session.Session) (base, derived []Shape) {
	return Build(s.Entries(), s.Instances())
}

// Newest returns the owner of the last base shape, or uuid.Nil when there is none.
func Newest(base []Shape) uuid.UUID {
	if len(base) == 0 {
		return uuid.Nil
	}
	return base[len(base)-1].Owner
}

// Owned returns the shapes tagged with owner, in order.
func Owned(all []Shape, owner uuid.UUID) []Shape {
	var out []Shape
	for _, s := range all {
		if s.Owner == owner {
			out = append(out, s)
		}
	}
	return out
}

// Guidelines returns the construction lines: GuidelineRays rays from the origin of the given
// length, then the full horizontal and vertical axes.
func Guidelines(length float32) []Segment {
	out := make([]Segment, 0, GuidelineRays+2)
	for i := 0; i < GuidelineRays; i++ {
		angle := float32(i) * math32.Pi / 6
		out = append(out, Segment{
			B: Vertex{X: math32.Cos(angle) * length, Y: math32.Sin(angle) * length},
		})
	}
	out = append(out,
		Segment{A: Vertex{X: -length}, B: Vertex{X: length}},
		Segment{A: Vertex{Y: -length}, B: Vertex{Y: length}},
	)
	return out
}

// Winding returns the signed double area of the shape; positive when counter-clockwise.
func (s Shape) Winding() float32 {
	a, b, c := s.Vertices[0], s.Vertices[1], s.Vertices[2]
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// CounterClockwise returns the vertices ordered counter-clockwise, which is the front face
// for raylib's immediate-mode triangles.
func (s Shape) CounterClockwise() [3]Vertex {
	if s.Winding() < 0 {
		return [3]Vertex{s.Vertices[0], s.Vertices[2], s.Vertices[1]}
	}
	return s.Vertices
}
