package commands

import (
	"fmt"
	"strconv"
	"strings"

	"snowflake/internal/geometry"
)

// Triangles is a repeatable flag.Value holding triangles written as "x,y x,y x,y".
type Triangles []geometry.Triangle

func (t *Triangles) String() string {
	if t == nil {
		return ""
	}
	parts := make([]string, len(*t))
	for i, tri := range *t {
		parts[i] = FormatTriangle(tri)
	}
	return strings.Join(parts, "; ")
}

// Set parses one triangle and appends it.
func (t *Triangles) Set(s string) error {
	tri, err := ParseTriangle(s)
	if err != nil {
		return err
	}
	*t = append(*t, tri)
	return nil
}

// ParseTriangle parses "x,y x,y x,y".
func ParseTriangle(s string) (geometry.Triangle, error) {
	var tri geometry.Triangle
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return tri, fmt.Errorf("triangle %q: want 3 vertices, got %d", s, len(fields))
	}
	for i, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return tri, fmt.Errorf("triangle %q: vertex %q is not x,y", s, f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return tri, fmt.Errorf("triangle %q: %w", s, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return tri, fmt.Errorf("triangle %q: %w", s, err)
		}
		tri[i] = geometry.Pt(x, y)
	}
	return tri, nil
}

// FormatTriangle is the inverse of ParseTriangle.
func FormatTriangle(t geometry.Triangle) string {
	parts := make([]string, 3)
	for i, p := range t {
		parts[i] = strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
