// Package viewport maps between screen pixels and scene space for an orthographic camera
// looking down the z-axis at the origin.
package viewport

import "snowflake/internal/geometry"

// DefaultSize is the vertical extent of the visible scene, in scene units.
const DefaultSize = 10

// Frustum is the visible rectangle of scene space.
type Frustum struct {
	Left, Right, Top, Bottom float64
}

// Width returns Right-Left.
func (f Frustum) Width() float64 { return f.Right - f.Left }

// Height returns Top-Bottom.
func (f Frustum) Height() float64 { return f.Top - f.Bottom }

// Viewport tracks the window size and the frustum derived from it.
type Viewport struct {
	width, height int
	size          float64
	frustum       Frustum
}

// New returns a viewport for a window of width×height pixels showing size scene units vertically.
// A non-positive size falls back to DefaultSize.
func New(width, height int, size float64) *Viewport {
	if size <= 0 {
		size = DefaultSize
	}
	v := &Viewport{size: size}
	v.Resize(width, height)
	return v
}

// Resize recomputes the frustum for a new window size. The vertical extent is kept; the
// horizontal extent follows the aspect ratio.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width, v.height = width, height
	aspect := float64(width) / float64(height)
	v.frustum = Frustum{
		Left:   -v.size * aspect / 2,
		Right:  v.size * aspect / 2,
		Top:    v.size / 2,
		Bottom: -v.size / 2,
	}
}

// Frustum returns the current frustum.
func (v *Viewport) Frustum() Frustum { return v.frustum }

// Unproject maps a screen position (origin top-left, y down) to scene space (y up).
func (v *Viewport) Unproject(screenX, screenY float64) geometry.Point2D {
	ndcX := screenX/float64(v.width)*2 - 1
	ndcY := -(screenY/float64(v.height))*2 + 1
	f := v.frustum
	return geometry.Point2D{
		X: f.Left + (ndcX+1)/2*f.Width(),
		Y: f.Bottom + (ndcY+1)/2*f.Height(),
	}
}
