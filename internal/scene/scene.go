package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"snowflake/internal/geometry"
	"snowflake/internal/scene/shapes"
	"snowflake/internal/session"
)

const (
	guidelineLength = 20
	markerRadius    = 0.05
	cameraDistance  = 10
	// Instances are drawn just behind base triangles so the user's shapes stay on top.
	derivedDepth = -0.01
)

// Style holds the colours the scene draws with.
type Style struct {
	Fill      color.RGBA
	Guideline color.RGBA
	Marker    color.RGBA
	// Highlight fills the instances of the newest triangle. Zero means Fill.
	Highlight color.RGBA
}

// Scene holds an orthographic camera looking down -Z at the XY plane and the shapes projected
// from the session. Base shapes and their symmetry instances are separate collections.
type Scene struct {
	Camera            rl.Camera3D
	GuidelinesVisible bool

	style      Style
	guidelines []shapes.Segment
	base       []shapes.Shape
	derived    []shapes.Shape
	markers    []geometry.Point2D
	newest     uuid.UUID
}

// New returns a scene whose camera shows frustumSize units vertically.
func New(frustumSize float64, style Style) *Scene {
	s := &Scene{
		GuidelinesVisible: true,
		style:             style,
		guidelines:        shapes.Guidelines(guidelineLength),
	}
	s.Camera.Position = rl.NewVector3(0, 0, cameraDistance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Projection = rl.CameraOrthographic
	s.SetFrustumSize(frustumSize)
	return s
}

// SetFrustumSize sets the visible vertical extent. raylib derives the horizontal extent from
// the window aspect ratio, matching viewport.Viewport.
func (s *Scene) SetFrustumSize(size float64) {
	s.Camera.Fovy = float32(size)
}

// SetGuidelinesVisible sets whether the construction lines are drawn.
func (s *Scene) SetGuidelinesVisible(visible bool) {
	s.GuidelinesVisible = visible
}

// Sync replaces the drawn shapes with a fresh projection of the session.
func (s *Scene) Sync(sess *session.Session) {
	s.base, s.derived = shapes.FromSession(sess)
	s.newest = shapes.Newest(s.base)
}

// SetMarkers sets the preview dots for vertices of the triangle being collected.
func (s *Scene) SetMarkers(pts []geometry.Point2D) {
	s.markers = pts
}

// Counts returns the number of base and derived shapes currently drawn.
func (s *Scene) Counts() (base, derived int) {
	return len(s.base), len(s.derived)
}

// Draw renders the scene. Call between BeginDrawing and EndDrawing, before any 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GuidelinesVisible {
		s.drawGuidelines()
	}
	fill := rgba(s.style.Fill)
	highlight := fill
	if s.style.Highlight != (color.RGBA{}) {
		highlight = rgba(s.style.Highlight)
	}
	for _, sh := range s.derived {
		if sh.Owner != s.newest {
			drawShape(sh, derivedDepth, fill)
		}
	}
	for _, sh := range shapes.Owned(s.derived, s.newest) {
		drawShape(sh, derivedDepth, highlight)
	}
	for _, sh := range s.base {
		drawShape(sh, 0, fill)
	}
	marker := rgba(s.style.Marker)
	for _, p := range s.markers {
		rl.DrawSphere(rl.NewVector3(float32(p.X), float32(p.Y), 0), markerRadius, marker)
	}
	rl.EndMode3D()
}

func (s *Scene) drawGuidelines() {
	c := rgba(s.style.Guideline)
	var start, end rl.Vector3
	for _, seg := range s.guidelines {
		start.X, start.Y = seg.A.X, seg.A.Y
		end.X, end.Y = seg.B.X, seg.B.Y
		rl.DrawLine3D(start, end, c)
	}
}

// drawShape draws a triangle facing the camera whatever its winding; mirrored instances
// come out clockwise.
func drawShape(sh shapes.Shape, z float32, c rl.Color) {
	v := sh.CounterClockwise()
	rl.DrawTriangle3D(
		rl.NewVector3(v[0].X, v[0].Y, z),
		rl.NewVector3(v[1].X, v[1].Y, z),
		rl.NewVector3(v[2].X, v[2].Y, z),
		c,
	)
}

func rgba(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
