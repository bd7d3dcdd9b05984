// Package interaction turns pointer clicks into base triangles.
package interaction

import (
	"snowflake/internal/geometry"
	"snowflake/internal/logger"
)

// Unprojector maps screen coordinates to scene space. Supplied by the presentation layer.
type Unprojector interface {
	Unproject(screenX, screenY float64) geometry.Point2D
}

// TriangleSink receives completed triangles.
type TriangleSink interface {
	Add(t geometry.Triangle) error
}

// SinkFunc adapts a function to TriangleSink.
type SinkFunc func(t geometry.Triangle) error

func (f SinkFunc) Add(t geometry.Triangle) error { return f(t) }

// Controller collects clicks. It is always in state Collecting(n) with n = len(Pending()) in 0..2.
type Controller struct {
	proj    Unprojector
	sink    TriangleSink
	log     *logger.Logger
	pending []geometry.Point2D
}

// New returns a controller in state Collecting(0).
func New(proj Unprojector, sink TriangleSink, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{proj: proj, sink: sink, log: log, pending: make([]geometry.Point2D, 0, 3)}
}

// Collected returns n, the number of vertices collected for the next triangle.
func (c *Controller) Collected() int {
	return len(c.pending)
}

// Pending returns the collected vertices, used as preview markers.
func (c *Controller) Pending() []geometry.Point2D {
	out := make([]geometry.Point2D, len(c.pending))
	copy(out, c.pending)
	return out
}

// Click records one vertex at the given screen position. On the third vertex the triangle is
// sent to the sink and the controller resets to Collecting(0), whatever the sink returns.
func (c *Controller) Click(screenX, screenY float64) (geometry.Triangle, bool, error) {
	p := c.proj.Unproject(screenX, screenY)
	c.log.Debug("vertex", "x", p.X, "y", p.Y, "n", len(c.pending)+1)
	c.pending = append(c.pending, p)
	if len(c.pending) < 3 {
		return geometry.Triangle{}, false, nil
	}
	t := geometry.Tri(c.pending[0], c.pending[1], c.pending[2])
	c.pending = c.pending[:0]
	if err := c.sink.Add(t); err != nil {
		return t, false, err
	}
	return t, true, nil
}

// Cancel drops any pending vertices.
func (c *Controller) Cancel() {
	if len(c.pending) > 0 {
		c.log.Debug("pending vertices dropped", "n", len(c.pending))
	}
	c.pending = c.pending[:0]
}
