// Package export writes the snowflake pattern to files: an SVG document for cutting and
// printing, and a PNG preview.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"

	"snowflake/internal/geometry"
	"snowflake/internal/symmetry"
)

// DefaultFilename is the name of the exported vector file.
const DefaultFilename = "snowflake.svg"

// The document always shows [-ViewExtent, ViewExtent]² of scene space.
const ViewExtent = 4

const (
	fillAttr   = `fill="white"`
	strokeAttr = `stroke="black"`
)

// View is the scene rectangle covered by the exported document.
var View = orb.Bound{
	Min: orb.Point{-ViewExtent, -ViewExtent},
	Max: orb.Point{ViewExtent, ViewExtent},
}

// SVG writes every symmetry instance of every base triangle as a closed path, base triangles in
// order and the 12 instances of each in generation order. The output depends only on triangles.
func SVG(w io.Writer, triangles []geometry.Triangle) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startpercent(100, 100, fmt.Sprintf(`viewBox="%d %d %d %d"`,
		-ViewExtent, -ViewExtent, 2*ViewExtent, 2*ViewExtent))
	for _, in := range symmetry.GenerateAll(triangles) {
		canvas.Path(PathData(in.Triangle), fillAttr, strokeAttr)
	}
	canvas.End()
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// SVGString returns the document SVG would write.
func SVGString(triangles []geometry.Triangle) string {
	var sb strings.Builder
	_ = SVG(&sb, triangles)
	return sb.String()
}

// WriteSVGFile writes the document to dir/DefaultFilename and returns the path.
func WriteSVGFile(dir string, triangles []geometry.Triangle) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, DefaultFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := SVG(f, triangles); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}

// PathData returns the closed path "M x0 y0 L x1 y1 L x2 y2 Z".
func PathData(t geometry.Triangle) string {
	var sb strings.Builder
	for i, p := range t {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(formatCoord(p.X))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(p.Y))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// formatCoord prints the shortest plain decimal that round-trips, never an exponent.
// -0 prints as 0.
func formatCoord(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Bound returns the bounding box of all instances of t.
func Bound(t geometry.Triangle) orb.Bound {
	inst := symmetry.Generate(t)
	mp := make(orb.MultiPoint, 0, 3*len(inst))
	for _, in := range inst {
		for _, p := range in.Triangle {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
	}
	return mp.Bound()
}

// OutOfView returns the indices of base triangles whose instances extend past View and would be
// clipped in the exported document.
func OutOfView(triangles []geometry.Triangle) []int {
	var out []int
	for i, t := range triangles {
		b := Bound(t)
		if !View.Contains(b.Min) || !View.Contains(b.Max) {
			out = append(out, i)
		}
	}
	return out
}
