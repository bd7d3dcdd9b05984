package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/gogpu/gg"

	"snowflake/internal/geometry"
	"snowflake/internal/symmetry"
)

// PNGFilename is the name of the exported raster preview.
const PNGFilename = "snowflake.png"

// RasterOptions controls the PNG preview.
type RasterOptions struct {
	Size       int // width and height in pixels
	LineWidth  float64
	Background color.Color
	Fill       color.Color
	Stroke     color.Color
}

// DefaultRasterOptions matches the SVG: white shapes with black outlines on a transparent canvas.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Size:       800,
		LineWidth:  1,
		Background: color.Transparent,
		Fill:       color.White,
		Stroke:     color.Black,
	}
}

func (o RasterOptions) withDefaults() RasterOptions {
	d := DefaultRasterOptions()
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if o.Fill == nil {
		o.Fill = d.Fill
	}
	if o.Stroke == nil {
		o.Stroke = d.Stroke
	}
	return o
}

// Render draws the same instances SVG writes onto a square context covering View.
// The caller owns the returned context and must Close it.
func Render(triangles []geometry.Triangle, opts RasterOptions) (*gg.Context, error) {
	opts = opts.withDefaults()
	dc := gg.NewContext(opts.Size, opts.Size)
	dc.ClearWithColor(gg.FromColor(opts.Background))
	dc.SetLineWidth(opts.LineWidth)

	scale := float64(opts.Size) / (2 * ViewExtent)
	toPixel := func(p geometry.Point2D) (float64, float64) {
		return (p.X + ViewExtent) * scale, (p.Y + ViewExtent) * scale
	}

	for _, in := range symmetry.GenerateAll(triangles) {
		for i, p := range in.Triangle {
			x, y := toPixel(p)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetColor(opts.Fill)
		if err := dc.FillPreserve(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("export: fill: %w", err)
		}
		dc.SetColor(opts.Stroke)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("export: stroke: %w", err)
		}
	}
	return dc, nil
}

// WritePNGFile renders the preview to dir/PNGFilename and returns the path.
func WritePNGFile(dir string, triangles []geometry.Triangle, opts RasterOptions) (string, error) {
	dc, err := Render(triangles, opts)
	if err != nil {
		return "", err
	}
	defer dc.Close()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, PNGFilename)
	if err := imgio.Save(path, dc.Image(), imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
