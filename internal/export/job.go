package export

import (
	"snowflake/internal/geometry"
	"snowflake/internal/logger"
)

// Job is one user-triggered export: the SVG always, the PNG preview when enabled.
type Job struct {
	Dir    string
	PNG    bool
	Raster RasterOptions
	Log    *logger.Logger
}

// Run writes the files and returns their paths. Triangles reaching outside View are logged;
// the viewbox stays fixed so repeated exports of one drawing are identical.
func (j Job) Run(triangles []geometry.Triangle) ([]string, error) {
	log := j.Log
	if log == nil {
		log = logger.Discard()
	}
	if clipped := OutOfView(triangles); len(clipped) > 0 {
		log.Warn("triangles extend past the export viewbox and will be clipped",
			"indices", clipped, "viewBox", "-4 -4 8 8")
	}

	var written []string
	path, err := WriteSVGFile(j.Dir, triangles)
	if err != nil {
		log.Error("svg export failed", "err", err)
		return nil, err
	}
	written = append(written, path)
	log.Info("exported", "file", path, "triangles", len(triangles))

	if j.PNG {
		path, err := WritePNGFile(j.Dir, triangles, j.Raster)
		if err != nil {
			log.Error("png export failed", "err", err)
			return written, err
		}
		written = append(written, path)
		log.Info("exported", "file", path, "size", j.Raster.withDefaults().Size)
	}
	return written, nil
}
