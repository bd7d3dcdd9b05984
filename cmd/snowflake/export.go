package main

import (
	"errors"
	"flag"
	"fmt"

	"snowflake/internal/commands"
	"snowflake/internal/config"
	"snowflake/internal/export"
	"snowflake/internal/logger"
	"snowflake/internal/session"
)

// exportFields maps export flags to the preferences they override.
var exportFields = map[string]string{
	"out":        "OutputDir",
	"png":        "ExportPNG",
	"png-size":   "PNGSize",
	"degenerate": "Degenerate",
}

// registerExport adds the headless "export" subcommand: triangles from -tri flags go through
// the same session and exporters as the interactive tool.
func registerExport(reg *commands.Registry, log *logger.Logger) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	var tris commands.Triangles
	cfgPath := fs.String("config", config.ConfigPath, "preferences file")
	var over config.Prefs
	fs.Var(&tris, "tri", `base triangle "x,y x,y x,y" (repeatable)`)
	fs.StringVar(&over.OutputDir, "out", "", "output directory")
	fs.BoolVar(&over.ExportPNG, "png", false, "also write snowflake.png")
	fs.IntVar(&over.PNGSize, "png-size", 0, "PNG width and height in pixels")
	fs.StringVar(&over.Degenerate, "degenerate", "", "zero-area triangles: warn, accept or reject")

	reg.Register("export", "write snowflake.svg (and .png) for the given triangles", fs, func() error {
		prefs, err := loadPrefs(*cfgPath, over, commands.Given(fs, exportFields))
		if err != nil {
			return err
		}
		policy, err := session.ParsePolicy(prefs.Degenerate)
		if err != nil {
			return err
		}
		sess := session.New(policy, log)
		for _, t := range tris {
			if _, err := sess.Add(t); err != nil && !errors.Is(err, session.ErrDegenerate) {
				return err
			}
		}
		if sess.Len() == 0 && len(tris) > 0 {
			return fmt.Errorf("export: all %d triangles rejected", len(tris))
		}
		_, err = jobFor(prefs, log).Run(sess.Triangles())
		return err
	})
}

// jobFor builds the export job both subcommands use.
func jobFor(prefs config.Prefs, log *logger.Logger) export.Job {
	return export.Job{
		Dir: prefs.OutputDir,
		PNG: prefs.ExportPNG,
		Raster: export.RasterOptions{
			Size:       prefs.PNGSize,
			LineWidth:  1,
			Background: config.MustColor(prefs.Background),
			Fill:       config.MustColor(prefs.Fill),
			Stroke:     config.MustColor(prefs.Stroke),
		},
		Log: log,
	}
}
