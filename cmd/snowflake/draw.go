package main

import (
	"flag"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snowflake/internal/commands"
	"snowflake/internal/config"
	"snowflake/internal/geometry"
	"snowflake/internal/graphics"
	"snowflake/internal/hud"
	"snowflake/internal/interaction"
	"snowflake/internal/logger"
	"snowflake/internal/scene"
	"snowflake/internal/session"
	"snowflake/internal/viewport"
)

// drawFields maps draw flags to the preferences they override.
var drawFields = map[string]string{
	"out":        "OutputDir",
	"degenerate": "Degenerate",
	"fps":        "ShowFPS",
}

// registerDraw adds the interactive "draw" subcommand.
func registerDraw(reg *commands.Registry, log *logger.Logger) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	cfgPath := fs.String("config", config.ConfigPath, "preferences file")
	var over config.Prefs
	fs.StringVar(&over.OutputDir, "out", "", "export directory")
	fs.StringVar(&over.Degenerate, "degenerate", "", "zero-area triangles: warn, accept or reject")
	fs.BoolVar(&over.ShowFPS, "fps", false, "show the FPS counter")

	reg.Register("draw", "open the drawing window", fs, func() error {
		prefs, err := loadPrefs(*cfgPath, over, commands.Given(fs, drawFields))
		if err != nil {
			return err
		}
		return runDraw(prefs, log)
	})
}

func runDraw(prefs config.Prefs, log *logger.Logger) error {
	policy, err := session.ParsePolicy(prefs.Degenerate)
	if err != nil {
		return err
	}
	sess := session.New(policy, log)
	vp := viewport.New(prefs.WindowWidth, prefs.WindowHeight, prefs.FrustumSize)
	scn := scene.New(prefs.FrustumSize, scene.Style{
		Fill:      config.MustColor(prefs.Fill),
		Guideline: config.MustColor(prefs.Guideline),
		Marker:    config.MustColor(prefs.Marker),
		Highlight: config.MustColor(prefs.Highlight),
	})
	scn.SetGuidelinesVisible(prefs.Guidelines)
	ctl := interaction.New(vp, interaction.SinkFunc(func(t geometry.Triangle) error {
		_, err := sess.Add(t)
		return err
	}), log)
	overlay := hud.New()
	overlay.Visible = prefs.ShowHUD
	overlay.ShowFPS = prefs.ShowFPS
	job := jobFor(prefs, log)

	sized := false
	update := func() {
		if !sized {
			// The window may open at a different size than requested (tiling WMs, HiDPI).
			vp.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
			sized = true
		}
		switch {
		case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
			m := rl.GetMousePosition()
			if _, done, err := ctl.Click(float64(m.X), float64(m.Y)); done || err != nil {
				scn.Sync(sess)
			}
			scn.SetMarkers(ctl.Pending())
		case rl.IsMouseButtonPressed(rl.MouseButtonRight), rl.IsKeyPressed(rl.KeyEscape):
			ctl.Cancel()
			scn.SetMarkers(nil)
		}
		if rl.IsKeyPressed(rl.KeyE) {
			_, _ = job.Run(sess.Triangles())
		}
		if rl.IsKeyPressed(rl.KeyG) {
			scn.SetGuidelinesVisible(!scn.GuidelinesVisible)
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			overlay.Toggle()
		}
	}
	draw := func() {
		scn.Draw()
		base, derived := scn.Counts()
		overlay.Draw(hud.Stats{
			Pending:   ctl.Collected(),
			Triangles: sess.Len(),
			Shapes:    base + derived,
			Status:    log.Last(),
		})
	}

	bg := config.MustColor(prefs.Background)
	graphics.Run(graphics.Window{
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Title:      prefs.WindowTitle,
		TargetFPS:  prefs.TargetFPS,
		Background: rl.NewColor(bg.R, bg.G, bg.B, bg.A),
		OnResize:   vp.Resize,
	}, update, draw)
	log.Info("window closed", "triangles", sess.Len())
	return nil
}
