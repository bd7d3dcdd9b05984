package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Width, Height int
	Title         string
	TargetFPS     int
	Background    rl.Color
	// OnResize is called with the new size whenever the window is resized.
	OnResize func(width, height int)
}

// Run opens a resizable window and runs the main loop. Each frame it calls update (input), then
// clears the screen and calls draw. Returns when the window is closed.
// ESC is left to the caller; close via the window button.
func Run(win Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(win.TargetFPS))

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && win.OnResize != nil {
			win.OnResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(win.Background)
		draw()
		rl.EndDrawing()
	}
}
