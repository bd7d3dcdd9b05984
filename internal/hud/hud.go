package hud

import (
	"fmt"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
	maxStatusLen   = 120
)

const helpText = "click: vertex   right click/esc: cancel   E: export   G: guides   F1: hud"

// Stats is what the HUD reports each frame.
type Stats struct {
	Pending   int // vertices collected for the next triangle
	Triangles int
	Shapes    int    // base plus derived shapes on screen
	Status    string // most recent log line
}

// HUD draws the on-screen overlay. FPS is off by default; the rest is on.
type HUD struct {
	Visible bool
	ShowFPS bool

	frameCount  uint32
	lastFpsText string
	lastStats   Stats
	statsText   [2]string
}

// New returns a visible HUD with the FPS counter hidden.
func New() *HUD {
	return &HUD{Visible: true}
}

// Toggle flips visibility.
func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

// Lines returns the text lines for st, top to bottom. Cached until st changes.
func (h *HUD) Lines(st Stats) []string {
	if st != h.lastStats || h.statsText[0] == "" {
		h.lastStats = st
		h.statsText[0] = fmt.Sprintf("vertices: %d/3   triangles: %d   shapes: %d",
			st.Pending, st.Triangles, st.Shapes)
		h.statsText[1] = truncate(st.Status, maxStatusLen)
	}
	out := []string{h.statsText[0]}
	if h.statsText[1] != "" {
		out = append(out, h.statsText[1])
	}
	return append(out, helpText)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// Draw renders the overlay. Call after the scene in the draw loop.
// FPS is drawn top-right in green; the stats are drawn top-left.
func (h *HUD) Draw(st Stats) {
	if !h.Visible {
		return
	}
	h.frameCount++

	y := int32(padding)
	for _, line := range h.Lines(st) {
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
		y += lineHeight
	}

	if h.ShowFPS {
		if h.frameCount%updateInterval == 0 || h.lastFpsText == "" {
			h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		screenW := int32(rl.GetScreenWidth())
		w := rl.MeasureText(h.lastFpsText, fontSize)
		rl.DrawText(h.lastFpsText, screenW-w-padding, padding, fontSize, rl.Green)
	}
}
