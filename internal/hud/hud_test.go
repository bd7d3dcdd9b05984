package hud

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcdef", 6, "abcdef"},
		{"ascii", "abcdefgh", 6, "abc..."},
		{"multibyte", "ééééééé", 6, "ééé..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) is not valid UTF-8", tt.in, tt.n)
			}
		})
	}
}

func TestLines(t *testing.T) {
	h := New()
	status := "exported file=/tmp/" + strings.Repeat("ü", 200) + ".svg"
	lines := h.Lines(Stats{Pending: 2, Triangles: 3, Shapes: 39, Status: status})
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if want := "vertices: 2/3   triangles: 3   shapes: 39"; lines[0] != want {
		t.Errorf("lines[0] = %q, want %q", lines[0], want)
	}
	if n := utf8.RuneCountInString(lines[1]); n != maxStatusLen || !utf8.ValidString(lines[1]) {
		t.Errorf("status line has %d runes (valid=%v), want %d", n, utf8.ValidString(lines[1]), maxStatusLen)
	}
	if lines[2] != helpText {
		t.Errorf("lines[2] = %q, want help text", lines[2])
	}

	if got := h.Lines(Stats{}); len(got) != 2 {
		t.Errorf("empty status gave %d lines, want 2", len(got))
	}
}
