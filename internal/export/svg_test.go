package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"snowflake/internal/geometry"
	"snowflake/internal/symmetry"
)

var (
	unit   = geometry.Tri(geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(0, 1))
	second = geometry.Tri(geometry.Pt(1, 1), geometry.Pt(2, 1.5), geometry.Pt(1.2, 2.5))
)

// element is a start tag and its attributes as seen by the XML lexer.
type element struct {
	name  string
	attrs map[string]string
}

func parseElements(t *testing.T, doc string) []element {
	t.Helper()
	l := xml.NewLexer(parse.NewInputString(doc))
	var out []element
	inTag := false
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != io.EOF {
				t.Fatalf("lexer error: %v", err)
			}
			return out
		case xml.StartTagToken:
			out = append(out, element{name: string(l.Text()), attrs: map[string]string{}})
			inTag = true
		case xml.AttributeToken:
			if inTag {
				val := strings.Trim(string(l.AttrVal()), `"'`)
				out[len(out)-1].attrs[string(l.Text())] = val
			}
		default:
			inTag = false
		}
	}
}

func paths(els []element) []element {
	var out []element
	for _, e := range els {
		if e.name == "path" {
			out = append(out, e)
		}
	}
	return out
}

func TestSVG_Empty(t *testing.T) {
	els := parseElements(t, SVGString(nil))
	if len(els) != 1 || els[0].name != "svg" {
		t.Fatalf("elements = %+v, want only the svg root", els)
	}
	if got := els[0].attrs["viewBox"]; got != "-4 -4 8 8" {
		t.Errorf("viewBox = %q, want \"-4 -4 8 8\"", got)
	}
	if got := els[0].attrs["xmlns"]; got != "http://www.w3.org/2000/svg" {
		t.Errorf("xmlns = %q", got)
	}
}

func TestSVG_PathCount(t *testing.T) {
	tests := []struct {
		name      string
		triangles []geometry.Triangle
		want      int
	}{
		{"one", []geometry.Triangle{unit}, 12},
		{"two", []geometry.Triangle{unit, second}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := paths(parseElements(t, SVGString(tt.triangles)))
			if len(ps) != tt.want {
				t.Fatalf("got %d paths, want %d", len(ps), tt.want)
			}
			for i, p := range ps {
				if p.attrs["fill"] != "white" || p.attrs["stroke"] != "black" {
					t.Errorf("path %d attrs = %v", i, p.attrs)
				}
			}
		})
	}
}

func TestSVG_Order(t *testing.T) {
	triangles := []geometry.Triangle{unit, second}
	ps := paths(parseElements(t, SVGString(triangles)))
	for i, in := range symmetry.GenerateAll(triangles) {
		if got, want := ps[i].attrs["d"], PathData(in.Triangle); got != want {
			t.Errorf("path %d d = %q, want %q", i, got, want)
		}
	}
}

func TestSVG_UnitTriangle(t *testing.T) {
	ps := paths(parseElements(t, SVGString([]geometry.Triangle{unit})))
	if got := ps[0].attrs["d"]; got != "M 0 0 L 1 0 L 0 1 Z" {
		t.Errorf("instance 0 d = %q", got)
	}
	if got := ps[1].attrs["d"]; got != "M 0 0 L 1 0 L 0 -1 Z" {
		t.Errorf("instance 1 d = %q", got)
	}
}

func TestSVG_Reproducible(t *testing.T) {
	triangles := []geometry.Triangle{unit, second}
	var a, b bytes.Buffer
	if err := SVG(&a, triangles); err != nil {
		t.Fatal(err)
	}
	if err := SVG(&b, triangles); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two exports of the same set differ")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVG_WriteError(t *testing.T) {
	if err := SVG(failingWriter{}, []geometry.Triangle{unit}); err == nil {
		t.Error("SVG() want error from writer")
	}
}

func TestWriteSVGFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteSVGFile(dir, []geometry.Triangle{unit})
	if err != nil {
		t.Fatalf("WriteSVGFile() error = %v", err)
	}
	if filepath.Base(path) != "snowflake.svg" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != SVGString([]geometry.Triangle{unit}) {
		t.Error("file contents differ from SVGString")
	}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name string
		tri  geometry.Triangle
		want string
	}{
		{"integers", unit, "M 0 0 L 1 0 L 0 1 Z"},
		{"negative zero", geometry.Tri(geometry.Pt(0, -0.0), geometry.Pt(-1.5, 2), geometry.Pt(0.25, -3)), "M 0 0 L -1.5 2 L 0.25 -3 Z"},
		{"tiny", geometry.Tri(geometry.Pt(1e-17, 0), geometry.Pt(1, 0), geometry.Pt(0, 1)), "M 0.00000000000000001 0 L 1 0 L 0 1 Z"},
		{"large", geometry.Tri(geometry.Pt(1234567, 617283.4999999999), geometry.Pt(-2e6, 0), geometry.Pt(0, 1e21)), "M 1234567 617283.4999999999 L -2000000 0 L 0 1000000000000000000000 Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathData(tt.tri); got != tt.want {
				t.Errorf("PathData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutOfView(t *testing.T) {
	far := geometry.Tri(geometry.Pt(3, 0), geometry.Pt(5, 0), geometry.Pt(3, 1))
	got := OutOfView([]geometry.Triangle{unit, far, second})
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("OutOfView() = %v, want [1]", got)
	}
}

func TestBound(t *testing.T) {
	b := Bound(unit)
	// Rotations of (1,0) by multiples of 60° reach x = ±1; (0,1) reaches y = ±1.
	if b.Min[0] > -0.999 || b.Max[0] < 0.999 || b.Min[1] > -0.999 || b.Max[1] < 0.999 {
		t.Errorf("Bound() = %v", b)
	}
}
