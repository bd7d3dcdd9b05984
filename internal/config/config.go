package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default preferences file, relative to the process working directory.
const ConfigPath = "config/snowflake.yaml"

// Prefs holds the tool's preferences. Drawings themselves are never persisted.
// Fields stay flat so Overlay can skip zero values field by field.
type Prefs struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	TargetFPS    int    `yaml:"target_fps"`

	// FrustumSize is the vertical extent of the visible scene in scene units.
	FrustumSize float64 `yaml:"frustum_size"`

	ShowHUD    bool `yaml:"show_hud"`
	ShowFPS    bool `yaml:"show_fps"`
	Guidelines bool `yaml:"guidelines"`

	Background string `yaml:"background"`
	Fill       string `yaml:"fill"`
	Stroke     string `yaml:"stroke"`
	Guideline  string `yaml:"guideline"`
	Marker     string `yaml:"marker"`
	// Highlight colours the instances of the most recently added triangle.
	Highlight string `yaml:"highlight"`

	// Degenerate is the policy for zero-area triangles: warn, accept or reject.
	Degenerate string `yaml:"degenerate"`

	OutputDir string `yaml:"output_dir"`
	ExportPNG bool   `yaml:"export_png"`
	PNGSize   int    `yaml:"png_size"`
}

// Default returns the default preferences.
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 800,
		WindowTitle:  "snowflake",
		TargetFPS:    60,
		FrustumSize:  10,
		ShowHUD:      true,
		ShowFPS:      false,
		Guidelines:   true,
		Background:   "black",
		Fill:         "white",
		Stroke:       "black",
		Guideline:    "#202020",
		Marker:       "red",
		Highlight:    "lightskyblue",
		Degenerate:   "warn",
		OutputDir:    ".",
		ExportPNG:    false,
		PNGSize:      800,
	}
}

// Load reads preferences from path on top of Default(). A missing file is not an error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), err
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Overlay copies every non-zero field of src onto dst, then copies the fields named in set
// even when they are zero. Used for command-line overrides: set holds the Prefs field names
// of the flags the user actually passed, so -png=false can clear a configured true.
func Overlay(dst *Prefs, src Prefs, set ...string) error {
	if err := copier.CopyWithOption(dst, &src, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dv := reflect.ValueOf(dst).Elem()
	sv := reflect.ValueOf(src)
	for _, name := range set {
		f := dv.FieldByName(name)
		if !f.IsValid() {
			return fmt.Errorf("config: no preference %q", name)
		}
		f.Set(sv.FieldByName(name))
	}
	return dst.Validate()
}

// Validate checks sizes and colour names.
func (p Prefs) Validate() error {
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		return fmt.Errorf("config: window size %dx%d", p.WindowWidth, p.WindowHeight)
	}
	if p.FrustumSize <= 0 {
		return fmt.Errorf("config: frustum_size must be positive, got %v", p.FrustumSize)
	}
	for name, c := range map[string]string{
		"background": p.Background,
		"fill":       p.Fill,
		"stroke":     p.Stroke,
		"guideline":  p.Guideline,
		"marker":     p.Marker,
		"highlight":  p.Highlight,
	} {
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	switch p.Degenerate {
	case "warn", "accept", "reject":
	default:
		return fmt.Errorf("config: degenerate: unknown policy %q", p.Degenerate)
	}
	return nil
}

// ParseColor accepts an SVG colour name ("white", "firebrick") or #rgb / #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}

// MustColor is ParseColor for values already checked by Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (color.RGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", "#"+h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", "#"+h)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
