package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snowflake/internal/geometry"
	"snowflake/internal/logger"
)

func TestJob_Run(t *testing.T) {
	tests := []struct {
		name  string
		png   bool
		files []string
	}{
		{"svg only", false, []string{"snowflake.svg"}},
		{"svg and png", true, []string{"snowflake.svg", "snowflake.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			job := Job{Dir: dir, PNG: tt.png, Raster: RasterOptions{Size: 16}}
			got, err := job.Run([]geometry.Triangle{unit})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(got) != len(tt.files) {
				t.Fatalf("Run() wrote %v, want %v", got, tt.files)
			}
			for i, name := range tt.files {
				if got[i] != filepath.Join(dir, name) {
					t.Errorf("file %d = %q, want %q", i, got[i], name)
				}
				if _, err := os.Stat(got[i]); err != nil {
					t.Errorf("Stat(%q) error = %v", got[i], err)
				}
			}
		})
	}
}

func TestJob_WarnsWhenClipped(t *testing.T) {
	log := logger.Discard()
	far := geometry.Tri(geometry.Pt(6, 0), geometry.Pt(7, 0), geometry.Pt(6, 1))
	job := Job{Dir: t.TempDir(), Log: log}
	if _, err := job.Run([]geometry.Triangle{unit, far}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	found := false
	for _, line := range log.Lines() {
		if strings.Contains(line, "level=WARN") && strings.Contains(line, "clipped") {
			found = true
		}
	}
	if !found {
		t.Errorf("no clipping warning in %v", log.Lines())
	}
}

func TestJob_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	job := Job{Dir: filepath.Join(file, "sub")}
	if _, err := job.Run(nil); err == nil {
		t.Error("Run() into a path under a regular file want error")
	}
}
