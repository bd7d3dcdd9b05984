package symmetry

import (
	"fmt"
	"math"
	"testing"

	"snowflake/internal/geometry"
)

var unit = geometry.Tri(geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(0, 1))

func TestGenerate_Count(t *testing.T) {
	got := Generate(unit)
	if len(got) != 12 {
		t.Fatalf("Generate() returned %d instances, want 12", len(got))
	}
}

func TestGenerate_UnitTriangle(t *testing.T) {
	got := Generate(unit)

	if got[0].Triangle != unit {
		t.Errorf("instance 0 = %v, want input unchanged %v", got[0].Triangle, unit)
	}

	mirrored := geometry.Tri(geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(0, -1))
	if got[1].Triangle != mirrored {
		t.Errorf("instance 1 = %v, want %v", got[1].Triangle, mirrored)
	}

	c, s := math.Cos(math.Pi/3), math.Sin(math.Pi/3)
	rotated := geometry.Tri(geometry.Pt(0, 0), geometry.Pt(c, s), geometry.Pt(-s, c))
	if !got[2].Triangle.Approx(rotated, 1e-12) {
		t.Errorf("instance 2 = %v, want %v", got[2].Triangle, rotated)
	}
}

func TestGenerate_Order(t *testing.T) {
	base := geometry.Tri(geometry.Pt(0.4, 0.1), geometry.Pt(1.7, -0.2), geometry.Pt(0.9, 1.3))
	got := Generate(base)

	for k, in := range got {
		t.Run(fmt.Sprintf("instance_%d", k), func(t *testing.T) {
			var want geometry.Triangle
			if k%2 == 0 {
				want = geometry.Triangle(geometry.Rotate(base[:], float64(k/2)*math.Pi/3))
			} else {
				want = geometry.Triangle(geometry.Mirror(geometry.Rotate(base[:], float64((k-1)/2)*math.Pi/3)))
			}
			if in.Triangle != want {
				t.Errorf("instance %d = %v, want %v", k, in.Triangle, want)
			}
			if in.Rotation != k/2 {
				t.Errorf("instance %d Rotation = %d", k, in.Rotation)
			}
			if in.Mirrored != (k%2 == 1) {
				t.Errorf("instance %d Mirrored = %v", k, in.Mirrored)
			}
		})
	}
}

func TestGenerate_PreservesShape(t *testing.T) {
	base := geometry.Tri(geometry.Pt(-1, 2), geometry.Pt(3, 0.5), geometry.Pt(0.2, -0.7))
	area := math.Abs(base.Area())
	edges := base.EdgeLengths()

	for k, in := range Generate(base) {
		if got := math.Abs(in.Triangle.Area()); math.Abs(got-area) > 1e-9 {
			t.Errorf("instance %d area = %v, want %v", k, got, area)
		}
		for i, e := range in.Triangle.EdgeLengths() {
			if math.Abs(e-edges[i]) > 1e-9 {
				t.Errorf("instance %d edge %d = %v, want %v", k, i, e, edges[i])
			}
		}
	}
}

func TestGenerateAll(t *testing.T) {
	second := geometry.Tri(geometry.Pt(2, 0), geometry.Pt(3, 0), geometry.Pt(2, 1))

	tests := []struct {
		name  string
		bases []geometry.Triangle
		want  int
	}{
		{"none", nil, 0},
		{"one", []geometry.Triangle{unit}, 12},
		{"two", []geometry.Triangle{unit, second}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateAll(tt.bases)
			if len(got) != tt.want {
				t.Fatalf("GenerateAll() returned %d instances, want %d", len(got), tt.want)
			}
			for i, in := range got {
				base := tt.bases[i/InstancesPerTriangle]
				if want := Generate(base)[i%InstancesPerTriangle]; in != want {
					t.Errorf("instance %d = %v, want %v", i, in, want)
				}
			}
		})
	}
}
