// Package symmetry replicates a base triangle into the 12-fold dihedral snowflake pattern.
//
// The emission order is fixed: rotation k (k = 0..5, angle k·60°) is emitted first as-is and
// then mirrored across the x-axis. Both the live scene and the exporters go through Generate,
// so the preview and the exported file always agree.
package symmetry

import (
	"math"

	"snowflake/internal/geometry"
)

const (
	// Folds is the number of rotations around the origin.
	Folds = 6
	// InstancesPerTriangle is the number of instances produced for one base triangle.
	InstancesPerTriangle = 2 * Folds
	// Step is the rotation between consecutive folds, in radians.
	Step = math.Pi / 3
)

// Instance is one rotated and optionally mirrored copy of a base triangle.
type Instance struct {
	Rotation int // fold index, 0..Folds-1
	Mirrored bool
	Triangle geometry.Triangle
}

// Generate returns the 12 instances of base in emission order.
func Generate(base geometry.Triangle) [InstancesPerTriangle]Instance {
	var out [InstancesPerTriangle]Instance
	for k := 0; k < Folds; k++ {
		rotated := base.Rotate(float64(k) * Step)
		out[2*k] = Instance{Rotation: k, Triangle: rotated}
		out[2*k+1] = Instance{Rotation: k, Mirrored: true, Triangle: rotated.Mirror()}
	}
	return out
}

// GenerateAll returns the instances of every base triangle, base order first, then instance order.
func GenerateAll(bases []geometry.Triangle) []Instance {
	out := make([]Instance, 0, len(bases)*InstancesPerTriangle)
	for _, b := range bases {
		inst := Generate(b)
		out = append(out, inst[:]...)
	}
	return out
}
