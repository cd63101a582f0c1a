// Package geometry supplies the reference tetrahedron, its gradient
// operator, and the per-element geometric primitives the quality evaluators
// consume. All per-element functions return dense arrays in mesh element
// order and never trap on degenerate input: IEEE-754 infinities and NaNs
// propagate to the caller.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReferenceTetrahedron returns the vertices of the regular unit-edge
// tetrahedron used as the undeformed configuration for deformation
// gradients. Positively oriented.
func ReferenceTetrahedron() [4]r3.Vec {
	return [4]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0},
		{X: 0.5, Y: math.Sqrt(3) / 6, Z: math.Sqrt(6) / 3},
	}
}
