package geometry

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/tetqual/utils"
)

var (
	gradOnce sync.Once
	gradOp   utils.Matrix
)

// GradientOperator returns the constant 3x4 linear operator G mapping the
// four vertex positions of a tetrahedron (as a 4x3 matrix of row vectors) to
// its deformation gradient relative to the reference tetrahedron:
// J = G * V. Assembled once, shared read-only by all callers.
func GradientOperator() utils.Matrix {
	gradOnce.Do(func() {
		gradOp = assembleGradient()
	})
	return gradOp
}

// assembleGradient builds the P1 shape function gradients on the reference
// tetrahedron. The barycentric coordinates satisfy lambda_i(x) =
// (E^-1 (x - v0))_i for i in 1..3, so their gradients are the rows of E^-1,
// i.e. the columns of E^-T, and grad lambda_0 closes the partition of unity.
func assembleGradient() utils.Matrix {
	ref := ReferenceTetrahedron()

	// Edge matrix E with edge vectors as columns
	E := utils.NewMatrix(3, 3)
	for j := 0; j < 3; j++ {
		e := r3.Sub(ref[j+1], ref[0])
		E.Set(0, j, e.X)
		E.Set(1, j, e.Y)
		E.Set(2, j, e.Z)
	}
	EInvT, err := E.Transpose().Inverse()
	if err != nil {
		panic("reference tetrahedron is degenerate")
	}

	// Sparse assembly in dictionary-of-keys form, densified once
	dok := utils.NewDOK(3, 4)
	for i := 0; i < 3; i++ {
		var rowSum float64
		for j := 0; j < 3; j++ {
			g := EInvT.At(i, j)
			dok.Set(i, j+1, g)
			rowSum += g
		}
		dok.Set(i, 0, -rowSum)
	}
	return dok.Dense()
}
