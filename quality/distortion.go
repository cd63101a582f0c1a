// Package quality computes per-tetrahedron distortion energies and shape
// quality measures, writing each result onto the mesh attribute store under
// stable, documented names. Numerical anomalies (zero
// determinants, degenerate elements) are designed outcomes: they propagate
// as IEEE-754 infinities and NaNs next to explicit finiteness flags, and are
// surfaced as warning counts, never as errors.
package quality

import (
	"math"
	"runtime"
	"sync"

	"github.com/notargets/tetqual/geometry"
	"github.com/notargets/tetqual/mesh"
	"github.com/notargets/tetqual/utils"
)

// Attribute names written by the evaluators.
const (
	AttrConformalAMIPS     = "conformal_AMIPS"
	AttrFiniteAMIPS        = "finite_conformal_AMIPS"
	AttrSymmetricDirichlet = "symmetric_Dirichlet"
	AttrFiniteDirichlet    = "finite_symmetric_Dirichlet"
	AttrOrientations       = "orientations"
	AttrRadiusRatio        = "radius_ratio"
	AttrInradius           = "voxel_inradius"
	AttrCircumradius       = "voxel_circumradius"
	AttrDihedralAngle      = "voxel_dihedral_angle"
	AttrMinDihedralAngle   = "voxel_min_dihedral_angle"
	AttrMaxDihedralAngle   = "voxel_max_dihedral_angle"
	AttrRadiusEdgeRatio    = "voxel_radius_edge_ratio"
	AttrEdgeRatio          = "voxel_edge_ratio"
)

// Diagnostics aggregates the non-fatal anomaly counts of a distortion pass.
type Diagnostics struct {
	NumDegenerateTets     int
	NumInvertedTets       int
	NumNonFiniteAMIPS     int
	NumNonFiniteDirichlet int
}

// ComputeDistortionEnergies evaluates conformal AMIPS and symmetric
// Dirichlet energy for every tetrahedron and writes the five result
// attributes onto the mesh. The per-element loop is sharded across
// runtime.NumCPU() workers; each worker owns a disjoint index range and the
// gradient operator is shared read-only.
func ComputeDistortionEnergies(m *mesh.Mesh, log *utils.Logger) (diag Diagnostics, err error) {
	if err = m.VerifyTetrahedral(); err != nil {
		return
	}

	var (
		K               = m.NumElements
		amips           = make([]float64, K)
		finiteAmips     = make([]bool, K)
		dirichlet       = make([]float64, K)
		finiteDirichlet = make([]bool, K)
		orientations    = geometry.Orientations(m)
		G               = geometry.GradientOperator()
	)

	if K > 0 {
		NP := runtime.NumCPU()
		if NP > K {
			NP = K
		}
		pm := utils.NewPartitionMap(NP, K)
		var wg sync.WaitGroup
		for n := 0; n < NP; n++ {
			kMin, kMax := pm.GetBucketRange(n)
			wg.Add(1)
			go func(kMin, kMax int) {
				defer wg.Done()
				for k := kMin; k < kMax; k++ {
					amips[k], dirichlet[k] = elementEnergies(m, G, k)
					finiteAmips[k] = isFinite(amips[k])
					finiteDirichlet[k] = isFinite(dirichlet[k])
				}
			}(kMin, kMax)
		}
		wg.Wait()
	}

	// Quantize raw signed volumes to {-1, 0, +1}; exactly zero stays zero
	for k, o := range orientations {
		switch {
		case o > 0:
			orientations[k] = 1
		case o < 0:
			orientations[k] = -1
		}
	}

	for k := 0; k < K; k++ {
		if orientations[k] == 0 {
			diag.NumDegenerateTets++
		}
		if orientations[k] < 0 {
			diag.NumInvertedTets++
		}
		if !finiteAmips[k] {
			diag.NumNonFiniteAMIPS++
		}
		if !finiteDirichlet[k] {
			diag.NumNonFiniteDirichlet++
		}
	}
	if diag.NumDegenerateTets > 0 {
		log.Warnf("degenerate tets: %d", diag.NumDegenerateTets)
	}
	if diag.NumInvertedTets > 0 {
		log.Warnf("inverted tets: %d", diag.NumInvertedTets)
	}
	if diag.NumNonFiniteAMIPS > 0 {
		log.Warnf("Non-finite conformal AMIPS: %d", diag.NumNonFiniteAMIPS)
	}
	if diag.NumNonFiniteDirichlet > 0 {
		log.Warnf("Non-finite symmetric Dirichlet: %d", diag.NumNonFiniteDirichlet)
	}

	m.Attributes.SetScalar(AttrConformalAMIPS, amips)
	m.Attributes.SetFlag(AttrFiniteAMIPS, finiteAmips)
	m.Attributes.SetScalar(AttrSymmetricDirichlet, dirichlet)
	m.Attributes.SetFlag(AttrFiniteDirichlet, finiteDirichlet)
	m.Attributes.SetScalar(AttrOrientations, orientations)

	return
}

// elementEnergies computes both distortion energies for element k. The
// deformation gradient is J = G * V with V the 4x3 vertex coordinate matrix.
// When det(J) is exactly zero the inverse is replaced by the all-+Inf
// sentinel matrix; no epsilon tolerance is applied, near-singular elements
// invert normally.
func elementEnergies(m *mesh.Mesh, G utils.Matrix, k int) (amips, dirichlet float64) {
	var (
		vData = make([]float64, 12)
	)
	for i, vi := range m.Elements[k] {
		coords := m.Vertices[vi]
		vData[i*3] = coords[0]
		vData[i*3+1] = coords[1]
		vData[i*3+2] = coords[2]
	}
	V := utils.NewMatrix(4, 3, vData)

	J := G.Mul(V)
	JF := J.Transpose().Mul(J).Trace()
	detJ := J.Det()

	var JInv utils.Matrix
	if detJ == 0 {
		JInv = utils.NewConstMatrix(3, 3, math.Inf(1))
	} else {
		var ierr error
		if JInv, ierr = J.Inverse(); ierr != nil {
			JInv = utils.NewConstMatrix(3, 3, math.Inf(1))
		}
	}
	JInvF := JInv.Transpose().Mul(JInv).Trace()

	amips = JF / math.Cbrt(detJ*detJ)
	dirichlet = JF + JInvF
	return
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
