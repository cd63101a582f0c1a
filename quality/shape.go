package quality

import (
	"github.com/notargets/tetqual/geometry"
	"github.com/notargets/tetqual/mesh"
	"github.com/notargets/tetqual/utils"
)

// ComputeShapeQuality derives the radius ratio and dihedral angle extremes
// from the geometric primitives and surfaces the edge ratio attributes. The
// radius ratio is normalized so the regular tetrahedron scores exactly 1.
// Zero circumradius propagates to +Inf or NaN untrapped, mirroring the
// distortion pass policy.
func ComputeShapeQuality(m *mesh.Mesh, log *utils.Logger) error {
	if err := m.VerifyTetrahedral(); err != nil {
		return err
	}

	var (
		K            = m.NumElements
		inradius     = geometry.Inradii(m)
		circumradius = geometry.Circumradii(m)
		radiusRatio  = make([]float64, K)
	)
	for k := 0; k < K; k++ {
		radiusRatio[k] = 3 * inradius[k] / circumradius[k]
	}
	m.Attributes.SetScalar(AttrInradius, inradius)
	m.Attributes.SetScalar(AttrCircumradius, circumradius)
	m.Attributes.SetScalar(AttrRadiusRatio, radiusRatio)

	var (
		dihedrals   = geometry.DihedralAngles(m)
		flat        = make([]float64, 6*K)
		minDihedral = make([]float64, K)
		maxDihedral = make([]float64, K)
	)
	for k := 0; k < K; k++ {
		angles := dihedrals[k]
		copy(flat[6*k:], angles)
		minA, maxA := angles[0], angles[0]
		for _, a := range angles[1:] {
			if a < minA {
				minA = a
			}
			if a > maxA {
				maxA = a
			}
		}
		minDihedral[k] = minA
		maxDihedral[k] = maxA
	}
	m.Attributes.SetScalarN(AttrDihedralAngle, flat, 6)
	m.Attributes.SetScalar(AttrMinDihedralAngle, minDihedral)
	m.Attributes.SetScalar(AttrMaxDihedralAngle, maxDihedral)

	geometry.MaterializeEdgeRatios(m)

	log.Debugf("shape quality computed for %d tets", K)
	return nil
}
