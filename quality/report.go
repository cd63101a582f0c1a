package quality

import (
	"github.com/notargets/tetqual/mesh"
	"github.com/notargets/tetqual/utils"
)

// ReportThresholds counts elements violating the configured quality bounds
// and logs the counts at INFO level. A zero threshold disables its check.
// Reporting only, nothing is filtered or modified.
func ReportThresholds(m *mesh.Mesh, maxRadiusEdgeRatio, minDihedralAngle float64, log *utils.Logger) error {
	if maxRadiusEdgeRatio > 0 {
		ratios, err := m.Attributes.Scalar(AttrRadiusEdgeRatio)
		if err != nil {
			return err
		}
		count := 0
		for _, r := range ratios {
			if r > maxRadiusEdgeRatio {
				count++
			}
		}
		log.Infof("tets with radius-edge ratio above %g: %d", maxRadiusEdgeRatio, count)
	}
	if minDihedralAngle > 0 {
		angles, err := m.Attributes.Scalar(AttrMinDihedralAngle)
		if err != nil {
			return err
		}
		count := 0
		for _, a := range angles {
			if a < minDihedralAngle {
				count++
			}
		}
		log.Infof("tets with min dihedral angle below %g rad: %d", minDihedralAngle, count)
	}
	return nil
}
