package quality

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/notargets/tetqual/mesh"
)

var csvHeader = []string{
	"index", "edge_ratio", "radius_ratio",
	"min_dihedral_angle", "max_dihedral_angle", "radius_edge_ratio",
	"conformal_amips", "symmetric_dirichlet", "orientation",
}

// ExportCSV writes the per-element quality table to filename. Both
// evaluation passes must have run first; a missing attribute is fatal.
func ExportCSV(m *mesh.Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(m, file)
}

// WriteCSV emits one header row and one row per tetrahedron, in mesh order.
// Pure formatting: no recomputation, no filtering. Non-finite values appear
// as their strconv text forms (+Inf, -Inf, NaN), which parse back with
// strconv.ParseFloat.
func WriteCSV(m *mesh.Mesh, w io.Writer) error {
	var (
		columns = []string{
			AttrEdgeRatio, AttrRadiusRatio,
			AttrMinDihedralAngle, AttrMaxDihedralAngle, AttrRadiusEdgeRatio,
			AttrConformalAMIPS, AttrSymmetricDirichlet, AttrOrientations,
		}
		data = make([][]float64, len(columns))
		err  error
	)
	for i, name := range columns {
		if data[i], err = m.Attributes.Scalar(name); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(csvHeader); err != nil {
		return err
	}
	record := make([]string, len(csvHeader))
	for k := 0; k < m.NumElements; k++ {
		record[0] = strconv.Itoa(k)
		for i, col := range data {
			record[i+1] = strconv.FormatFloat(col[k], 'g', -1, 64)
		}
		if err = cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
