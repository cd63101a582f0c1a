package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix, the natural build format for
// operator assembly. Finalize with ToCSR or Dense once all entries are set.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

// NNZ returns the count of explicitly stored entries.
func (m DOK) NNZ() int {
	return m.M.NNZ()
}

func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}

// Dense converts the assembled operator to a dense Matrix for repeated small
// products.
func (m DOK) Dense() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	csr := m.M.ToCSR()
	csr.DoNonZero(func(i, j int, v float64) {
		R.M.Set(i, j, v)
	})
	return
}

var _ mat.Matrix = DOK{}
