package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOKDense(t *testing.T) {
	dok := NewDOK(3, 4)
	dok.Set(0, 0, -1)
	dok.Set(0, 1, 1)
	dok.Set(2, 3, 2.5)
	assert.Equal(t, 3, dok.NNZ())

	D := dok.Dense()
	nr, nc := D.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 4, nc)
	assert.Equal(t, -1., D.At(0, 0))
	assert.Equal(t, 1., D.At(0, 1))
	assert.Equal(t, 2.5, D.At(2, 3))
	assert.Equal(t, 0., D.At(1, 2))

	csr := dok.ToCSR()
	assert.Equal(t, 2.5, csr.At(2, 3))
}
