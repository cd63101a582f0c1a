package quality

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/tetqual/geometry"
	"github.com/notargets/tetqual/mesh"
	"github.com/notargets/tetqual/utils"
)

func newTetMesh(vertices [][]float64, elements [][]int) *mesh.Mesh {
	m := mesh.NewMesh()
	m.Vertices = vertices
	m.Elements = elements
	m.ElementKinds = make([]mesh.ElementKind, len(elements))
	m.NumVertices = len(vertices)
	m.NumElements = len(elements)
	return m
}

func regularTetMesh() *mesh.Mesh {
	ref := geometry.ReferenceTetrahedron()
	vertices := make([][]float64, 4)
	for i, v := range ref {
		vertices[i] = []float64{v.X, v.Y, v.Z}
	}
	return newTetMesh(vertices, [][]int{{0, 1, 2, 3}})
}

func testLogger() (*utils.Logger, *bytes.Buffer) {
	log := utils.NewLogger(utils.WARNING)
	buf := &bytes.Buffer{}
	log.Out = buf
	return log, buf
}

func TestRegularTetDistortion(t *testing.T) {
	m := regularTetMesh()
	log, buf := testLogger()

	diag, err := ComputeDistortionEnergies(m, log)
	require.NoError(t, err)
	assert.Equal(t, Diagnostics{}, diag)
	assert.Empty(t, buf.String())

	amips, err := m.Attributes.Scalar(AttrConformalAMIPS)
	require.NoError(t, err)
	// Conformal AMIPS attains its minimum of 3 on the regular tet
	assert.InDelta(t, 3., amips[0], 1.e-12)

	dirichlet, err := m.Attributes.Scalar(AttrSymmetricDirichlet)
	require.NoError(t, err)
	assert.InDelta(t, 6., dirichlet[0], 1.e-12)

	finiteAmips, err := m.Attributes.Flag(AttrFiniteAMIPS)
	require.NoError(t, err)
	assert.True(t, finiteAmips[0])
	finiteDirichlet, err := m.Attributes.Flag(AttrFiniteDirichlet)
	require.NoError(t, err)
	assert.True(t, finiteDirichlet[0])

	orients, err := m.Attributes.Scalar(AttrOrientations)
	require.NoError(t, err)
	assert.Equal(t, 1., orients[0])
}

func TestDegenerateTetDistortion(t *testing.T) {
	// All four vertices coplanar: det(J) is exactly zero
	m := newTetMesh([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	}, [][]int{{0, 1, 2, 3}})
	log, buf := testLogger()

	diag, err := ComputeDistortionEnergies(m, log)
	require.NoError(t, err)
	assert.Equal(t, 1, diag.NumDegenerateTets)
	assert.Equal(t, 0, diag.NumInvertedTets)
	assert.Equal(t, 1, diag.NumNonFiniteAMIPS)
	assert.Equal(t, 1, diag.NumNonFiniteDirichlet)
	assert.Contains(t, buf.String(), "degenerate tets: 1")
	assert.Contains(t, buf.String(), "Non-finite symmetric Dirichlet: 1")

	dirichlet, _ := m.Attributes.Scalar(AttrSymmetricDirichlet)
	assert.True(t, math.IsInf(dirichlet[0], 1))
	amips, _ := m.Attributes.Scalar(AttrConformalAMIPS)
	assert.True(t, math.IsInf(amips[0], 1))

	finiteDirichlet, _ := m.Attributes.Flag(AttrFiniteDirichlet)
	assert.False(t, finiteDirichlet[0])

	orients, _ := m.Attributes.Scalar(AttrOrientations)
	assert.Equal(t, 0., orients[0])
}

func TestInvertedTetDistortion(t *testing.T) {
	m := regularTetMesh()
	// Mirror the element by swapping two vertices
	m.Elements[0][1], m.Elements[0][2] = m.Elements[0][2], m.Elements[0][1]
	log, buf := testLogger()

	diag, err := ComputeDistortionEnergies(m, log)
	require.NoError(t, err)
	assert.Equal(t, 1, diag.NumInvertedTets)
	assert.Equal(t, 0, diag.NumDegenerateTets)
	assert.Contains(t, buf.String(), "inverted tets: 1")

	orients, _ := m.Attributes.Scalar(AttrOrientations)
	assert.Equal(t, -1., orients[0])

	// A negative Jacobian alone does not make the energies blow up
	finiteAmips, _ := m.Attributes.Flag(AttrFiniteAMIPS)
	assert.True(t, finiteAmips[0])
	finiteDirichlet, _ := m.Attributes.Flag(AttrFiniteDirichlet)
	assert.True(t, finiteDirichlet[0])
	amips, _ := m.Attributes.Scalar(AttrConformalAMIPS)
	assert.InDelta(t, 3., amips[0], 1.e-12)
}

func TestEmptyMeshDistortion(t *testing.T) {
	m := mesh.NewMesh()
	log, buf := testLogger()

	diag, err := ComputeDistortionEnergies(m, log)
	require.NoError(t, err)
	assert.Equal(t, Diagnostics{}, diag)
	assert.Empty(t, buf.String())

	amips, err := m.Attributes.Scalar(AttrConformalAMIPS)
	require.NoError(t, err)
	assert.Empty(t, amips)
	orients, err := m.Attributes.Scalar(AttrOrientations)
	require.NoError(t, err)
	assert.Empty(t, orients)
}

func TestNonTetMeshRejected(t *testing.T) {
	m := newTetMesh([][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}})
	m.ElementKinds[0] = mesh.Hex
	log, _ := testLogger()

	_, err := ComputeDistortionEnergies(m, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrUnsupportedElementKind)

	err = ComputeShapeQuality(m, log)
	assert.ErrorIs(t, err, mesh.ErrUnsupportedElementKind)
}

// Flags and values must never disagree, whatever the element shapes.
func TestFinitenessFlagsAgree(t *testing.T) {
	m := newTetMesh([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
		{2, 0.5, 0.001},
	}, [][]int{
		{0, 1, 2, 3}, // well shaped
		{0, 1, 2, 4}, // flat
		{0, 2, 1, 3}, // inverted
		{0, 1, 4, 5}, // nearly flat sliver
	})
	log, _ := testLogger()

	_, err := ComputeDistortionEnergies(m, log)
	require.NoError(t, err)

	amips, _ := m.Attributes.Scalar(AttrConformalAMIPS)
	finiteAmips, _ := m.Attributes.Flag(AttrFiniteAMIPS)
	dirichlet, _ := m.Attributes.Scalar(AttrSymmetricDirichlet)
	finiteDirichlet, _ := m.Attributes.Flag(AttrFiniteDirichlet)
	orients, _ := m.Attributes.Scalar(AttrOrientations)

	isFinite := func(v float64) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	for k := range amips {
		assert.Equal(t, isFinite(amips[k]), finiteAmips[k], "amips flag, tet %d", k)
		assert.Equal(t, isFinite(dirichlet[k]), finiteDirichlet[k], "dirichlet flag, tet %d", k)
		assert.Contains(t, []float64{-1, 0, 1}, orients[k], "orientation, tet %d", k)
	}
}
