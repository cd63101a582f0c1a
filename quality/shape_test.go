package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularTetShapeQuality(t *testing.T) {
	m := regularTetMesh()
	log, _ := testLogger()

	require.NoError(t, ComputeShapeQuality(m, log))

	ratio, err := m.Attributes.Scalar(AttrRadiusRatio)
	require.NoError(t, err)
	assert.InDelta(t, 1., ratio[0], 1.e-12)

	inr, err := m.Attributes.Scalar(AttrInradius)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(6)/12, inr[0], 1.e-12)
	cir, err := m.Attributes.Scalar(AttrCircumradius)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(6)/4, cir[0], 1.e-12)

	angles, err := m.Attributes.ScalarN(AttrDihedralAngle)
	require.NoError(t, err)
	require.Equal(t, 6, angles.Components)
	require.Len(t, angles.Data, 6)
	expected := math.Acos(1. / 3.)
	for _, a := range angles.Data {
		assert.InDelta(t, expected, a, 1.e-12)
	}

	minA, err := m.Attributes.Scalar(AttrMinDihedralAngle)
	require.NoError(t, err)
	maxA, err := m.Attributes.Scalar(AttrMaxDihedralAngle)
	require.NoError(t, err)
	assert.InDelta(t, expected, minA[0], 1.e-12)
	assert.InDelta(t, expected, maxA[0], 1.e-12)

	rer, err := m.Attributes.Scalar(AttrRadiusEdgeRatio)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(6)/4, rer[0], 1.e-12)
	er, err := m.Attributes.Scalar(AttrEdgeRatio)
	require.NoError(t, err)
	assert.InDelta(t, 1., er[0], 1.e-12)
}

func TestShapeQualityMinMaxBracket(t *testing.T) {
	// Irregular but valid tet: extremes must bracket all six angles
	m := newTetMesh([][]float64{
		{0, 0, 0},
		{2, 0, 0},
		{0, 1, 0},
		{0.3, 0.2, 0.5},
	}, [][]int{{0, 1, 2, 3}})
	log, _ := testLogger()

	require.NoError(t, ComputeShapeQuality(m, log))

	angles, err := m.Attributes.ScalarN(AttrDihedralAngle)
	require.NoError(t, err)
	minA, _ := m.Attributes.Scalar(AttrMinDihedralAngle)
	maxA, _ := m.Attributes.Scalar(AttrMaxDihedralAngle)
	assert.Less(t, minA[0], maxA[0])
	for _, a := range angles.Data {
		assert.GreaterOrEqual(t, a, minA[0])
		assert.LessOrEqual(t, a, maxA[0])
	}

	ratio, _ := m.Attributes.Scalar(AttrRadiusRatio)
	assert.Greater(t, ratio[0], 0.)
	assert.Less(t, ratio[0], 1.)
}
