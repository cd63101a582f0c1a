package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRunParameters(t *testing.T) {
	var (
		rp   RunParameters
		data = []byte(`
Title: "Nozzle mesh quality"
LogLevel: INFO
CSVFile: quality.csv
MaxRadiusEdgeRatio: 2.0
MinDihedralAngle: 0.17453
`)
	)
	require.NoError(t, rp.Parse(data))
	assert.Equal(t, "Nozzle mesh quality", rp.Title)
	assert.Equal(t, "INFO", rp.LogLevel)
	assert.Equal(t, "quality.csv", rp.CSVFile)
	assert.Equal(t, 2.0, rp.MaxRadiusEdgeRatio)
	assert.InDelta(t, 0.17453, rp.MinDihedralAngle, 1.e-10)
}

func TestParsePartialParameters(t *testing.T) {
	var rp RunParameters
	require.NoError(t, rp.Parse([]byte("Title: minimal\n")))
	assert.Equal(t, "minimal", rp.Title)
	// Unset thresholds stay zero, which disables the report
	assert.Equal(t, 0., rp.MaxRadiusEdgeRatio)
	assert.Equal(t, 0., rp.MinDihedralAngle)
}

func TestParseInvalidYAML(t *testing.T) {
	var rp RunParameters
	assert.Error(t, rp.Parse([]byte("Title: [unclosed\n")))
}
