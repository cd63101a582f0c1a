package params

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// RunParameters are obtained from the YAML input file. Command line flags
// take precedence over file values.
type RunParameters struct {
	Title              string  `yaml:"Title"`
	LogLevel           string  `yaml:"LogLevel"`
	CSVFile            string  `yaml:"CSVFile"`
	MaxRadiusEdgeRatio float64 `yaml:"MaxRadiusEdgeRatio"`
	MinDihedralAngle   float64 `yaml:"MinDihedralAngle"` // radians
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Log Level\n", rp.LogLevel)
	fmt.Printf("[%s]\t\t= CSV File\n", rp.CSVFile)
	fmt.Printf("%8.5f\t\t= MaxRadiusEdgeRatio\n", rp.MaxRadiusEdgeRatio)
	fmt.Printf("%8.5f\t\t= MinDihedralAngle\n", rp.MinDihedralAngle)
}
