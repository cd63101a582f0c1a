/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/tetqual/mesh"
	"github.com/notargets/tetqual/params"
	"github.com/notargets/tetqual/quality"
	"github.com/notargets/tetqual/utils"
)

type AnalyzeRun struct {
	InputMesh  string
	OutputMesh string
	CSVFile    string
	LogLevel   string
	ParamsFile string
	Profile    bool
}

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute distortion of each element of a tet mesh",
	Long: `
Computes conformal AMIPS and symmetric Dirichlet distortion energies plus
shape quality measures per tetrahedron, writes the mesh back out with all
attributes attached, and optionally exports a CSV quality table.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ar  = &AnalyzeRun{}
		)
		if ar.InputMesh, err = cmd.Flags().GetString("inputMesh"); err != nil {
			panic(err)
		}
		if ar.OutputMesh, err = cmd.Flags().GetString("outputMesh"); err != nil {
			panic(err)
		}
		ar.CSVFile, _ = cmd.Flags().GetString("csv")
		ar.LogLevel, _ = cmd.Flags().GetString("logLevel")
		ar.ParamsFile, _ = cmd.Flags().GetString("paramsFile")
		ar.Profile, _ = cmd.Flags().GetBool("profile")

		rp := processAnalyzeInput(cmd, ar)
		RunAnalyze(ar, rp)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringP("inputMesh", "F", "", "Input mesh file in .su2 or Gmsh 2.2 .msh format")
	analyzeCmd.Flags().StringP("outputMesh", "o", "", "Output mesh file (Gmsh 2.2), written with all computed attributes")
	analyzeCmd.Flags().String("csv", "", "Optional output CSV table of per-tet quality values")
	analyzeCmd.Flags().String("logLevel", "WARNING", "Log level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	analyzeCmd.Flags().StringP("paramsFile", "I", "", "YAML file of run parameters:\n\t- LogLevel\n\t- CSVFile\n\t- MaxRadiusEdgeRatio\n\t- MinDihedralAngle")
	analyzeCmd.Flags().Bool("profile", false, "Write a CPU profile for the run")
}

func processAnalyzeInput(cmd *cobra.Command, ar *AnalyzeRun) (rp *params.RunParameters) {
	var (
		err      error
		willExit bool
	)
	if len(ar.InputMesh) == 0 {
		err = fmt.Errorf("must supply an input mesh file (-F, --inputMesh)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(ar.OutputMesh) == 0 {
		err = fmt.Errorf("must supply an output mesh file (-o, --outputMesh)")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}

	rp = &params.RunParameters{}
	if len(ar.ParamsFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(ar.ParamsFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = rp.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		// Flags override file values
		if !cmd.Flags().Changed("logLevel") && len(rp.LogLevel) != 0 {
			ar.LogLevel = rp.LogLevel
		}
		if !cmd.Flags().Changed("csv") && len(rp.CSVFile) != 0 {
			ar.CSVFile = rp.CSVFile
		}
	}
	return
}

func RunAnalyze(ar *AnalyzeRun, rp *params.RunParameters) {
	level, err := utils.ParseLogLevel(ar.LogLevel)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	log := utils.NewLogger(level)

	if ar.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	m, err := mesh.ReadMeshFile(ar.InputMesh)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	log.Debugf("%s", m.Statistics())

	if _, err = quality.ComputeDistortionEnergies(m, log); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = quality.ComputeShapeQuality(m, log); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = quality.ReportThresholds(m, rp.MaxRadiusEdgeRatio, rp.MinDihedralAngle, log); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	if len(ar.CSVFile) != 0 {
		if err = quality.ExportCSV(m, ar.CSVFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}

	if err = mesh.WriteGmsh(m, ar.OutputMesh); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	log.Infof("wrote %s", ar.OutputMesh)
}
