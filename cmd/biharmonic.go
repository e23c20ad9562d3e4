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
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/dgfem/biharm/InputParameters"
	"github.com/dgfem/biharm/model_problems/BiLaplacian"
)

type ModelBiharmonic struct {
	Dimension    int
	NRefinements int
	N            int // Polynomial degree
	PenaltyGrad  float64
	PenaltyVal   float64
	ICFile       string
	Graph        bool
	Delay        time.Duration
	Profile      bool
}

// BiharmonicCmd represents the biharmonic command
var BiharmonicCmd = &cobra.Command{
	Use:   "biharmonic",
	Short: "Bi-Laplacian solver on a uniformly refined unit square or cube",
	Long: `
Assembles and solves the discontinuous Galerkin discretization of the
biharmonic problem with lifted discrete Hessians and interior penalties,
then reports the broken H2, broken H1 and L2 errors against the
manufactured solution,

biharm biharmonic -r 3 -n 2`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("biharmonic called")
		mb := &ModelBiharmonic{}
		mb.Dimension, _ = cmd.Flags().GetInt("dimension")
		mb.NRefinements, _ = cmd.Flags().GetInt("refinements")
		mb.N, _ = cmd.Flags().GetInt("n")
		mb.PenaltyGrad, _ = cmd.Flags().GetFloat64("penaltyGrad")
		mb.PenaltyVal, _ = cmd.Flags().GetFloat64("penaltyVal")
		if mb.ICFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mb.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mb.Delay = time.Duration(dr) * time.Millisecond
		mb.Profile, _ = cmd.Flags().GetBool("profile")
		processInput(mb)
		RunBiharmonic(mb)
	},
}

// processInput overlays the optional YAML parameters file onto the flag
// values, so a parameters file fully describes a run.
func processInput(mb *ModelBiharmonic) {
	var (
		err error
	)
	if len(mb.ICFile) == 0 {
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(mb.ICFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ip := &InputParameters.BiharmonicParameters{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Biharmonic Test Case"
Dimension: 2
NRefinements: 3
PolynomialOrder: 2
PenaltyJumpGrad: 1.
PenaltyJumpVal: 1.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	ip.Print()
	if ip.Dimension != 0 {
		mb.Dimension = ip.Dimension
	}
	if ip.NRefinements != 0 {
		mb.NRefinements = ip.NRefinements
	}
	if ip.PolynomialOrder != 0 {
		mb.N = ip.PolynomialOrder
	}
	if ip.PenaltyJumpGrad != 0 {
		mb.PenaltyGrad = ip.PenaltyJumpGrad
	}
	if ip.PenaltyJumpVal != 0 {
		mb.PenaltyVal = ip.PenaltyJumpVal
	}
}

func init() {
	rootCmd.AddCommand(BiharmonicCmd)
	BiharmonicCmd.Flags().IntP("dimension", "m", 2, "space dimension, 2 or 3")
	BiharmonicCmd.Flags().IntP("refinements", "r", 3, "number of uniform mesh refinements")
	BiharmonicCmd.Flags().IntP("n", "n", 2, "polynomial degree")
	BiharmonicCmd.Flags().Float64("penaltyGrad", 1., "penalty coefficient on the normal gradient jumps")
	BiharmonicCmd.Flags().Float64("penaltyVal", 1., "penalty coefficient on the solution jumps")
	BiharmonicCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- NRefinements\n\t- PolynomialOrder")
	BiharmonicCmd.Flags().BoolP("graph", "g", false, "display a centerline graph of the solution")
	BiharmonicCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	BiharmonicCmd.Flags().Bool("profile", false, "generate a runtime profile of the solver")
}

func RunBiharmonic(mb *ModelBiharmonic) {
	var (
		err error
		c   *BiLaplacian.BiLaplacianLDGLift
	)
	if mb.Profile {
		defer profile.Start().Stop()
	}
	if c, err = BiLaplacian.NewBiLaplacianLDGLift(
		mb.Dimension, mb.NRefinements, mb.N, mb.PenaltyGrad, mb.PenaltyVal); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = c.Run(mb.Graph, mb.Delay); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
