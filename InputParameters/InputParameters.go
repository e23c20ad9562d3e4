package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type BiharmonicParameters struct {
	Title           string  `yaml:"Title"`
	Dimension       int     `yaml:"Dimension"`
	NRefinements    int     `yaml:"NRefinements"`
	PolynomialOrder int     `yaml:"PolynomialOrder"`
	PenaltyJumpGrad float64 `yaml:"PenaltyJumpGrad"`
	PenaltyJumpVal  float64 `yaml:"PenaltyJumpVal"`
}

func (bp *BiharmonicParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

func (bp *BiharmonicParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%d]\t\t\t\t= Dimension\n", bp.Dimension)
	fmt.Printf("[%d]\t\t\t\t= NRefinements\n", bp.NRefinements)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", bp.PolynomialOrder)
	fmt.Printf("%8.5f\t\t= PenaltyJumpGrad\n", bp.PenaltyJumpGrad)
	fmt.Printf("%8.5f\t\t= PenaltyJumpVal\n", bp.PenaltyJumpVal)
}
