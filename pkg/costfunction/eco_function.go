package costfunction

import (
	"math"

	"github.com/lintang-b-s/greenroute/pkg"
)

type EcoFunction struct {
}

func NewEcoCostFunction() *EcoFunction {
	return &EcoFunction{}
}

// GetWeight. distance + 0.5 per ppm above the 350 ppm baseline. cleaner air than the baseline earns no discount.
func (ef *EcoFunction) GetWeight(e EdgeAttributes) float64 {
	carbonPenalty := math.Max(0, e.GetAvgCarbonPPM()-pkg.CARBON_BASELINE_PPM) * pkg.CARBON_PENALTY_FACTOR
	return e.GetLength() + carbonPenalty
}

func (ef *EcoFunction) GetObjective() pkg.Objective {
	return pkg.ECO_OBJECTIVE
}
