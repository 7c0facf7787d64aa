package costfunction

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/greenroute/pkg"
)

var ErrInvalidObjective = errors.New("invalid route objective")

type EdgeAttributes interface {
	GetLength() float64
	GetAvgCarbonPPM() float64
	GetLightingLevel() float64
	HasCCTVCoverage() bool
	GetCrowdDensity() float64
}

// CostFunction. every implementation returns at least the edge length, so dijkstra never sees a negative weight.
type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
	GetObjective() pkg.Objective
}

func NewCostFunction(objective pkg.Objective) (CostFunction, error) {
	switch objective {
	case pkg.ECO_OBJECTIVE:
		return NewEcoCostFunction(), nil
	case pkg.SAFE_OBJECTIVE:
		return NewSafetyCostFunction(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidObjective, objective)
	}
}

func ParseObjective(s string) (pkg.Objective, error) {
	switch pkg.Objective(s) {
	case pkg.ECO_OBJECTIVE, pkg.SAFE_OBJECTIVE:
		return pkg.Objective(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidObjective, s)
	}
}
