package costfunction

import (
	"math"

	"github.com/lintang-b-s/greenroute/pkg"
)

type SafetyFunction struct {
}

func NewSafetyCostFunction() *SafetyFunction {
	return &SafetyFunction{}
}

// GetWeight. distance plus penalties for darkness, missing cctv and crowding.
// sensor values outside their 0-10 scale never turn a penalty into a bonus.
func (sf *SafetyFunction) GetWeight(e EdgeAttributes) float64 {
	lightingPenalty := math.Max(0, pkg.MAX_LIGHTING_LEVEL-e.GetLightingLevel()) * pkg.LIGHTING_PENALTY_FACTOR

	cctvPenalty := pkg.NO_CCTV_PENALTY
	if e.HasCCTVCoverage() {
		cctvPenalty = 0
	}

	crowdPenalty := math.Max(0, e.GetCrowdDensity()) * pkg.CROWD_PENALTY_FACTOR

	return e.GetLength() + lightingPenalty + cctvPenalty + crowdPenalty
}

func (sf *SafetyFunction) GetObjective() pkg.Objective {
	return pkg.SAFE_OBJECTIVE
}
