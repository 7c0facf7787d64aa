package metrics

import (
	"math"

	"github.com/lintang-b-s/greenroute/pkg"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/util"
)

type Metric struct {
	graph *da.Graph
}

func NewMetric(graph *da.Graph) *Metric {
	return &Metric{graph: graph}
}

/*
Calculate. walks consecutive vertex pairs of path and aggregates trip metrics over the first matching directed
edge of each pair. a pair without an edge (the {start, end} fallback of an exhausted search) contributes
nothing, so a fallback path reports zero distance and zero matched edges.

the safety score is the weakest link: the minimum per-edge rating along the path, starting from 100.
*/
func (met *Metric) Calculate(path []da.Index, mode pkg.TransportMode) da.RouteMetrics {
	var (
		totalDistance float64
		totalCarbon   float64
		safetyScore   = pkg.MAX_SAFETY_SCORE
		matched       int
	)

	for i := 0; i+1 < len(path); i++ {
		edge, ok := met.graph.FindEdge(path[i], path[i+1])
		if !ok {
			continue
		}
		matched++

		totalDistance += edge.GetLength()
		totalCarbon += edge.GetAvgCarbonPPM() * edge.GetLength() / 1000 // ppm·km

		safetyScore = math.Min(safetyScore, EdgeSafety(edge))
	}

	return da.RouteMetrics{
		DistanceMeters:      int(math.Round(totalDistance)),
		DurationSeconds:     DurationSeconds(totalDistance, mode),
		CO2SavedKg:          CO2SavedKg(totalDistance, mode),
		SafetyScore:         int(math.Round(util.Clamp(safetyScore, 0, pkg.MAX_SAFETY_SCORE))),
		CarbonExposurePpmKm: util.RoundFloat(totalCarbon, pkg.CO2_DECIMAL_PLACES),
		AverageNDVI:         met.averageNDVI(path),
		MatchedEdges:        matched,
	}
}

// EdgeSafety. per-edge safety rating, lighting*5 + 25 with cctv + (10-crowd)*2.5. not clamped.
func EdgeSafety(e *da.Edge) float64 {
	cctvBonus := 0.0
	if e.HasCCTVCoverage() {
		cctvBonus = pkg.CCTV_SAFETY_BONUS
	}
	return e.GetLightingLevel()*pkg.LIGHTING_SAFETY_FACTOR + cctvBonus +
		(pkg.MAX_CROWD_DENSITY-e.GetCrowdDensity())*pkg.CROWD_SAFETY_FACTOR
}

// CO2SavedKg. emissions avoided against a 120 g/km car over the same distance.
// walking and cycling earn the full credit, any other mode 70% of it.
// the result is rounded on its decimal representation, so 0.0105 kg reports as 0.011.
func CO2SavedKg(distanceMeters float64, mode pkg.TransportMode) float64 {
	carCO2 := distanceMeters * pkg.CAR_EMISSION_KG_PER_KM / 1000
	saved := carCO2
	if mode != pkg.WALK && mode != pkg.CYCLE {
		saved = carCO2 * pkg.OTHER_MODE_CO2_CREDIT
	}
	return util.RoundFixed(saved, pkg.CO2_DECIMAL_PLACES)
}

func DurationSeconds(distanceMeters float64, mode pkg.TransportMode) int {
	speed := pkg.WALKING_SPEED_M_PER_HOUR
	if mode == pkg.CYCLE {
		speed = pkg.CYCLING_SPEED_M_PER_HOUR
	}
	return int(math.Round(distanceMeters / speed * 3600))
}

func (met *Metric) averageNDVI(path []da.Index) float64 {
	if len(path) == 0 {
		return 0
	}
	sum := 0.0
	for _, u := range path {
		sum += met.graph.GetNode(u).NDVI
	}
	return util.RoundFloat(sum/float64(len(path)), pkg.CO2_DECIMAL_PLACES)
}
