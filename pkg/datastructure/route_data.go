package datastructure

import "github.com/lintang-b-s/greenroute/pkg"

type RouteMetrics struct {
	DistanceMeters      int     `json:"distance_meters"`
	DurationSeconds     int     `json:"duration_seconds"`
	CO2SavedKg          float64 `json:"co2_saved_kg"`
	SafetyScore         int     `json:"safety_score"`
	CarbonExposurePpmKm float64 `json:"carbon_exposure_ppm_km"`
	AverageNDVI         float64 `json:"avg_ndvi"`

	// number of consecutive path pairs backed by a real edge. zero for a fallback path.
	MatchedEdges int `json:"matched_edges"`
}

type Route struct {
	Objective pkg.Objective `json:"objective"`
	Path      []string      `json:"path"`
	Waypoints []Coordinate  `json:"points"`
	Metrics   RouteMetrics  `json:"metrics"`
	Cost      float64       `json:"cost"`

	// false when the search exhausted its frontier and Path is the direct {start, end} pair
	Found bool `json:"found"`
}

func (r *Route) IsFallback() bool {
	return !r.Found
}

type RoutePlan struct {
	Eco  *Route `json:"eco_route"`
	Safe *Route `json:"safe_route"`

	Start           string  `json:"start_node_id"`
	End             string  `json:"end_node_id"`
	StartSnapMeters float64 `json:"start_snap_meters"`
	EndSnapMeters   float64 `json:"end_snap_meters"`
}
