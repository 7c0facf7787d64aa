package geo

import (
	"github.com/lintang-b-s/greenroute/pkg"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RoutePlanFeatureCollection. one LineString feature per objective, metrics stored as feature properties.
// geojson positions are [lng, lat].
func RoutePlanFeatureCollection(plan *da.RoutePlan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range []*da.Route{plan.Eco, plan.Safe} {
		if r == nil {
			continue
		}
		fc.Append(routeFeature(r))
	}
	return fc
}

func routeFeature(r *da.Route) *geojson.Feature {
	ls := make(orb.LineString, 0, len(r.Waypoints))
	for _, c := range r.Waypoints {
		ls = append(ls, orb.Point{c.Lng, c.Lat})
	}

	f := geojson.NewFeature(ls)
	f.Properties["objective"] = string(r.Objective)
	f.Properties["found"] = r.Found
	f.Properties["distance_meters"] = r.Metrics.DistanceMeters
	f.Properties["duration_seconds"] = r.Metrics.DurationSeconds
	f.Properties["co2_saved_kg"] = r.Metrics.CO2SavedKg
	f.Properties["safety_score"] = r.Metrics.SafetyScore
	f.Properties["carbon_exposure_ppm_km"] = r.Metrics.CarbonExposurePpmKm
	f.Properties["avg_ndvi"] = r.Metrics.AverageNDVI
	if r.Objective == pkg.ECO_OBJECTIVE {
		f.Properties["stroke"] = "#22c55e"
	} else {
		f.Properties["stroke"] = "#3b82f6"
	}
	return f
}
