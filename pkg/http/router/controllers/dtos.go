package controllers

import (
	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
	"github.com/lintang-b-s/greenroute/pkg/util"
)

type routeRequest struct {
	FromLat *float64 `json:"from_lat" validate:"required,min=-90,max=90"`
	FromLng *float64 `json:"from_lng" validate:"required,min=-180,max=180"`
	ToLat   *float64 `json:"to_lat" validate:"required,min=-90,max=90"`
	ToLng   *float64 `json:"to_lng" validate:"required,min=-180,max=180"`
	Mode    string   `json:"mode" validate:"omitempty,oneof=walk cycle other"`
}

type batchRouteRequest struct {
	Queries []routeRequest `json:"queries" validate:"required,min=1,dive"`
}

type routeResponse struct {
	Objective           string                     `json:"objective"`
	Found               bool                       `json:"found"`
	Path                []string                   `json:"path"`
	Points              []datastructure.Coordinate `json:"points"`
	Polyline            string                     `json:"polyline"`
	DistanceMeters      int                        `json:"distance_meters"`
	DurationSeconds     int                        `json:"duration_seconds"`
	CO2SavedKg          float64                    `json:"co2_saved_kg"`
	SafetyScore         int                        `json:"safety_score"`
	CarbonExposurePpmKm float64                    `json:"carbon_exposure_ppm_km"`
	AvgNDVI             float64                    `json:"avg_ndvi"`
	Cost                float64                    `json:"cost"`
}

func NewRouteResponse(r *datastructure.Route) routeResponse {
	return routeResponse{
		Objective:           string(r.Objective),
		Found:               r.Found,
		Path:                r.Path,
		Points:              r.Waypoints,
		Polyline:            geo.PolylineFromCoords(r.Waypoints),
		DistanceMeters:      r.Metrics.DistanceMeters,
		DurationSeconds:     r.Metrics.DurationSeconds,
		CO2SavedKg:          r.Metrics.CO2SavedKg,
		SafetyScore:         r.Metrics.SafetyScore,
		CarbonExposurePpmKm: r.Metrics.CarbonExposurePpmKm,
		AvgNDVI:             r.Metrics.AverageNDVI,
		Cost:                r.Cost,
	}
}

type routePlanResponse struct {
	EcoRoute        routeResponse `json:"eco_route"`
	SafeRoute       routeResponse `json:"safe_route"`
	StartNodeID     string        `json:"start_node_id"`
	EndNodeID       string        `json:"end_node_id"`
	StartSnapMeters float64       `json:"start_snap_meters"`
	EndSnapMeters   float64       `json:"end_snap_meters"`
}

func NewRoutePlanResponse(plan *datastructure.RoutePlan) routePlanResponse {
	return routePlanResponse{
		EcoRoute:        NewRouteResponse(plan.Eco),
		SafeRoute:       NewRouteResponse(plan.Safe),
		StartNodeID:     plan.Start,
		EndNodeID:       plan.End,
		StartSnapMeters: plan.StartSnapMeters,
		EndSnapMeters:   plan.EndSnapMeters,
	}
}

type batchItemResponse struct {
	Index int                `json:"index"`
	Plan  *routePlanResponse `json:"plan,omitempty"`
	Error string             `json:"error,omitempty"`
}

func NewBatchResponse(results []usecases.BatchResult) []batchItemResponse {
	resp := make([]batchItemResponse, len(results))
	for i, res := range results {
		resp[i].Index = i
		if res.Err != nil {
			resp[i].Error = batchErrorMessage(res.Err)
			continue
		}
		plan := NewRoutePlanResponse(res.Plan)
		resp[i].Plan = &plan
	}
	return resp
}

// batchErrorMessage. internal failures are reported without their cause.
func batchErrorMessage(err error) string {
	if util.ErrorCode(err) == util.ErrInternalServerError {
		return util.MessageInternalServerError
	}
	return err.Error()
}

type boundingBoxResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

type graphInfoResponse struct {
	NumberOfNodes        int                  `json:"number_of_nodes"`
	NumberOfEdges        int                  `json:"number_of_edges"`
	NumberOfComponents   int                  `json:"number_of_components"`
	LargestComponentSize int                  `json:"largest_component_size"`
	BoundingBox          *boundingBoxResponse `json:"bounding_box,omitempty"`
}

func NewGraphInfoResponse(info *usecases.GraphInfo) graphInfoResponse {
	resp := graphInfoResponse{
		NumberOfNodes:        info.NumberOfNodes,
		NumberOfEdges:        info.NumberOfEdges,
		NumberOfComponents:   info.NumberOfComponents,
		LargestComponentSize: info.LargestComponentSize,
	}
	if bb := info.BoundingBox; bb != nil {
		resp.BoundingBox = &boundingBoxResponse{
			MinLat: bb.GetMinLat(),
			MinLng: bb.GetMinLng(),
			MaxLat: bb.GetMaxLat(),
			MaxLng: bb.GetMaxLng(),
		}
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
