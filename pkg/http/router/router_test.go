package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
	"github.com/lintang-b-s/greenroute/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unavailableStore struct{}

func (unavailableStore) ListNodes(ctx context.Context) ([]da.Node, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func (unavailableStore) ListEdges(ctx context.Context) ([]da.Edge, error) {
	return nil, errors.New("dial tcp: connection refused")
}

type routeBody struct {
	Objective       string          `json:"objective"`
	Found           bool            `json:"found"`
	Path            []string        `json:"path"`
	Points          []da.Coordinate `json:"points"`
	Polyline        string          `json:"polyline"`
	DistanceMeters  int             `json:"distance_meters"`
	DurationSeconds int             `json:"duration_seconds"`
	CO2SavedKg      float64         `json:"co2_saved_kg"`
	SafetyScore     int             `json:"safety_score"`
	Cost            float64         `json:"cost"`
}

type planBody struct {
	EcoRoute  routeBody `json:"eco_route"`
	SafeRoute routeBody `json:"safe_route"`
	Start     string    `json:"start_node_id"`
	End       string    `json:"end_node_id"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestHandler(t *testing.T, provider snapshot.Provider) http.Handler {
	t.Helper()
	log := zap.NewNop()
	svc := usecases.NewRoutingService(log, provider, engine.NewEngine(log), 0.002, 2, 2)
	return NewAPI(log).Handler(RateLimitConfig{}, svc)
}

func campusStore() *snapshot.StaticProvider {
	return snapshot.NewStaticProvider(
		[]da.Node{
			da.NewNode("A", -7.7700, 110.3700, 0.3),
			da.NewNode("B", -7.7709, 110.3700, 0.6),
			da.NewNode("C", -7.7718, 110.3700, 0.9),
		},
		[]da.Edge{
			da.NewEdge("A", "B", 100, 300, 10, true, 0),
			da.NewEdge("B", "C", 100, 600, 0, false, 10),
		})
}

func serve(h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestComputeRoutes(t *testing.T) {
	h := newTestHandler(t, campusStore())

	rec := serve(h, http.MethodGet,
		"/api/computeRoutes?from_lat=-7.7700&from_lng=110.3700&to_lat=-7.7718&to_lng=110.3700&mode=walk", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var resp struct {
		Data planBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	eco := resp.Data.EcoRoute
	assert.Equal(t, "eco", eco.Objective)
	assert.True(t, eco.Found)
	assert.Equal(t, []string{"A", "B", "C"}, eco.Path)
	assert.Len(t, eco.Points, 3)
	assert.NotEmpty(t, eco.Polyline)
	assert.Equal(t, 200, eco.DistanceMeters)
	assert.Equal(t, 144, eco.DurationSeconds)
	assert.Equal(t, 0.024, eco.CO2SavedKg)
	assert.Equal(t, 0, eco.SafetyScore)
	assert.InDelta(t, 325, eco.Cost, 1e-9)
	assert.Equal(t, "safe", resp.Data.SafeRoute.Objective)
	assert.Equal(t, "A", resp.Data.Start)
	assert.Equal(t, "C", resp.Data.End)
}

func TestComputeRoutesBadRequest(t *testing.T) {
	h := newTestHandler(t, campusStore())

	testCases := []struct {
		name   string
		target string
	}{
		{"missing to_lng", "/api/computeRoutes?from_lat=-7.77&from_lng=110.37&to_lat=-7.77"},
		{"not a number", "/api/computeRoutes?from_lat=abc&from_lng=110.37&to_lat=-7.77&to_lng=110.37"},
		{"latitude out of range", "/api/computeRoutes?from_lat=95&from_lng=110.37&to_lat=-7.77&to_lng=110.37"},
		{"unknown mode", "/api/computeRoutes?from_lat=-7.77&from_lng=110.37&to_lat=-7.77&to_lng=110.37&mode=car"},
		{"upper case mode", "/api/computeRoutes?from_lat=-7.77&from_lng=110.37&to_lat=-7.77&to_lng=110.37&mode=CYCLE"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.target, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(http.StatusBadRequest), body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestComputeRoutesGeoJSON(t *testing.T) {
	h := newTestHandler(t, campusStore())

	rec := serve(h, http.MethodGet,
		"/api/computeRoutes?from_lat=-7.7700&from_lng=110.3700&to_lat=-7.7718&to_lng=110.3700&format=geojson", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{110.37, -7.77}, fc.Features[0].Geometry.Coordinates[0])
	assert.Equal(t, "eco", fc.Features[0].Properties["objective"])
	assert.Equal(t, "safe", fc.Features[1].Properties["objective"])
}

func TestEcoRoute(t *testing.T) {
	h := newTestHandler(t, campusStore())

	rec := serve(h, http.MethodPost, "/api/ecoRoute", "application/json",
		`{"from_lat":-7.7700,"from_lng":110.3700,"to_lat":-7.7718,"to_lng":110.3700,"mode":"cycle"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp planBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"A", "B", "C"}, resp.EcoRoute.Path)
	assert.Equal(t, 48, resp.EcoRoute.DurationSeconds)
	assert.Equal(t, []string{"A", "B", "C"}, resp.SafeRoute.Path)

	testCases := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{"wrong content type", "text/plain", `{}`, http.StatusUnsupportedMediaType},
		{"missing content type", "", `{}`, http.StatusUnsupportedMediaType},
		{"malformed json", "application/json", `{"from_lat":`, http.StatusBadRequest},
		{"missing coordinates", "application/json", `{"from_lat":-7.77,"from_lng":110.37}`, http.StatusBadRequest},
		{"unknown field", "application/json", `{"from_lat":-7.77,"from_lng":110.37,"to_lat":-7.77,"to_lng":110.37,"speed":3}`, http.StatusBadRequest},
		{"empty body", "application/json", ``, http.StatusBadRequest},
		{"upper case mode", "application/json", `{"from_lat":-7.77,"from_lng":110.37,"to_lat":-7.77,"to_lng":110.37,"mode":"CYCLE"}`, http.StatusBadRequest},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/api/ecoRoute", tt.contentType, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestComputeRoutesBatch(t *testing.T) {
	h := newTestHandler(t, campusStore())

	rec := serve(h, http.MethodPost, "/api/computeRoutesBatch", "application/json", `{"queries":[
		{"from_lat":-7.7700,"from_lng":110.3700,"to_lat":-7.7718,"to_lng":110.3700},
		{"from_lat":-7.7718,"from_lng":110.3700,"to_lat":-7.7700,"to_lng":110.3700,"mode":"other"}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data []struct {
			Index int       `json:"index"`
			Plan  *planBody `json:"plan"`
			Error string    `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 0, resp.Data[0].Index)
	assert.Equal(t, []string{"A", "B", "C"}, resp.Data[0].Plan.EcoRoute.Path)
	assert.Equal(t, 1, resp.Data[1].Index)
	assert.False(t, resp.Data[1].Plan.EcoRoute.Found)
	assert.Equal(t, []string{"C", "A"}, resp.Data[1].Plan.EcoRoute.Path)

	q := `{"from_lat":-7.77,"from_lng":110.37,"to_lat":-7.77,"to_lng":110.37}`
	rec = serve(h, http.MethodPost, "/api/computeRoutesBatch", "application/json",
		`{"queries":[`+q+`,`+q+`,`+q+`]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/computeRoutesBatch", "application/json", `{"queries":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGraphInfo(t *testing.T) {
	h := newTestHandler(t, campusStore())

	rec := serve(h, http.MethodGet, "/api/graph", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Nodes      int `json:"number_of_nodes"`
			Edges      int `json:"number_of_edges"`
			Components int `json:"number_of_components"`
			BB         struct {
				MinLat float64 `json:"min_lat"`
				MaxLat float64 `json:"max_lat"`
			} `json:"bounding_box"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Nodes)
	assert.Equal(t, 2, resp.Data.Edges)
	assert.Equal(t, 3, resp.Data.Components)
	assert.InDelta(t, -7.7718, resp.Data.BB.MinLat, 1e-9)
	assert.InDelta(t, -7.7700, resp.Data.BB.MaxLat, 1e-9)
}

func TestSnapshotStoreUnavailable(t *testing.T) {
	h := newTestHandler(t, unavailableStore{})

	for _, target := range []string{
		"/api/computeRoutes?from_lat=-7.77&from_lng=110.37&to_lat=-7.77&to_lng=110.37",
		"/api/graph",
	} {
		rec := serve(h, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusText(http.StatusBadGateway), body.Error.Code)
		assert.NotContains(t, body.Error.Message, "connection refused")
	}
}

func TestEmptyCampus(t *testing.T) {
	h := newTestHandler(t, snapshot.NewStaticProvider(nil, nil))

	rec := serve(h, http.MethodGet, "/api/computeRoutes?from_lat=-7.77&from_lng=110.37&to_lat=-7.77&to_lng=110.37", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHeartbeatAndMetrics(t *testing.T) {
	h := newTestHandler(t, unavailableStore{})

	rec := serve(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ".", rec.Body.String())

	rec = serve(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "greenroute_snapshot_fetch_failures_total")
}
