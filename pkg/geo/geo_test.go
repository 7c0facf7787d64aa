package geo

import (
	"testing"

	"github.com/lintang-b-s/greenroute/pkg"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestCalculateHaversineDistance(t *testing.T) {
	// one degree of latitude is roughly 111.19 km
	assert.InDelta(t, 111.19, CalculateHaversineDistance(0, 0, 1, 0), 0.01)
	assert.Equal(t, 0.0, CalculateHaversineDistance(-7.77, 110.37, -7.77, 110.37))
}

func TestSnapDistanceMeters(t *testing.T) {
	q := da.NewCoordinate(-7.7700, 110.3700)
	n := da.NewNode("gate", -7.7710, 110.3700, 0)
	want := CalculateHaversineDistance(q.Lat, q.Lng, n.Lat, n.Lng) * 1000
	assert.InDelta(t, want, SnapDistanceMeters(q, n), 0.01)
}

func TestGraphBoundingBox(t *testing.T) {
	empty, err := da.NewGraph(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, GraphBoundingBox(empty))

	g, err := da.NewGraph([]da.Node{
		da.NewNode("a", -7.772, 110.371, 0),
		da.NewNode("b", -7.770, 110.375, 0),
		da.NewNode("c", -7.775, 110.373, 0),
	}, nil)
	require.NoError(t, err)

	bb := GraphBoundingBox(g)
	require.NotNil(t, bb)
	assert.InDelta(t, -7.775, bb.GetMinLat(), 1e-9)
	assert.InDelta(t, 110.371, bb.GetMinLng(), 1e-9)
	assert.InDelta(t, -7.770, bb.GetMaxLat(), 1e-9)
	assert.InDelta(t, 110.375, bb.GetMaxLng(), 1e-9)
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []da.Coordinate{
		da.NewCoordinate(38.5, -120.2),
		da.NewCoordinate(40.7, -120.95),
		da.NewCoordinate(43.252, -126.453),
	}
	encoded := PolylineFromCoords(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

	decoded, _, err := polyline.DecodeCoords([]byte(encoded))
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i := range coords {
		assert.InDelta(t, coords[i].Lat, decoded[i][0], 1e-5)
		assert.InDelta(t, coords[i].Lng, decoded[i][1], 1e-5)
	}
}

func TestRoutePlanFeatureCollection(t *testing.T) {
	plan := &da.RoutePlan{
		Eco: &da.Route{
			Objective: pkg.ECO_OBJECTIVE,
			Waypoints: []da.Coordinate{da.NewCoordinate(-7.77, 110.37), da.NewCoordinate(-7.771, 110.371)},
			Metrics:   da.RouteMetrics{DistanceMeters: 150, SafetyScore: 80},
			Found:     true,
		},
		Safe: &da.Route{
			Objective: pkg.SAFE_OBJECTIVE,
			Waypoints: []da.Coordinate{da.NewCoordinate(-7.77, 110.37)},
			Found:     false,
		},
	}

	fc := RoutePlanFeatureCollection(plan)
	require.Len(t, fc.Features, 2)

	ls, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.Point{110.37, -7.77}, ls[0])
	assert.Equal(t, "eco", fc.Features[0].Properties["objective"])
	assert.Equal(t, 150, fc.Features[0].Properties["distance_meters"])
	assert.Equal(t, false, fc.Features[1].Properties["found"])
}
