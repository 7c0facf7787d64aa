package snapshot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const campusJSON = `{
  "nodes": [
    {"id": "gate", "lat": -7.7700, "lng": 110.3700, "ndvi_value": 0.21},
    {"id": "library", "lat": -7.7709, "lng": 110.3704, "ndvi_value": 0.55}
  ],
  "edges": [
    {"from_node_id": "gate", "to_node_id": "library", "distance_meters": 110, "avg_carbon_ppm": 410,
     "lighting_level": 7, "cctv_coverage": true, "crowd_density": 4},
    {"from_node_id": "library", "to_node_id": "gate", "distance_meters": 110, "avg_carbon_ppm": 410,
     "lighting_level": 7, "cctv_coverage": true, "crowd_density": 4}
  ]
}`

const campusYAML = `nodes:
  - id: gate
    lat: -7.7700
    lng: 110.3700
    ndvi_value: 0.21
  - id: library
    lat: -7.7709
    lng: 110.3704
    ndvi_value: 0.55
edges:
  - from_node_id: gate
    to_node_id: library
    distance_meters: 110
    avg_carbon_ppm: 410
    lighting_level: 7
    cctv_coverage: true
    crowd_density: 4
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFetchFromFile(t *testing.T) {
	testCases := []struct {
		name      string
		file      string
		content   string
		wantEdges int
	}{
		{name: "json", file: "campus.json", content: campusJSON, wantEdges: 2},
		{name: "yaml", file: "campus.yaml", content: campusYAML, wantEdges: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFileProvider(writeFile(t, tt.file, tt.content), zap.NewNop())
			g, err := Fetch(context.Background(), p)
			require.NoError(t, err)

			assert.Equal(t, 2, g.NumberOfVertices())
			assert.Equal(t, tt.wantEdges, g.NumberOfEdges())

			u, ok := g.GetNodeIndex("library")
			require.True(t, ok)
			assert.Equal(t, 0.55, g.GetNode(u).NDVI)

			e := g.GetEdge(0)
			assert.Equal(t, da.NewEdge("gate", "library", 110, 410, 7, true, 4), *e)
		})
	}
}

func TestFetchReadsFileOnce(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "campus.json", content: campusJSON},
		{name: "yaml", file: "campus.yaml", content: campusYAML},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			p := NewFileProvider(writeFile(t, tt.file, tt.content), zap.New(core))

			_, err := Fetch(context.Background(), p)
			require.NoError(t, err)
			assert.Equal(t, 1, logs.FilterMessage("read graph file").Len())

			_, err = Fetch(context.Background(), p)
			require.NoError(t, err)
			assert.Equal(t, 2, logs.FilterMessage("read graph file").Len())
		})
	}
}

func TestFetchFailures(t *testing.T) {
	testCases := []struct {
		name     string
		provider Provider
		wantErr  error
	}{
		{
			name:     "missing file",
			provider: NewFileProvider(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop()),
		},
		{
			name:     "unsupported extension",
			provider: NewFileProvider(writeFile(t, "campus.csv", "id,lat,lng"), zap.NewNop()),
		},
		{
			name:     "malformed json",
			provider: NewFileProvider(writeFile(t, "campus.json", "{"), zap.NewNop()),
		},
		{
			name: "edge references a node outside the snapshot",
			provider: NewStaticProvider(
				[]da.Node{da.NewNode("a", 0, 0, 0)},
				[]da.Edge{da.NewEdge("a", "ghost", 10, 350, 5, true, 0)}),
			wantErr: da.ErrInvalidEdge,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Fetch(context.Background(), tt.provider)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrSnapshotFetch)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStaticProviderKeepsOrder(t *testing.T) {
	nodes := []da.Node{da.NewNode("z", 0, 0, 0), da.NewNode("a", 0, 0, 0)}
	g, err := Fetch(context.Background(), NewStaticProvider(nodes, nil))
	require.NoError(t, err)
	assert.Equal(t, "z", g.GetNode(0).ID)
	assert.Equal(t, "a", g.GetNode(1).ID)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Fetch(ctx, NewStaticProvider(nodes, nil))
	assert.ErrorIs(t, err, ErrSnapshotFetch)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRestProvider(t *testing.T) {
	var gf graphFile
	require.NoError(t, json.Unmarshal([]byte(campusJSON), &gf))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "secret" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("select") != "*" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/rest/v1/campus_nodes":
			_ = json.NewEncoder(w).Encode(gf.Nodes)
		case "/rest/v1/campus_edges":
			_ = json.NewEncoder(w).Encode(gf.Edges)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	g, err := Fetch(context.Background(), NewRestProvider(srv.URL+"/", "secret", time.Second, zap.NewNop()))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumberOfVertices())
	assert.Equal(t, 2, g.NumberOfEdges())

	_, err = Fetch(context.Background(), NewRestProvider(srv.URL, "wrong", time.Second, zap.NewNop()))
	assert.ErrorIs(t, err, ErrSnapshotFetch)
	assert.Contains(t, err.Error(), "401")
}
