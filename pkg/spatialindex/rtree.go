package spatialindex

import (
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. node locator for snapshots that answer many queries (batch planning, eval).
// search is pruned to a square window of radius degrees around the query point and falls back to a full scan
// when nothing inside the window is provably nearest.
type Rtree struct {
	tr     *rtree.RTreeG[da.Index]
	graph  *da.Graph
	radius float64
	linear *LinearLocator
}

func NewRtree(graph *da.Graph, radius float64) *Rtree {
	var tr rtree.RTreeG[da.Index]
	return &Rtree{
		tr:     &tr,
		graph:  graph,
		radius: radius,
		linear: NewLinearLocator(graph),
	}
}

// Build. insert every node as a point box, keyed by its snapshot index
func (rt *Rtree) Build(log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("nodes", rt.graph.NumberOfVertices()))
	for u := da.Index(0); u < da.Index(rt.graph.NumberOfVertices()); u++ {
		lat, lng := rt.graph.GetVertexCoordinates(u)
		rt.tr.Insert([2]float64{lat, lng}, [2]float64{lat, lng}, u)
	}
	log.Info("R-tree spatial index built.")
}

// NearestNode. same answer as LinearLocator, ties included: every node within radius of the query lies inside
// the search window, so picking the lowest snapshot index among equally near candidates matches a full scan.
func (rt *Rtree) NearestNode(lat, lng float64) (da.Index, error) {
	if rt.graph.IsEmpty() {
		return da.INVALID_VERTEX_ID, da.ErrEmptyGraph
	}
	if rt.radius <= 0 {
		return rt.linear.NearestNode(lat, lng)
	}

	q := toPoint(lat, lng)
	nearest := da.INVALID_VERTEX_ID
	minDist := 0.0
	rt.tr.Search([2]float64{lat - rt.radius, lng - rt.radius}, [2]float64{lat + rt.radius, lng + rt.radius},
		func(min, max [2]float64, u da.Index) bool {
			dist := planar.Distance(q, nodePoint(rt.graph, u))
			if nearest == da.INVALID_VERTEX_ID || dist < minDist || (dist == minDist && u < nearest) {
				nearest = u
				minDist = dist
			}
			return true
		})

	if nearest == da.INVALID_VERTEX_ID || minDist > rt.radius {
		return rt.linear.NearestNode(lat, lng)
	}
	return nearest, nil
}

func (rt *Rtree) SearchWithinRadius(lat, lng, radius float64) []da.Index {
	results := make([]da.Index, 0, 10)
	rt.tr.Search([2]float64{lat - radius, lng - radius}, [2]float64{lat + radius, lng + radius},
		func(min, max [2]float64, u da.Index) bool {
			results = append(results, u)
			return true
		})
	return results
}
