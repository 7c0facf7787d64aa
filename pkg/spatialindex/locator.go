package spatialindex

import (
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type NodeLocator interface {
	NearestNode(lat, lng float64) (da.Index, error)
}

// LinearLocator. full scan over the snapshot. cheapest option when a snapshot only serves a single query pair.
type LinearLocator struct {
	graph *da.Graph
}

func NewLinearLocator(graph *da.Graph) *LinearLocator {
	return &LinearLocator{graph: graph}
}

// NearestNode. node minimizing the flat euclidean distance between (lat, lng) pairs.
// ties go to the node that comes first in snapshot order.
func (ll *LinearLocator) NearestNode(lat, lng float64) (da.Index, error) {
	if ll.graph.IsEmpty() {
		return da.INVALID_VERTEX_ID, da.ErrEmptyGraph
	}

	q := toPoint(lat, lng)
	nearest := da.Index(0)
	minDist := planar.Distance(q, nodePoint(ll.graph, 0))
	for u := da.Index(1); u < da.Index(ll.graph.NumberOfVertices()); u++ {
		dist := planar.Distance(q, nodePoint(ll.graph, u))
		if dist < minDist {
			minDist = dist
			nearest = u
		}
	}
	return nearest, nil
}

func toPoint(lat, lng float64) orb.Point {
	return orb.Point{lat, lng}
}

func nodePoint(g *da.Graph, u da.Index) orb.Point {
	lat, lng := g.GetVertexCoordinates(u)
	return toPoint(lat, lng)
}
