package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGraph    = errors.New("graph snapshot has no nodes")
	ErrInvalidEdge   = errors.New("invalid edge")
	ErrDuplicateNode = errors.New("duplicate node id")
)

type Index uint32

const INVALID_VERTEX_ID Index = 1<<32 - 1

// Node. campus vertex, ndvi is carried for display only
type Node struct {
	ID   string  `json:"id" yaml:"id"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
	NDVI float64 `json:"ndvi_value" yaml:"ndvi_value"`
}

func NewNode(id string, lat, lng, ndvi float64) Node {
	return Node{ID: id, Lat: lat, Lng: lng, NDVI: ndvi}
}

func (n Node) GetCoordinate() Coordinate {
	return NewCoordinate(n.Lat, n.Lng)
}

// Edge. directed campus segment. a two-way footpath is stored as two edges.
type Edge struct {
	From           string  `json:"from_node_id" yaml:"from_node_id"`
	To             string  `json:"to_node_id" yaml:"to_node_id"`
	DistanceMeters float64 `json:"distance_meters" yaml:"distance_meters"`
	AvgCarbonPPM   float64 `json:"avg_carbon_ppm" yaml:"avg_carbon_ppm"`
	LightingLevel  float64 `json:"lighting_level" yaml:"lighting_level"`
	CCTVCoverage   bool    `json:"cctv_coverage" yaml:"cctv_coverage"`
	CrowdDensity   float64 `json:"crowd_density" yaml:"crowd_density"`
}

func NewEdge(from, to string, distance, carbonPPM, lighting float64, cctv bool, crowd float64) Edge {
	return Edge{
		From:           from,
		To:             to,
		DistanceMeters: distance,
		AvgCarbonPPM:   carbonPPM,
		LightingLevel:  lighting,
		CCTVCoverage:   cctv,
		CrowdDensity:   crowd,
	}
}

func (e *Edge) GetLength() float64 {
	return e.DistanceMeters
}

func (e *Edge) GetAvgCarbonPPM() float64 {
	return e.AvgCarbonPPM
}

func (e *Edge) GetLightingLevel() float64 {
	return e.LightingLevel
}

func (e *Edge) HasCCTVCoverage() bool {
	return e.CCTVCoverage
}

func (e *Edge) GetCrowdDensity() float64 {
	return e.CrowdDensity
}

// Graph. immutable campus snapshot. nodes and edges keep the order the graph store returned them in,
// which is what makes nearest-node ties and edge lookups deterministic.
type Graph struct {
	nodes     []Node
	nodeIndex map[string]Index

	edges    []Edge
	tails    []Index
	heads    []Index
	outEdges [][]Index // outEdges[u] = edge ids leaving u, in snapshot order
}

func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:     make([]Node, len(nodes)),
		nodeIndex: make(map[string]Index, len(nodes)),
		edges:     make([]Edge, len(edges)),
		tails:     make([]Index, len(edges)),
		heads:     make([]Index, len(edges)),
		outEdges:  make([][]Index, len(nodes)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	for i, n := range g.nodes {
		if _, ok := g.nodeIndex[n.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		g.nodeIndex[n.ID] = Index(i)
	}

	for i, e := range g.edges {
		tail, ok := g.nodeIndex[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d references unknown from node %s", ErrInvalidEdge, i, e.From)
		}
		head, ok := g.nodeIndex[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d references unknown to node %s", ErrInvalidEdge, i, e.To)
		}
		if !(e.DistanceMeters > 0) {
			return nil, fmt.Errorf("%w: edge %d (%s -> %s) has non-positive distance %v", ErrInvalidEdge, i,
				e.From, e.To, e.DistanceMeters)
		}
		g.tails[i] = tail
		g.heads[i] = head
		g.outEdges[tail] = append(g.outEdges[tail], Index(i))
	}

	return g, nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0
}

func (g *Graph) GetNode(u Index) Node {
	return g.nodes[u]
}

func (g *Graph) GetNodes() []Node {
	return g.nodes
}

func (g *Graph) GetEdge(e Index) *Edge {
	return &g.edges[e]
}

func (g *Graph) GetHead(e Index) Index {
	return g.heads[e]
}

func (g *Graph) GetTail(e Index) Index {
	return g.tails[e]
}

func (g *Graph) GetNodeIndex(id string) (Index, bool) {
	u, ok := g.nodeIndex[id]
	return u, ok
}

func (g *Graph) GetVertexCoordinates(u Index) (float64, float64) {
	return g.nodes[u].Lat, g.nodes[u].Lng
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.outEdges[u])
}

// ForOutEdgesOf. iterate out edges of u in snapshot order
func (g *Graph) ForOutEdgesOf(u Index, handle func(e *Edge, eId, head Index)) {
	for _, eId := range g.outEdges[u] {
		handle(&g.edges[eId], eId, g.heads[eId])
	}
}

// FindEdge. first edge u->v in snapshot order
func (g *Graph) FindEdge(u, v Index) (*Edge, bool) {
	for _, eId := range g.outEdges[u] {
		if g.heads[eId] == v {
			return &g.edges[eId], true
		}
	}
	return nil, false
}
