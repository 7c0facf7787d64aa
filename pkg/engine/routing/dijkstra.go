package routing

import (
	"fmt"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
)

var _ Router = (*Dijkstra)(nil)

type Dijkstra struct {
	graph        *da.Graph
	costFunction CostFunction
	maxFrontier  int

	pq        *da.MinHeap[*pathLabel]
	finalized []bool

	numSettledNodes int
	numPushes       int
}

type DijkstraOption func(*Dijkstra)

// WithMaxFrontier. fail the search with ErrFrontierExceeded once more than maxFrontier partial paths are queued.
func WithMaxFrontier(maxFrontier int) DijkstraOption {
	return func(us *Dijkstra) {
		us.maxFrontier = maxFrontier
	}
}

func NewDijkstra(graph *da.Graph, costFunction CostFunction, opts ...DijkstraOption) *Dijkstra {
	us := &Dijkstra{
		graph:        graph,
		costFunction: costFunction,
		maxFrontier:  UNLIMITED_FRONTIER,
		pq:           da.NewBinaryHeap[*pathLabel](),
	}
	for _, opt := range opts {
		opt(us)
	}
	return us
}

// ShortestPathSearch. lowest cost first search from s to t under the injected cost function.
// if the frontier runs dry before t is extracted, the result is the fallback path {s, t} with Found = false.
func (us *Dijkstra) ShortestPathSearch(s, t da.Index) (*SearchResult, error) {
	us.Preallocate()

	us.pq.Insert(da.NewPriorityQueueNode(0, newSourceLabel(s)))
	us.numPushes++

	for !us.pq.IsEmpty() {
		queryKey, _ := us.pq.ExtractMin()
		cur := queryKey.GetItem()
		uId := cur.vertex

		if uId == t {
			return &SearchResult{
				Path:            cur.unpack(),
				Cost:            cur.cost,
				Found:           true,
				NumSettledNodes: us.numSettledNodes,
				NumPushes:       us.numPushes,
			}, nil
		}

		if us.finalized[uId] {
			continue
		}
		us.finalized[uId] = true
		us.numSettledNodes++

		if err := us.relax(cur); err != nil {
			return nil, err
		}
	}

	return &SearchResult{
		Path:            []da.Index{s, t},
		Cost:            0,
		Found:           false,
		NumSettledNodes: us.numSettledNodes,
		NumPushes:       us.numPushes,
	}, nil
}

func (us *Dijkstra) relax(cur *pathLabel) error {
	var err error
	us.graph.ForOutEdgesOf(cur.vertex, func(e *da.Edge, eId, vId da.Index) {
		if err != nil || us.finalized[vId] {
			return
		}

		next := cur.extend(vId, us.costFunction.GetWeight(e))
		us.pq.Insert(da.NewPriorityQueueNode(next.cost, next))
		us.numPushes++

		if us.maxFrontier > UNLIMITED_FRONTIER && us.pq.Size() > us.maxFrontier {
			err = fmt.Errorf("%w: %d entries (limit %d)", ErrFrontierExceeded, us.pq.Size(), us.maxFrontier)
		}
	})
	return err
}

func (us *Dijkstra) Preallocate() {
	us.finalized = make([]bool, us.graph.NumberOfVertices())
	us.pq.Preallocate(us.graph.NumberOfEdges() + 1)
	us.numSettledNodes = 0
	us.numPushes = 0
}
