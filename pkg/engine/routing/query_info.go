package routing

import (
	"github.com/lintang-b-s/greenroute/pkg/util"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
)

// pathLabel. partial path held by one frontier entry. labels form a parent-linked tree, so extending a path
// by one vertex costs O(1) instead of copying the whole prefix.
type pathLabel struct {
	vertex da.Index
	cost   float64
	parent *pathLabel
	length int
}

func newSourceLabel(s da.Index) *pathLabel {
	return &pathLabel{vertex: s, cost: 0, length: 1}
}

func (pl *pathLabel) extend(v da.Index, edgeCost float64) *pathLabel {
	return &pathLabel{
		vertex: v,
		cost:   pl.cost + edgeCost,
		parent: pl,
		length: pl.length + 1,
	}
}

func (pl *pathLabel) unpack() []da.Index {
	path := make([]da.Index, 0, pl.length)
	for cur := pl; cur != nil; cur = cur.parent {
		path = append(path, cur.vertex)
	}
	return util.ReverseG(path)
}

type SearchResult struct {
	Path  []da.Index
	Cost  float64
	Found bool

	NumSettledNodes int
	NumPushes       int
}
