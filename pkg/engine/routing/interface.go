package routing

import (
	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/costfunction"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
)

type CostFunction interface {
	GetWeight(e costfunction.EdgeAttributes) float64
	GetObjective() pkg.Objective
}

type Router interface {
	ShortestPathSearch(s, t da.Index) (*SearchResult, error)
}
