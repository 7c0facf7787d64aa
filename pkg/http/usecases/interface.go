package usecases

import (
	"context"

	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/spatialindex"
)

type RoutingEngine interface {
	PlanRoutesWithLocator(ctx context.Context, g *datastructure.Graph, locator spatialindex.NodeLocator,
		from, to datastructure.Coordinate, mode pkg.TransportMode) (*datastructure.RoutePlan, error)
}
