package controllers

import (
	"context"

	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
)

type RoutingService interface {
	PlanRoutes(ctx context.Context, q usecases.RouteQuery) (*datastructure.RoutePlan, error)
	PlanRoutesBatch(ctx context.Context, qs []usecases.RouteQuery) ([]usecases.BatchResult, error)
	GraphInfo(ctx context.Context) (*usecases.GraphInfo, error)
}
