package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/concurrent"
	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/engine/routing"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	"github.com/lintang-b-s/greenroute/pkg/snapshot"
	"github.com/lintang-b-s/greenroute/pkg/spatialindex"
	"github.com/lintang-b-s/greenroute/pkg/telemetry"
	"github.com/lintang-b-s/greenroute/pkg/util"
	"go.uber.org/zap"
)

type RouteQuery struct {
	From, To datastructure.Coordinate
	Mode     pkg.TransportMode
}

func NewRouteQuery(fromLat, fromLng, toLat, toLng float64, mode pkg.TransportMode) RouteQuery {
	return RouteQuery{
		From: datastructure.NewCoordinate(fromLat, fromLng),
		To:   datastructure.NewCoordinate(toLat, toLng),
		Mode: mode,
	}
}

type BatchResult struct {
	Plan *datastructure.RoutePlan
	Err  error
}

type GraphInfo struct {
	NumberOfNodes int
	NumberOfEdges int
	BoundingBox   *datastructure.BoundingBox

	// strongly connected components. routes between different components fall back to {start, end}.
	NumberOfComponents   int
	LargestComponentSize int
}

type RoutingService struct {
	log             *zap.Logger
	provider        snapshot.Provider
	engine          RoutingEngine
	searchRadius    float64
	batchWorkers    int
	batchMaxQueries int
}

func NewRoutingService(log *zap.Logger, provider snapshot.Provider, engine RoutingEngine,
	searchRadius float64, batchWorkers, batchMaxQueries int) *RoutingService {
	return &RoutingService{
		log:             log,
		provider:        provider,
		engine:          engine,
		searchRadius:    searchRadius,
		batchWorkers:    batchWorkers,
		batchMaxQueries: batchMaxQueries,
	}
}

// PlanRoutes. fetches a fresh snapshot and plans the eco and safe routes for one query.
func (rs *RoutingService) PlanRoutes(ctx context.Context, q RouteQuery) (*datastructure.RoutePlan, error) {
	g, err := rs.fetchSnapshot(ctx)
	if err != nil {
		telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		return nil, err
	}

	plan, err := rs.engine.PlanRoutesWithLocator(ctx, g, spatialindex.NewLinearLocator(g), q.From, q.To, q.Mode)
	if err != nil {
		telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeError).Inc()
		return nil, rs.planError(err, q)
	}
	telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeOK).Inc()
	return plan, nil
}

// PlanRoutesBatch. every query is planned against the same snapshot. a failing query only fails its own result.
func (rs *RoutingService) PlanRoutesBatch(ctx context.Context, qs []RouteQuery) ([]BatchResult, error) {
	if len(qs) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "batch must contain at least one query")
	}
	if len(qs) > rs.batchMaxQueries {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "batch size %d exceeds max %d", len(qs), rs.batchMaxQueries)
	}

	g, err := rs.fetchSnapshot(ctx)
	if err != nil {
		telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeError).Add(float64(len(qs)))
		return nil, err
	}

	rt := spatialindex.NewRtree(g, rs.searchRadius)
	rt.Build(rs.log)

	results := concurrent.MapOrdered(rs.batchWorkers, qs, func(q RouteQuery) BatchResult {
		plan, err := rs.engine.PlanRoutesWithLocator(ctx, g, rt, q.From, q.To, q.Mode)
		if err != nil {
			telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeError).Inc()
			return BatchResult{Err: rs.planError(err, q)}
		}
		telemetry.PlansTotal.WithLabelValues(telemetry.OutcomeOK).Inc()
		return BatchResult{Plan: plan}
	})
	return results, nil
}

func (rs *RoutingService) GraphInfo(ctx context.Context) (*GraphInfo, error) {
	g, err := rs.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	sccs, numComponents := g.StronglyConnectedComponents()
	return &GraphInfo{
		NumberOfNodes:        g.NumberOfVertices(),
		NumberOfEdges:        g.NumberOfEdges(),
		BoundingBox:          geo.GraphBoundingBox(g),
		NumberOfComponents:   numComponents,
		LargestComponentSize: datastructure.LargestComponentSize(sccs, numComponents),
	}, nil
}

func (rs *RoutingService) fetchSnapshot(ctx context.Context) (*datastructure.Graph, error) {
	g, err := snapshot.Fetch(ctx, rs.provider)
	if err != nil {
		telemetry.SnapshotFetchFailures.Inc()
		rs.log.Error("failed to fetch graph snapshot", zap.Error(err))
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "graph snapshot fetch interrupted")
		}
		return nil, util.WrapErrorf(err, util.ErrBadGateway, "graph snapshot unavailable")
	}
	return g, nil
}

func (rs *RoutingService) planError(err error, q RouteQuery) error {
	switch {
	case errors.Is(err, datastructure.ErrEmptyGraph):
		return util.WrapErrorf(err, util.ErrNotFound, "campus graph has no nodes")
	case errors.Is(err, routing.ErrFrontierExceeded):
		return util.WrapErrorf(err, util.ErrBadParamInput, "route from %f,%f to %f,%f exceeds the search limit",
			q.From.Lat, q.From.Lng, q.To.Lat, q.To.Lng)
	case errors.Is(err, engine.ErrInvalidMode):
		return util.WrapErrorf(err, util.ErrBadParamInput, "invalid transport mode")
	default:
		rs.log.Error("route planning failed", zap.Error(err))
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}
