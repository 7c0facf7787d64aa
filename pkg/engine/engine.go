package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/costfunction"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/engine/routing"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	"github.com/lintang-b-s/greenroute/pkg/metrics"
	"github.com/lintang-b-s/greenroute/pkg/spatialindex"
	"github.com/lintang-b-s/greenroute/pkg/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidMode = errors.New("invalid transport mode")

// ParseTransportMode. empty string defaults to walking. modes are matched case-sensitively.
func ParseTransportMode(s string) (pkg.TransportMode, error) {
	switch pkg.TransportMode(s) {
	case "", pkg.WALK:
		return pkg.WALK, nil
	case pkg.CYCLE:
		return pkg.CYCLE, nil
	case pkg.OTHER:
		return pkg.OTHER, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Engine. stateless planner: every call works on the snapshot it is handed and keeps nothing afterwards.
type Engine struct {
	logger      *zap.Logger
	maxFrontier int
}

type Option func(*Engine)

func WithMaxFrontier(maxFrontier int) Option {
	return func(e *Engine) {
		e.maxFrontier = maxFrontier
	}
}

func NewEngine(logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		logger:      logger,
		maxFrontier: routing.UNLIMITED_FRONTIER,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlanRoutes. eco and safe route between the graph nodes nearest to from and to.
// either both routes are returned or the call fails.
func (e *Engine) PlanRoutes(ctx context.Context, g *da.Graph, from, to da.Coordinate,
	mode pkg.TransportMode) (*da.RoutePlan, error) {
	return e.PlanRoutesWithLocator(ctx, g, spatialindex.NewLinearLocator(g), from, to, mode)
}

func (e *Engine) PlanRoutesWithLocator(ctx context.Context, g *da.Graph, locator spatialindex.NodeLocator,
	from, to da.Coordinate, mode pkg.TransportMode) (*da.RoutePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	before := time.Now()

	s, err := locator.NearestNode(from.Lat, from.Lng)
	if err != nil {
		return nil, err
	}
	t, err := locator.NearestNode(to.Lat, to.Lng)
	if err != nil {
		return nil, err
	}

	var ecoRoute, safeRoute *da.Route
	eg := errgroup.Group{}
	eg.Go(func() error {
		var err error
		ecoRoute, err = e.planRoute(g, pkg.ECO_OBJECTIVE, s, t, mode)
		return err
	})
	eg.Go(func() error {
		var err error
		safeRoute, err = e.planRoute(g, pkg.SAFE_OBJECTIVE, s, t, mode)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sNode, tNode := g.GetNode(s), g.GetNode(t)
	plan := &da.RoutePlan{
		Eco:             ecoRoute,
		Safe:            safeRoute,
		Start:           sNode.ID,
		End:             tNode.ID,
		StartSnapMeters: geo.SnapDistanceMeters(from, sNode),
		EndSnapMeters:   geo.SnapDistanceMeters(to, tNode),
	}

	telemetry.PlanningDuration.Observe(float64(time.Since(before).Microseconds()) / 1000)
	return plan, nil
}

func (e *Engine) planRoute(g *da.Graph, objective pkg.Objective, s, t da.Index,
	mode pkg.TransportMode) (*da.Route, error) {
	cf, err := costfunction.NewCostFunction(objective)
	if err != nil {
		return nil, err
	}

	res, err := routing.NewDijkstra(g, cf, routing.WithMaxFrontier(e.maxFrontier)).ShortestPathSearch(s, t)
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", objective, err)
	}

	telemetry.SettledNodes.WithLabelValues(string(objective)).Observe(float64(res.NumSettledNodes))
	if !res.Found {
		telemetry.FallbackRoutes.WithLabelValues(string(objective)).Inc()
		e.logger.Debug("no path found, returning direct start/end pair",
			zap.String("objective", string(objective)),
			zap.String("start", g.GetNode(s).ID), zap.String("end", g.GetNode(t).ID))
	}

	route := &da.Route{
		Objective: objective,
		Path:      make([]string, len(res.Path)),
		Waypoints: make([]da.Coordinate, len(res.Path)),
		Metrics:   metrics.NewMetric(g).Calculate(res.Path, mode),
		Cost:      res.Cost,
		Found:     res.Found,
	}
	for i, u := range res.Path {
		n := g.GetNode(u)
		route.Path[i] = n.ID
		route.Waypoints[i] = n.GetCoordinate()
	}
	return route, nil
}
