package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	"github.com/lintang-b-s/greenroute/pkg/logger"
	"github.com/lintang-b-s/greenroute/pkg/snapshot"
	"go.uber.org/zap"
)

var (
	snapshotFile = flag.String("snapshot_file", "./data/campus_graph.json", "graph snapshot file (.json, .yaml)")
	fromLat      = flag.Float64("from_lat", 0, "origin latitude")
	fromLng      = flag.Float64("from_lng", 0, "origin longitude")
	toLat        = flag.Float64("to_lat", 0, "destination latitude")
	toLng        = flag.Float64("to_lng", 0, "destination longitude")
	mode         = flag.String("mode", "walk", "transport mode: walk, cycle or other")
	maxFrontier  = flag.Int("max_frontier", 0, "fail the search once the frontier holds more partial paths than this, 0 = unbounded")
	geojson      = flag.Bool("geojson", false, "print the routes as a geojson feature collection")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	transportMode, err := engine.ParseTransportMode(*mode)
	if err != nil {
		logger.Fatal("invalid mode", zap.Error(err))
	}

	ctx := context.Background()
	g, err := snapshot.Fetch(ctx, snapshot.NewFileProvider(*snapshotFile, logger))
	if err != nil {
		logger.Fatal("failed to load graph snapshot", zap.Error(err))
	}
	logger.Info("graph snapshot loaded", zap.Int("nodes", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()))

	re := engine.NewEngine(logger, engine.WithMaxFrontier(*maxFrontier))
	plan, err := re.PlanRoutes(ctx, g, datastructure.NewCoordinate(*fromLat, *fromLng),
		datastructure.NewCoordinate(*toLat, *toLng), transportMode)
	if err != nil {
		logger.Fatal("failed to plan routes", zap.Error(err))
	}

	var out interface{} = plan
	if *geojson {
		out = geo.RoutePlanFeatureCollection(plan)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
