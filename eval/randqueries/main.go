package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/lintang-b-s/greenroute/pkg"
	"github.com/lintang-b-s/greenroute/pkg/concurrent"
	"github.com/lintang-b-s/greenroute/pkg/costfunction"
	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/geo"
	log "github.com/lintang-b-s/greenroute/pkg/logger"
	"github.com/lintang-b-s/greenroute/pkg/snapshot"
	"github.com/lintang-b-s/greenroute/pkg/spatialindex"
	"github.com/lintang-b-s/greenroute/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	snapshotFile = flag.String("snapshot_file", "./data/campus_graph.json", "graph snapshot file (.json, .yaml)")
	queriesFile  = flag.String("queries", "", "optional query file, one \"from_lat from_lng to_lat to_lng\" per line. random queries are generated when empty")
	numQueries   = flag.Int("n", 10000, "number of random queries")
	seed         = flag.Uint64("seed", 42, "random query seed")
	workers      = flag.Int("workers", 8, "number of planning goroutines")
	radius       = flag.Float64("radius", pkg.DEFAULT_LOCATOR_RADIUS_DEG, "r-tree nearest node search window in degrees")
	mode         = flag.String("mode", "walk", "transport mode: walk, cycle or other")
	outFile      = flag.String("out", "rand_queries_result.csv", "result file")
	objective    = flag.String("objective", "", "count fallbacks of one objective only: eco or safe. both when empty")
)

type query struct {
	row      int
	from, to da.Coordinate
}

type result struct {
	row                 int
	crowMeters          float64
	ecoMeters           int
	ecoCost, safeCost   float64
	ecoFound, safeFound bool
	latency             time.Duration
	err                 error
}

func (res result) isFallback(obj pkg.Objective) bool {
	if obj == pkg.SAFE_OBJECTIVE {
		return !res.safeFound
	}
	return !res.ecoFound
}

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	transportMode, err := engine.ParseTransportMode(*mode)
	if err != nil {
		panic(err)
	}

	fallbackObjectives := []pkg.Objective{pkg.ECO_OBJECTIVE, pkg.SAFE_OBJECTIVE}
	if *objective != "" {
		obj, err := costfunction.ParseObjective(*objective)
		if err != nil {
			panic(err)
		}
		fallbackObjectives = []pkg.Objective{obj}
	}

	ctx := context.Background()
	g, err := snapshot.Fetch(ctx, snapshot.NewFileProvider(*snapshotFile, logger))
	if err != nil {
		panic(err)
	}

	var queries []query
	if *queriesFile != "" {
		queries, err = readQueries(*queriesFile)
		if err != nil {
			panic(err)
		}
	} else {
		queries = randomQueries(g, *numQueries, *seed)
	}
	logger.Info("running queries", zap.Int("queries", len(queries)), zap.Int("workers", *workers))

	rt := spatialindex.NewRtree(g, *radius)
	rt.Build(logger)
	re := engine.NewEngine(logger)

	results := concurrent.MapOrdered(*workers, queries, func(q query) result {
		before := time.Now()
		plan, err := re.PlanRoutesWithLocator(ctx, g, rt, q.from, q.to, transportMode)
		res := result{row: q.row, latency: time.Since(before), err: err}
		if err == nil {
			sLat, sLng := g.GetVertexCoordinates(mustNodeIndex(g, plan.Start))
			tLat, tLng := g.GetVertexCoordinates(mustNodeIndex(g, plan.End))
			res.crowMeters = geo.CalculateHaversineDistance(sLat, sLng, tLat, tLng) * 1000
			res.ecoMeters = plan.Eco.Metrics.DistanceMeters
			res.ecoCost, res.ecoFound = plan.Eco.Cost, !plan.Eco.IsFallback()
			res.safeCost, res.safeFound = plan.Safe.Cost, !plan.Safe.IsFallback()
		}
		if (q.row+1)%1000 == 0 {
			logger.Sugar().Infof("done query %v", q.row+1)
		}
		return res
	})

	if err := writeResults(*outFile, queries, results); err != nil {
		panic(err)
	}
	summarize(logger, results, fallbackObjectives)
}

func mustNodeIndex(g *da.Graph, id string) da.Index {
	u, ok := g.GetNodeIndex(id)
	if !ok {
		panic(fmt.Sprintf("node %s not in snapshot", id))
	}
	return u
}

// randomQueries. origin and destination drawn uniformly from the snapshot bounding box.
func randomQueries(g *da.Graph, n int, seed uint64) []query {
	bb := geo.GraphBoundingBox(g)
	if bb == nil {
		return nil
	}
	rd := rand.New(rand.NewSource(seed))
	randCoord := func() da.Coordinate {
		lat := bb.GetMinLat() + rd.Float64()*(bb.GetMaxLat()-bb.GetMinLat())
		lng := bb.GetMinLng() + rd.Float64()*(bb.GetMaxLng()-bb.GetMinLng())
		return da.NewCoordinate(lat, lng)
	}

	queries := make([]query, n)
	for i := range queries {
		queries[i] = query{row: i, from: randCoord(), to: randCoord()}
	}
	return queries
}

func readQueries(path string) ([]query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	queries := make([]query, 0)
	n := 0
	for line, err := util.ReadLine(br); err != io.EOF; line, err = util.ReadLine(br) {
		if err != nil {
			return nil, err
		}
		ff := util.Fields(line)
		if len(ff) == 0 {
			continue
		}
		if len(ff) != 4 {
			return nil, fmt.Errorf("line %d: expected 4 fields, got %d", n+1, len(ff))
		}
		vals := make([]float64, 4)
		for i, field := range ff {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
		}
		queries = append(queries, query{row: n, from: da.NewCoordinate(vals[0], vals[1]),
			to: da.NewCoordinate(vals[2], vals[3])})
		n++
	}
	return queries, nil
}

func writeResults(path string, queries []query, results []result) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fout.Close()

	w := bufio.NewWriterSize(fout, 1<<20)
	fmt.Fprintln(w, "from_lat,from_lng,to_lat,to_lng,crow_m,eco_m,eco_cost,eco_found,safe_cost,safe_found,latency_us,error")
	for i, res := range results {
		q := queries[i]
		errMsg := ""
		if res.err != nil {
			errMsg = strconv.Quote(res.err.Error())
		}
		fmt.Fprintf(w, "%f,%f,%f,%f,%.1f,%d,%s,%t,%s,%t,%d,%s\n", q.from.Lat, q.from.Lng, q.to.Lat, q.to.Lng,
			res.crowMeters, res.ecoMeters, strconv.FormatFloat(res.ecoCost, 'f', -1, 64), res.ecoFound,
			strconv.FormatFloat(res.safeCost, 'f', -1, 64), res.safeFound,
			res.latency.Microseconds(), errMsg)
	}
	return w.Flush()
}

// summarize. a query counts as a fallback when any of objectives fell back to the direct pair.
func summarize(logger *zap.Logger, results []result, objectives []pkg.Objective) {
	if len(results) == 0 {
		logger.Info("no queries")
		return
	}

	latencies := make([]time.Duration, len(results))
	fallbacks, failures := 0, 0
	detourSum, detourN := 0.0, 0
	for i, res := range results {
		latencies[i] = res.latency
		if res.err != nil {
			failures++
			continue
		}
		if slices.ContainsFunc(objectives, res.isFallback) {
			fallbacks++
			continue
		}
		if res.ecoFound && res.crowMeters > 0 {
			detourSum += float64(res.ecoMeters) / res.crowMeters
			detourN++
		}
	}
	meanDetour := 0.0
	if detourN > 0 {
		meanDetour = detourSum / float64(detourN)
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var total time.Duration
	for _, l := range latencies {
		total += l
	}
	percentile := func(p float64) time.Duration {
		return latencies[int(p*float64(len(latencies)-1))]
	}

	logger.Info("random queries done",
		zap.Int("queries", len(results)),
		zap.Int("fallbacks", fallbacks),
		zap.Int("failures", failures),
		zap.Float64("mean_eco_detour", meanDetour),
		zap.Duration("mean", total/time.Duration(len(latencies))),
		zap.Duration("p50", percentile(0.5)),
		zap.Duration("p99", percentile(0.99)),
		zap.Duration("max", latencies[len(latencies)-1]),
	)
}
