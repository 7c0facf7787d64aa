package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/greenroute/pkg/engine"
	"github.com/lintang-b-s/greenroute/pkg/http"
	"github.com/lintang-b-s/greenroute/pkg/http/usecases"
	"github.com/lintang-b-s/greenroute/pkg/logger"
	"github.com/lintang-b-s/greenroute/pkg/snapshot"
	"github.com/lintang-b-s/greenroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	snapshotFile = flag.String("snapshot_file", "", "graph snapshot file (.json, .yaml), overrides SNAPSHOT_FILE")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}
	if *snapshotFile != "" {
		viper.Set("SNAPSHOT_SOURCE", snapshot.SOURCE_FILE)
		viper.Set("SNAPSHOT_FILE", *snapshotFile)
	}

	provider, err := snapshot.NewProviderFromConfig(logger)
	if err != nil {
		logger.Fatal("failed to configure graph snapshot provider", zap.Error(err))
	}

	routingEngine := engine.NewEngine(logger, engine.WithMaxFrontier(viper.GetInt("SEARCH_MAX_FRONTIER")))

	routingService := usecases.NewRoutingService(logger, provider, routingEngine,
		viper.GetFloat64("LOCATOR_SEARCH_RADIUS"), viper.GetInt("BATCH_WORKERS"), viper.GetInt("BATCH_MAX_QUERIES"))

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, logger, routingService); err != nil {
		logger.Fatal("failed to start API", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	logger.Info("Greenroute Server Stopping", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("API stopped with error", zap.Error(err))
	}
	logger.Info("Greenroute Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
