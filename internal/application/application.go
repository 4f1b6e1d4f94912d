package application

import (
	"context"
	"fmt"
	"log/slog"

	"xlookup/internal/config"
	service "xlookup/internal/domain/service/lookup"
	"xlookup/internal/infrastructure/persistence"
	"xlookup/internal/infrastructure/truecaller"
	"xlookup/internal/transport/cli"
	"xlookup/internal/worker"
	"xlookup/pkg/contextx"
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Result store
	store, err := persistence.NewResultStore(cfg.Storage.ResultsDir)
	if err != nil {
		return fmt.Errorf("result store: %w", err)
	}
	log.Info("result store ready", "dir", cfg.Storage.ResultsDir)

	// 3. Upstream transport
	client := truecaller.NewClient(cfg.Truecaller)

	// 4. Lookup service + bulk runner
	lookups := service.NewService(client, cfg.Truecaller.Endpoints, cfg.App.DefaultCountry).
		WithCacheTTL(cfg.Truecaller.CacheTTL)

	runner := worker.NewBulkRunner(lookups).
		WithRequestDelay(cfg.Bulk.RequestDelay).
		WithBurstPause(cfg.Bulk.BurstEvery, cfg.Bulk.BurstPause)

	log.Info("lookup service ready",
		"endpoints", len(cfg.Truecaller.Endpoints),
		"default_country", cfg.App.DefaultCountry,
	)

	// 5. Interactive menu
	handler := cli.NewHandler(lookups, runner, store)

	return handler.Run(contextx.WithLogger(ctx, log))
}
