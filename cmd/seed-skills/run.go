package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/KirkDiggler/skill-seeder/internal/catalog"
	"github.com/KirkDiggler/skill-seeder/internal/config"
	"github.com/KirkDiggler/skill-seeder/internal/entities"
	"github.com/KirkDiggler/skill-seeder/internal/metrics"
	"github.com/KirkDiggler/skill-seeder/internal/reporter"
	"github.com/KirkDiggler/skill-seeder/internal/services/seeder"
	"github.com/KirkDiggler/skill-seeder/internal/store"
)

// run seeds the configured store and returns the process exit code.
// The store is closed before run returns.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, strict bool) (int, error) {
	skillCatalog, err := loadCatalog(cfg.Catalog.File)
	if err != nil {
		return exitFatal, err
	}

	handle, err := store.Connect(ctx, &cfg.Store)
	if err != nil {
		return exitFatal, err
	}
	defer func() {
		if closeErr := handle.Close(); closeErr != nil {
			logger.Warn("failed to close store", "error", closeErr)
		}
	}()

	logger.Info("connected to store",
		"driver", cfg.Store.Driver,
		"collection", cfg.Store.Collection,
		"entries", len(skillCatalog),
	)

	runMetrics := metrics.NewSeederMetrics(metrics.DefaultNamespace)
	svc := seeder.NewService(&seeder.ServiceConfig{
		Repository: handle.Skills(),
		Logger:     logger,
		Observer:   runMetrics,
	})

	started := time.Now()
	result, err := svc.Seed(ctx, skillCatalog)
	if err != nil {
		return exitFatal, fmt.Errorf("seed catalog: %w", err)
	}
	runMetrics.ObserveRun(time.Now(), time.Since(started))

	if err := reporter.NewConsoleReporter(out).Report(result); err != nil {
		logger.Warn("failed to write report", "error", err)
	}

	if cfg.Metrics.Textfile != "" {
		if err := runMetrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	if strict && result.HasFailures() {
		return exitFailures, nil
	}
	return exitOK, nil
}

func loadCatalog(path string) ([]*entities.Skill, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	skills, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return skills, nil
}
