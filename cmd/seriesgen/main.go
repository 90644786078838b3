// Command seriesgen writes the synthetic daily temperature series to a CSV
// file and, when configured, to InfluxDB and object storage. With
// SERIES_CRON set it keeps running and regenerates on that schedule.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"home_energy_coach/internal/adapters/storage"
	"home_energy_coach/internal/scheduler"
	"home_energy_coach/internal/series"
	"home_energy_coach/internal/series/influx"
	"home_energy_coach/platform/config"
	"home_energy_coach/platform/logger"
)

const (
	seriesLocation = "nyc"
	seriesFolder   = "temperature"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sinks, closeSinks, err := buildSinks(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize series sinks", "error", err)
		os.Exit(1)
	}
	defer closeSinks()

	// Each run draws from its own seed so scheduled regenerations differ.
	var run uint64
	generate := func(ctx context.Context) error {
		seed := cfg.GetSeriesSeed() + run
		run++
		return generateOnce(ctx, log, seed, sinks)
	}

	if err := generate(ctx); err != nil {
		log.Error("series generation failed", "error", err)
		os.Exit(1)
	}

	if cfg.GetSeriesCron() == "" {
		return
	}

	runner := scheduler.NewRunner(log)
	if err := runner.Add("synthetic-series", cfg.GetSeriesCron(), generate); err != nil {
		log.Error("invalid series schedule", "error", err)
		os.Exit(1)
	}
	if err := runner.Run(ctx); err != nil {
		log.Error("scheduler stopped with error", "error", err)
		os.Exit(1)
	}
}

func generateOnce(ctx context.Context, log *logger.Logger, seed uint64, sinks []series.Sink) error {
	start := time.Now()
	records := series.NewGenerator(seed).Generate()

	for _, s := range series.Summarize(records) {
		log.Debug("series year", "year", s.Year, "days", s.Days, "mean", s.Mean, "min", s.Min, "max", s.Max)
	}

	if err := series.Export(ctx, log, records, sinks...); err != nil {
		return err
	}
	log.Info("series generated", "records", len(records), "seed", seed, "sinks", len(sinks), "duration", time.Since(start))
	return nil
}

// buildSinks returns the local CSV sink plus any configured remote sinks.
func buildSinks(ctx context.Context, cfg *config.Config, log *logger.Logger) ([]series.Sink, func(), error) {
	sinks := []series.Sink{series.NewFileSink(cfg.GetSeriesOutputPath())}
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.IsInfluxEnabled() {
		w, err := influx.NewWriter(ctx, cfg, seriesLocation)
		if err != nil {
			return nil, closeAll, err
		}
		closers = append(closers, w.Close)
		sinks = append(sinks, w)
		log.Info("influxdb sink enabled", "url", cfg.GetInfluxURL(), "bucket", cfg.GetInfluxBucket())
	}

	if cfg.IsMinIOEnabled() {
		store, err := storage.NewMinIOService(cfg)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		bucket := cfg.GetMinioBucketSeries()
		if err := withRetry(ctx, log, "ensure series bucket", 5, 2*time.Second, func() error {
			return store.EnsureBucketExists(ctx, bucket)
		}); err != nil {
			closeAll()
			return nil, func() {}, err
		}
		fileName := filepath.Base(cfg.GetSeriesOutputPath())
		sinks = append(sinks, series.NewObjectSink(store, bucket, seriesFolder, fileName, log))
		log.Info("object storage sink enabled", "bucket", bucket)
	}

	return sinks, closeAll, nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
