package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"home_energy_coach/internal/conditions"
	"home_energy_coach/internal/energy"
	"home_energy_coach/internal/energy/domain"
	apphttp "home_energy_coach/internal/http"
	"home_energy_coach/internal/http/router"
	"home_energy_coach/internal/site"
	"home_energy_coach/platform/config"
	"home_energy_coach/platform/logger"
	"home_energy_coach/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "version", cfg.AppVersion)

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Static tables
	// ========================================================================

	tables, err := domain.LoadTables(cfg.GetProfilesPath())
	if err != nil {
		log.Error("failed to load energy profiles", "error", err, "path", cfg.GetProfilesPath())
		panic("failed to load energy profiles: " + err.Error())
	}
	log.Info("energy profiles loaded", "buildingTypes", tables.BuildingTypeNames(), "habits", len(tables.Habits))

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Modules (Composition Root)
	// ========================================================================

	energyModule, err := energy.NewModule(tables, val, log)
	if err != nil {
		log.Error("failed to initialize energy module", "error", err)
		panic("failed to initialize energy module: " + err.Error())
	}
	conditionsModule := conditions.NewModule(log)
	siteModule := site.NewModule(cfg.GetAppVersion(), tables.BuildingTypeNames())

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			siteModule,
			energyModule,
			conditionsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
