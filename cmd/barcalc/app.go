package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/napolitain/solver-bar/internal/config"
	"github.com/napolitain/solver-bar/internal/events"
	"github.com/napolitain/solver-bar/internal/loader"
	"github.com/napolitain/solver-bar/internal/metrics"
	"github.com/napolitain/solver-bar/internal/models"
	"github.com/napolitain/solver-bar/internal/solver"
)

// app holds everything a subcommand needs for one run
type app struct {
	cfg       *config.Config
	catalog   *models.Catalog
	logger    *slog.Logger
	stream    *events.Stream
	registry  *prometheus.Registry
	scheduler *solver.Scheduler
	advisor   *solver.Advisor
	info      *color.Color
}

func newApp(mode string) (*app, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		cfg.Run.Mode = mode
	}
	applyFlags(cfg)

	a := &app{
		cfg:    cfg,
		logger: cfg.Logging.NewLogger(os.Stderr),
		info:   color.New(color.FgYellow),
	}
	slog.SetDefault(a.logger)

	if !quiet {
		printBanner()
	}

	a.catalog = models.DefaultCatalog()
	if cfg.Run.CatalogPath != "" {
		a.catalog, err = loader.LoadCatalog(cfg.Run.CatalogPath)
		if err != nil {
			return nil, err
		}
		if !quiet {
			a.info.Printf("Loaded %d objects from %s\n\n", a.catalog.Len(), cfg.Run.CatalogPath)
		}
	}

	if err := a.newState().Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	sinks := events.Multi{events.NewLogSink(a.logger)}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		collector := metrics.NewCollector(cfg.Metrics.Namespace)
		if err := collector.Register(a.registry); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		sinks = append(sinks, collector)
	}
	a.stream = events.NewStream(sinks)
	a.logger.Debug("Run started", "run_id", a.stream.RunID(), "mode", cfg.Run.Mode)

	engine := solver.NewEngine(a.catalog,
		solver.WithSink(a.stream),
		solver.WithMinAddTime(cfg.Run.MinAddTime),
		solver.WithConverterFraction(cfg.Run.ConverterFraction),
	)
	a.scheduler = solver.NewScheduler(engine, solver.WithFallback(cfg.Run.FallbackObject))
	a.advisor = solver.NewAdvisor(a.catalog,
		solver.WithAdvisorSink(a.stream),
		solver.WithBaseEnergy(cfg.Run.BaseEnergyObject),
		solver.WithAlternateEnergy(cfg.Run.AlternateEnergyObject),
	)

	return a, nil
}

// applyFlags lets root flags override the loaded configuration
func applyFlags(cfg *config.Config) {
	if catalogPath != "" {
		cfg.Run.CatalogPath = catalogPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if jsonLogs {
		cfg.Logging.Format = "json"
	}
	if quiet && logLevel == "" {
		cfg.Logging.Level = "error"
	}
	if withMetrics {
		cfg.Metrics.Enabled = true
	}
}

// finish writes the metrics, if enabled, and passes err through
func (a *app) finish(err error) error {
	if a.registry == nil {
		return err
	}

	var w io.Writer = os.Stdout
	if a.cfg.Metrics.Output != "" {
		f, ferr := os.Create(a.cfg.Metrics.Output)
		if ferr != nil {
			return fmt.Errorf("failed to create metrics output: %w", ferr)
		}
		defer f.Close()
		w = f
	} else {
		fmt.Println()
	}

	if werr := metrics.WriteText(w, a.registry); werr != nil && err == nil {
		return werr
	}
	return err
}
