package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/salon-scheduler/internal/activity"
	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/catalog"
	"github.com/BruksfildServices01/salon-scheduler/internal/cli"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/ledger"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	catalogData, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Error("failed to load catalog", "err", err)
		os.Exit(1)
	}

	registry := catalog.New(catalogData)
	grid := ledger.New(registry)
	activityLog := activity.NewLog()
	dispatcher := activity.NewDispatcher(logger)

	authSvc, err := auth.New(cfg)
	if err != nil {
		logger.Error("failed to initialize auth", "err", err)
		os.Exit(1)
	}

	createUC := ucBooking.NewCreateBooking(registry, grid, activityLog, dispatcher, cfg.PixCode)
	cancelUC := ucBooking.NewCancelBooking(grid, activityLog, dispatcher)
	listUC := ucBooking.NewListBookings(registry, grid)

	logger.Info("salon scheduler started",
		"services", len(catalogData.Services),
		"staff", len(catalogData.Staff),
		"slots", len(catalogData.TimeSlots),
	)

	app := cli.New(
		os.Stdin, os.Stdout, logger,
		authSvc, registry, activityLog,
		createUC, cancelUC, listUC,
	)
	app.Run()
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
