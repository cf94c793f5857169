package main

import (
	"log"

	"pulse-insights/internal/api"
	"pulse-insights/internal/api/handler"
	"pulse-insights/internal/config"
	"pulse-insights/internal/store"
	"pulse-insights/pkg/logging"
	"pulse-insights/pkg/router"
)

func main() {
	// Lexicon and topic table are mandatory: a report without tagging would
	// silently misreport neg_rate and topics, so refuse to start instead.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogMode)
	defer logger.Sync()

	pulses, err := store.NewProvider(cfg.StoreMode, cfg.StorePath, cfg.SeedPath)
	if err != nil {
		logger.Fatalw("pulse store init failed", "mode", cfg.StoreMode, "error", err)
	}

	archive, err := store.OpenReportArchive(cfg.ReportDBPath)
	if err != nil {
		logger.Fatalw("report archive init failed", "path", cfg.ReportDBPath, "error", err)
	}
	defer archive.Close()

	h := handler.New(cfg, pulses, archive, logger)

	r := router.New()
	api.RegisterRoutes(r, h)

	logger.Infow("pulse-insights starting",
		"addr", cfg.HTTPAddr,
		"default_team", cfg.DefaultTeam,
		"store_mode", cfg.StoreMode,
		"topics", len(cfg.Topics),
	)
	if err := r.Start(cfg.HTTPAddr); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
