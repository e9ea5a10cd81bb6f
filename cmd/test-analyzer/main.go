// Package main provides the entry point for the microshift-test-analyzer
// MCP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/microshift-qe/test-analyzer/internal/config"
	"github.com/microshift-qe/test-analyzer/internal/metrics"
	"github.com/microshift-qe/test-analyzer/internal/server"
	"github.com/microshift-qe/test-analyzer/internal/sheets"
	"github.com/microshift-qe/test-analyzer/internal/tools"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("test-analyzer starting",
		"version", version,
		"spreadsheet_id", cfg.SpreadsheetID,
		"sheet", cfg.SheetName,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the spreadsheet
	source, err := sheets.NewClient(ctx, sheets.Config{
		SpreadsheetID: cfg.SpreadsheetID,
		ClientEmail:   cfg.ClientEmail,
		PrivateKey:    cfg.PrivateKey,
		DefaultSheet:  cfg.SheetName,
	}, logger)
	if err != nil {
		logger.Error("failed to create sheets client", "error", err)
		os.Exit(1)
	}

	collector := metrics.NewCollector()

	// Create and setup server
	srv := server.New(version, logger)
	srv.Setup()

	// Register tools
	deps := &tools.Dependencies{
		Source:  source,
		Metrics: collector,
		Logger:  logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	snap := collector.Snapshot()
	logger.Info("shutdown complete", "uptime_s", snap.UptimeSeconds)
}
