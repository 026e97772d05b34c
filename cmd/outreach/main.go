// Command outreach runs the second stage of the trainer scout pipeline:
// read the ranked results JSON and emit one outreach email draft per top
// trainer.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"scoutcli/internal/config"
	"scoutcli/internal/infrastructure"
	"scoutcli/internal/outreach"
)

func main() {
	resultsPath := flag.String("results", "", "ranked results JSON path (defaults to output/results.json)")
	outputPath := flag.String("out", "", "outreach drafts output path (defaults to output/outreach_ready.json)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *resultsPath != "" {
		cfg.Outreach.ResultsPath = *resultsPath
	}
	if *outputPath != "" {
		cfg.Outreach.OutputPath = *outputPath
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()
	logger.InfoContext(ctx, "Outreach Draft Generator",
		"results", cfg.Outreach.ResultsPath,
		"output", cfg.Outreach.OutputPath,
	)

	results, err := outreach.LoadResults(cfg.Outreach.ResultsPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load ranked results", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "Loaded top trainers", "count", len(results))

	drafts := outreach.NewGenerator(logger).GenerateAll(results)

	if err := outreach.WriteDrafts(drafts, cfg.Outreach.OutputPath, logger); err != nil {
		logger.ErrorContext(ctx, "Failed to write outreach drafts", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Outreach stage completed",
		"draft_count", len(drafts),
		"output", cfg.Outreach.OutputPath,
	)
}
