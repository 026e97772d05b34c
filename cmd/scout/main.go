// Command scout runs the scoring stage of the trainer scout pipeline:
// load the survey export, score and rank trainers, and write the results
// JSON, leaderboard CSV/XLSX, and HTML report.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"scoutcli/internal/config"
	"scoutcli/internal/evidence"
	"scoutcli/internal/exporter"
	"scoutcli/internal/feedback"
	"scoutcli/internal/infrastructure"
	"scoutcli/internal/scoring"
	"scoutcli/internal/scout"
)

func main() {
	inputPath := flag.String("input", "", "feedback CSV path (defaults to SCOUT_INPUT_CSV_PATH or data/feedback.csv)")
	outputDir := flag.String("out", "", "output directory for generated artifacts (defaults to output)")
	minResponses := flag.Int("min-responses", 0, "minimum completed responses for a trainer to be ranked")
	topN := flag.Int("top", 0, "number of top trainers to report on")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Command-line flags win over environment and file configuration.
	if *inputPath != "" {
		cfg.Input.CSVPath = *inputPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *minResponses > 0 {
		cfg.Scoring.MinResponses = *minResponses
	}
	if *topN > 0 {
		cfg.Scoring.TopN = *topN
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()
	logger.InfoContext(ctx, "Most Improved Trainer Scout",
		"input", cfg.Input.CSVPath,
		"min_responses", cfg.Scoring.MinResponses,
		"top_n", cfg.Scoring.TopN,
	)

	loader := feedback.NewLoader(cfg.Columns, cfg.Input.TimestampLayout, logger)
	records, err := loader.Load(ctx, cfg.Input.CSVPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load feedback data", "error", err)
		os.Exit(1)
	}

	calc := scoring.NewCalculator(cfg.Columns.Rating, scoring.DefaultWeights(), cfg.Scoring.MinResponses, logger)
	aggregates, err := calc.Calculate(ctx, records)
	if err != nil {
		logger.ErrorContext(ctx, "Trainer scoring failed", "error", err)
		os.Exit(1)
	}

	extractor := evidence.NewExtractor(cfg.Columns.Quote, logger)
	assembler := scout.NewAssembler(extractor, cfg.Scoring.QuoteCount, logger)
	results := assembler.Assemble(ctx, aggregates, records, cfg.Scoring.TopN)

	// The artifacts carry no ordering dependency on each other, only on
	// the compute stages above.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return exporter.WriteResultsJSON(results, cfg.ResultsPath(), logger)
	})
	g.Go(func() error {
		return exporter.WriteLeaderboardCSV(aggregates, cfg.LeaderboardCSVPath(), logger)
	})
	g.Go(func() error {
		return exporter.WriteLeaderboardXLSX(aggregates, cfg.LeaderboardXLSXPath(), logger)
	})
	g.Go(func() error {
		return exporter.WriteHTMLReport(results, aggregates, cfg.Scoring.MinResponses, cfg.ReportHTMLPath(), logger)
	})
	if err := g.Wait(); err != nil {
		logger.ErrorContext(gctx, "Failed to write output artifacts", "error", err)
		os.Exit(1)
	}

	exporter.RenderConsole(os.Stdout, results)

	logger.InfoContext(ctx, "Scoring stage completed",
		"ranked_trainers", len(aggregates),
		"top_results", len(results),
		"output_dir", cfg.Output.Dir,
	)
}
