package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"scoutcli/internal/scout"
)

// WriteResultsJSON writes the ranked results array as indented JSON. This
// file is the handoff consumed by the outreach stage.
func WriteResultsJSON(results []scout.RankedResult, filePath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	logger.Info("Writing results JSON",
		slog.String("file_path", filePath),
		slog.Int("result_count", len(results)))
	return nil
}
