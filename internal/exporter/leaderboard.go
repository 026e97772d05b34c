package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"scoutcli/internal/scoring"
)

// leaderboardHeaders is the column order shared by the CSV and XLSX
// leaderboard exports.
var leaderboardHeaders = []string{
	"trainer",
	"n_responses",
	"overall_score",
	"early_avg",
	"late_avg",
	"improvement",
	"trainer_score",
}

// leaderboardRow renders one aggregate in leaderboard column order.
func leaderboardRow(agg scoring.TrainerAggregate) []string {
	return []string{
		agg.Trainer,
		formatInt(agg.Responses),
		formatFloat(agg.OverallAvg),
		formatFloat(agg.EarlyAvg),
		formatFloat(agg.LateAvg),
		formatFloat(agg.Improvement),
		formatFloat(agg.Score),
	}
}

// WriteLeaderboardCSV writes the full ranked leaderboard as a CSV file.
func WriteLeaderboardCSV(aggregates []scoring.TrainerAggregate, filePath string, logger *slog.Logger) error {
	records := make([][]string, 0, len(aggregates))
	for _, agg := range aggregates {
		records = append(records, leaderboardRow(agg))
	}

	return NewCSVWriter(logger).WriteSimpleCSV(filePath, leaderboardHeaders, records)
}

// WriteLeaderboardXLSX writes the full ranked leaderboard as an Excel
// workbook with a bold header row.
func WriteLeaderboardXLSX(aggregates []scoring.TrainerAggregate, filePath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(leaderboardHeaders))
	for i, h := range leaderboardHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(leaderboardHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeaderCell, boldStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, agg := range aggregates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate row %d: %w", i+2, err)
		}
		row := []interface{}{
			agg.Trainer,
			agg.Responses,
			agg.OverallAvg,
			agg.EarlyAvg,
			agg.LateAvg,
			agg.Improvement,
			agg.Score,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	logger.Info("Writing XLSX leaderboard",
		slog.String("file_path", filePath),
		slog.Int("trainer_count", len(aggregates)))

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
