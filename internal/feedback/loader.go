package feedback

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"scoutcli/internal/config"
	apperrors "scoutcli/internal/errors"
)

// maxTimestampSamples bounds how many distinct unparseable timestamp
// values the loader reports in its warning.
const maxTimestampSamples = 5

// Loader reads a raw survey export and produces cleaned feedback records.
type Loader struct {
	columns config.ColumnsConfig
	layout  string
	logger  *slog.Logger
}

// NewLoader creates a loader for the configured column labels and
// timestamp layout.
func NewLoader(columns config.ColumnsConfig, layout string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		columns: columns,
		layout:  layout,
		logger:  logger,
	}
}

// Load reads the CSV file at path and returns the cleaned, completed
// records. An unreadable file is fatal; individual malformed timestamp or
// rating values are not.
func (l *Loader) Load(ctx context.Context, path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(
			fmt.Sprintf("cannot open feedback file %s", path), err)
	}
	defer file.Close()

	records, err := l.parse(ctx, file)
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("cannot parse feedback file %s", path), err)
	}
	return records, nil
}

// parse reads all rows, assigns row ids, and applies cleaning rules.
func (l *Loader) parse(ctx context.Context, r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	stripBOM(header)

	index := make(map[string]int, len(header))
	for i, label := range header {
		index[label] = i
	}

	required := map[string]string{
		"completed": l.columns.Completed,
		"trainer":   l.columns.Trainer,
	}
	for role, label := range required {
		if _, ok := index[label]; !ok {
			return nil, fmt.Errorf("missing %s column %q", role, label)
		}
	}

	var (
		cleaned      []Record
		rowNum       int
		badDates     int
		badDateSeen  = make(map[string]struct{})
		badDateSample []string
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum+1, err)
		}

		// Row ids count every raw row, including ones filtered out below.
		rowNum++
		rowID := fmt.Sprintf("ROW-%03d", rowNum)

		if !isCompleted(cell(row, index, l.columns.Completed)) {
			continue
		}

		rec := Record{
			RowID:   rowID,
			Trainer: cell(row, index, l.columns.Trainer),
			Ratings: make(map[string]float64),
			Quotes:  make(map[string]string),
		}

		raw := cell(row, index, l.columns.Timestamp)
		if ts, err := parseTimestamp(raw, l.layout); err == nil {
			rec.Timestamp = ts
			rec.HasTimestamp = true
		} else {
			badDates++
			if _, dup := badDateSeen[raw]; !dup && len(badDateSample) < maxTimestampSamples {
				badDateSeen[raw] = struct{}{}
				badDateSample = append(badDateSample, raw)
			}
		}

		for _, col := range l.columns.Rating {
			if _, ok := index[col]; !ok {
				continue
			}
			v := strings.TrimSpace(cell(row, index, col))
			if v == "" {
				continue
			}
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				rec.Ratings[col] = f
			}
		}

		for _, col := range l.columns.Quote {
			if _, ok := index[col]; !ok {
				continue
			}
			if v := cell(row, index, col); v != "" {
				rec.Quotes[col] = v
			}
		}

		cleaned = append(cleaned, rec)
	}

	if badDates > 0 {
		l.logger.WarnContext(ctx, "some timestamps failed to parse and were marked missing",
			slog.Int("count", badDates),
			slog.Any("samples", badDateSample),
		)
	}

	l.logger.InfoContext(ctx, "loaded completed responses",
		slog.Int("responses", len(cleaned)),
		slog.Int("trainers", CountTrainers(cleaned)),
	)

	return cleaned, nil
}

// isCompleted reports whether a completion cell marks the response as
// finished: "yes" after trimming and case folding.
func isCompleted(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "yes")
}

// parseTimestamp parses a submission timestamp in the configured layout.
func parseTimestamp(raw, layout string) (t time.Time, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return t, fmt.Errorf("empty timestamp")
	}
	return time.Parse(layout, raw)
}

// cell returns the value of the named column in a row, or "" when the row
// is too short or the column is unknown.
func cell(row []string, index map[string]int, label string) string {
	i, ok := index[label]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
// Survey exports written for Excel routinely carry one.
func stripBOM(header []string) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
}
