// Package evidence selects supporting free-text quotes for a trainer from
// their survey responses. Length after trimming is used as a proxy for how
// substantive a quote is.
package evidence

import (
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"scoutcli/internal/feedback"
)

// MinQuoteLength is the minimum trimmed length for a free-text answer to
// qualify as an evidence quote.
const MinQuoteLength = 20

// Quote is a single piece of supporting testimony extracted from a
// feedback record.
type Quote struct {
	RowID  string `json:"row_id"`
	Text   string `json:"quote"`
	Source string `json:"source_column"`
	Length int    `json:"length"`
}

// Extractor scans the configured free-text columns for quotable answers.
type Extractor struct {
	quoteCols []string
	logger    *slog.Logger
}

// NewExtractor creates an extractor over the given quote columns.
func NewExtractor(quoteCols []string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{quoteCols: quoteCols, logger: logger}
}

// BestQuotes returns up to n of the longest qualifying quotes for the
// trainer, longest first. A trainer with no qualifying text yields an
// empty slice; that is not an error.
func (e *Extractor) BestQuotes(records []feedback.Record, trainer string, n int) []Quote {
	var candidates []Quote

	for _, rec := range records {
		if rec.Trainer != trainer {
			continue
		}
		for _, col := range e.quoteCols {
			raw, ok := rec.Quotes[col]
			if !ok {
				continue
			}
			trimmed := strings.TrimSpace(raw)
			length := utf8.RuneCountInString(trimmed)
			if length <= MinQuoteLength {
				continue
			}
			candidates = append(candidates, Quote{
				RowID:  rec.RowID,
				Text:   collapseNewlines(trimmed),
				Source: sourceTag(col),
				Length: length,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Length > candidates[j].Length
	})

	if n < 0 {
		n = 0
	}
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// collapseNewlines replaces interior line breaks with spaces so quotes
// render on one line in every report format.
func collapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// sourceTag derives a short, stable tag from a column label: the leading
// segment before the first underscore, e.g. "3.12" for
// "3.12_What did you like most about their training style?*".
func sourceTag(label string) string {
	if i := strings.Index(label, "_"); i >= 0 {
		return label[:i]
	}
	return label
}
