package feedback

import (
	"time"
)

// Record represents a single cleaned survey response.
//
// RowID is assigned from the raw row position before any filtering, so the
// identifier of a given response is stable across reruns of the same file.
type Record struct {
	RowID        string            `json:"row_id"`
	Trainer      string            `json:"trainer"`
	Timestamp    time.Time         `json:"timestamp"`
	HasTimestamp bool              `json:"has_timestamp"`
	Ratings      map[string]float64 `json:"ratings"`
	Quotes       map[string]string  `json:"quotes"`
}

// Rating returns the value of a rating column and whether it was present
// and numeric in the source row.
func (r Record) Rating(column string) (float64, bool) {
	v, ok := r.Ratings[column]
	return v, ok
}

// CountTrainers returns the number of distinct trainer identifiers in a
// record set. Identifiers are compared verbatim: case and whitespace
// variants count as separate trainers.
func CountTrainers(records []Record) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Trainer] = struct{}{}
	}
	return len(seen)
}

// ByTrainer groups records by their trainer identifier.
func ByTrainer(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, rec := range records {
		groups[rec.Trainer] = append(groups[rec.Trainer], rec)
	}
	return groups
}
