package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	apperrors "scoutcli/internal/errors"
	"scoutcli/internal/feedback"
)

// ErrNoQualifyingTrainers is returned when no trainer has enough completed
// responses to be ranked. The scoring stage cannot proceed past this.
var ErrNoQualifyingTrainers = apperrors.NewValidationError(
	"no trainers met the minimum response threshold", nil)

// Calculator computes ranked trainer aggregates from cleaned feedback
// records.
type Calculator struct {
	weights      Weights
	minResponses int
	ratingCols   []string
	logger       *slog.Logger
}

// NewCalculator creates a calculator for the given rating columns. A nil
// logger falls back to slog.Default().
func NewCalculator(ratingCols []string, weights Weights, minResponses int, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		weights:      weights,
		minResponses: minResponses,
		ratingCols:   ratingCols,
		logger:       logger,
	}
}

// Calculate groups records by trainer, derives each qualifying trainer's
// aggregate, and returns the aggregates sorted by descending composite
// score.
func (c *Calculator) Calculate(ctx context.Context, records []feedback.Record) ([]TrainerAggregate, error) {
	start := time.Now()

	if err := c.validateInputs(records); err != nil {
		return nil, fmt.Errorf("validate inputs: %w", err)
	}

	groups := feedback.ByTrainer(records)
	c.logger.InfoContext(ctx, "grouped responses by trainer",
		slog.Int("num_trainers", len(groups)),
	)

	aggregates := make([]TrainerAggregate, 0, len(groups))
	for trainer, group := range groups {
		if len(group) < c.minResponses {
			c.logger.DebugContext(ctx, "trainer below response threshold",
				slog.String("trainer", trainer),
				slog.Int("responses", len(group)),
				slog.Int("min_responses", c.minResponses),
			)
			continue
		}
		aggregates = append(aggregates, c.aggregate(trainer, group))
	}

	if len(aggregates) == 0 {
		c.logger.ErrorContext(ctx, "no trainers met the minimum response threshold",
			slog.Int("min_responses", c.minResponses),
			slog.Int("num_trainers", len(groups)),
		)
		return nil, ErrNoQualifyingTrainers
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Score > aggregates[j].Score
	})

	c.logger.InfoContext(ctx, "trainer scoring completed",
		slog.Int("ranked_trainers", len(aggregates)),
		slog.Duration("duration", time.Since(start)),
	)

	return aggregates, nil
}

// aggregate derives one trainer's figures from their completed responses.
func (c *Calculator) aggregate(trainer string, group []feedback.Record) TrainerAggregate {
	overall := c.meanOfColumnMeans(group)

	sorted := sortByTimestamp(group)
	mid := len(sorted) / 2

	early, late := overall, overall
	if mid > 0 {
		early = c.meanOfColumnMeans(sorted[:mid])
		late = c.meanOfColumnMeans(sorted[mid:])
	}

	agg := TrainerAggregate{
		Trainer:     trainer,
		Responses:   len(group),
		OverallAvg:  round2(overall),
		EarlyAvg:    round2(early),
		LateAvg:     round2(late),
		Improvement: round2(late - early),
	}

	// The composite blends the already-rounded figures so the score always
	// matches what the reports display.
	agg.Score = round2(c.weights.Overall*agg.OverallAvg + c.weights.Late*agg.LateAvg)
	return agg
}

// meanOfColumnMeans averages each rating column over the records where it
// is present, then averages those column means. Columns are weighted
// equally regardless of how many responses answered them; a column with no
// observations in the slice is skipped.
func (c *Calculator) meanOfColumnMeans(records []feedback.Record) float64 {
	var sum float64
	var cols int

	for _, col := range c.ratingCols {
		var colSum float64
		var n int
		for _, rec := range records {
			if v, ok := rec.Rating(col); ok {
				colSum += v
				n++
			}
		}
		if n > 0 {
			sum += colSum / float64(n)
			cols++
		}
	}

	if cols == 0 {
		return 0
	}
	return sum / float64(cols)
}

// sortByTimestamp returns the records ordered by submission time
// ascending. Records without a parseable timestamp sort after all dated
// records, in their original relative order.
func sortByTimestamp(records []feedback.Record) []feedback.Record {
	sorted := append([]feedback.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.HasTimestamp && b.HasTimestamp:
			return a.Timestamp.Before(b.Timestamp)
		case a.HasTimestamp:
			return true
		default:
			return false
		}
	})
	return sorted
}

// validateInputs validates the input data
func (c *Calculator) validateInputs(records []feedback.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no feedback records provided")
	}
	if len(c.ratingCols) == 0 {
		return fmt.Errorf("no rating columns configured")
	}
	if !c.weights.IsValid() {
		return fmt.Errorf("invalid score weights: overall=%.2f late=%.2f", c.weights.Overall, c.weights.Late)
	}
	if c.minResponses < 1 {
		return fmt.Errorf("minimum response count must be at least 1, got %d", c.minResponses)
	}
	return nil
}
