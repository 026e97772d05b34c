// Package scout assembles the ranked trainer results: the top aggregates
// joined with their evidence quotes and a generated case-study rationale.
package scout

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"scoutcli/internal/evidence"
	"scoutcli/internal/feedback"
	"scoutcli/internal/scoring"
)

// Assembler builds RankedResults from ranked aggregates and the cleaned
// record set.
type Assembler struct {
	extractor  *evidence.Extractor
	quoteCount int
	logger     *slog.Logger
}

// NewAssembler creates an assembler that attaches up to quoteCount
// evidence quotes per trainer.
func NewAssembler(extractor *evidence.Extractor, quoteCount int, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		extractor:  extractor,
		quoteCount: quoteCount,
		logger:     logger,
	}
}

// Assemble returns the top-N ranked results in rank order. The result
// length is min(topN, len(aggregates)).
func (a *Assembler) Assemble(ctx context.Context, aggregates []scoring.TrainerAggregate, records []feedback.Record, topN int) []RankedResult {
	if topN > len(aggregates) {
		topN = len(aggregates)
	}
	if topN < 0 {
		topN = 0
	}

	results := make([]RankedResult, 0, topN)
	for i := 0; i < topN; i++ {
		agg := aggregates[i]
		quotes := a.extractor.BestQuotes(records, agg.Trainer, a.quoteCount)

		refs := make([]QuoteRef, 0, len(quotes))
		for _, q := range quotes {
			refs = append(refs, QuoteRef{RowID: q.RowID, Quote: q.Text})
		}

		results = append(results, RankedResult{
			Rank:           i + 1,
			TrainerName:    agg.Trainer,
			Responses:      agg.Responses,
			TrainerScore:   agg.Score,
			OverallAvg:     agg.OverallAvg,
			Improvement:    agg.Improvement,
			EvidenceQuotes: refs,
			CaseStudyAngle: caseStudyAngle(agg),
		})

		a.logger.DebugContext(ctx, "assembled ranked result",
			slog.Int("rank", i+1),
			slog.String("trainer", agg.Trainer),
			slog.Int("quotes", len(refs)),
		)
	}

	return results
}

// caseStudyAngle generates the one-line outreach rationale. Trainers whose
// late-half average exceeds their early-half average get the growth
// framing; everyone else gets the best-practices framing.
func caseStudyAngle(agg scoring.TrainerAggregate) string {
	if agg.Improvement > 0 {
		return fmt.Sprintf(
			"Strong overall performance (avg %s/10 across %d reviews) with visible improvement over time (+%s pts). Great candidate for a 'growth journey' testimonial.",
			FormatScore(agg.OverallAvg), agg.Responses, FormatScore(agg.Improvement))
	}
	return fmt.Sprintf(
		"Consistently high performer (avg %s/10 across %d reviews). Ideal for a 'best practices' case study.",
		FormatScore(agg.OverallAvg), agg.Responses)
}

// FormatScore renders a rounded score with its shortest decimal form but
// always at least one decimal place, so 8 reads as "8.0".
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
