package scout

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoutcli/internal/evidence"
	"scoutcli/internal/feedback"
	"scoutcli/internal/scoring"
)

const quoteCol = "3.12_What did you like most about their training style?*"

func newTestAssembler() *Assembler {
	return NewAssembler(evidence.NewExtractor([]string{quoteCol}, nil), 2, nil)
}

func sampleAggregates() []scoring.TrainerAggregate {
	return []scoring.TrainerAggregate{
		{Trainer: "anna", Responses: 4, OverallAvg: 7.5, LateAvg: 9.0, Improvement: 3.0, Score: 8.1},
		{Trainer: "bob", Responses: 3, OverallAvg: 8.0, LateAvg: 8.0, Improvement: 0.0, Score: 8.0},
		{Trainer: "carol", Responses: 3, OverallAvg: 6.0, LateAvg: 6.0, Improvement: -1.0, Score: 6.0},
	}
}

func sampleRecords() []feedback.Record {
	quote := strings.Repeat("a genuinely engaging trainer ", 2)
	return []feedback.Record{
		{RowID: "ROW-001", Trainer: "anna", Quotes: map[string]string{quoteCol: quote}},
		{RowID: "ROW-002", Trainer: "bob", Quotes: map[string]string{}},
	}
}

func TestAssembleTopN(t *testing.T) {
	results := newTestAssembler().Assemble(context.Background(), sampleAggregates(), sampleRecords(), 2)

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "anna", results[0].TrainerName)
	assert.Equal(t, 8.1, results[0].TrainerScore)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, "bob", results[1].TrainerName)
}

func TestAssembleTopNClamped(t *testing.T) {
	results := newTestAssembler().Assemble(context.Background(), sampleAggregates(), sampleRecords(), 10)
	assert.Len(t, results, 3)

	results = newTestAssembler().Assemble(context.Background(), sampleAggregates(), sampleRecords(), 0)
	assert.Empty(t, results)
}

func TestAssembleAttachesQuotes(t *testing.T) {
	results := newTestAssembler().Assemble(context.Background(), sampleAggregates(), sampleRecords(), 2)

	require.Len(t, results[0].EvidenceQuotes, 1)
	assert.Equal(t, "ROW-001", results[0].EvidenceQuotes[0].RowID)

	// A trainer with no qualifying quotes gets an empty list, not nil.
	assert.NotNil(t, results[1].EvidenceQuotes)
	assert.Empty(t, results[1].EvidenceQuotes)
}

func TestCaseStudyAngleBranches(t *testing.T) {
	improved := scoring.TrainerAggregate{Responses: 4, OverallAvg: 7.5, Improvement: 3.0}
	angle := caseStudyAngle(improved)
	assert.Contains(t, angle, "growth journey")
	assert.Contains(t, angle, "avg 7.5/10")
	assert.Contains(t, angle, "across 4 reviews")
	assert.Contains(t, angle, "+3.0 pts")

	steady := scoring.TrainerAggregate{Responses: 3, OverallAvg: 8.0, Improvement: 0.0}
	angle = caseStudyAngle(steady)
	assert.Contains(t, angle, "best practices")
	assert.Contains(t, angle, "avg 8.0/10")
	assert.Contains(t, angle, "across 3 reviews")
	assert.NotContains(t, angle, "growth journey")

	// Negative improvement also takes the best-practices framing.
	declined := scoring.TrainerAggregate{Responses: 3, OverallAvg: 6.0, Improvement: -1.0}
	assert.Contains(t, caseStudyAngle(declined), "best practices")
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{8.0, "8.0"},
		{8.1, "8.1"},
		{7.53, "7.53"},
		{0.0, "0.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatScore(tt.in))
	}
}
