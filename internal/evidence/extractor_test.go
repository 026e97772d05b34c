package evidence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoutcli/internal/feedback"
)

var quoteCols = []string{
	"3.12_What did you like most about their training style?*",
	"3.13_Could you please share a highlight from the training?*",
}

func rec(rowID, trainer string, quotes map[string]string) feedback.Record {
	return feedback.Record{RowID: rowID, Trainer: trainer, Quotes: quotes}
}

func TestBestQuotesFiltersAndSorts(t *testing.T) {
	long := strings.Repeat("really engaging session ", 4) // well over threshold
	medium := "clear explanations and good pacing"
	records := []feedback.Record{
		rec("ROW-001", "anna", map[string]string{
			quoteCols[0]: medium,
			quoteCols[1]: "ok",
		}),
		rec("ROW-002", "anna", map[string]string{quoteCols[0]: long}),
		rec("ROW-003", "bob", map[string]string{quoteCols[0]: long}),
	}

	quotes := NewExtractor(quoteCols, nil).BestQuotes(records, "anna", 2)

	require.Len(t, quotes, 2)
	assert.Equal(t, "ROW-002", quotes[0].RowID)
	assert.Equal(t, "ROW-001", quotes[1].RowID)
	assert.GreaterOrEqual(t, quotes[0].Length, quotes[1].Length)
	for _, q := range quotes {
		assert.Greater(t, q.Length, MinQuoteLength)
	}
}

func TestBestQuotesRespectsLimit(t *testing.T) {
	long := strings.Repeat("insightful and practical ", 3)
	records := []feedback.Record{
		rec("ROW-001", "anna", map[string]string{quoteCols[0]: long, quoteCols[1]: long + "!"}),
		rec("ROW-002", "anna", map[string]string{quoteCols[0]: long + "!!"}),
	}

	ex := NewExtractor(quoteCols, nil)
	assert.Len(t, ex.BestQuotes(records, "anna", 2), 2)
	assert.Len(t, ex.BestQuotes(records, "anna", 10), 3)
	assert.Empty(t, ex.BestQuotes(records, "anna", 0))
}

func TestBestQuotesNoQualifyingText(t *testing.T) {
	records := []feedback.Record{
		rec("ROW-001", "anna", map[string]string{quoteCols[0]: "short"}),
		rec("ROW-002", "anna", map[string]string{}),
	}

	quotes := NewExtractor(quoteCols, nil).BestQuotes(records, "anna", 2)
	assert.Empty(t, quotes)
}

func TestBestQuotesThresholdIsExclusive(t *testing.T) {
	exactly20 := strings.Repeat("a", 20)
	justOver := strings.Repeat("a", 21)
	records := []feedback.Record{
		rec("ROW-001", "anna", map[string]string{quoteCols[0]: exactly20}),
		rec("ROW-002", "anna", map[string]string{quoteCols[0]: justOver}),
	}

	quotes := NewExtractor(quoteCols, nil).BestQuotes(records, "anna", 5)
	require.Len(t, quotes, 1)
	assert.Equal(t, "ROW-002", quotes[0].RowID)
}

func TestBestQuotesCleansText(t *testing.T) {
	raw := "  The trainer kept everyone\nengaged all the\r\nway through.  "
	records := []feedback.Record{
		rec("ROW-001", "anna", map[string]string{quoteCols[0]: raw}),
	}

	quotes := NewExtractor(quoteCols, nil).BestQuotes(records, "anna", 1)
	require.Len(t, quotes, 1)
	assert.Equal(t, "The trainer kept everyone engaged all the way through.", quotes[0].Text)
}

func TestSourceTag(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"3.12_What did you like most about their training style?*", "3.12"},
		{"v2_1.1_I perceived the trainer as motivated.*", "v2"},
		{"plain label", "plain label"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, sourceTag(tt.label))
		})
	}
}
