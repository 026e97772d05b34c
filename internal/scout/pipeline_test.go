package scout_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoutcli/internal/config"
	"scoutcli/internal/evidence"
	"scoutcli/internal/exporter"
	"scoutcli/internal/feedback"
	"scoutcli/internal/outreach"
	"scoutcli/internal/scoring"
	"scoutcli/internal/scout"
)

// Full scoring-stage run over a small synthetic export, followed by the
// outreach stage reading the results file the scoring stage wrote.
func TestPipelineEndToEnd(t *testing.T) {
	cols := config.ColumnsConfig{
		Timestamp: "Creation Date",
		Completed: "completed",
		Trainer:   "Trainer",
		Rating:    []string{"1.1_clarity*", "1.2_pace*"},
		Quote:     []string{"3.1_What did you like most?*"},
	}

	annaQuote := "Anna kept the whole group engaged from start to finish."
	bobQuote := "Bob showed us exactly how to apply the theory on real projects, which was invaluable."

	csv := `Creation Date,completed,Trainer,1.1_clarity*,1.2_pace*,3.1_What did you like most?*
"Jan 01, 2024 09:00 AM",yes,anna@example.com,8,8,"` + annaQuote + `"
"Jan 02, 2024 09:00 AM",yes,anna@example.com,8,8,
"Jan 03, 2024 09:00 AM",yes,anna@example.com,8,8,
"Jan 01, 2024 10:00 AM",yes,bob@example.com,6,6,
"Jan 02, 2024 10:00 AM",yes,bob@example.com,6,6,"` + bobQuote + `"
"Jan 03, 2024 10:00 AM",yes,bob@example.com,9,9,
"Jan 04, 2024 10:00 AM",yes,bob@example.com,9,9,
"Jan 05, 2024 10:00 AM",yes,carol@example.com,10,10,
"Jan 06, 2024 10:00 AM",yes,carol@example.com,10,10,
"Jan 07, 2024 10:00 AM",no,anna@example.com,2,2,
"garbage date",yes,eve@example.com,5,5,
`

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "feedback.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte(csv), 0644))

	ctx := context.Background()

	loader := feedback.NewLoader(cols, "Jan 02, 2006 03:04 PM", nil)
	records, err := loader.Load(ctx, inputPath)
	require.NoError(t, err)
	require.Len(t, records, 10)

	calc := scoring.NewCalculator(cols.Rating, scoring.DefaultWeights(), 3, nil)
	aggregates, err := calc.Calculate(ctx, records)
	require.NoError(t, err)

	// carol (2 responses) and eve (1 response) are below the threshold.
	require.Len(t, aggregates, 2)
	assert.Equal(t, "bob@example.com", aggregates[0].Trainer)
	assert.Equal(t, 8.1, aggregates[0].Score)
	assert.Equal(t, 3.0, aggregates[0].Improvement)
	assert.Equal(t, "anna@example.com", aggregates[1].Trainer)
	assert.Equal(t, 8.0, aggregates[1].Score)
	assert.Equal(t, 0.0, aggregates[1].Improvement)

	extractor := evidence.NewExtractor(cols.Quote, nil)
	assembler := scout.NewAssembler(extractor, 2, nil)
	results := assembler.Assemble(ctx, aggregates, records, 2)

	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Rank)
	assert.Contains(t, results[0].CaseStudyAngle, "growth journey")
	require.Len(t, results[0].EvidenceQuotes, 1)
	assert.Equal(t, bobQuote, results[0].EvidenceQuotes[0].Quote)
	assert.Contains(t, results[1].CaseStudyAngle, "best practices")

	// Scoring stage artifacts.
	resultsPath := filepath.Join(dir, "output", "results.json")
	leaderboardPath := filepath.Join(dir, "output", "leaderboard.csv")
	reportPath := filepath.Join(dir, "output", "report.html")
	require.NoError(t, exporter.WriteResultsJSON(results, resultsPath, nil))
	require.NoError(t, exporter.WriteLeaderboardCSV(aggregates, leaderboardPath, nil))
	require.NoError(t, exporter.WriteHTMLReport(results, aggregates, 3, reportPath, nil))

	leaderboard, err := os.ReadFile(leaderboardPath)
	require.NoError(t, err)
	assert.NotContains(t, string(leaderboard), "carol@example.com")
	assert.NotContains(t, string(leaderboard), "eve@example.com")

	// Outreach stage picks up the results file independently.
	loaded, err := outreach.LoadResults(resultsPath)
	require.NoError(t, err)
	drafts := outreach.NewGenerator(nil).GenerateAll(loaded)

	draftsPath := filepath.Join(dir, "output", "outreach_ready.json")
	require.NoError(t, outreach.WriteDrafts(drafts, draftsPath, nil))

	data, err := os.ReadFile(draftsPath)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Bob", decoded[0]["trainer_display_name"])
	assert.Contains(t, decoded[0]["body"].(string), bobQuote)
	assert.Equal(t, "Anna", decoded[1]["trainer_display_name"])
	assert.Contains(t, decoded[1]["body"].(string), annaQuote)
}
