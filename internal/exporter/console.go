package exporter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"scoutcli/internal/scout"
)

// consoleQuoteLimit is the display length quotes are shortened to in the
// terminal summary.
const consoleQuoteLimit = 120

// RenderConsole prints a terminal summary of the top-ranked trainers.
func RenderConsole(w io.Writer, results []scout.RankedResult) {
	divider := strings.Repeat("=", 70)

	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "🏆  TOP %d TRAINERS — MOST IMPROVED / BEST PERFORMERS\n", len(results))
	fmt.Fprintln(w, divider)

	for _, r := range results {
		fmt.Fprintf(w, "\n#%d  %s\n", r.Rank, r.TrainerName)
		fmt.Fprintf(w, "    Score: %s  |  Avg: %s/10  |  Improvement: %s  |  Responses: %d\n",
			scoreString(r.TrainerScore), scoreString(r.OverallAvg), signedScoreString(r.Improvement), r.Responses)
		fmt.Fprintln(w, "    Quotes:")
		for _, q := range r.EvidenceQuotes {
			fmt.Fprintf(w, "      [%s] %q\n", q.RowID, shorten(q.Quote, consoleQuoteLimit))
		}
		fmt.Fprintf(w, "    Angle: %s\n", r.CaseStudyAngle)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
}

// shorten truncates s to limit runes, appending an ellipsis marker when
// anything was cut.
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
