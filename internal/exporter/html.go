package exporter

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"scoutcli/internal/scoring"
	"scoutcli/internal/scout"
)

// reportData is the template context for the HTML report.
type reportData struct {
	GeneratedAt  string
	Results      []scout.RankedResult
	Leaderboard  []scoring.TrainerAggregate
	MinResponses int
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"score":  scoreString,
	"signed": signedScoreString,
	"inc":    func(i int) int { return i + 1 },
}).Parse(reportHTML))

// WriteHTMLReport renders the human-readable report: one card per top
// trainer followed by the full leaderboard table.
func WriteHTMLReport(results []scout.RankedResult, aggregates []scoring.TrainerAggregate, minResponses int, filePath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	data := reportData{
		GeneratedAt:  time.Now().Format("2006-01-02 15:04"),
		Results:      results,
		Leaderboard:  aggregates,
		MinResponses: minResponses,
	}

	if err := reportTemplate.Execute(file, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	logger.Info("Writing HTML report",
		slog.String("file_path", filePath),
		slog.Int("card_count", len(results)),
		slog.Int("leaderboard_count", len(aggregates)))
	return nil
}

// scoreString renders a rounded value in its shortest decimal form with at
// least one decimal place.
func scoreString(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// signedScoreString is scoreString with an explicit plus sign for
// non-negative values.
func signedScoreString(v float64) string {
	s := scoreString(v)
	if v >= 0 {
		return "+" + s
	}
	return s
}

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Most Improved Trainer Scout — Results</title>
<style>
  body { font-family: 'Segoe UI', system-ui, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; background: #f8f9fa; color: #333; }
  h1 { color: #1a1a2e; border-bottom: 3px solid #e94560; padding-bottom: 10px; }
  h2 { color: #e94560; margin-top: 40px; }
  .trainer-card { background: #fff; border-radius: 12px; padding: 24px; margin: 20px 0; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
  .rank { font-size: 2em; font-weight: bold; color: #e94560; float: left; margin-right: 16px; }
  .stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 12px; margin: 16px 0; }
  .stat { background: #f0f0f5; border-radius: 8px; padding: 12px; text-align: center; }
  .stat-value { font-size: 1.4em; font-weight: bold; color: #1a1a2e; }
  .stat-label { font-size: 0.85em; color: #666; }
  .quote { background: #fffde7; border-left: 4px solid #ffc107; padding: 12px 16px; margin: 8px 0; border-radius: 0 8px 8px 0; font-style: italic; }
  .quote .row-id { font-style: normal; font-size: 0.8em; color: #999; }
  .angle { background: #e8f5e9; padding: 12px 16px; border-radius: 8px; margin-top: 12px; }
  table { width: 100%; border-collapse: collapse; margin: 20px 0; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
  th { background: #1a1a2e; color: #fff; padding: 12px; text-align: left; }
  td { padding: 10px 12px; border-bottom: 1px solid #eee; }
  tr:hover { background: #f5f5f5; }
  .footer { text-align: center; color: #999; margin-top: 40px; font-size: 0.85em; }
</style>
</head>
<body>
<h1>🏆 Most Improved Trainer Scout</h1>
<p>Generated: {{.GeneratedAt}}</p>
{{range .Results}}
<div class="trainer-card">
  <div class="rank">#{{.Rank}}</div>
  <h2>{{.TrainerName}}</h2>
  <div class="stats">
    <div class="stat"><div class="stat-value">{{score .TrainerScore}}</div><div class="stat-label">Trainer Score</div></div>
    <div class="stat"><div class="stat-value">{{score .OverallAvg}}/10</div><div class="stat-label">Overall Average</div></div>
    <div class="stat"><div class="stat-value">{{.Responses}}</div><div class="stat-label">Responses</div></div>
  </div>
  <div class="stats">
    <div class="stat"><div class="stat-value">{{signed .Improvement}}</div><div class="stat-label">Improvement (early→late)</div></div>
  </div>
  <h3>📝 Evidence Quotes</h3>
{{range .EvidenceQuotes}}  <div class="quote">"{{.Quote}}" <span class="row-id">[{{.RowID}}]</span></div>
{{end}}  <div class="angle">💡 <strong>Case Study Angle:</strong> {{.CaseStudyAngle}}</div>
</div>
{{end}}
<h2>📊 Full Trainer Leaderboard</h2>
<table>
<tr><th>#</th><th>Trainer</th><th>Score</th><th>Avg Rating</th><th>Improvement</th><th>Responses</th></tr>
{{range $i, $agg := .Leaderboard}}<tr><td>{{inc $i}}</td><td>{{$agg.Trainer}}</td><td><strong>{{score $agg.Score}}</strong></td><td>{{score $agg.OverallAvg}}/10</td><td>{{signed $agg.Improvement}}</td><td>{{$agg.Responses}}</td></tr>
{{end}}</table>
<div class="footer">
  <p>Score = 60% overall rating avg + 40% late-half avg | Min responses: {{.MinResponses}}</p>
</div>
</body></html>`
