// Package outreach turns ranked trainer results into email drafts ready
// for review. It is the second, independent stage of the pipeline and
// consumes the results JSON written by the scoring stage.
package outreach

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "scoutcli/internal/errors"
	"scoutcli/internal/scout"
)

// quoteLimit is the maximum quote length embedded in a draft body; longer
// quotes are cut to 197 runes plus an ellipsis marker.
const quoteLimit = 200

// draftSubject is the fixed subject line for every outreach draft.
const draftSubject = "Your learners love your training — would you share your story?"

// Draft is one outreach email draft for a top-ranked trainer.
type Draft struct {
	ID                 string  `json:"draft_id"`
	TrainerName        string  `json:"trainer_name"`
	TrainerDisplayName string  `json:"trainer_display_name"`
	Subject            string  `json:"subject"`
	Body               string  `json:"body"`
	TrainerScore       float64 `json:"trainer_score"`
	Responses          int     `json:"n_responses"`
	CaseStudyAngle     string  `json:"case_study_angle"`
	GeneratedAt        string  `json:"generated_at"`
	Status             string  `json:"status"`
}

// Generator produces outreach drafts from ranked results.
type Generator struct {
	logger *slog.Logger
	clock  func() time.Time
}

// NewGenerator creates a draft generator. A nil logger falls back to
// slog.Default().
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, clock: time.Now}
}

// LoadResults reads the ranked results JSON written by the scoring stage.
// A missing or unreadable file is fatal for the outreach stage.
func LoadResults(path string) ([]scout.RankedResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("results file %s not found, run the scoring stage first", path), err)
	}

	var results []scout.RankedResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("cannot parse results file %s", path), err)
	}
	return results, nil
}

// GenerateAll produces one draft per ranked result, independent of the
// others.
func (g *Generator) GenerateAll(results []scout.RankedResult) []Draft {
	drafts := make([]Draft, 0, len(results))
	for _, r := range results {
		draft := g.Generate(r)
		drafts = append(drafts, draft)
		g.logger.Info("generated outreach draft",
			slog.String("trainer", draft.TrainerDisplayName),
			slog.String("subject", draft.Subject),
			slog.String("status", draft.Status),
		)
	}
	return drafts
}

// Generate builds the draft for a single ranked trainer.
func (g *Generator) Generate(r scout.RankedResult) Draft {
	name := DisplayName(r.TrainerName)

	quote := "N/A"
	if len(r.EvidenceQuotes) > 0 {
		quote = truncateQuote(r.EvidenceQuotes[0].Quote)
	}

	return Draft{
		ID:                 uuid.NewString(),
		TrainerName:        r.TrainerName,
		TrainerDisplayName: name,
		Subject:            draftSubject,
		Body:               renderBody(name, quote, r),
		TrainerScore:       r.TrainerScore,
		Responses:          r.Responses,
		CaseStudyAngle:     r.CaseStudyAngle,
		GeneratedAt:        g.clock().Format(time.RFC3339),
		Status:             "draft",
	}
}

// DisplayName derives a human-readable name from a trainer identifier.
// The identifier is treated like an email local part: anything after an
// "@" is dropped, separators become spaces, and each word is title-cased.
func DisplayName(identifier string) string {
	local, _, _ := strings.Cut(identifier, "@")
	local = strings.ReplaceAll(local, ".", " ")
	local = strings.ReplaceAll(local, "_", " ")
	return cases.Title(language.English).String(local)
}

// truncateQuote cuts quotes longer than quoteLimit runes, keeping the
// first 197 and appending "...". Shorter quotes pass through verbatim.
func truncateQuote(quote string) string {
	runes := []rune(quote)
	if len(runes) <= quoteLimit {
		return quote
	}
	return string(runes[:quoteLimit-3]) + "..."
}

// bodyContext is the template context for the draft body.
type bodyContext struct {
	Name       string
	OverallAvg string
	Responses  int
	Quote      string
}

var bodyTemplate = template.Must(template.New("body").Parse(draftBody))

// renderBody fills the fixed-structure message body.
func renderBody(name, quote string, r scout.RankedResult) string {
	var sb strings.Builder
	// The template only references fields that always exist, so execution
	// cannot fail at runtime.
	_ = bodyTemplate.Execute(&sb, bodyContext{
		Name:       name,
		OverallAvg: scout.FormatScore(r.OverallAvg),
		Responses:  r.Responses,
		Quote:      quote,
	})
	return sb.String()
}

const draftBody = `Hi {{.Name}},

I hope this message finds you well!

We've been reviewing learner feedback across our trainer network, and your name stood out. Your training sessions have received consistently strong feedback, with an overall rating of {{.OverallAvg}}/10 across {{.Responses}} responses.

Here's what one of your learners said:

  "{{.Quote}}"

We'd love to feature your journey in a short case study to inspire other trainers in our network. This would involve either:

  • A short testimonial quote (2–3 sentences, we can draft it for your approval), or
  • A 15–20 minute chat (or written Q&A) for a fuller case study

Would you be open to either of these? Happy to work around your schedule.

Thanks for the great work you do!

Best regards,
The Camphire Team`
