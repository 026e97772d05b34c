package scout

// QuoteRef is an evidence quote reduced to its traceable essentials for
// the results artifact.
type QuoteRef struct {
	RowID string `json:"row_id"`
	Quote string `json:"quote"`
}

// RankedResult is the output unit of the scoring stage: one top-ranked
// trainer with their aggregate figures, supporting quotes, and the
// case-study rationale. The JSON field names are the contract consumed by
// the outreach stage.
type RankedResult struct {
	Rank           int        `json:"rank"`
	TrainerName    string     `json:"trainer_name"`
	Responses      int        `json:"n_responses"`
	TrainerScore   float64    `json:"trainer_score"`
	OverallAvg     float64    `json:"overall_avg"`
	Improvement    float64    `json:"improvement"`
	EvidenceQuotes []QuoteRef `json:"evidence_quotes"`
	CaseStudyAngle string     `json:"case_study_angle"`
}
