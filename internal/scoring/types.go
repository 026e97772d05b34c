package scoring

import (
	"math"
)

// TrainerAggregate contains the derived per-trainer performance figures.
// Aggregates are recomputed from scratch on every run.
type TrainerAggregate struct {
	Trainer     string  `json:"trainer"`
	Responses   int     `json:"n_responses"`
	OverallAvg  float64 `json:"overall_score"`
	EarlyAvg    float64 `json:"early_avg"`
	LateAvg     float64 `json:"late_avg"`
	Improvement float64 `json:"improvement"`
	Score       float64 `json:"trainer_score"`
}

// Weights contains the blend weights for the composite trainer score.
type Weights struct {
	Overall float64 `json:"overall"`
	Late    float64 `json:"late"`
}

// DefaultWeights returns the standard 60/40 overall/late blend.
func DefaultWeights() Weights {
	return Weights{Overall: 0.6, Late: 0.4}
}

// IsValid checks that both weights are positive and sum to one.
func (w Weights) IsValid() bool {
	return w.Overall > 0 && w.Late > 0 &&
		math.Abs(w.Overall+w.Late-1.0) < 1e-9
}

// round2 rounds to two decimal places, half away from zero. All reported
// averages and scores go through this before being exposed.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
