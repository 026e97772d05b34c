// Package config loads the trainer scout configuration from environment
// variables (prefix SCOUT) with optional overrides from a scout.yaml file.
//
// Environment variables cover the scalar settings (paths, thresholds,
// logging). The survey column labels contain commas and are therefore only
// overridable through the YAML file; sensible defaults matching the survey
// tool export are compiled in.
//
// Example:
//
//	SCOUT_INPUT_CSV_PATH=data/feedback.csv
//	SCOUT_SCORING_MIN_RESPONSES=3
//	SCOUT_SCORING_TOP_N=2
//	SCOUT_OUTPUT_DIR=output
//	SCOUT_OUTREACH_RESULTS_PATH=output/results.json
package config
