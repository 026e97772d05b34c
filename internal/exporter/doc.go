// Package exporter renders the trainer scout artifacts.
//
// This package contains the report renderers consumed by the scoring
// stage:
//
// CSVWriter: Core CSV writing functionality with support for headers and
// UTF-8 BOM for Excel compatibility.
//
// WriteLeaderboardCSV / WriteLeaderboardXLSX: the full ranked trainer
// leaderboard as a spreadsheet-friendly table.
//
// WriteResultsJSON: the top-N ranked results consumed downstream by the
// outreach stage.
//
// WriteHTMLReport: a human-readable report with per-trainer cards and the
// full leaderboard table.
//
// RenderConsole: a terminal summary of the top trainers.
//
// The renderers are pure formatting transforms; all decision logic lives
// upstream in the scoring and scout packages.
package exporter
