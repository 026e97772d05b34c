package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Scoring  ScoringConfig  `yaml:"scoring" envconfig:"SCORING"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Outreach OutreachConfig `yaml:"outreach" envconfig:"OUTREACH"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Columns  ColumnsConfig  `yaml:"columns"`
}

// InputConfig describes the feedback export consumed by the scoring stage
type InputConfig struct {
	CSVPath         string `yaml:"csv_path" envconfig:"CSV_PATH" default:"data/feedback.csv" validate:"required"`
	TimestampLayout string `yaml:"timestamp_layout" envconfig:"TIMESTAMP_LAYOUT" default:"Jan 02, 2006 03:04 PM" validate:"required"`
}

// ScoringConfig contains the thresholds that gate ranking
type ScoringConfig struct {
	MinResponses int `yaml:"min_responses" envconfig:"MIN_RESPONSES" default:"3" validate:"min=1"`
	TopN         int `yaml:"top_n" envconfig:"TOP_N" default:"2" validate:"min=1"`
	QuoteCount   int `yaml:"quote_count" envconfig:"QUOTE_COUNT" default:"2" validate:"min=0"`
}

// OutputConfig contains the scoring stage artifact locations
type OutputConfig struct {
	Dir             string `yaml:"dir" envconfig:"DIR" default:"output" validate:"required"`
	ResultsFile     string `yaml:"results_file" envconfig:"RESULTS_FILE" default:"results.json" validate:"required"`
	LeaderboardCSV  string `yaml:"leaderboard_csv" envconfig:"LEADERBOARD_CSV" default:"leaderboard.csv" validate:"required"`
	LeaderboardXLSX string `yaml:"leaderboard_xlsx" envconfig:"LEADERBOARD_XLSX" default:"leaderboard.xlsx" validate:"required"`
	ReportHTML      string `yaml:"report_html" envconfig:"REPORT_HTML" default:"report.html" validate:"required"`
}

// OutreachConfig contains the outreach stage file handoff locations
type OutreachConfig struct {
	ResultsPath string `yaml:"results_path" envconfig:"RESULTS_PATH" default:"output/results.json" validate:"required"`
	OutputPath  string `yaml:"output_path" envconfig:"OUTPUT_PATH" default:"output/outreach_ready.json" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/scout.log"`
}

// ColumnsConfig maps survey export column labels to their pipeline roles.
// The labels contain commas, so list overrides come from the YAML file
// rather than from environment variables.
type ColumnsConfig struct {
	Timestamp string   `yaml:"timestamp"`
	Completed string   `yaml:"completed"`
	Trainer   string   `yaml:"trainer"`
	Rating    []string `yaml:"rating"`
	Quote     []string `yaml:"quote"`
}

// Default column labels match the survey tool export this pipeline was
// built against.
var (
	defaultTimestampColumn = "Creation Date"
	defaultCompletedColumn = "completed"
	defaultTrainerColumn   = "Trainer"

	defaultRatingColumns = []string{
		"1.3_The trainer’s teaching style helped me to stay concentrated.*",
		"1.4_The trainer offered the opportunity to participate.*",
		"2.8_The trainer was helpful in explaining how to put theory into practice.*",
		"v1_1.2_I perceived the trainer as concentrated.*",
		"v2_1.1_I perceived the trainer as motivated.*",
		"v2_1.2_ The trainer was very clear in their explanations.*",
	}

	defaultQuoteColumns = []string{
		"3.12_What did you like most about their training style?*",
		"3.13_Could you please share a highlight from the training? What stood out to you as particularly enjoyable or beneficial?*",
		"2.6_Did the trainer establish good rapport with the learners? Did they make you feel at ease to ask question, interact, and engage with the training? Give details.*",
	}
)

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("SCOUT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyColumnDefaults()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// Only fields the environment left at their zero value are taken from the
// file, which in practice means the column label lists.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Columns.Timestamp == "" {
		envConfig.Columns.Timestamp = fileConfig.Columns.Timestamp
	}
	if envConfig.Columns.Completed == "" {
		envConfig.Columns.Completed = fileConfig.Columns.Completed
	}
	if envConfig.Columns.Trainer == "" {
		envConfig.Columns.Trainer = fileConfig.Columns.Trainer
	}
	if len(envConfig.Columns.Rating) == 0 {
		envConfig.Columns.Rating = fileConfig.Columns.Rating
	}
	if len(envConfig.Columns.Quote) == 0 {
		envConfig.Columns.Quote = fileConfig.Columns.Quote
	}

	return envConfig
}

// applyColumnDefaults fills any column labels the environment and config
// file both left empty.
func (c *Config) applyColumnDefaults() {
	if c.Columns.Timestamp == "" {
		c.Columns.Timestamp = defaultTimestampColumn
	}
	if c.Columns.Completed == "" {
		c.Columns.Completed = defaultCompletedColumn
	}
	if c.Columns.Trainer == "" {
		c.Columns.Trainer = defaultTrainerColumn
	}
	if len(c.Columns.Rating) == 0 {
		c.Columns.Rating = append([]string(nil), defaultRatingColumns...)
	}
	if len(c.Columns.Quote) == 0 {
		c.Columns.Quote = append([]string(nil), defaultQuoteColumns...)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if len(c.Columns.Rating) == 0 {
		return fmt.Errorf("at least one rating column must be configured")
	}
	if len(c.Columns.Quote) == 0 {
		return fmt.Errorf("at least one quote column must be configured")
	}

	switch c.Logging.Output {
	case "stdout", "file", "both":
	default:
		c.Logging.Output = "stdout"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/scout.log"
	}

	return nil
}

// ResultsPath returns the resolved path of the ranked results JSON
func (c *Config) ResultsPath() string {
	return filepath.Join(c.Output.Dir, c.Output.ResultsFile)
}

// LeaderboardCSVPath returns the resolved path of the CSV leaderboard
func (c *Config) LeaderboardCSVPath() string {
	return filepath.Join(c.Output.Dir, c.Output.LeaderboardCSV)
}

// LeaderboardXLSXPath returns the resolved path of the XLSX leaderboard
func (c *Config) LeaderboardXLSXPath() string {
	return filepath.Join(c.Output.Dir, c.Output.LeaderboardXLSX)
}

// ReportHTMLPath returns the resolved path of the HTML report
func (c *Config) ReportHTMLPath() string {
	return filepath.Join(c.Output.Dir, c.Output.ReportHTML)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"scout.yaml",
		"configs/scout.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{
		Input: InputConfig{
			CSVPath:         "data/feedback.csv",
			TimestampLayout: "Jan 02, 2006 03:04 PM",
		},
		Scoring: ScoringConfig{
			MinResponses: 3,
			TopN:         2,
			QuoteCount:   2,
		},
		Output: OutputConfig{
			Dir:             "output",
			ResultsFile:     "results.json",
			LeaderboardCSV:  "leaderboard.csv",
			LeaderboardXLSX: "leaderboard.xlsx",
			ReportHTML:      "report.html",
		},
		Outreach: OutreachConfig{
			ResultsPath: "output/results.json",
			OutputPath:  "output/outreach_ready.json",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/scout.log",
		},
	}
	cfg.applyColumnDefaults()
	return cfg
}
