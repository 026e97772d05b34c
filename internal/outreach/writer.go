package outreach

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteDrafts writes the drafts array as indented JSON, ready for review
// or automation pickup.
func WriteDrafts(drafts []Draft, filePath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drafts: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write drafts file: %w", err)
	}

	logger.Info("saved outreach drafts",
		slog.String("file_path", filePath),
		slog.Int("draft_count", len(drafts)))
	return nil
}
