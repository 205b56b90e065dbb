package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"witness/internal/run"
	"witness/pkg/logging"
)

const microsecond = time.Microsecond

// WriteJSON writes the structured run report to path.
func WriteJSON(path string, result *run.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	logging.Info("Report", "Wrote run report to %s", path)
	return nil
}
