package dispatch

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultResultFile is where aggregated dispatch results are persisted
// when no path is given.
const DefaultResultFile = "result.json"

// WriteResult persists an aggregated dispatch result as indented JSON.
// An empty path writes to DefaultResultFile. Per-record field order is
// preserved in the output.
func WriteResult(result Result, path string) error {
	if path == "" {
		path = DefaultResultFile
	}

	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing result to %s: %w", path, err)
	}
	return nil
}
