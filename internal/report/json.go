package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/webprune/webprune"
)

// JSONOutput is the structured JSON export schema.
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Summary   JSONSummary  `json:"summary"`
	Changes   []JSONChange `json:"changes"`
	Warnings  []string     `json:"warnings,omitempty"`
}

// JSONSummary contains run totals.
type JSONSummary struct {
	FilesScanned int `json:"files_scanned"`
	FilesChanged int `json:"files_changed"`
	BytesSaved   int `json:"bytes_saved"`
}

// JSONChange describes what was removed from one file.
type JSONChange struct {
	File         string   `json:"file"`
	Type         string   `json:"type"`
	Timestamp    string   `json:"timestamp"`
	RemovedItems []string `json:"removed_items"`
	OriginalSize int      `json:"original_size"`
	NewSize      int      `json:"new_size"`
	BytesSaved   int      `json:"bytes_saved"`
}

// WriteJSON writes the run result as indented JSON.
func WriteJSON(w io.Writer, result *webprune.Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a run result to the export schema.
func buildJSONOutput(result *webprune.Result) JSONOutput {
	changes := make([]JSONChange, len(result.Records))
	for i, rec := range result.Records {
		changes[i] = JSONChange{
			File:         rec.File,
			Type:         string(rec.Type),
			Timestamp:    rec.Timestamp.Format(time.RFC3339),
			RemovedItems: rec.Removed,
			OriginalSize: rec.OriginalSize,
			NewSize:      rec.NewSize,
			BytesSaved:   rec.BytesSaved(),
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			FilesScanned: result.Project.Stats.FilesScanned,
			FilesChanged: result.FilesChanged(),
			BytesSaved:   result.BytesSaved(),
		},
		Changes:  changes,
		Warnings: result.Warnings,
	}
}
