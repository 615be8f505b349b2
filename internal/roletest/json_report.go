package roletest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/acarl005/stripansi"
)

// DetailedReport is the document written by SaveDetailedReport.
type DetailedReport struct {
	RunID         string           `json:"run_id"`
	System        System           `json:"system"`
	Configuration RunConfiguration `json:"configuration"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       time.Time        `json:"end_time"`
	Duration      string           `json:"duration"`
	Passed        int              `json:"passed"`
	Failed        int              `json:"failed"`
	Skipped       int              `json:"skipped"`
	Success       bool             `json:"success"`
	Results       []RoleResult     `json:"results"`
}

// NewDetailedReport builds the report document for a finished suite.
// Captured stderr is stripped of terminal escape sequences.
func NewDetailedReport(suite SuiteResult, config RunConfiguration) DetailedReport {
	results := make([]RoleResult, len(suite.Results))
	for i, r := range suite.Results {
		results[i] = r
		if len(r.Failures) == 0 {
			continue
		}
		failures := make([]CommandFailure, len(r.Failures))
		for j, f := range r.Failures {
			f.Stderr = stripansi.Strip(f.Stderr)
			failures[j] = f
		}
		results[i].Failures = failures
	}

	return DetailedReport{
		RunID:         suite.RunID,
		System:        suite.System,
		Configuration: config,
		StartTime:     suite.StartTime,
		EndTime:       suite.EndTime,
		Duration:      suite.Duration.String(),
		Passed:        suite.Count(OutcomePass),
		Failed:        suite.Count(OutcomeFail),
		Skipped:       suite.Count(OutcomeSkip),
		Success:       !suite.Failed(),
		Results:       results,
	}
}

// SaveDetailedReport writes a JSON report into dir and returns its path.
func SaveDetailedReport(dir string, suite SuiteResult, config RunConfiguration) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	fullPath := filepath.Join(dir, fmt.Sprintf("bootware-roles-report-%s.json", timestamp))

	jsonData, err := json.MarshalIndent(NewDetailedReport(suite, config), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(fullPath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return fullPath, nil
}
