package inlinetest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

type reportMeta struct {
	Files           []string `json:"files"`
	Tag             string   `json:"tag,omitempty"`
	Total           int      `json:"total"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Timestamp       string   `json:"timestamp"`
}

// A Report is the machine readable summary of a run.
type Report struct {
	Meta     reportMeta `json:"meta"`
	Failures []Failure  `json:"failures"`
}

func newReport(files []string, tag string, total RunResult, duration time.Duration, now time.Time) Report {

	failures := total.Failures
	if failures == nil {
		failures = []Failure{}
	}

	return Report{
		Meta: reportMeta{
			Files:           files,
			Tag:             tag,
			Total:           total.Total(),
			Passed:          total.Passed,
			Failed:          total.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       now.Format(time.RFC3339),
		},
		Failures: failures,
	}
}

// writeReport writes the report as indented JSON at path, creating
// the parent directories if needed.
func writeReport(path string, r Report) error {

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to marshal report")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "unable to create report directory")
	}

	if err := os.WriteFile(path, data, 0644); err != nil { // nolint
		return errors.Wrap(err, "unable to write report")
	}

	return nil
}
