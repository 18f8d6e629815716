package engine

import (
	"time"

	"github.com/danieljhkim/deconflict/internal/conflict"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/report"
)

// CheckResult represents the result of a conflict check.
type CheckResult struct {
	// Segments are the discretized primary segments that were evaluated
	Segments []mission.Segment `json:"segments"`

	// Report is the conflict report
	Report conflict.Report `json:"report"`

	// Fingerprint identifies the inputs and parameters
	Fingerprint string `json:"fingerprint"`

	// Buffer and Mode echo the parameters used
	Buffer float64       `json:"buffer"`
	Mode   conflict.Mode `json:"mode"`

	// Elapsed is the evaluation time
	Elapsed time.Duration `json:"elapsedNs"`

	// Entry is the stored report (nil unless Save was requested)
	Entry *report.Entry `json:"entry,omitempty"`
}

// DiscretizeResult represents the result of discretizing a mission.
type DiscretizeResult struct {
	// Segments are the primary mission's timed segments
	Segments []mission.Segment `json:"segments"`

	// Reason explains an empty segment list
	Reason string `json:"reason,omitempty"`
}

// ListReportsResult represents the result of listing stored reports.
type ListReportsResult struct {
	Reports []ReportSummary `json:"reports"`
}

// ReportSummary is a one-line view of a stored report.
type ReportSummary struct {
	ID          string          `json:"id"`
	Scenario    string          `json:"scenario"`
	Status      conflict.Status `json:"status"`
	Conflicts   int             `json:"conflicts"`
	Buffer      float64         `json:"buffer"`
	Mode        string          `json:"mode"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
