// Package report persists conflict reports so past checks can be listed,
// inspected, and compared.
//
// Each stored Entry wraps the engine's Report with the inputs' fingerprint,
// the parameters used, and a generation timestamp. The Report itself stays
// timestamp-free, so re-evaluating identical inputs yields an identical
// Report even though the entries differ.
package report

import (
	"time"

	"github.com/danieljhkim/deconflict/internal/conflict"
)

// Entry is a stored conflict report.
type Entry struct {
	// ID is unique within a store: <UTC timestamp>-<fingerprint prefix>
	ID string `json:"id"`

	// Scenario is the scenario name or source path
	Scenario string `json:"scenario"`

	// Fingerprint identifies the evaluated inputs and parameters
	Fingerprint string `json:"fingerprint"`

	// Buffer is the safety buffer used
	Buffer float64 `json:"buffer"`

	// Mode is the spatial test used ("exact" or "legacy")
	Mode string `json:"mode"`

	// GeneratedAt is when the report was produced
	GeneratedAt time.Time `json:"generatedAt"`

	// Report is the engine output
	Report conflict.Report `json:"report"`
}

// NewID derives an entry ID from a timestamp and an input fingerprint.
func NewID(at time.Time, fingerprint string) string {
	prefix := fingerprint
	if len(prefix) > 12 {
		prefix = prefix[:12]
	}
	return at.UTC().Format("20060102T150405.000Z") + "-" + prefix
}
