package engine

import (
	"github.com/danieljhkim/deconflict/internal/conflict"
	"github.com/danieljhkim/deconflict/internal/mission"
)

// CheckRequest represents a request to check a mission for conflicts.
type CheckRequest struct {
	// Name labels the check in stored reports (scenario name or file path)
	Name string

	// Mission is the primary mission
	Mission mission.Mission

	// Flights are the other scheduled flights
	Flights []mission.Flight

	// Buffer is the safety buffer; must be finite and non-negative
	Buffer float64

	// Mode selects the spatial test (default exact)
	Mode conflict.Mode

	// Workers bounds parallel evaluation; <= 1 evaluates sequentially
	Workers int

	// Save persists the report to the report store
	Save bool
}

// DiscretizeRequest represents a request to preview primary segments.
type DiscretizeRequest struct {
	// Mission is the primary mission
	Mission mission.Mission
}
