package mission

import "errors"

var (
	// ErrInvalidMission indicates a mission that cannot be discretized.
	ErrInvalidMission = errors.New("invalid mission")

	// ErrInvalidFlight indicates a flight with a malformed identifier or segment.
	ErrInvalidFlight = errors.New("invalid flight")

	// ErrDuplicateFlight indicates two flights in one schedule share an ID.
	ErrDuplicateFlight = errors.New("duplicate flight id")
)
