package conflict

import (
	"fmt"

	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// Mode selects the spatial test used by a Checker.
type Mode string

const (
	// ModeExact uses the exact segment-to-segment minimum distance.
	ModeExact Mode = "exact"

	// ModeLegacy uses the midpoint-and-endpoint heuristic.
	ModeLegacy Mode = "legacy"
)

// ParseMode parses a mode name. The empty string selects ModeExact.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeExact:
		return ModeExact, nil
	case ModeLegacy:
		return ModeLegacy, nil
	default:
		return "", fmt.Errorf("unknown conflict mode %q (want %q or %q)", s, ModeExact, ModeLegacy)
	}
}

// Finding describes the geometry of a detected conflict.
type Finding struct {
	// MinDistance is the minimum separation between the two segments
	MinDistance float64

	// ClosestPrimary and ClosestOther are the closest-approach points
	ClosestPrimary geometry.Point2D
	ClosestOther   geometry.Point2D

	// Overlap is the shared part of both time windows
	Overlap temporal.Window
}

// Checker decides whether a primary segment conflicts with another segment.
// Implementations must be pure and safe for concurrent use.
type Checker interface {
	Check(primary, other mission.Segment, buffer float64) (Finding, bool)
}

// NewChecker returns the Checker for mode.
func NewChecker(mode Mode) (Checker, error) {
	switch mode {
	case ModeExact, "":
		return ExactChecker{}, nil
	case ModeLegacy:
		return LegacyChecker{}, nil
	default:
		return nil, fmt.Errorf("unknown conflict mode %q", mode)
	}
}

// ExactChecker applies the exact spatial test, then the temporal test.
type ExactChecker struct{}

// Check implements Checker.
func (ExactChecker) Check(primary, other mission.Segment, buffer float64) (Finding, bool) {
	pa, pb, dist := geometry.ClosestPoints(primary.Line, other.Line)
	if !(dist < buffer) {
		return Finding{}, false
	}
	overlap, ok := primary.Window.Intersect(other.Window)
	if !ok {
		return Finding{}, false
	}
	return Finding{
		MinDistance:    dist,
		ClosestPrimary: pa,
		ClosestOther:   pb,
		Overlap:        overlap,
	}, true
}

// LegacyChecker reproduces the midpoint-and-endpoint heuristic. It can miss
// close approaches between segment interiors; use it only to compare against
// historical reports.
type LegacyChecker struct{}

// Check implements Checker. The reported distance is still exact.
func (LegacyChecker) Check(primary, other mission.Segment, buffer float64) (Finding, bool) {
	if !geometry.LegacyConflict(primary.Line, other.Line, buffer) {
		return Finding{}, false
	}
	overlap, ok := primary.Window.Intersect(other.Window)
	if !ok {
		return Finding{}, false
	}
	pa, pb, dist := geometry.ClosestPoints(primary.Line, other.Line)
	return Finding{
		MinDistance:    dist,
		ClosestPrimary: pa,
		ClosestOther:   pb,
		Overlap:        overlap,
	}, true
}
