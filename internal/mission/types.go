package mission

import (
	"fmt"

	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// Segment is straight-line travel occupying exactly its time window.
type Segment struct {
	geometry.Line
	Window temporal.Window `json:"window"`
}

// NewSegment creates a Segment, validating its time window.
func NewSegment(start, end geometry.Point2D, window temporal.Window) (Segment, error) {
	s := Segment{Line: geometry.NewLine(start, end), Window: window}
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// Validate checks the segment's coordinates and time window.
func (s Segment) Validate() error {
	if !s.Start.IsFinite() || !s.End.IsFinite() {
		return fmt.Errorf("coordinates must be finite, got %v -> %v", s.Start, s.End)
	}
	return s.Window.Validate()
}

// Mission is the primary flight: ordered waypoints flown within Window.
type Mission struct {
	Waypoints []geometry.Point2D `json:"waypoints"`
	Window    temporal.Window    `json:"window"`
}

// NewMission creates a validated Mission. The waypoint slice is copied.
func NewMission(waypoints []geometry.Point2D, window temporal.Window) (Mission, error) {
	m := Mission{
		Waypoints: append([]geometry.Point2D(nil), waypoints...),
		Window:    window,
	}
	if err := m.Validate(); err != nil {
		return Mission{}, err
	}
	return m, nil
}

// Validate checks the mission window and waypoint coordinates.
func (m Mission) Validate() error {
	if err := m.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMission, err)
	}
	for i, wp := range m.Waypoints {
		if !wp.IsFinite() {
			return fmt.Errorf("%w: waypoint %d has non-finite coordinates %v", ErrInvalidMission, i, wp)
		}
	}
	return nil
}

// HasTravel reports whether the mission has at least one leg to fly.
func (m Mission) HasTravel() bool {
	return len(m.Waypoints) >= 2
}

// Flight is another scheduled flight sharing the airspace.
type Flight struct {
	// ID is unique within a schedule
	ID string `json:"id"`

	// Segments need not be contiguous or evenly timed
	Segments []Segment `json:"segments"`
}

// NewFlight creates a validated Flight. The segment slice is copied.
func NewFlight(id string, segments []Segment) (Flight, error) {
	f := Flight{ID: id, Segments: append([]Segment(nil), segments...)}
	if err := f.Validate(); err != nil {
		return Flight{}, err
	}
	return f, nil
}

// Validate checks the flight ID and every segment.
func (f Flight) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidFlight)
	}
	for i, seg := range f.Segments {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("%w: flight %q segment %d: %w", ErrInvalidFlight, f.ID, i, err)
		}
	}
	return nil
}

// ValidateSchedule validates every flight and checks that IDs are unique.
func ValidateSchedule(flights []Flight) error {
	seen := make(map[string]int, len(flights))
	for i, f := range flights {
		if err := f.Validate(); err != nil {
			return err
		}
		if j, ok := seen[f.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateFlight, f.ID, j, i)
		}
		seen[f.ID] = i
	}
	return nil
}
