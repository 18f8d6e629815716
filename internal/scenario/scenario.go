// Package scenario loads and saves deconfliction inputs.
//
// A scenario file holds the primary mission, the other flights' schedules and
// an optional safety buffer. Coordinates and windows are written as pairs:
//
//	{
//	  "name": "conflict",
//	  "buffer": 5,
//	  "mission": {"waypoints": [[0, 5], [20, 5]], "window": [0, 100]},
//	  "flights": [
//	    {"id": "drone_B", "segments": [{"start": [5, 5], "end": [15, 5], "window": [20, 70]}]}
//	  ]
//	}
//
// Files ending in .json are JSON; .msgpack and .mpk are msgpack with the same
// field names.
package scenario

import (
	"fmt"

	"github.com/danieljhkim/deconflict/internal/codec"
	"github.com/danieljhkim/deconflict/internal/fsops"
	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// File is the on-disk shape of a scenario.
type File struct {
	Name    string       `json:"name,omitempty"`
	Buffer  *float64     `json:"buffer,omitempty"`
	Mission MissionFile  `json:"mission"`
	Flights []FlightFile `json:"flights"`
}

// MissionFile is the on-disk shape of the primary mission.
type MissionFile struct {
	Waypoints []Pair `json:"waypoints"`
	Window    *Pair  `json:"window"`
}

// FlightFile is the on-disk shape of another flight.
type FlightFile struct {
	ID       string        `json:"id"`
	Segments []SegmentFile `json:"segments"`
}

// SegmentFile is the on-disk shape of one timed segment.
type SegmentFile struct {
	Start  *Pair `json:"start"`
	End    *Pair `json:"end"`
	Window *Pair `json:"window"`
}

// Scenario is a validated set of evaluation inputs.
type Scenario struct {
	Name    string
	Mission mission.Mission
	Flights []mission.Flight

	// Buffer is nil when the file leaves the choice to configuration
	Buffer *float64
}

func point(p Pair) geometry.Point2D {
	return geometry.NewPoint2D(p[0], p[1])
}

func window(p Pair) temporal.Window {
	return temporal.Window{Start: p[0], End: p[1]}
}

// Build converts the file into validated mission values. The mission window
// and every segment's start, end, and window are required.
func (f *File) Build() (*Scenario, error) {
	if f.Mission.Window == nil {
		return nil, fmt.Errorf("%w: mission window is required", ErrMalformed)
	}

	waypoints := make([]geometry.Point2D, len(f.Mission.Waypoints))
	for i, wp := range f.Mission.Waypoints {
		waypoints[i] = point(wp)
	}
	m, err := mission.NewMission(waypoints, window(*f.Mission.Window))
	if err != nil {
		return nil, err
	}

	flights := make([]mission.Flight, len(f.Flights))
	for i, ff := range f.Flights {
		segs := make([]mission.Segment, len(ff.Segments))
		for j, sf := range ff.Segments {
			if sf.Start == nil || sf.End == nil || sf.Window == nil {
				return nil, fmt.Errorf("%w: flight %d segment %d needs start, end, and window", ErrMalformed, i, j)
			}
			segs[j] = mission.Segment{
				Line:   geometry.NewLine(point(*sf.Start), point(*sf.End)),
				Window: window(*sf.Window),
			}
		}
		fl, err := mission.NewFlight(ff.ID, segs)
		if err != nil {
			return nil, fmt.Errorf("flight %d: %w", i, err)
		}
		flights[i] = fl
	}
	if err := mission.ValidateSchedule(flights); err != nil {
		return nil, err
	}

	var buffer *float64
	if f.Buffer != nil {
		b := *f.Buffer
		buffer = &b
	}

	return &Scenario{
		Name:    f.Name,
		Mission: m,
		Flights: flights,
		Buffer:  buffer,
	}, nil
}

// ToFile converts a scenario back into its on-disk shape.
func (s *Scenario) ToFile() *File {
	f := &File{
		Name:    s.Name,
		Buffer:  s.Buffer,
		Flights: make([]FlightFile, len(s.Flights)),
		Mission: MissionFile{
			Waypoints: make([]Pair, len(s.Mission.Waypoints)),
			Window:    &Pair{s.Mission.Window.Start, s.Mission.Window.End},
		},
	}
	for i, wp := range s.Mission.Waypoints {
		f.Mission.Waypoints[i] = Pair{wp.X, wp.Y}
	}
	for i, fl := range s.Flights {
		ff := FlightFile{ID: fl.ID, Segments: make([]SegmentFile, len(fl.Segments))}
		for j, seg := range fl.Segments {
			ff.Segments[j] = SegmentFile{
				Start:  &Pair{seg.Start.X, seg.Start.Y},
				End:    &Pair{seg.End.X, seg.End.Y},
				Window: &Pair{seg.Window.Start, seg.Window.End},
			}
		}
		f.Flights[i] = ff
	}
	return f
}

// Decode parses and validates scenario data in the given format.
func Decode(data []byte, format codec.Format) (*Scenario, error) {
	var f File
	if err := codec.Unmarshal(data, format, &f); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return f.Build()
}

// Encode serializes a scenario in the given format.
func Encode(s *Scenario, format codec.Format) ([]byte, error) {
	data, err := codec.Marshal(s.ToFile(), format)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenario: %w", err)
	}
	return data, nil
}

// Load reads a scenario file, inferring the format from its extension.
func Load(fs fsops.FS, path string) (*Scenario, error) {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes a scenario atomically, inferring the format from the extension.
func Save(fs fsops.FS, path string, s *Scenario) error {
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	if err := fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}
	return nil
}
