package mission

import (
	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// Discretize splits the mission into one segment per consecutive waypoint
// pair, dividing the mission window evenly across them. Missions with fewer
// than two waypoints have no travel and yield an empty slice.
//
// Adjacent segments share their boundary instant exactly and the final
// segment ends exactly at the mission end.
func Discretize(m Mission) []Segment {
	if !m.HasTravel() {
		return []Segment{}
	}

	n := len(m.Waypoints) - 1
	delta := m.Window.Duration() / float64(n)

	segments := make([]Segment, n)
	start := m.Window.Start
	for i := 0; i < n; i++ {
		end := m.Window.Start + float64(i+1)*delta
		if i == n-1 {
			end = m.Window.End
		}
		segments[i] = Segment{
			Line:   geometry.NewLine(m.Waypoints[i], m.Waypoints[i+1]),
			Window: temporal.Window{Start: start, End: end},
		}
		start = end
	}
	return segments
}
