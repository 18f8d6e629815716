package mission

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

func pts(coords ...float64) []geometry.Point2D {
	out := make([]geometry.Point2D, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, geometry.NewPoint2D(coords[i], coords[i+1]))
	}
	return out
}

func TestDiscretize_NoTravel(t *testing.T) {
	tests := []struct {
		name      string
		waypoints []geometry.Point2D
	}{
		{"no waypoints", nil},
		{"single waypoint", pts(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMission(tt.waypoints, temporal.Window{Start: 0, End: 60})
			require.NoError(t, err)
			segs := Discretize(m)
			assert.NotNil(t, segs)
			assert.Empty(t, segs)
		})
	}
}

func TestDiscretize_EvenSplit(t *testing.T) {
	m, err := NewMission(pts(0, 5, 20, 5, 20, 15), temporal.Window{Start: 0, End: 100})
	require.NoError(t, err)

	segs := Discretize(m)
	require.Len(t, segs, 2)

	assert.Equal(t, geometry.NewPoint2D(0, 5), segs[0].Start)
	assert.Equal(t, geometry.NewPoint2D(20, 5), segs[0].End)
	assert.Equal(t, temporal.Window{Start: 0, End: 50}, segs[0].Window)

	assert.Equal(t, geometry.NewPoint2D(20, 5), segs[1].Start)
	assert.Equal(t, geometry.NewPoint2D(20, 15), segs[1].End)
	assert.Equal(t, temporal.Window{Start: 50, End: 100}, segs[1].Window)
}

func TestDiscretize_ContiguousCover(t *testing.T) {
	windows := []temporal.Window{
		{Start: 0, End: 60},
		{Start: 0.1, End: 0.7},
		{Start: 13.37, End: 1e6 / 3},
		{Start: 5, End: 5},
	}

	for _, w := range windows {
		for n := 2; n <= 12; n++ {
			coords := make([]float64, 0, 2*n)
			for i := 0; i < n; i++ {
				coords = append(coords, float64(i), float64(i*i))
			}
			m, err := NewMission(pts(coords...), w)
			require.NoError(t, err)

			segs := Discretize(m)
			require.Len(t, segs, n-1)

			assert.Equal(t, w.Start, segs[0].Window.Start, "first segment starts at mission start")
			assert.Equal(t, w.End, segs[len(segs)-1].Window.End, "last segment ends at mission end")

			want := w.Duration() / float64(n-1)
			for i, s := range segs {
				require.NoError(t, s.Window.Validate())
				assert.InDelta(t, want, s.Window.Duration(), 1e-9*math.Max(1, w.End))
				if i > 0 {
					assert.Equal(t, segs[i-1].Window.End, s.Window.Start, "segments %d and %d must be contiguous", i-1, i)
				}
			}
		}
	}
}

func TestNewMission_Validation(t *testing.T) {
	_, err := NewMission(pts(0, 0, 1, 1), temporal.Window{Start: 10, End: 0})
	assert.True(t, errors.Is(err, ErrInvalidMission))
	assert.True(t, errors.Is(err, temporal.ErrInvalidWindow))

	_, err = NewMission(pts(0, 0, math.NaN(), 1), temporal.Window{Start: 0, End: 10})
	assert.True(t, errors.Is(err, ErrInvalidMission))
}

func TestNewMission_CopiesWaypoints(t *testing.T) {
	wps := pts(0, 0, 1, 1)
	m, err := NewMission(wps, temporal.Window{Start: 0, End: 10})
	require.NoError(t, err)

	wps[0] = geometry.NewPoint2D(99, 99)
	assert.Equal(t, geometry.NewPoint2D(0, 0), m.Waypoints[0])
}

func TestNewFlight_Validation(t *testing.T) {
	good, err := NewSegment(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 0), temporal.Window{Start: 0, End: 10})
	require.NoError(t, err)

	_, err = NewFlight("", []Segment{good})
	assert.True(t, errors.Is(err, ErrInvalidFlight))

	bad := Segment{Line: good.Line, Window: temporal.Window{Start: 10, End: 5}}
	_, err = NewFlight("drone_A", []Segment{good, bad})
	assert.True(t, errors.Is(err, ErrInvalidFlight))
	assert.True(t, errors.Is(err, temporal.ErrInvalidWindow))

	f, err := NewFlight("drone_A", []Segment{good})
	require.NoError(t, err)
	assert.Len(t, f.Segments, 1)

	_, err = NewSegment(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 0), temporal.Window{Start: 3, End: 1})
	assert.True(t, errors.Is(err, temporal.ErrInvalidWindow))
}

func TestValidateSchedule(t *testing.T) {
	seg := Segment{
		Line:   geometry.NewLine(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 0)),
		Window: temporal.Window{Start: 0, End: 1},
	}

	assert.NoError(t, ValidateSchedule(nil))
	assert.NoError(t, ValidateSchedule([]Flight{{ID: "a", Segments: []Segment{seg}}, {ID: "b"}}))

	err := ValidateSchedule([]Flight{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	assert.True(t, errors.Is(err, ErrDuplicateFlight))
}
