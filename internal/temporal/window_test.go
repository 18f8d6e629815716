package temporal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"disjoint before", Window{0, 10}, Window{11, 20}, false},
		{"disjoint after", Window{30, 40}, Window{0, 29.9}, false},
		{"touching endpoints", Window{0, 10}, Window{10, 20}, true},
		{"contained", Window{0, 100}, Window{20, 30}, true},
		{"partial", Window{0, 50}, Window{20, 70}, true},
		{"instant inside", Window{5, 5}, Window{0, 10}, true},
		{"instant outside", Window{15, 15}, Window{0, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlap(tt.b, tt.a), "overlap must be symmetric")
			assert.True(t, Overlap(tt.a, tt.a), "a window overlaps itself")
		})
	}
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(0, 60)
	require.NoError(t, err)
	assert.Equal(t, 60.0, w.Duration())

	_, err = NewWindow(0, 0)
	assert.NoError(t, err, "zero-length windows are valid")

	for _, bad := range [][2]float64{
		{10, 5},
		{math.NaN(), 5},
		{0, math.Inf(1)},
	} {
		_, err := NewWindow(bad[0], bad[1])
		assert.True(t, errors.Is(err, ErrInvalidWindow), "window %v", bad)
	}
}

func TestWindow_Intersect(t *testing.T) {
	got, ok := Window{0, 50}.Intersect(Window{20, 70})
	require.True(t, ok)
	assert.Equal(t, Window{20, 50}, got)

	_, ok = Window{0, 10}.Intersect(Window{20, 30})
	assert.False(t, ok)
}

func TestWindow_String(t *testing.T) {
	w := Window{0, 50}
	assert.Equal(t, "Between 0.00s and 50.00s", w.String())
}
