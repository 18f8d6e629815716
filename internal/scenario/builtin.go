package scenario

import (
	"fmt"
	"sort"
)

var builtins = map[string]File{
	"safe": {
		Name: "safe",
		Mission: MissionFile{
			Waypoints: []Pair{{0, 0}, {10, 0}, {10, 10}},
			Window:    &Pair{0, 60},
		},
		Flights: []FlightFile{
			{ID: "drone_A_safe", Segments: []SegmentFile{
				{Start: &Pair{20, 20}, End: &Pair{20, 30}, Window: &Pair{0, 30}},
				{Start: &Pair{20, 30}, End: &Pair{30, 30}, Window: &Pair{30, 60}},
			}},
		},
	},
	"conflict": {
		Name: "conflict",
		Mission: MissionFile{
			Waypoints: []Pair{{0, 5}, {20, 5}, {20, 15}},
			Window:    &Pair{0, 100},
		},
		Flights: []FlightFile{
			// Flies along the first primary leg while it is active.
			{ID: "drone_B_conflict", Segments: []SegmentFile{
				{Start: &Pair{5, 5}, End: &Pair{15, 5}, Window: &Pair{20, 70}},
			}},
			{ID: "drone_C_spatial_ok_temporal_miss", Segments: []SegmentFile{
				{Start: &Pair{10, 0}, End: &Pair{10, 3}, Window: &Pair{25, 45}},
			}},
			// Same airspace as the primary start, long after it has left.
			{ID: "drone_D_spatial_conflict_temporal_ok", Segments: []SegmentFile{
				{Start: &Pair{0, 5}, End: &Pair{5, 5}, Window: &Pair{110, 120}},
			}},
		},
	},
}

// BuiltinNames lists the bundled demo scenarios.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a bundled demo scenario by name.
func Builtin(name string) (*Scenario, error) {
	f, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scenario %q (available: %v)", name, BuiltinNames())
	}
	return f.Build()
}
