// Package mission defines the flight data the conflict engine works on and
// converts a primary mission into time-tagged travel segments.
//
// Values are constructed once, validated at construction, and treated as
// read-only afterwards:
//   - Segment: straight-line travel between two points during a time window
//   - Mission: ordered waypoints flown across one overall time window
//   - Flight: an identified sequence of independently timed segments
//
// Discretize assumes uniform travel speed per leg: the mission window is
// split evenly across legs regardless of leg length. This is a known
// limitation kept for compatibility with existing mission schedules.
package mission
