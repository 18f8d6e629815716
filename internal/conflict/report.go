package conflict

import (
	"fmt"

	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// Status is the overall outcome of an evaluation.
type Status string

const (
	StatusClear            Status = "clear"
	StatusConflictDetected Status = "conflict_detected"
)

// Kind classifies a conflict record.
type Kind string

// KindSpatioTemporal marks segments that are both too close and concurrent.
const KindSpatioTemporal Kind = "spatio-temporal"

// ReasonNoTravel explains a clear report for a mission without legs.
const ReasonNoTravel = "primary mission has fewer than 2 waypoints"

// Record is one conflicting (primary segment, flight segment) pair.
type Record struct {
	Kind Kind `json:"kind"`

	PrimaryIndex int             `json:"primarySegmentIndex"`
	Primary      mission.Segment `json:"primarySegment"`

	FlightID           string          `json:"flightId"`
	FlightSegmentIndex int             `json:"flightSegmentIndex"`
	FlightSegment      mission.Segment `json:"flightSegment"`

	MinDistance    float64          `json:"minDistance"`
	ClosestPrimary geometry.Point2D `json:"closestPrimary"`
	ClosestOther   geometry.Point2D `json:"closestOther"`
	Overlap        temporal.Window  `json:"overlap"`
}

// Location describes where along the primary path the conflict occurs.
func (r Record) Location() string {
	return fmt.Sprintf("Near primary segment from %v to %v", r.Primary.Start, r.Primary.End)
}

// TimeSummary describes when the primary drone is on the conflicting segment.
func (r Record) TimeSummary() string {
	return r.Primary.Window.String()
}

// Report is the result of one evaluation.
type Report struct {
	Status Status `json:"status"`

	// Reason is set when the report is clear for a structural reason
	Reason string `json:"reason,omitempty"`

	// Records lists conflicts in evaluation order
	Records []Record `json:"records"`
}

// HasConflicts returns true if the report contains any records.
func (r *Report) HasConflicts() bool {
	return len(r.Records) > 0
}

// FlightIDs returns the distinct conflicting flight IDs in first-seen order.
func (r *Report) FlightIDs() []string {
	seen := make(map[string]bool)
	ids := []string{}
	for _, rec := range r.Records {
		if !seen[rec.FlightID] {
			seen[rec.FlightID] = true
			ids = append(ids, rec.FlightID)
		}
	}
	return ids
}

// PrimaryIndices returns the distinct primary segment indices in conflict.
func (r *Report) PrimaryIndices() []int {
	seen := make(map[int]bool)
	out := []int{}
	for _, rec := range r.Records {
		if !seen[rec.PrimaryIndex] {
			seen[rec.PrimaryIndex] = true
			out = append(out, rec.PrimaryIndex)
		}
	}
	return out
}

// newReport builds a report from records, deriving its status.
func newReport(records []Record) Report {
	if len(records) == 0 {
		return Report{Status: StatusClear, Records: []Record{}}
	}
	return Report{Status: StatusConflictDetected, Records: records}
}

func newRecord(i int, primary mission.Segment, flightID string, j int, other mission.Segment, f Finding) Record {
	return Record{
		Kind:               KindSpatioTemporal,
		PrimaryIndex:       i,
		Primary:            primary,
		FlightID:           flightID,
		FlightSegmentIndex: j,
		FlightSegment:      other,
		MinDistance:        f.MinDistance,
		ClosestPrimary:     f.ClosestPrimary,
		ClosestOther:       f.ClosestOther,
		Overlap:            f.Overlap,
	}
}
