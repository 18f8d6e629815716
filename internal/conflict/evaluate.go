package conflict

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/deconflict/internal/mission"
)

// Evaluate checks every primary segment against every segment of every
// flight and returns the conflicts in canonical order. A nil checker selects
// ExactChecker. Inputs are assumed validated.
func Evaluate(primary []mission.Segment, flights []mission.Flight, buffer float64, checker Checker) Report {
	if len(primary) == 0 {
		return Report{Status: StatusClear, Reason: ReasonNoTravel, Records: []Record{}}
	}
	if checker == nil {
		checker = ExactChecker{}
	}

	var records []Record
	for i := range primary {
		records = append(records, evaluateSegment(i, primary[i], flights, buffer, checker)...)
	}
	return newReport(records)
}

// EvaluateParallel is Evaluate with primary segments spread across up to
// workers goroutines. Each goroutine fills its own bucket and buckets are
// concatenated in index order, so the result equals Evaluate's. It returns
// early with ctx's error if ctx is cancelled.
func EvaluateParallel(ctx context.Context, primary []mission.Segment, flights []mission.Flight, buffer float64, checker Checker, workers int) (Report, error) {
	if workers <= 1 || len(primary) <= 1 {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		return Evaluate(primary, flights, buffer, checker), nil
	}
	if checker == nil {
		checker = ExactChecker{}
	}

	buckets := make([][]Record, len(primary))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range primary {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buckets[i] = evaluateSegment(i, primary[i], flights, buffer, checker)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var records []Record
	for _, b := range buckets {
		records = append(records, b...)
	}
	return newReport(records), nil
}

// evaluateSegment collects the conflicts for a single primary segment.
func evaluateSegment(i int, seg mission.Segment, flights []mission.Flight, buffer float64, checker Checker) []Record {
	var out []Record
	for _, f := range flights {
		for j, other := range f.Segments {
			finding, ok := checker.Check(seg, other, buffer)
			if !ok {
				continue
			}
			out = append(out, newRecord(i, seg, f.ID, j, other, finding))
		}
	}
	return out
}
