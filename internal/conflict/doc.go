// Package conflict evaluates a primary mission's segments against other
// flights and aggregates every conflicting pair into a Report.
//
// A pair conflicts when the segments come closer than the safety buffer AND
// their time windows overlap. The pairwise decision sits behind the Checker
// interface so a cheaper prefilter (bounding volumes, interval trees) can be
// stacked in front of the exact test without changing Evaluate.
//
// Record order is canonical: primary-segment-major, then flight order, then
// flight-segment index. EvaluateParallel produces exactly the same order.
package conflict
