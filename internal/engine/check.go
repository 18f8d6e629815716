package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/danieljhkim/deconflict/internal/clock"
	"github.com/danieljhkim/deconflict/internal/conflict"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/report"
)

// Check validates the request, discretizes the primary mission, evaluates it
// against every flight, and optionally stores the report. Invalid input fails
// before any evaluation with an error wrapping ErrValidation.
func (e *Engine) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	if err := validateCheck(req); err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = conflict.ModeExact
	}
	checker, err := conflict.NewChecker(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	start := e.clock.Now()
	segments := mission.Discretize(req.Mission)
	rep, err := conflict.EvaluateParallel(ctx, segments, req.Flights, req.Buffer, checker, req.Workers)
	if err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}
	elapsed := clock.Since(e.clock, start)

	fingerprint, err := e.fingerprint(req, mode)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("check complete",
		"name", req.Name,
		"primarySegments", len(segments),
		"flights", len(req.Flights),
		"buffer", req.Buffer,
		"mode", mode,
		"status", rep.Status,
		"records", len(rep.Records),
		"elapsed", elapsed,
	)

	result := &CheckResult{
		Segments:    segments,
		Report:      rep,
		Fingerprint: fingerprint,
		Buffer:      req.Buffer,
		Mode:        mode,
		Elapsed:     elapsed,
	}

	if req.Save {
		id, err := report.UniqueID(e.reports, report.NewID(start, fingerprint))
		if err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		entry := &report.Entry{
			ID:          id,
			Scenario:    req.Name,
			Fingerprint: fingerprint,
			Buffer:      req.Buffer,
			Mode:        string(mode),
			GeneratedAt: start,
			Report:      rep,
		}
		if err := e.reports.Save(entry); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		e.logger.Info("report saved", "id", entry.ID, "status", rep.Status)
		result.Entry = entry
	}

	return result, nil
}

// Discretize validates the mission and returns its timed segments.
func (e *Engine) Discretize(ctx context.Context, req *DiscretizeRequest) (*DiscretizeResult, error) {
	if err := req.Mission.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	result := &DiscretizeResult{Segments: mission.Discretize(req.Mission)}
	if len(result.Segments) == 0 {
		result.Reason = conflict.ReasonNoTravel
	}
	return result, nil
}

func validateCheck(req *CheckRequest) error {
	if math.IsNaN(req.Buffer) || math.IsInf(req.Buffer, 0) || req.Buffer < 0 {
		return fmt.Errorf("%w: safety buffer must be a non-negative number, got %v", ErrValidation, req.Buffer)
	}
	if err := req.Mission.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := mission.ValidateSchedule(req.Flights); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// fingerprintInput is the canonical form hashed to identify a check.
type fingerprintInput struct {
	Mission mission.Mission  `json:"mission"`
	Flights []mission.Flight `json:"flights"`
	Buffer  float64          `json:"buffer"`
	Mode    conflict.Mode    `json:"mode"`
}

func (e *Engine) fingerprint(req *CheckRequest, mode conflict.Mode) (string, error) {
	data, err := json.Marshal(fingerprintInput{
		Mission: req.Mission,
		Flights: req.Flights,
		Buffer:  req.Buffer,
		Mode:    mode,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode inputs: %w", err)
	}
	return e.hasher.Fingerprint(data), nil
}
