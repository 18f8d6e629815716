package engine

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/deconflict/internal/report"
)

// ListReports returns summaries of all stored reports, oldest first.
func (e *Engine) ListReports(ctx context.Context) (*ListReportsResult, error) {
	entries, err := e.reports.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	result := &ListReportsResult{Reports: make([]ReportSummary, 0, len(entries))}
	for _, entry := range entries {
		result.Reports = append(result.Reports, ReportSummary{
			ID:          entry.ID,
			Scenario:    entry.Scenario,
			Status:      entry.Report.Status,
			Conflicts:   len(entry.Report.Records),
			Buffer:      entry.Buffer,
			Mode:        entry.Mode,
			GeneratedAt: entry.GeneratedAt,
		})
	}
	return result, nil
}

// ShowReport loads a stored report by ID.
func (e *Engine) ShowReport(ctx context.Context, id string) (*report.Entry, error) {
	entry, err := e.reports.Load(id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: report %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return entry, nil
}

// DeleteReport removes a stored report by ID.
func (e *Engine) DeleteReport(ctx context.Context, id string) error {
	if err := e.reports.Delete(id); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: report %q", ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	e.logger.Info("report deleted", "id", id)
	return nil
}
