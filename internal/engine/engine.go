// Package engine provides the deconfliction operations behind the CLI.
//
// The engine package is the orchestration layer between CLI commands and the
// conflict kernels. It validates inputs, discretizes the primary mission,
// runs the pairwise evaluation, and optionally stores the resulting report.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Check: Validate, discretize, evaluate, and persist
//   - Discretize: Preview the primary mission's timed segments
//   - Reports: List, show, and delete stored reports
//
// The engine holds no per-check state; concurrent Check calls with different
// buffers and modes do not interfere.
package engine

import (
	"github.com/danieljhkim/deconflict/internal/clock"
	"github.com/danieljhkim/deconflict/internal/hash"
	"github.com/danieljhkim/deconflict/internal/logging"
	"github.com/danieljhkim/deconflict/internal/report"
)

// Engine orchestrates all deconflict operations.
// It is the main API surface called by the CLI.
type Engine struct {
	reports report.Store
	hasher  hash.Hasher
	clock   clock.Clock
	logger  *logging.Logger
}

// New creates a new Engine with the given dependencies.
// A nil logger discards log output.
func New(
	reports report.Store,
	hasher hash.Hasher,
	clk clock.Clock,
	logger *logging.Logger,
) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		reports: reports,
		hasher:  hasher,
		clock:   clk,
		logger:  logger,
	}
}
