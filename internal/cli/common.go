package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/deconflict/internal/clock"
	"github.com/danieljhkim/deconflict/internal/config"
	"github.com/danieljhkim/deconflict/internal/engine"
	"github.com/danieljhkim/deconflict/internal/fsops"
	"github.com/danieljhkim/deconflict/internal/hash"
	"github.com/danieljhkim/deconflict/internal/logging"
	"github.com/danieljhkim/deconflict/internal/report"
	"github.com/danieljhkim/deconflict/internal/scenario"
)

// environment bundles the engine with the settings and filesystem it was built from.
type environment struct {
	engine   *engine.Engine
	settings config.Settings
	fs       fsops.FS
	logger   *logging.Logger
}

// newEnvironment creates an engine with real implementations of all dependencies.
func newEnvironment(cmd *cobra.Command) (*environment, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logOpts := logging.Options{Level: settings.LogLevel, Writer: cmd.ErrOrStderr()}
	if settings.LogToFile {
		logOpts.Dir = paths.Logs
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}
	reports := report.NewFileStore(fs, paths.Reports, settings.ReportFormat)

	return &environment{
		engine:   engine.New(reports, hasher, clk, logger),
		settings: settings,
		fs:       fs,
		logger:   logger,
	}, nil
}

// Close releases the log file, if any.
func (e *environment) Close() {
	_ = e.logger.Close()
}

// resolveBuffer picks the safety buffer: an explicit flag wins over the
// scenario file, which wins over the configured default.
func resolveBuffer(flagSet bool, flagValue float64, s *scenario.Scenario, settings config.Settings) (float64, error) {
	buffer := settings.Buffer
	switch {
	case flagSet:
		buffer = flagValue
	case s != nil && s.Buffer != nil:
		buffer = *s.Buffer
	}
	if math.IsNaN(buffer) || math.IsInf(buffer, 0) || buffer < 0 {
		return 0, fmt.Errorf("%w: safety buffer must be a non-negative number, got %v", engine.ErrValidation, buffer)
	}
	return buffer, nil
}

// resolveWorkers picks the worker count from the flag or settings; 0 means one per CPU.
func resolveWorkers(flagSet bool, flagValue int, settings config.Settings) (int, error) {
	if flagSet {
		if flagValue < 0 {
			return 0, fmt.Errorf("%w: workers must be >= 0, got %d", engine.ErrValidation, flagValue)
		}
		settings.Workers = flagValue
	}
	return settings.EffectiveWorkers(), nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
