package config

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"

	"github.com/danieljhkim/deconflict/internal/codec"
	"github.com/danieljhkim/deconflict/internal/conflict"
)

// DefaultSafetyBuffer is the policy minimum clearance in coordinate units.
const DefaultSafetyBuffer = 5.0

// Settings holds evaluation and logging defaults.
type Settings struct {
	// Buffer is the default safety buffer
	Buffer float64

	// Mode is the spatial test: "exact" or "legacy"
	Mode string

	// Workers bounds parallel evaluation; 1 evaluates sequentially
	Workers int

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogToFile sends logs to the rotating file under Paths.Logs instead of stderr
	LogToFile bool

	// ReportFormat is the encoding for newly saved reports
	ReportFormat codec.Format
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Buffer:       DefaultSafetyBuffer,
		Mode:         "exact",
		Workers:      1,
		LogLevel:     "warn",
		ReportFormat: codec.FormatJSON,
	}
}

// LoadSettings returns the defaults overridden by environment variables:
// - DECONFLICT_BUFFER: default safety buffer
// - DECONFLICT_MODE: exact or legacy
// - DECONFLICT_WORKERS: worker count, 0 means one per CPU
// - DECONFLICT_LOG_LEVEL: debug, info, warn, error
// - DECONFLICT_LOG_FILE: "1" or "true" to log to a rotating file
// - DECONFLICT_REPORT_FORMAT: json or msgpack
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	if v := os.Getenv("DECONFLICT_BUFFER"); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid DECONFLICT_BUFFER %q: %w", v, err)
		}
		s.Buffer = b
	}
	if v := os.Getenv("DECONFLICT_MODE"); v != "" {
		s.Mode = v
	}
	if v := os.Getenv("DECONFLICT_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid DECONFLICT_WORKERS %q: %w", v, err)
		}
		s.Workers = n
	}
	if v := os.Getenv("DECONFLICT_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("DECONFLICT_LOG_FILE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid DECONFLICT_LOG_FILE %q: %w", v, err)
		}
		s.LogToFile = b
	}
	if v := os.Getenv("DECONFLICT_REPORT_FORMAT"); v != "" {
		f, err := codec.ParseFormat(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid DECONFLICT_REPORT_FORMAT: %w", err)
		}
		s.ReportFormat = f
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the engine would reject.
func (s Settings) Validate() error {
	if math.IsNaN(s.Buffer) || math.IsInf(s.Buffer, 0) || s.Buffer < 0 {
		return fmt.Errorf("safety buffer must be a non-negative number, got %v", s.Buffer)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", s.Workers)
	}
	if _, err := conflict.ParseMode(s.Mode); err != nil {
		return err
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	return nil
}

// EffectiveWorkers resolves a worker count of 0 to the number of CPUs.
func (s Settings) EffectiveWorkers() int {
	if s.Workers == 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}
