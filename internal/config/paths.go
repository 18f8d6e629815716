// Package config manages deconflict configuration and filesystem paths.
//
// Paths locate stored reports and log files; the default root is
// ~/.deconflict/ and can be moved with DECONFLICT_ROOT. Settings carry the
// evaluation policy defaults (safety buffer, mode, workers, log level), read
// from DECONFLICT_* environment variables and overridden by CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by deconflict.
type Paths struct {
	// Root is the base directory for all deconflict data (default: ~/.deconflict)
	Root string

	// Reports is the directory containing stored conflict reports
	Reports string

	// Logs is the directory containing rotated log files
	Logs string
}

// DefaultPaths returns the default paths for deconflict.
// Paths can be overridden with environment variables:
// - DECONFLICT_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("DECONFLICT_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".deconflict")
	}

	return &Paths{
		Root:    root,
		Reports: filepath.Join(root, "reports"),
		Logs:    filepath.Join(root, "logs"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Reports,
		p.Logs,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
