package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Candidates lists the file names this loader looks for during discovery,
	// in priority order.
	Candidates() []string

	// Handles reports whether the file at path is in this loader's format.
	Handles(path string) bool

	// Load reads the file at path. ok is false when the file exists but holds
	// no settings for this tool (e.g. a setup.cfg without our section).
	Load(ctx context.Context, path string) (s *Settings, ok bool, err error)
}
