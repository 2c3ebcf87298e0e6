package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/stylegrid/internal/ctxlog"
	"github.com/ubuntu/decorate"
)

var (
	// ErrUnknownFormat is returned when no loader handles an explicitly given file.
	ErrUnknownFormat = errors.New("unsupported configuration file format")

	// ErrNoSettings is returned when an explicitly given file holds no settings
	// for this tool.
	ErrNoSettings = errors.New("configuration file holds no stylegrid settings")
)

// Sources tells Load where configuration may come from.
type Sources struct {
	// Dir is where discovery starts. Parent directories are searched too.
	Dir string
	// ConfigFile replaces discovery when set.
	ConfigFile string
	// AppendConfig files are layered on top, in order.
	AppendConfig []string
	// Isolated disables every configuration file.
	Isolated bool
}

// Load resolves the configuration files described by src and merges them
// into a single Settings value.
func Load(ctx context.Context, src Sources, loaders ...Loader) (settings *Settings, err error) {
	defer decorate.OnError(&err, "can't load configuration")

	logger := ctxlog.FromContext(ctx)
	settings = &Settings{}

	if src.Isolated {
		logger.Debug("Isolated mode, ignoring configuration files.")
		return settings, nil
	}

	if src.ConfigFile != "" {
		s, ok, err := loadFile(ctx, src.ConfigFile, loaders)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", src.ConfigFile, ErrNoSettings)
		}
		settings.Merge(s)
	} else {
		s, err := Discover(ctx, src.Dir, loaders...)
		if err != nil {
			return nil, err
		}
		settings.Merge(s)
	}

	for _, path := range src.AppendConfig {
		s, ok, err := loadFile(ctx, path, loaders)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Warn("Appended configuration file holds no settings, skipping.", "path", path)
			continue
		}
		settings.Merge(s)
	}

	logger.Debug("Configuration resolved.", "sources", settings.Source)
	return settings, nil
}

// Discover searches dir and its parents for the first candidate file that
// holds settings. It returns nil when nothing is found.
func Discover(ctx context.Context, dir string, loaders ...Loader) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	for {
		for _, l := range loaders {
			for _, name := range l.Candidates() {
				path := filepath.Join(dir, name)
				if info, err := os.Stat(path); err != nil || info.IsDir() {
					continue
				}
				s, ok, err := l.Load(ctx, path)
				if err != nil {
					return nil, err
				}
				if ok {
					logger.Debug("Discovered configuration file.", "path", path)
					return s, nil
				}
				logger.Debug("Candidate holds no settings.", "path", path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			logger.Debug("No configuration file found.")
			return nil, nil
		}
		dir = parent
	}
}

func loadFile(ctx context.Context, path string, loaders []Loader) (*Settings, bool, error) {
	for _, l := range loaders {
		if l.Handles(path) {
			return l.Load(ctx, path)
		}
	}
	return nil, false, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}
