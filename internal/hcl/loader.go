package hcl

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/specialistvlad/stylegrid/internal/ctxlog"
	"github.com/specialistvlad/stylegrid/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Candidates implements config.Loader.
func (l *Loader) Candidates() []string {
	return []string{"stylegrid.hcl", ".stylegrid.hcl"}
}

// Handles implements config.Loader.
func (l *Loader) Handles(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".hcl")
}

// Load parses an HCL file and translates it into config.Settings. Every HCL
// file is considered to hold settings, even an empty one.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL configuration.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, false, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var raw schema.SettingsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, false, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	perFile, err := l.perFileIgnores(ctx, &raw)
	if err != nil {
		return nil, false, fmt.Errorf("%s: per_file_ignores: %w", path, err)
	}

	return &config.Settings{
		Source:         path,
		MaxLineLength:  raw.MaxLineLength,
		Jobs:           raw.Jobs,
		Format:         raw.Format,
		Select:         raw.Select,
		Ignore:         raw.Ignore,
		ExtendSelect:   raw.ExtendSelect,
		ExtendIgnore:   raw.ExtendIgnore,
		Exclude:        raw.Exclude,
		ExtendExclude:  raw.ExtendExclude,
		Filename:       raw.Filename,
		PerFileIgnores: perFile,
		ExitZero:       raw.ExitZero,
		Count:          raw.Count,
		Statistics:     raw.Statistics,
		ShowSource:     raw.ShowSource,
		DisableNoqa:    raw.DisableNoqa,
	}, true, nil
}

func (l *Loader) perFileIgnores(ctx context.Context, raw *schema.SettingsFile) (map[string][]string, error) {
	if raw.PerFileIgnores == nil {
		return nil, nil
	}
	val, diags := raw.PerFileIgnores.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	var out map[string][]string
	if err := decode(ctx, val, &out); err != nil {
		return nil, err
	}
	return out, nil
}
