// Package iniconfig reads stylegrid settings from INI files shared with other
// Python tooling: setup.cfg, tox.ini and .flake8.
package iniconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/specialistvlad/stylegrid/internal/ctxlog"
	"gopkg.in/ini.v1"
)

// Sections are searched in order; the first present one is used.
var Sections = []string{"stylegrid", "flake8"}

// Loader is the INI implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new INI loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Candidates implements config.Loader.
func (l *Loader) Candidates() []string {
	return []string{"setup.cfg", "tox.ini", ".flake8"}
}

// Handles implements config.Loader.
func (l *Loader) Handles(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cfg", ".ini", ".flake8":
		return true
	}
	return filepath.Base(path) == ".flake8"
}

// Load reads the first known section of the INI file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading INI configuration.", "path", path)

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		SpaceBeforeInlineComment:   true,
	}, path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse INI file %s: %w", path, err)
	}

	var section *ini.Section
	for _, name := range Sections {
		if s, err := file.GetSection(name); err == nil {
			section = s
			break
		}
	}
	if section == nil {
		return nil, false, nil
	}

	keys := make(map[string]*ini.Key)
	for _, k := range section.Keys() {
		keys[normalizeKey(k.Name())] = k
	}

	s := &config.Settings{Source: path}
	var errs []string

	intField := func(name string, dst **int) {
		k, ok := keys[name]
		if !ok {
			return
		}
		v, err := k.Int()
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: expected an integer, got %q", k.Name(), k.String()))
			return
		}
		*dst = &v
	}
	boolField := func(name string, dst **bool) {
		k, ok := keys[name]
		if !ok {
			return
		}
		v, err := k.Bool()
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: expected a boolean, got %q", k.Name(), k.String()))
			return
		}
		*dst = &v
	}
	listField := func(name string, dst *[]string) {
		if k, ok := keys[name]; ok {
			*dst = SplitList(k.String())
		}
	}

	intField("max_line_length", &s.MaxLineLength)
	boolField("exit_zero", &s.ExitZero)
	boolField("count", &s.Count)
	boolField("statistics", &s.Statistics)
	boolField("show_source", &s.ShowSource)
	boolField("disable_noqa", &s.DisableNoqa)
	listField("select", &s.Select)
	listField("ignore", &s.Ignore)
	listField("extend_select", &s.ExtendSelect)
	listField("extend_ignore", &s.ExtendIgnore)
	listField("exclude", &s.Exclude)
	listField("extend_exclude", &s.ExtendExclude)
	listField("filename", &s.Filename)

	if k, ok := keys["jobs"]; ok && !strings.EqualFold(k.String(), "auto") {
		intField("jobs", &s.Jobs)
	}
	if k, ok := keys["format"]; ok {
		v := k.String()
		s.Format = &v
	}
	if k, ok := keys["per_file_ignores"]; ok {
		pfi, err := ParsePerFileIgnores(k.String())
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", k.Name(), err))
		}
		s.PerFileIgnores = pfi
	}

	if len(errs) > 0 {
		return nil, false, fmt.Errorf("invalid settings in %s [%s]: %s", path, section.Name(), strings.Join(errs, "; "))
	}
	return s, true, nil
}

// SplitList splits a comma and/or whitespace separated value.
func SplitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if fields == nil {
		return []string{}
	}
	return fields
}

var colonRe = regexp.MustCompile(`\s*:\s*`)

// ParsePerFileIgnores parses "pattern: CODE, CODE" entries. Codes are comma
// or whitespace separated and belong to the last pattern seen; a token that
// contains ":" starts a new entry.
func ParsePerFileIgnores(v string) (map[string][]string, error) {
	out := make(map[string][]string)
	var order []string
	pattern := ""

	for _, tok := range SplitList(colonRe.ReplaceAllString(v, ":")) {
		p, code, isEntry := strings.Cut(tok, ":")
		if !isEntry {
			if pattern == "" {
				return nil, fmt.Errorf("expected 'pattern:codes', got %q", tok)
			}
			out[pattern] = append(out[pattern], tok)
			continue
		}
		if p == "" {
			return nil, fmt.Errorf("expected 'pattern:codes', got %q", tok)
		}
		pattern = p
		if _, ok := out[pattern]; !ok {
			out[pattern] = []string{}
			order = append(order, pattern)
		}
		if code != "" {
			out[pattern] = append(out[pattern], code)
		}
	}

	for _, p := range order {
		if len(out[p]) == 0 {
			return nil, fmt.Errorf("no codes given for %q", p)
		}
	}
	return out, nil
}

func normalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
