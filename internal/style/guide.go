// Package style decides which reported violations are shown to the user:
// select/ignore rules, per-file ignores and inline "# noqa" comments.
package style

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/specialistvlad/stylegrid/internal/fsutil"
)

// Decision is the outcome of matching a code against select and ignore.
type Decision int

const (
	// Ignored codes are never reported.
	Ignored Decision = iota
	// Selected codes are reported unless a per-file or inline rule drops them.
	Selected
)

// Config holds the rule lists of a Guide.
type Config struct {
	Select         []string
	ExtendSelect   []string
	Ignore         []string
	ExtendIgnore   []string
	PerFileIgnores map[string][]string
	DisableNoqa    bool
}

type perFileRule struct {
	pattern string
	codes   []string
}

// Guide applies the rules of one run. It is safe for concurrent use once built.
type Guide struct {
	selected    []string
	ignored     []string
	perFile     []perFileRule
	disableNoqa bool
}

// NewGuide builds a Guide from cfg.
func NewGuide(cfg Config) *Guide {
	g := &Guide{
		selected:    append(append([]string(nil), cfg.Select...), cfg.ExtendSelect...),
		ignored:     append(append([]string(nil), cfg.Ignore...), cfg.ExtendIgnore...),
		disableNoqa: cfg.DisableNoqa,
	}
	for pattern, codes := range cfg.PerFileIgnores {
		g.perFile = append(g.perFile, perFileRule{pattern: pattern, codes: codes})
	}
	return g
}

// Decide matches code against the select and ignore lists. The longest
// matching prefix wins; a tie goes to select.
func (g *Guide) Decide(code string) Decision {
	sel := longestPrefix(g.selected, code)
	if sel < 0 {
		return Ignored
	}
	if ign := longestPrefix(g.ignored, code); ign > sel {
		return Ignored
	}
	return Selected
}

// ShouldReport reports whether a violation with code, found in filename on a
// line with the given text, should be shown.
func (g *Guide) ShouldReport(filename, code, line string) bool {
	if g.Decide(code) == Ignored {
		return false
	}
	for _, rule := range g.perFile {
		if matchesFile(rule.pattern, filename) && longestPrefix(rule.codes, code) >= 0 {
			return false
		}
	}
	if !g.disableNoqa && IsInlineIgnored(line, code) {
		return false
	}
	return true
}

var noqaRe = regexp.MustCompile(`(?i)#\s*noqa(?::[\s]?(?P<codes>[A-Z][0-9]+(?:[,\s]+[A-Z][0-9]+)*))?`)

var codeRe = regexp.MustCompile(`[A-Za-z][0-9]+`)

// IsInlineIgnored reports whether line carries a "# noqa" comment that
// covers code. A bare "# noqa" covers every code.
func IsInlineIgnored(line, code string) bool {
	m := noqaRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	codes := m[noqaRe.SubexpIndex("codes")]
	if codes == "" {
		return true
	}
	for _, c := range codeRe.FindAllString(codes, -1) {
		if strings.HasPrefix(code, strings.ToUpper(c)) {
			return true
		}
	}
	return false
}

// longestPrefix returns the length of the longest entry of prefixes that
// code starts with, or -1.
func longestPrefix(prefixes []string, code string) int {
	best := -1
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(code, p) && len(p) > best {
			best = len(p)
		}
	}
	return best
}

// matchesFile matches a glob against the full path and the base name.
func matchesFile(pattern, filename string) bool {
	clean := filepath.Clean(filename)
	return fsutil.Match(pattern, clean) ||
		fsutil.Match(filepath.Clean(pattern), clean) ||
		fsutil.Match(pattern, filepath.Base(clean))
}
