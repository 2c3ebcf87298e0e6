// Package formatting renders violations for the user. Formatters are
// registered by name; a format that is not a registered name but contains
// %(...) placeholders is used as a line template.
package formatting

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/specialistvlad/stylegrid/internal/checker"
)

// Formatter renders violations to a writer.
type Formatter interface {
	// Handle writes one violation.
	Handle(w io.Writer, v checker.Violation) error
	// ShowSource writes the offending line with a caret under the column.
	ShowSource(w io.Writer, v checker.Violation) error
}

// Templates of the built-in formatters.
const (
	DefaultTemplate = "%(path)s:%(row)d:%(col)d: %(code)s %(text)s"
	PylintTemplate  = "%(path)s:%(row)d: [%(code)s] %(text)s"
)

// IsTemplate reports whether format is a line template rather than a name.
func IsTemplate(format string) bool {
	return strings.Contains(format, "%(")
}

// TemplateFormatter writes one line per violation using a template with
// %(path)s, %(row)d, %(col)d, %(code)s and %(text)s placeholders.
type TemplateFormatter struct {
	template string
}

// NewTemplateFormatter returns a formatter for template.
func NewTemplateFormatter(template string) *TemplateFormatter {
	return &TemplateFormatter{template: template}
}

// Handle implements Formatter.
func (f *TemplateFormatter) Handle(w io.Writer, v checker.Violation) error {
	r := strings.NewReplacer(
		"%(path)s", v.Filename,
		"%(row)d", strconv.Itoa(v.Row),
		"%(col)d", strconv.Itoa(v.Col),
		"%(code)s", v.Code,
		"%(text)s", v.Text,
	)
	_, err := fmt.Fprintln(w, r.Replace(f.template))
	return err
}

// ShowSource implements Formatter.
func (f *TemplateFormatter) ShowSource(w io.Writer, v checker.Violation) error {
	if v.Line == "" {
		return nil
	}
	// Tabs are kept so the caret lines up with the original indentation.
	var indent strings.Builder
	for i, r := range []rune(v.Line) {
		if i >= v.Col-1 {
			break
		}
		if r == '\t' {
			indent.WriteRune('\t')
		} else {
			indent.WriteByte(' ')
		}
	}
	_, err := fmt.Fprintf(w, "%s\n%s^\n", v.Line, indent.String())
	return err
}

// FilenameFormatter prints each file name with violations once.
type FilenameFormatter struct {
	last string
}

// Handle implements Formatter.
func (f *FilenameFormatter) Handle(w io.Writer, v checker.Violation) error {
	if v.Filename == f.last {
		return nil
	}
	f.last = v.Filename
	_, err := fmt.Fprintln(w, v.Filename)
	return err
}

// ShowSource implements Formatter.
func (f *FilenameFormatter) ShowSource(io.Writer, checker.Violation) error { return nil }

// NothingFormatter prints nothing.
type NothingFormatter struct{}

// Handle implements Formatter.
func (NothingFormatter) Handle(io.Writer, checker.Violation) error { return nil }

// ShowSource implements Formatter.
func (NothingFormatter) ShowSource(io.Writer, checker.Violation) error { return nil }

// Statistic is the number of violations of one code.
type Statistic struct {
	Code  string
	Text  string // text of the first occurrence
	Count int
}

// Statistics groups violations by code, sorted by code.
func Statistics(vs []checker.Violation) []Statistic {
	byCode := make(map[string]*Statistic)
	for _, v := range vs {
		s, ok := byCode[v.Code]
		if !ok {
			s = &Statistic{Code: v.Code, Text: v.Text}
			byCode[v.Code] = s
		}
		s.Count++
	}

	out := make([]Statistic, 0, len(byCode))
	for _, s := range byCode {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// WriteStatistics writes one "count code text" line per code.
func WriteStatistics(w io.Writer, stats []Statistic) error {
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%-7d %s %s\n", s.Count, s.Code, s.Text); err != nil {
			return err
		}
	}
	return nil
}
