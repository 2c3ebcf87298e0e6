package options

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/spf13/pflag"
)

// Default values, shared with the help text.
var (
	DefaultSelect  = []string{"E", "W"}
	DefaultIgnore  = []string{"E121", "E123", "E126", "E226", "E24", "E704", "W503", "W504"}
	DefaultExclude = []string{".svn", "CVS", ".bzr", ".hg", ".git", "__pycache__", ".tox", ".nox", ".eggs", "*.egg"}
)

const (
	DefaultMaxLineLength = 79
	DefaultFormat        = "default"
	DefaultLogFormat     = "text"
)

// Options is the fully resolved option set for one run.
type Options struct {
	Verbose    int
	Quiet      int
	OutputFile string
	LogFormat  string

	Format        string
	MaxLineLength int
	Jobs          int

	Select       []string
	Ignore       []string
	ExtendSelect []string
	ExtendIgnore []string

	Exclude       []string
	ExtendExclude []string
	Filename      []string

	PerFileIgnores map[string][]string

	DisableNoqa bool
	ExitZero    bool
	Count       bool
	Statistics  bool
	ShowSource  bool

	StdinDisplayName string
	Paths            []string

	ShowHelp    bool
	ShowVersion bool
}

// Defaults returns the built-in option values.
func Defaults() *Options {
	return &Options{
		LogFormat:        DefaultLogFormat,
		Format:           DefaultFormat,
		MaxLineLength:    DefaultMaxLineLength,
		Jobs:             runtime.NumCPU(),
		Select:           clone(DefaultSelect),
		Ignore:           clone(DefaultIgnore),
		Exclude:          clone(DefaultExclude),
		Filename:         []string{"*.py"},
		StdinDisplayName: "stdin",
	}
}

// applySettings layers configuration file values over o.
func (o *Options) applySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if s.MaxLineLength != nil {
		o.MaxLineLength = *s.MaxLineLength
	}
	if s.Jobs != nil {
		o.Jobs = *s.Jobs
	}
	if s.Format != nil {
		o.Format = *s.Format
	}
	if s.ExitZero != nil {
		o.ExitZero = *s.ExitZero
	}
	if s.Count != nil {
		o.Count = *s.Count
	}
	if s.Statistics != nil {
		o.Statistics = *s.Statistics
	}
	if s.ShowSource != nil {
		o.ShowSource = *s.ShowSource
	}
	if s.DisableNoqa != nil {
		o.DisableNoqa = *s.DisableNoqa
	}
	for _, l := range []struct {
		dst *[]string
		src []string
	}{
		{&o.Select, s.Select},
		{&o.Ignore, s.Ignore},
		{&o.ExtendSelect, s.ExtendSelect},
		{&o.ExtendIgnore, s.ExtendIgnore},
		{&o.Exclude, s.Exclude},
		{&o.ExtendExclude, s.ExtendExclude},
		{&o.Filename, s.Filename},
	} {
		if l.src != nil {
			*l.dst = clone(l.src)
		}
	}
	if len(s.PerFileIgnores) > 0 {
		o.PerFileIgnores = make(map[string][]string, len(s.PerFileIgnores))
		for pattern, codes := range s.PerFileIgnores {
			o.PerFileIgnores[pattern] = clone(codes)
		}
	}
}

// Parse applies the full option grammar to args, which is the remainder of
// the preliminary scan. Precedence is defaults, then settings, then the
// command line. The preliminary values are carried into the result.
//
// When help is requested the usage text is written to output and the
// returned Options has ShowHelp set.
func Parse(args []string, prelim *Preliminary, settings *config.Settings, output io.Writer) (*Options, error) {
	if prelim == nil {
		prelim = &Preliminary{}
	}

	base := Defaults()
	base.applySettings(settings)

	opts := &Options{PerFileIgnores: base.PerFileIgnores}
	fs := pflag.NewFlagSet("stylegrid", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprint(output, `
stylegrid - style checks for Python source files.

Usage:
  stylegrid [options] [PATH ...]

Arguments:
  PATH
    Files or directories to check. Defaults to the current directory.
    Use "-" to read from standard input.

Options:
`)
		fmt.Fprint(output, fs.FlagUsages())
	}

	// Preliminary flags are registered so the usage text lists them. They
	// normally never reach this parser.
	var extraVerbose int
	var outputFile, logFormat, configFile string
	var appendConfig []string
	var isolated bool
	fs.CountVarP(&extraVerbose, "verbose", "v", usage("verbose"))
	fs.StringVar(&outputFile, "output-file", "", usage("output-file"))
	fs.StringVar(&logFormat, "log-format", DefaultLogFormat, usage("log-format"))
	fs.StringVar(&configFile, "config", "", usage("config"))
	fs.StringArrayVar(&appendConfig, "append-config", nil, usage("append-config"))
	fs.BoolVar(&isolated, "isolated", false, usage("isolated"))

	fs.CountVarP(&opts.Quiet, "quiet", "q", "Report only file names, or nothing. Can be repeated.")
	fs.StringVar(&opts.Format, "format", base.Format, "Format errors according to the chosen formatter or a %(path)s style template.")
	fs.IntVar(&opts.MaxLineLength, "max-line-length", base.MaxLineLength, "Maximum allowed line length.")
	fs.IntVarP(&opts.Jobs, "jobs", "j", base.Jobs, "Number of files checked in parallel.")
	fs.StringSliceVar(&opts.Select, "select", base.Select, "Comma-separated list of error codes to enable.")
	fs.StringSliceVar(&opts.Ignore, "ignore", base.Ignore, "Comma-separated list of error codes to ignore.")
	fs.StringSliceVar(&opts.ExtendSelect, "extend-select", base.ExtendSelect, "Comma-separated list of error codes to add to the selected ones.")
	fs.StringSliceVar(&opts.ExtendIgnore, "extend-ignore", base.ExtendIgnore, "Comma-separated list of error codes to add to the ignored ones.")
	fs.StringSliceVar(&opts.Exclude, "exclude", base.Exclude, "Comma-separated list of files or directories to exclude.")
	fs.StringSliceVar(&opts.ExtendExclude, "extend-exclude", base.ExtendExclude, "Comma-separated list of files or directories to add to the excluded ones.")
	fs.StringSliceVar(&opts.Filename, "filename", base.Filename, "Only check files matching these patterns.")
	fs.BoolVar(&opts.DisableNoqa, "disable-noqa", base.DisableNoqa, "Disregard '# noqa' comments.")
	fs.BoolVar(&opts.ExitZero, "exit-zero", base.ExitZero, "Exit with status code 0 even if there are errors.")
	fs.BoolVar(&opts.Count, "count", base.Count, "Print the total number of errors.")
	fs.BoolVar(&opts.Statistics, "statistics", base.Statistics, "Count errors per code.")
	fs.BoolVar(&opts.ShowSource, "show-source", base.ShowSource, "Show the source line of each error.")
	fs.StringVar(&opts.StdinDisplayName, "stdin-display-name", base.StdinDisplayName, "The name used when reporting errors from standard input.")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Print the version and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.ShowHelp = true
			return opts, nil
		}
		return nil, err
	}

	opts.Verbose = prelim.Verbose + extraVerbose
	opts.OutputFile = firstNonEmpty(prelim.OutputFile, outputFile)
	opts.LogFormat = firstNonEmpty(prelim.LogFormat, logFormat)

	opts.Select = normalizeCodes(opts.Select)
	opts.Ignore = normalizeCodes(opts.Ignore)
	opts.ExtendSelect = normalizeCodes(opts.ExtendSelect)
	opts.ExtendIgnore = normalizeCodes(opts.ExtendIgnore)
	opts.Exclude = normalizeList(opts.Exclude)
	opts.ExtendExclude = normalizeList(opts.ExtendExclude)
	opts.Filename = normalizeList(opts.Filename)

	if opts.MaxLineLength <= 0 {
		return nil, fmt.Errorf("invalid max-line-length %d: must be positive", opts.MaxLineLength)
	}
	if opts.Jobs <= 0 {
		opts.Jobs = 1
	}
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", opts.LogFormat)
	}

	opts.Paths = fs.Args()
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"."}
	}

	return opts, nil
}

// usage returns the help text of a preliminary flag.
func usage(long string) string {
	if f := lookupLong(DefaultPrelimFlags, long); f != nil {
		return f.Usage
	}
	return ""
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
