package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingValue is returned when a preliminary flag that takes a value is
// the last token of the argument list or is followed by another flag.
var ErrMissingValue = errors.New("flag needs an argument")

// ErrUnexpectedValue is returned when a preliminary flag that takes no value
// is written as --flag=value.
var ErrUnexpectedValue = errors.New("flag does not take an argument")

// PrelimKind describes how a preliminary flag consumes arguments.
type PrelimKind int

const (
	// PrelimCount flags may be repeated; every occurrence increments a counter.
	PrelimCount PrelimKind = iota
	// PrelimBool flags are switched on by their presence.
	PrelimBool
	// PrelimValue flags take exactly one value.
	PrelimValue
)

// PrelimFlag is one entry of the preliminary flag table.
type PrelimFlag struct {
	Long  string // without the leading "--"
	Short string // a single letter, or empty
	Kind  PrelimKind
	Usage string
	Apply func(p *Preliminary, value string)
}

func (f *PrelimFlag) takesValue() bool {
	return f.Kind == PrelimValue
}

// Preliminary holds the options resolved before the full option grammar is
// applied. They configure logging and locate the configuration files.
type Preliminary struct {
	Verbose      int
	OutputFile   string
	LogFormat    string
	Config       string
	AppendConfig []string
	Isolated     bool
}

// DefaultPrelimFlags is the set of flags recognized by the preliminary scan.
var DefaultPrelimFlags = []PrelimFlag{
	{
		Long: "verbose", Short: "v", Kind: PrelimCount,
		Usage: "Print more information about what is happening. Can be repeated.",
		Apply: func(p *Preliminary, _ string) { p.Verbose++ },
	},
	{
		Long: "output-file", Kind: PrelimValue,
		Usage: "Redirect report to a file.",
		Apply: func(p *Preliminary, v string) { p.OutputFile = v },
	},
	{
		Long: "log-format", Kind: PrelimValue,
		Usage: "Log output format. Options: 'text' or 'json'.",
		Apply: func(p *Preliminary, v string) { p.LogFormat = v },
	},
	{
		Long: "config", Kind: PrelimValue,
		Usage: "Path to the config file that will be the authoritative config source.",
		Apply: func(p *Preliminary, v string) { p.Config = v },
	},
	{
		Long: "append-config", Kind: PrelimValue,
		Usage: "Provide extra config files to parse in addition to the files found. Can be repeated.",
		Apply: func(p *Preliminary, v string) { p.AppendConfig = append(p.AppendConfig, v) },
	},
	{
		Long: "isolated", Kind: PrelimBool,
		Usage: "Ignore all configuration files.",
		Apply: func(p *Preliminary, _ string) { p.Isolated = true },
	},
}

// ParsePreliminary extracts the flags listed in table from argv. Every token
// it does not recognize is returned in its original order. The help flags are
// never consumed, and everything after a bare "--" is passed through.
//
// ParsePreliminary works only on argv; an empty list yields an empty result.
func ParsePreliminary(argv []string, table []PrelimFlag) (*Preliminary, []string, error) {
	prelim := &Preliminary{}
	rest := make([]string, 0, len(argv))

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch {
		case arg == "--":
			rest = append(rest, argv[i:]...)
			return prelim, rest, nil

		case arg == "--help" || arg == "-h":
			rest = append(rest, arg)

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			f := lookupLong(table, name)
			if f == nil {
				rest = append(rest, arg)
				continue
			}
			if f.takesValue() {
				if !hasValue {
					if !hasValueAt(argv, i+1) {
						return nil, nil, fmt.Errorf("%w: --%s", ErrMissingValue, name)
					}
					i++
					value = argv[i]
				}
			} else if hasValue {
				return nil, nil, fmt.Errorf("%w: --%s", ErrUnexpectedValue, name)
			}
			f.Apply(prelim, value)

		case len(arg) > 1 && arg[0] == '-':
			consumed, err := applyShort(prelim, table, argv, &i)
			if err != nil {
				return nil, nil, err
			}
			if !consumed {
				rest = append(rest, arg)
			}

		default:
			rest = append(rest, arg)
		}
	}

	return prelim, rest, nil
}

// applyShort handles "-v", "-vv" and "-x value" / "-xvalue" forms. A cluster
// is consumed only when every letter in it belongs to the table; otherwise
// the whole token is left for the full parser.
func applyShort(p *Preliminary, table []PrelimFlag, argv []string, i *int) (bool, error) {
	letters := argv[*i][1:]

	first := lookupShort(table, letters[:1])
	if first == nil {
		return false, nil
	}
	if first.takesValue() {
		value := letters[1:]
		if value == "" {
			if !hasValueAt(argv, *i+1) {
				return false, fmt.Errorf("%w: -%s", ErrMissingValue, first.Short)
			}
			*i++
			value = argv[*i]
		}
		first.Apply(p, value)
		return true, nil
	}

	flags := make([]*PrelimFlag, 0, len(letters))
	for _, r := range letters {
		f := lookupShort(table, string(r))
		if f == nil || f.takesValue() {
			return false, nil
		}
		flags = append(flags, f)
	}
	for _, f := range flags {
		f.Apply(p, "")
	}
	return true, nil
}

// hasValueAt reports whether argv[i] can be the value of a flag. Any token
// starting with "-" other than "-" itself is a flag.
func hasValueAt(argv []string, i int) bool {
	if i >= len(argv) {
		return false
	}
	return argv[i] == "-" || !strings.HasPrefix(argv[i], "-")
}

func lookupLong(table []PrelimFlag, name string) *PrelimFlag {
	for i := range table {
		if table[i].Long == name {
			return &table[i]
		}
	}
	return nil
}

func lookupShort(table []PrelimFlag, name string) *PrelimFlag {
	if name == "" {
		return nil
	}
	for i := range table {
		if table[i].Short == name {
			return &table[i]
		}
	}
	return nil
}
