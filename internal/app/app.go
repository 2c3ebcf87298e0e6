package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/specialistvlad/stylegrid/internal/formatting"
	"github.com/specialistvlad/stylegrid/internal/hcl"
	"github.com/specialistvlad/stylegrid/internal/iniconfig"
	"github.com/specialistvlad/stylegrid/internal/options"
)

// defaultLoaders are used when NewApplication is given none. Earlier loaders
// win during discovery.
func defaultLoaders() []config.Loader {
	return []config.Loader{hcl.NewLoader(), iniconfig.NewLoader()}
}

// Application encapsulates the dependencies and the state of one invocation.
// The run state is read through ExitCode once Run has returned.
type Application struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	loaders []config.Loader

	// Stdin is read when "-" is given as a path.
	Stdin io.Reader
	// WorkDir is where configuration discovery starts.
	WorkDir string
	// PrelimFlags is the flag table used by the preliminary scan.
	PrelimFlags []options.PrelimFlag
	// Formatters holds the formatters selectable with --format.
	Formatters *formatting.Registry

	// Options is nil until the command line has been parsed.
	Options *options.Options
	// ResultCount is the number of violations reported to the user.
	ResultCount int
	// TotalResultCount also counts violations hidden by ignore rules or noqa.
	TotalResultCount int
	// CatastrophicFailure is set when the run stopped on an unexpected error.
	CatastrophicFailure bool
}

// NewApplication is the constructor for the application. Reports go to
// stdout, diagnostics and logs to stderr.
func NewApplication(stdout, stderr io.Writer, loaders ...config.Loader) *Application {
	if len(loaders) == 0 {
		loaders = defaultLoaders()
	}
	return &Application{
		stdout:      stdout,
		stderr:      stderr,
		logger:      newLogger(0, options.DefaultLogFormat, stderr),
		loaders:     loaders,
		Stdin:       os.Stdin,
		WorkDir:     ".",
		PrelimFlags: options.DefaultPrelimFlags,
		Formatters:  formatting.DefaultRegistry(),
	}
}

// ParsePreliminaryOptions runs the preliminary scan over argv with the
// application's flag table. It never looks at the process arguments.
func (a *Application) ParsePreliminaryOptions(argv []string) (*options.Preliminary, []string, error) {
	return options.ParsePreliminary(argv, a.PrelimFlags)
}

// FormatterFor returns the formatter registered under name. A name holding
// %(...) placeholders is used as a template. Anything else logs a warning and
// falls back to the default formatter.
func (a *Application) FormatterFor(name string) formatting.Formatter {
	if f, ok := a.Formatters.Lookup(name); ok {
		return f
	}
	if formatting.IsTemplate(name) {
		return formatting.NewTemplateFormatter(name)
	}

	a.logger.Warn("Unknown formatter requested, using default.", "name", name, "available", a.Formatters.Names())
	if f, ok := a.Formatters.Lookup("default"); ok {
		return f
	}
	return formatting.NewTemplateFormatter(formatting.DefaultTemplate)
}
