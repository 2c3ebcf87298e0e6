package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/stylegrid/internal/checker"
	"github.com/specialistvlad/stylegrid/internal/config"
	"github.com/specialistvlad/stylegrid/internal/ctxlog"
	"github.com/specialistvlad/stylegrid/internal/formatting"
	"github.com/specialistvlad/stylegrid/internal/fsutil"
	"github.com/specialistvlad/stylegrid/internal/options"
	"github.com/specialistvlad/stylegrid/internal/style"
)

// Run executes one invocation against argv. It never returns an error: any
// failure is printed to stderr and recorded as a catastrophic failure, which
// ExitCode then reports.
func (a *Application) Run(ctx context.Context, argv []string) {
	err := a.run(ctx, argv)
	if err == nil {
		return
	}

	a.CatastrophicFailure = true
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintln(a.stderr, "... stopped")
		return
	}
	fmt.Fprintln(a.stderr, "There was a critical error during execution of stylegrid:")
	fmt.Fprintln(a.stderr, err)
}

func (a *Application) run(ctx context.Context, argv []string) error {
	start := time.Now()

	prelim, rest, err := a.ParsePreliminaryOptions(argv)
	if err != nil {
		return err
	}
	a.logger = newLogger(prelim.Verbose, prelim.LogFormat, a.stderr)
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Preliminary options parsed.", "verbose", prelim.Verbose, "remaining", rest)

	settings, err := config.Load(ctx, config.Sources{
		Dir:          a.WorkDir,
		ConfigFile:   prelim.Config,
		AppendConfig: prelim.AppendConfig,
		Isolated:     prelim.Isolated,
	}, a.loaders...)
	if err != nil {
		return err
	}

	opts, err := options.Parse(rest, prelim, settings, a.stdout)
	if err != nil {
		return err
	}
	a.Options = opts
	if opts.ShowHelp {
		return nil
	}
	if opts.ShowVersion {
		fmt.Fprintln(a.stdout, versionString())
		return nil
	}
	if opts.Verbose != prelim.Verbose || opts.LogFormat != prelim.LogFormat {
		a.logger = newLogger(opts.Verbose, opts.LogFormat, a.stderr)
		ctx = ctxlog.WithLogger(ctx, a.logger)
	}

	files, err := fsutil.FindFiles(opts.Paths, fsutil.Filter{
		Exclude:  append(append([]string(nil), opts.Exclude...), opts.ExtendExclude...),
		Filename: opts.Filename,
	})
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	a.logger.Info("Files discovered.", "count", len(files))

	manager := checker.NewManager(checker.Config{
		Jobs:             opts.Jobs,
		MaxLineLength:    opts.MaxLineLength,
		Stdin:            a.Stdin,
		StdinDisplayName: opts.StdinDisplayName,
	})
	violations, err := manager.Run(ctx, files)
	if err != nil {
		return err
	}

	if err := a.report(violations); err != nil {
		return err
	}

	a.logger.Info("Run finished.",
		"files", len(files),
		"reported", a.ResultCount,
		"total", a.TotalResultCount,
		"elapsed", time.Since(start),
	)
	return nil
}

// report filters violations through the style guide and writes them out.
func (a *Application) report(violations []checker.Violation) (err error) {
	opts := a.Options

	var out io.Writer = a.stdout
	if opts.OutputFile != "" {
		f, openErr := os.Create(opts.OutputFile)
		if openErr != nil {
			return fmt.Errorf("failed to open output file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		out = f
	}

	guide := style.NewGuide(style.Config{
		Select:         opts.Select,
		ExtendSelect:   opts.ExtendSelect,
		Ignore:         opts.Ignore,
		ExtendIgnore:   opts.ExtendIgnore,
		PerFileIgnores: opts.PerFileIgnores,
		DisableNoqa:    opts.DisableNoqa,
	})
	formatter := a.FormatterFor(a.formatName())

	var reported []checker.Violation
	for _, v := range violations {
		a.TotalResultCount++
		if !guide.ShouldReport(v.Filename, v.Code, v.Line) {
			continue
		}
		reported = append(reported, v)
		if err := formatter.Handle(out, v); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if opts.ShowSource {
			if err := formatter.ShowSource(out, v); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}
	a.ResultCount = len(reported)

	if opts.Statistics {
		if err := formatting.WriteStatistics(out, formatting.Statistics(reported)); err != nil {
			return fmt.Errorf("failed to write statistics: %w", err)
		}
	}
	if opts.Count {
		fmt.Fprintln(a.stdout, a.ResultCount)
	}
	return nil
}

// formatName resolves -q/-qq over --format.
func (a *Application) formatName() string {
	switch {
	case a.Options.Quiet == 1:
		return "quiet-filename"
	case a.Options.Quiet >= 2:
		return "quiet-nothing"
	default:
		return a.Options.Format
	}
}
