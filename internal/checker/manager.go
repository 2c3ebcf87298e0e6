package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/specialistvlad/stylegrid/internal/ctxlog"
)

// ErrExecutionFailed is returned when a check crashed while processing a file.
var ErrExecutionFailed = errors.New("check execution failed")

// StdinName is the path that selects standard input.
const StdinName = "-"

// Config holds what the Manager needs for one run.
type Config struct {
	Jobs             int
	MaxLineLength    int
	Stdin            io.Reader
	StdinDisplayName string
}

// Manager runs the checks over a set of files with a bounded worker pool.
type Manager struct {
	cfg      Config
	readFile func(string) ([]byte, error)
	check    func(filename string, src []byte, maxLineLength int) []Violation
}

// NewManager creates a Manager. A non-positive job count runs serially.
func NewManager(cfg Config) *Manager {
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.StdinDisplayName == "" {
		cfg.StdinDisplayName = "stdin"
	}
	return &Manager{cfg: cfg, readFile: os.ReadFile, check: CheckSource}
}

// Run checks every file and returns the violations ordered by input file,
// then row and column. Unreadable files produce an E902 violation rather
// than an error. A crashing check yields ErrExecutionFailed; cancellation
// yields the context's error.
func (m *Manager) Run(ctx context.Context, files []string) ([]Violation, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Checker manager starting.", "files", len(files), "jobs", m.cfg.Jobs)

	// Standard input can only be read once and is read before the pool starts.
	var stdinSrc []byte
	var stdinErr error
	for _, f := range files {
		if f == StdinName {
			stdinSrc, stdinErr = io.ReadAll(m.cfg.Stdin)
			break
		}
	}

	results := make([][]Violation, len(files))
	indexes := make(chan int)

	var (
		wg       sync.WaitGroup
		failOnce sync.Once
		failure  error
	)

	jobs := m.cfg.Jobs
	if jobs > len(files) {
		jobs = len(files)
	}
	for workerID := 0; workerID < jobs; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			workerLogger.Debug("Worker started.")

			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				name := files[i]
				var src []byte
				var err error
				if name == StdinName {
					name, src, err = m.cfg.StdinDisplayName, stdinSrc, stdinErr
				} else {
					src, err = m.readFile(name)
				}

				res, err := m.checkOne(name, src, err)
				if err != nil {
					workerLogger.Error("Check crashed.", "file", name, "error", err)
					failOnce.Do(func() { failure = err })
					continue
				}
				results[i] = res
				workerLogger.Debug("File checked.", "file", name, "violations", len(res))
			}
			workerLogger.Debug("Worker finished.")
		}(workerID)
	}

feed:
	for i := range files {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if failure != nil {
		return nil, failure
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Violation
	for _, res := range results {
		out = append(out, res...)
	}
	logger.Debug("Checker manager finished.", "violations", len(out))
	return out, nil
}

// checkOne runs the checks over one file, turning a panic into an error.
func (m *Manager) checkOne(name string, src []byte, readErr error) (res []Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrExecutionFailed, name, r)
		}
	}()

	if readErr != nil {
		return []Violation{ioError(name, readErr)}, nil
	}

	res = m.check(name, src, m.cfg.MaxLineLength)
	sort.SliceStable(res, func(a, b int) bool {
		if res[a].Row != res[b].Row {
			return res[a].Row < res[b].Row
		}
		return res[a].Col < res[b].Col
	})
	return res, nil
}
