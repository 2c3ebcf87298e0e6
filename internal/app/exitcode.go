package app

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitCodeFor maps the state of a finished run to a process exit status.
// A catastrophic failure always fails the run, even with exit-zero; after
// that, exit-zero forces success; otherwise the run succeeds only when no
// violations were reported.
func ExitCodeFor(resultCount int, catastrophicFailure, exitZero bool) int {
	switch {
	case catastrophicFailure:
		return ExitFailure
	case exitZero:
		return ExitOK
	case resultCount > 0:
		return ExitFailure
	default:
		return ExitOK
	}
}

// ExitCode returns the exit status for the run so far.
func (a *Application) ExitCode() int {
	exitZero := a.Options != nil && a.Options.ExitZero
	return ExitCodeFor(a.ResultCount, a.CatastrophicFailure, exitZero)
}
