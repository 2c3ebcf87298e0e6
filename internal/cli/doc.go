// Package cli is the process-level entry point. It resolves the argument
// list, runs the application and hands back the exit status; it is the only
// place that decides what the process returns.
package cli
