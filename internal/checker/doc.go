// Package checker runs the physical-line style checks over source files.
//
// Checks are plain functions over one line at a time plus a pair of
// end-of-file checks. The Manager fans files out to a fixed number of
// workers and merges the results back into input order so that reports are
// deterministic regardless of the job count.
package checker
