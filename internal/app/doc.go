// Package app contains the core application logic. It defines the
// Application type, which owns the state of one invocation, the exit-code
// policy, and the run pipeline, decoupled from any specific entrypoint.
package app
