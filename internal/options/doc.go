// Package options turns command-line arguments into the option set of one
// run. Parsing happens in two passes: ParsePreliminary pulls out the few
// flags needed before anything else is set up (verbosity, log format,
// config file location), and Parse applies the full grammar to what is left.
package options
