// Package config defines the format-agnostic settings model read from
// configuration files, along with the Loader interface implemented by each
// supported file format and the discovery logic that decides which files
// are read.
//
// Concrete loaders live in separate packages (hcl, iniconfig); the options
// package layers the resulting Settings between the built-in defaults and
// the command line.
package config
