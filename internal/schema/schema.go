// Package schema holds the HCL decoding targets for stylegrid configuration
// files.
package schema

import "github.com/hashicorp/hcl/v2"

// SettingsFile represents the top-level structure of a stylegrid.hcl file.
// Every attribute is optional.
type SettingsFile struct {
	MaxLineLength *int    `hcl:"max_line_length,optional"`
	Jobs          *int    `hcl:"jobs,optional"`
	Format        *string `hcl:"format,optional"`

	Select        []string `hcl:"select,optional"`
	Ignore        []string `hcl:"ignore,optional"`
	ExtendSelect  []string `hcl:"extend_select,optional"`
	ExtendIgnore  []string `hcl:"extend_ignore,optional"`
	Exclude       []string `hcl:"exclude,optional"`
	ExtendExclude []string `hcl:"extend_exclude,optional"`
	Filename      []string `hcl:"filename,optional"`

	// PerFileIgnores maps a glob to the codes ignored in matching files. It
	// is kept as an expression so object and map syntax are both accepted.
	PerFileIgnores hcl.Expression `hcl:"per_file_ignores,optional"`

	ExitZero    *bool `hcl:"exit_zero,optional"`
	Count       *bool `hcl:"count,optional"`
	Statistics  *bool `hcl:"statistics,optional"`
	ShowSource  *bool `hcl:"show_source,optional"`
	DisableNoqa *bool `hcl:"disable_noqa,optional"`
}
