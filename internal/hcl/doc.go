// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for parsing stylegrid.hcl files and for the
// CTY-to-Go data binding of their attributes.
package hcl
