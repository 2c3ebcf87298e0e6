// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Filter decides which paths are checked during discovery.
type Filter struct {
	// Exclude patterns are matched against the base name and the full path.
	// A matching directory is not descended into.
	Exclude []string
	// Filename patterns select the files taken from walked directories.
	// Paths named explicitly are checked whatever their name.
	Filename []string
}

// Excluded reports whether path matches an exclude pattern.
func (f Filter) Excluded(path string) bool {
	return matchAny(f.Exclude, path)
}

// Selected reports whether a file found while walking should be checked.
func (f Filter) Selected(path string) bool {
	if len(f.Filename) == 0 {
		return true
	}
	return matchAny(f.Filename, path)
}

// FindFiles expands the given paths into the list of files to check, in
// the order the paths were given and lexical order within directories.
// "-" is kept as is. A path that does not exist is returned unchanged so
// the checker can report it.
func FindFiles(paths []string, filter Filter) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		if root == "-" {
			add(root)
			continue
		}
		if filter.Excluded(root) {
			continue
		}

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && filter.Excluded(path) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && filter.Selected(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func matchAny(patterns []string, path string) bool {
	clean := filepath.Clean(path)
	base := filepath.Base(clean)
	abs, absErr := filepath.Abs(clean)
	for _, p := range patterns {
		if Match(p, base) || Match(p, clean) {
			return true
		}
		if absErr == nil && Match(p, abs) {
			return true
		}
	}
	return false
}
