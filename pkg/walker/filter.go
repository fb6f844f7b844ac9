package walker

import (
	"path/filepath"
	"strings"
)

// FolderPredicate reports whether a directory name marks an algorithm run.
type FolderPredicate func(name string) bool

// NameSet returns a predicate matching any of the given names exactly.
func NameSet(names ...string) FolderPredicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

// FileFilter selects the logs that are scored.
type FileFilter struct {
	// Extension is compared exactly against filepath.Ext of the file name.
	Extension string

	// ExcludeSubstrings rejects any file whose name contains one of them.
	ExcludeSubstrings []string
}

// Match reports whether a file name (not a path) qualifies for scoring.
func (f FileFilter) Match(name string) bool {
	return filepath.Ext(name) == f.Extension && !f.Excluded(name)
}

// Excluded reports whether the name contains an excluded substring.
func (f FileFilter) Excluded(name string) bool {
	for _, s := range f.ExcludeSubstrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
