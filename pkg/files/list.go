// Package files lists directories for the explorer: entry values, the store
// abstraction they are read from and the ordering rules of a listing.
package files

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ListError reports a directory that could not be enumerated.
type ListError struct {
	Dir string
	Err error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("list %s: %v", e.Dir, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Parent returns the filesystem parent of dir, or false when dir is a root.
func Parent(dir string) (string, bool) {
	dir = filepath.Clean(dir)
	parent := filepath.Dir(dir)
	if parent == dir {
		return "", false
	}
	return parent, true
}

// List reads the immediate children of dir.
//
// Directories come first, then everything else; each group is sorted
// byte-wise by display name. Hidden entries are dropped unless showHidden
// is set. When dir has a parent, a synthetic parent entry leads the listing.
func List(store Store, dir string, showHidden bool) ([]File, error) {
	children, err := store.ReadDir(dir)
	if err != nil {
		return nil, &ListError{Dir: dir, Err: err}
	}

	dirs := make([]File, 0, len(children))
	var others []File
	for _, child := range children {
		name := child.Name()
		info, err := store.Stat(filepath.Join(dir, name))
		if err != nil {
			info = nil
		}
		f := NewEntry(dir, name, info)
		f.symlink = child.Type()&fs.ModeSymlink != 0
		if f.isHidden && !showHidden {
			continue
		}
		if f.isDir {
			dirs = append(dirs, f)
		} else {
			others = append(others, f)
		}
	}
	SortByName(dirs)
	SortByName(others)

	result := make([]File, 0, 1+len(dirs)+len(others))
	if parent, ok := Parent(dir); ok {
		result = append(result, NewParent(parent))
	}
	result = append(result, dirs...)
	result = append(result, others...)
	return result, nil
}

// SortByName orders entries by display name, byte by byte.
func SortByName(entries []File) {
	slices.SortStableFunc(entries, func(a, b File) int {
		return strings.Compare(a.name, b.name)
	})
}
