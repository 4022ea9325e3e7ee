package fsutils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	osStat        = os.Stat
	osUserHomeDir = os.UserHomeDir
)

// DirExists reports whether path names a directory, following symlinks.
// A missing path is not an error.
func DirExists(path string) (bool, error) {
	info, err := osStat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	}
	return info.IsDir(), nil
}

// ExpandHome replaces a leading ~ with the user's home directory. p is
// returned unchanged when the home directory is unknown.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := osUserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
