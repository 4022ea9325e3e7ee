//go:build !windows

package files

import (
	"io/fs"
	"strings"
)

// IsHidden follows the POSIX convention: names starting with a dot are hidden.
func IsHidden(name string, _ fs.FileInfo) bool {
	return strings.HasPrefix(name, ".")
}
