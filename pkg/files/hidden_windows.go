//go:build windows

package files

import (
	"io/fs"
	"syscall"
)

// IsHidden reports whether the FILE_ATTRIBUTE_HIDDEN bit is set.
// Entries without readable metadata are never hidden.
func IsHidden(_ string, info fs.FileInfo) bool {
	if info == nil {
		return false
	}
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok || attrs == nil {
		return false
	}
	return attrs.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
