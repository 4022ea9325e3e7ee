package files

import (
	"io/fs"
	"path/filepath"
)

// ParentName is the display name of the synthetic "go up" entry.
const ParentName = ".." + string(filepath.Separator)

// File is one entry of a listing: a child of the listed directory or the
// synthetic parent entry. Files are immutable values.
type File struct {
	name     string
	path     string
	isDir    bool
	isHidden bool
	isParent bool
	symlink  bool
	mode     fs.FileMode
	hasMode  bool
	size     int64
}

// NewEntry builds the entry for child name of dir.
// A nil info means the metadata could not be read: the entry is then a
// non-directory without a file mode.
func NewEntry(dir, name string, info fs.FileInfo) File {
	f := File{
		name:     name,
		path:     filepath.Join(dir, name),
		isHidden: IsHidden(name, info),
	}
	if info != nil {
		f.isDir = info.IsDir()
		f.mode = info.Mode().Type()
		f.hasMode = true
		if f.mode.IsRegular() {
			f.size = info.Size()
		}
	}
	if f.isDir {
		f.name += string(filepath.Separator)
	}
	return f
}

// NewParent builds the synthetic entry pointing at parentPath.
func NewParent(parentPath string) File {
	return File{
		name:     ParentName,
		path:     parentPath,
		isDir:    true,
		isParent: true,
	}
}

// Name is the display name; directories carry a trailing separator.
func (f File) Name() string {
	return f.name
}

func (f File) Path() string {
	return f.path
}

func (f File) IsDir() bool {
	return f.isDir
}

func (f File) IsHidden() bool {
	return f.isHidden
}

// IsParent reports whether f is the synthetic parent entry.
func (f File) IsParent() bool {
	return f.isParent
}

// Mode returns the file type bits when they were obtainable.
// It reports false for the parent entry and for entries whose metadata
// could not be read.
func (f File) Mode() (fs.FileMode, bool) {
	return f.mode, f.hasMode
}

// IsSymlink reports whether the entry itself is a symbolic link. Name, IsDir
// and Mode describe the link target.
func (f File) IsSymlink() bool {
	return f.symlink
}

// IsRegular reports whether f is known to be a regular file.
func (f File) IsRegular() bool {
	return f.hasMode && f.mode.IsRegular()
}

// Size is the length in bytes recorded when the entry was listed. It is only
// known for regular files.
func (f File) Size() (int64, bool) {
	return f.size, f.IsRegular()
}

func (f File) String() string {
	return f.path
}
