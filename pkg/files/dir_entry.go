package files

import (
	"io/fs"
	"strings"
	"time"
)

// DirEntry is an in-memory directory entry used by memfile stores and
// tests. It is its own fs.FileInfo.
type DirEntry struct {
	name    string
	mode    fs.FileMode
	size    int64
	modTime time.Time
	sys     any
}

var (
	_ fs.DirEntry = DirEntry{}
	_ fs.FileInfo = DirEntry{}
)

type FileInfoOption func(d *DirEntry)

// NewDirEntry panics if name has a directory part.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if strings.ContainsAny(name, `/\`) {
		panic("files: entry name must not contain a path: " + name)
	}
	d := DirEntry{name: name}
	for _, opt := range o {
		opt(&d)
	}
	if isDir {
		d.mode = fs.ModeDir | d.mode.Perm()
	} else {
		d.mode &^= fs.ModeDir
	}
	return d
}

func Size(v int64) FileInfoOption {
	return func(d *DirEntry) { d.size = v }
}

func ModTime(v time.Time) FileInfoOption {
	return func(d *DirEntry) { d.modTime = v }
}

// Mode sets type and permission bits, e.g. fs.ModeSymlink or fs.ModeSocket.
// The directory bit is governed by NewDirEntry's isDir.
func Mode(v fs.FileMode) FileInfoOption {
	return func(d *DirEntry) { d.mode = v }
}

func Sys(v any) FileInfoOption {
	return func(d *DirEntry) { d.sys = v }
}

func (d DirEntry) Name() string               { return d.name }
func (d DirEntry) IsDir() bool                { return d.mode.IsDir() }
func (d DirEntry) Type() fs.FileMode          { return d.mode.Type() }
func (d DirEntry) Info() (fs.FileInfo, error) { return d, nil }
func (d DirEntry) Size() int64                { return d.size }
func (d DirEntry) Mode() fs.FileMode          { return d.mode }
func (d DirEntry) ModTime() time.Time         { return d.modTime }
func (d DirEntry) Sys() any                   { return d.sys }
