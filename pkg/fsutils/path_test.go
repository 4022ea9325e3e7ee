package fsutils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	assert.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"dir", dir, true},
		{"missing", filepath.Join(dir, "missing"), false},
		{"file", file, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DirExists(tt.path)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("stat_error", func(t *testing.T) {
		old := osStat
		defer func() { osStat = old }()
		osStat = func(string) (fs.FileInfo, error) { return nil, fs.ErrPermission }
		_, err := DirExists(dir)
		assert.IsError(t, err, fs.ErrPermission)
	})
}

func TestExpandHome(t *testing.T) {
	old := osUserHomeDir
	defer func() { osUserHomeDir = old }()
	home := filepath.FromSlash("/home/tester")
	osUserHomeDir = func() (string, error) { return home, nil }

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{filepath.FromSlash("/some/path"), filepath.FromSlash("/some/path")},
		{"~", home},
		{"~/src", filepath.Join(home, "src")},
		{"~other/src", "~other/src"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}

	t.Run("unknown_home", func(t *testing.T) {
		osUserHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
		assert.Equal(t, "~/src", ExpandHome("~/src"))
	})
}
