package osfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_title(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	tests := []struct {
		name string
		host string
		err  error
		want string
	}{
		{name: "plain", host: "build-01", want: "build-01"},
		{name: "bonjour", host: "laptop.local", want: "laptop"},
		{name: "error", err: errors.New("hostname error"), want: "localhost"},
		{name: "empty", want: "localhost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osHostname = func() (string, error) { return tt.host, tt.err }
			assert.Equal(t, tt.want, NewStore().RootTitle())
		})
	}
}

func TestStore_ReadDir(t *testing.T) {
	origReadDir := osReadDir
	defer func() { osReadDir = origReadDir }()
	s := NewStore()

	t.Run("success", func(t *testing.T) {
		osReadDir = func(string) ([]fs.DirEntry, error) {
			return []fs.DirEntry{files.NewDirEntry("a", false)}, nil
		}
		entries, err := s.ReadDir("/tmp")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("error_becomes_list_error", func(t *testing.T) {
		osReadDir = func(string) ([]fs.DirEntry, error) {
			return nil, fs.ErrPermission
		}
		_, err := files.List(s, "/tmp", false)
		var listErr *files.ListError
		require.ErrorAs(t, err, &listErr)
		assert.Equal(t, "/tmp", listErr.Dir)
		assert.ErrorIs(t, err, fs.ErrPermission)
	})
}

func TestStore_listTempDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	entries, err := files.List(NewStore(), dir, false)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].IsParent())
	assert.Equal(t, "sub"+string(filepath.Separator), entries[1].Name())
	assert.Equal(t, "a.txt", entries[2].Name())
	assert.True(t, entries[2].IsRegular())

	info, err := NewStore().Stat(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size())

	_, err = NewStore().Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStore_symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0o755))
	require.NoError(t, os.Symlink("real", filepath.Join(dir, "link")))
	require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "dangling")))

	entries, err := files.List(NewStore(), dir, false)
	require.NoError(t, err)

	sep := string(filepath.Separator)
	var got []string
	for _, f := range entries[1:] {
		got = append(got, f.Name())
	}
	assert.Equal(t, []string{"link" + sep, "real" + sep, "dangling"}, got)

	dangling := entries[3]
	_, ok := dangling.Mode()
	assert.False(t, ok, "a dangling link has no readable metadata")
	assert.False(t, dangling.IsRegular())
	assert.True(t, dangling.IsSymlink())
	assert.True(t, entries[1].IsSymlink())
	assert.False(t, entries[2].IsSymlink())
}
