package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatcher(t *testing.T) (*Watcher, chan string) {
	t.Helper()
	changes := make(chan string, 16)
	w, err := New(func(dir string) {
		changes <- dir
	}, WithDelay(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = w.Close()
	})
	return w, changes
}

// waitChange skips stale notifications until want is reported.
func waitChange(t *testing.T, changes <-chan string, want string) {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case dir := <-changes:
			if dir == want {
				return
			}
		case <-timeout:
			t.Fatalf("timeout waiting for a change in %s", want)
		}
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, changes := newWatcher(t)
	require.NoError(t, w.SetDir(dir))
	assert.Equal(t, filepath.Clean(dir), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	waitChange(t, changes, filepath.Clean(dir))

	other := t.TempDir()
	require.NoError(t, w.SetDir(other))
	require.NoError(t, os.Mkdir(filepath.Join(other, "sub"), 0o755))
	waitChange(t, changes, filepath.Clean(other))
}

func TestWatcher_SetDir(t *testing.T) {
	dir := t.TempDir()
	w, _ := newWatcher(t)
	require.NoError(t, w.SetDir(dir))
	require.NoError(t, w.SetDir(dir+string(filepath.Separator)))

	err := w.SetDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
	assert.Equal(t, filepath.Clean(dir), w.Dir())
}

func TestWatcher_relevant(t *testing.T) {
	w, _ := newWatcher(t)
	dir := t.TempDir()
	require.NoError(t, w.SetDir(dir))

	for _, tt := range []struct {
		event    fsnotify.Event
		expected bool
	}{
		{fsnotify.Event{Name: filepath.Join(dir, "a"), Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "a"), Op: fsnotify.Write | fsnotify.Chmod}, true},
		{fsnotify.Event{Name: dir, Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "a"), Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "a", "b"), Op: fsnotify.Create}, false},
		{fsnotify.Event{Name: filepath.Join(filepath.Dir(dir), "x"), Op: fsnotify.Create}, false},
	} {
		assert.Equal(t, tt.expected, w.relevant(tt.event), tt.event.String())
	}
}

func TestWatcher_Close(t *testing.T) {
	w, _ := newWatcher(t)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNew_error(t *testing.T) {
	old := newFSWatcher
	defer func() { newFSWatcher = old }()
	newFSWatcher = func() (*fsnotify.Watcher, error) {
		return nil, errors.New("too many open files")
	}

	w, err := New(func(string) {})
	assert.Nil(t, w)
	assert.ErrorContains(t, err, "too many open files")
}
