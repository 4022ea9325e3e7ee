// Package watch reports changes to the directory an explorer shows.
package watch

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDelay is how long a directory has to stay quiet before a burst
// of events is reported.
const DefaultDelay = 150 * time.Millisecond

var newFSWatcher = fsnotify.NewWatcher

// Watcher watches one directory at a time and calls onChange once per
// burst of events inside it. onChange runs on the watcher's goroutine.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      logrus.FieldLogger
	delay    time.Duration
	onChange func(dir string)

	mu  sync.Mutex
	dir string

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type Option func(w *Watcher)

func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.delay = d
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// New starts a watcher that is not yet watching anything; see SetDir.
func New(onChange func(dir string), options ...Option) (*Watcher, error) {
	fs, err := newFSWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:       fs,
		delay:    DefaultDelay,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}
	if w.log == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		w.log = log
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// SetDir moves the watch to dir. On failure the previous directory stays
// watched.
func (w *Watcher) SetDir(dir string) error {
	dir = filepath.Clean(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	if w.dir != "" {
		if err := w.fs.Remove(w.dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			w.log.WithError(err).WithField("dir", w.dir).Debug("failed to remove watch")
		}
	}
	w.log.WithField("dir", dir).Debug("watching directory")
	w.dir = dir
	return nil
}

func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

// Close stops the watcher. No callback runs after Close returns.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.delay)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		case <-timer.C:
			if dir := w.Dir(); dir != "" {
				w.onChange(dir)
			}
		}
	}
}

// relevant drops pure attribute changes and events outside the current
// directory, which can still arrive right after SetDir.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	dir := w.Dir()
	name := filepath.Clean(event.Name)
	return name == dir || filepath.Dir(name) == dir
}
