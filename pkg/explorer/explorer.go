// Package explorer is an embeddable terminal file explorer: a directory
// listing with a cursor, navigated with nav commands and drawn with a Theme.
package explorer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/files/osfile"
	"github.com/filetug/ftexplorer/pkg/nav"
	"github.com/sirupsen/logrus"
)

// PageSize is how far PageUp and PageDown move the selection.
const PageSize = 12

var osGetwd = os.Getwd
var filepathAbs = filepath.Abs

var _ State = (*FileExplorer)(nil)

// FileExplorer holds the current directory, its listing and the selection.
// It is not safe for concurrent use.
type FileExplorer struct {
	cwd        string
	files      []files.File
	showHidden bool
	selected   int
	theme      Theme
	store      files.Store
	log        logrus.FieldLogger
}

type explorerOptions struct {
	dir        string
	theme      *Theme
	store      files.Store
	showHidden bool
	log        logrus.FieldLogger
}

type Option func(o *explorerOptions)

// WithDir sets the starting directory; the working directory is used otherwise.
func WithDir(dir string) Option {
	return func(o *explorerOptions) {
		o.dir = dir
	}
}

func WithTheme(theme Theme) Option {
	return func(o *explorerOptions) {
		o.theme = &theme
	}
}

// WithStore lists directories from store instead of the host filesystem.
func WithStore(store files.Store) Option {
	return func(o *explorerOptions) {
		o.store = store
	}
}

func WithShowHidden(showHidden bool) Option {
	return func(o *explorerOptions) {
		o.showHidden = showHidden
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *explorerOptions) {
		o.log = log
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// New lists the starting directory and returns an explorer selecting its
// first entry.
func New(options ...Option) (*FileExplorer, error) {
	var o explorerOptions
	for _, option := range options {
		option(&o)
	}
	fe := &FileExplorer{
		showHidden: o.showHidden,
		theme:      DefaultTheme(),
		store:      o.store,
		log:        o.log,
		selected:   -1,
	}
	if o.theme != nil {
		fe.theme = *o.theme
	}
	if fe.store == nil {
		fe.store = osfile.NewStore()
	}
	if fe.log == nil {
		fe.log = discardLogger()
	}
	dir := o.dir
	if dir == "" {
		var err error
		if dir, err = osGetwd(); err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	if err := fe.SetCwd(dir); err != nil {
		return nil, err
	}
	return fe, nil
}

// NewWithTheme is New(WithTheme(theme)).
func NewWithTheme(theme Theme) (*FileExplorer, error) {
	return New(WithTheme(theme))
}

// Handle applies a navigation command. Only commands that re-list a
// directory can fail; on failure the explorer is left untouched.
func (fe *FileExplorer) Handle(input nav.Commander) error {
	if input == nil {
		return nil
	}
	n := len(fe.files)
	switch input.NavCommand() {
	case nav.MoveUp:
		if n > 0 {
			if fe.selected == 0 {
				fe.selected = n - 1
			} else {
				fe.selected--
			}
		}
	case nav.MoveDown:
		if n > 0 {
			fe.selected = (fe.selected + 1) % n
		}
	case nav.MoveToFirst:
		if n > 0 {
			fe.selected = 0
		}
	case nav.MoveToLast:
		if n > 0 {
			fe.selected = n - 1
		}
	case nav.PageUp:
		if n > 0 {
			fe.selected = max(0, fe.selected-PageSize)
		}
	case nav.PageDown:
		if n > 0 {
			fe.selected = min(n-1, fe.selected+PageSize)
		}
	case nav.EnterParent:
		if parent, ok := files.Parent(fe.cwd); ok {
			return fe.list(parent, fe.showHidden)
		}
	case nav.EnterChild:
		if current, ok := fe.Current(); ok && current.IsDir() {
			return fe.list(current.Path(), fe.showHidden)
		}
	case nav.ToggleHidden:
		return fe.SetShowHidden(!fe.showHidden)
	}
	return nil
}

// SetCwd lists dir and makes it the current directory.
func (fe *FileExplorer) SetCwd(dir string) error {
	abs, err := filepathAbs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return fe.list(abs, fe.showHidden)
}

// SetShowHidden re-lists the current directory with the given visibility.
func (fe *FileExplorer) SetShowHidden(showHidden bool) error {
	return fe.list(fe.cwd, showHidden)
}

// Refresh re-lists the current directory, keeping the entry with the same
// name selected when it still exists.
func (fe *FileExplorer) Refresh() error {
	entries, err := fe.read(fe.cwd, fe.showHidden)
	if err != nil {
		return err
	}
	selected := firstIndex(entries)
	if current, ok := fe.Current(); ok && len(entries) > 0 {
		i := slices.IndexFunc(entries, func(f files.File) bool {
			return f.Name() == current.Name()
		})
		if i >= 0 {
			selected = i
		} else {
			selected = min(fe.selected, len(entries)-1)
		}
	}
	fe.files, fe.selected = entries, selected
	return nil
}

// list replaces directory, listing and selection together, or nothing.
func (fe *FileExplorer) list(dir string, showHidden bool) error {
	entries, err := fe.read(dir, showHidden)
	if err != nil {
		return err
	}
	fe.cwd, fe.files, fe.showHidden = dir, entries, showHidden
	fe.selected = firstIndex(entries)
	return nil
}

func (fe *FileExplorer) read(dir string, showHidden bool) ([]files.File, error) {
	log := fe.log.WithFields(logrus.Fields{
		"dir":         dir,
		"show_hidden": showHidden,
	})
	entries, err := files.List(fe.store, dir, showHidden)
	if err != nil {
		log.WithError(err).Warn("failed to list directory")
		return nil, err
	}
	log.WithField("entries", len(entries)).Debug("listed directory")
	return entries, nil
}

func firstIndex(entries []files.File) int {
	if len(entries) == 0 {
		return -1
	}
	return 0
}

func (fe *FileExplorer) SetTheme(theme Theme) {
	fe.theme = theme
}

// SetSelectedIdx moves the selection to i.
// It panics unless 0 <= i < Len(): an out of range index is a caller bug.
func (fe *FileExplorer) SetSelectedIdx(i int) {
	if i < 0 || i >= len(fe.files) {
		panic(fmt.Sprintf("explorer: selected index %d out of range [0, %d)", i, len(fe.files)))
	}
	fe.selected = i
}

// Current returns the selected entry; ok is false when the listing is empty.
func (fe *FileExplorer) Current() (f files.File, ok bool) {
	if fe.selected < 0 || fe.selected >= len(fe.files) {
		return files.File{}, false
	}
	return fe.files[fe.selected], true
}

func (fe *FileExplorer) Cwd() string {
	return fe.cwd
}

// Files returns a copy of the listing.
func (fe *FileExplorer) Files() []files.File {
	return slices.Clone(fe.files)
}

func (fe *FileExplorer) Len() int {
	return len(fe.files)
}

// SelectedIdx returns the selected index, or -1 when the listing is empty.
func (fe *FileExplorer) SelectedIdx() int {
	return fe.selected
}

func (fe *FileExplorer) ShowHidden() bool {
	return fe.showHidden
}

func (fe *FileExplorer) Theme() Theme {
	return fe.theme
}

// Store returns the store listings are read from.
func (fe *FileExplorer) Store() files.Store {
	return fe.store
}

// Render projects the explorer through its own theme.
func (fe *FileExplorer) Render() List {
	return Render(fe, fe.theme)
}
