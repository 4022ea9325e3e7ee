// Package memfile is an in-memory files.Store.
//
// It backs virtual trees and makes listings independent of the host
// filesystem, including listings of the root.
package memfile

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	"github.com/filetug/ftexplorer/pkg/files"
)

var _ files.Store = (*Store)(nil)

var errNotDir = errors.New("not a directory")

type node struct {
	entry    files.DirEntry
	children []string
}

// Store keeps a tree of entries keyed by cleaned absolute path.
// Directory children are reported in insertion order.
type Store struct {
	title string
	mu    sync.RWMutex
	nodes map[string]*node
}

// NewStore creates a store holding only the root directory.
func NewStore(title string) *Store {
	root := string(filepath.Separator)
	return &Store{
		title: title,
		nodes: map[string]*node{
			root: {entry: files.NewDirEntry("", true)},
		},
	}
}

func (s *Store) RootTitle() string {
	return s.title
}

// AddDir adds a directory and any missing ancestors.
func (s *Store) AddDir(path string, o ...files.FileInfoOption) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(filepath.Clean(path), true, o...)
	return s
}

// AddFile adds a non-directory entry and any missing ancestors.
func (s *Store) AddFile(path string, o ...files.FileInfoOption) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(filepath.Clean(path), false, o...)
	return s
}

func (s *Store) add(path string, isDir bool, o ...files.FileInfoOption) {
	parent := filepath.Dir(path)
	if parent == path {
		return
	}
	if _, ok := s.nodes[parent]; !ok {
		s.add(parent, true)
	}
	if existing, ok := s.nodes[path]; ok {
		existing.entry = files.NewDirEntry(filepath.Base(path), isDir, o...)
		return
	}
	s.nodes[path] = &node{entry: files.NewDirEntry(filepath.Base(path), isDir, o...)}
	p := s.nodes[parent]
	p.children = append(p.children, path)
}

// Remove deletes path and everything below it.
func (s *Store) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path = filepath.Clean(path)
	n, ok := s.nodes[path]
	if !ok {
		return
	}
	s.removeTree(path, n)
	if p, ok := s.nodes[filepath.Dir(path)]; ok {
		p.children = slices.DeleteFunc(p.children, func(child string) bool {
			return child == path
		})
	}
}

func (s *Store) removeTree(path string, n *node) {
	for _, child := range n.children {
		s.removeTree(child, s.nodes[child])
	}
	delete(s.nodes, path)
}

func (s *Store) ReadDir(name string) ([]fs.DirEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if !n.entry.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: errNotDir}
	}
	entries := make([]fs.DirEntry, 0, len(n.children))
	for _, child := range n.children {
		entries = append(entries, s.nodes[child].entry)
	}
	return entries, nil
}

func (s *Store) Stat(name string) (fs.FileInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return n.entry.Info()
}
