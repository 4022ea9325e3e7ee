// Package osfile reads listings from the host filesystem.
package osfile

import (
	"io/fs"
	"os"
	"strings"

	"github.com/filetug/ftexplorer/pkg/files"
)

var (
	osReadDir  = os.ReadDir
	osStat     = os.Stat
	osHostname = os.Hostname
)

var _ files.Store = (*Store)(nil)

// Store is the host filesystem, titled with the host name.
type Store struct {
	title string
}

func NewStore() *Store {
	host, err := osHostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return &Store{title: strings.TrimSuffix(host, ".local")}
}

func (s *Store) RootTitle() string {
	return s.title
}

// ReadDir returns entries in directory order; files.List sorts them.
func (s *Store) ReadDir(name string) ([]fs.DirEntry, error) {
	return osReadDir(name)
}

func (s *Store) Stat(name string) (fs.FileInfo, error) {
	return osStat(name)
}
