package files

import (
	"io/fs"
)

//go:generate mockgen -destination=mock_store.go -package=files . Store

// Store is the read-only filesystem a listing is taken from.
type Store interface {
	RootTitle() string
	ReadDir(name string) ([]fs.DirEntry, error)
	// Stat follows symbolic links.
	Stat(name string) (fs.FileInfo, error)
}
