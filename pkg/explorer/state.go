package explorer

import "github.com/filetug/ftexplorer/pkg/files"

// State is the read-only view of an explorer handed to title generators
// and to Render.
type State interface {
	Cwd() string
	Files() []files.File
	Len() int
	Current() (files.File, bool)
	SelectedIdx() int
	ShowHidden() bool
}
