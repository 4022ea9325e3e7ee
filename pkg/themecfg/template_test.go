package themecfg

import (
	"testing"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/files/memfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainState hides the store of the explorer it wraps.
type plainState struct {
	explorer.State
}

type emptyState struct{}

func (emptyState) Cwd() string                 { return "/" }
func (emptyState) Files() []files.File         { return nil }
func (emptyState) Len() int                    { return 0 }
func (emptyState) Current() (files.File, bool) { return files.File{}, false }
func (emptyState) SelectedIdx() int            { return -1 }
func (emptyState) ShowHidden() bool            { return true }

func TestTemplate(t *testing.T) {
	fe := newExplorer(t)

	assert.Equal(t, "plain", Template("plain", fe))
	assert.Equal(t, "/w ../ 1/3 hidden:off", Template("{cwd} {name} {index}/{count} hidden:{hidden}", fe))
	assert.Equal(t, "[]", Template("[{size}]", fe), "parent entry has no size")

	fe.SetSelectedIdx(2)
	assert.Equal(t, "notes.txt 2KB", Template("{name} {size}", fe))
	assert.Equal(t, "notes.txt 2KB", Template("{name} {size}", plainState{State: fe}))
	assert.Equal(t, "{unknown}", Template("{unknown}", fe))
	assert.Equal(t, "test:/w", Template("{root}:{cwd}", fe))
	assert.Equal(t, ":/w", Template("{root}:{cwd}", plainState{State: fe}))
}

func TestTemplate_sizeIsReadAtListing(t *testing.T) {
	fe := newExplorer(t)
	fe.SetSelectedIdx(2)
	fe.Store().(*memfile.Store).Remove("/w/notes.txt")

	assert.Equal(t, "2KB", Template("{size}", fe))
	require.NoError(t, fe.Refresh())
	assert.Equal(t, "", Template("{size}", fe))
}

func TestTemplate_emptyListing(t *testing.T) {
	assert.Equal(t, "/ [] 0/0 on", Template("{cwd} [{name}{size}] {index}/{count} {hidden}", emptyState{}))
}

func TestTitleConfig_compile(t *testing.T) {
	f, err := TitleConfig{Text: "{count} entries", Align: "center"}.compile()
	assert.NoError(t, err)
	title := f(emptyState{})
	assert.Equal(t, "0 entries", title.Text)
	assert.Equal(t, explorer.AlignCenter, title.Align)
}
