package themecfg

import (
	"strconv"
	"strings"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/fsutils"
)

// storeState is implemented by explorers that expose their store.
type storeState interface {
	Store() files.Store
}

// Template expands placeholders in text against state:
//
//	{cwd}     current directory
//	{name}    selected entry name
//	{count}   number of entries
//	{index}   1-based position of the selection, 0 when nothing is selected
//	{hidden}  "on" or "off"
//	{size}    short size of the selected regular file, as listed
//	{root}    title of the store, the host name for the OS filesystem
func Template(text string, state explorer.State) string {
	if !strings.Contains(text, "{") {
		return text
	}
	hidden := "off"
	if state.ShowHidden() {
		hidden = "on"
	}
	var name, size, root string
	if s, ok := state.(storeState); ok {
		root = s.Store().RootTitle()
	}
	if current, ok := state.Current(); ok {
		name = current.Name()
		if n, ok := current.Size(); ok {
			size = fsutils.GetSizeShortText(n)
		}
	}
	pairs := []string{
		"{cwd}", state.Cwd(),
		"{name}", name,
		"{count}", strconv.Itoa(state.Len()),
		"{index}", strconv.Itoa(state.SelectedIdx() + 1),
		"{hidden}", hidden,
		"{size}", size,
		"{root}", root,
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func (t TitleConfig) compile() (explorer.TitleFunc, error) {
	title := explorer.NewTitle(t.Text)
	if t.Align != "" {
		align, err := parseAlignment(t.Align)
		if err != nil {
			return nil, err
		}
		title.Align = align
	}
	if t.Style != nil {
		style, err := t.Style.Style()
		if err != nil {
			return nil, err
		}
		title.Style = style
	}
	return func(state explorer.State) explorer.Title {
		expanded := title
		expanded.Text = Template(title.Text, state)
		return expanded
	}, nil
}
