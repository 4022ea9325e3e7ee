// Package preview shows the content of the selected explorer entry.
package preview

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	// MaxBytes is how much of a file is previewed.
	MaxBytes = 10 * 1024

	NotRegular = "<not a regular file>"
	LoadError  = "Couldn't load file."

	DefaultStyle = "dracula"
)

var readFileData = fsutils.ReadFileData

// Content returns the preview of f read from the host filesystem.
// dynamic reports whether text carries tview color tags.
func Content(f files.File, styleName string) (text string, dynamic bool, err error) {
	switch {
	case f.IsDir():
		return "", false, nil
	case !f.IsRegular():
		return NotRegular, false, nil
	}
	data, err := readFileData(f.Path(), MaxBytes)
	if err != nil {
		return LoadError, false, err
	}
	lexer := lexers.Match(filepath.Base(f.Path()))
	if lexer == nil {
		return string(data), false, nil
	}
	colored, err := Colorize(string(data), styleName, lexer)
	if err != nil {
		return string(data), false, nil
	}
	return colored, true, nil
}

// View is a text view that previews one entry at a time.
type View struct {
	*tview.TextView
	styleName string
}

func NewView() *View {
	return &View{
		TextView: tview.NewTextView().
			SetWrap(true).
			SetScrollable(true),
		styleName: DefaultStyle,
	}
}

// SetStyleName selects the chroma style used for highlighting.
func (v *View) SetStyleName(name string) *View {
	v.styleName = name
	return v
}

// Show replaces the text with the preview of f; ok false clears the view.
func (v *View) Show(f files.File, ok bool) {
	v.Clear()
	v.ScrollToBeginning()
	if !ok {
		return
	}
	text, dynamic, err := Content(f, v.styleName)
	if err != nil {
		v.SetTextColor(tcell.ColorRed)
	} else {
		v.SetTextColor(tview.Styles.PrimaryTextColor)
	}
	v.SetDynamicColors(dynamic)
	v.SetText(text)
}
