package explorer

import (
	"github.com/gdamore/tcell/v2"
)

type Alignment int

const (
	// AlignDefault takes the alignment of the block the title is drawn on.
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignDefault:
		return "default"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "Alignment(?)"
	}
}

// Title is a single line of text drawn on the top or bottom border.
type Title struct {
	Text  string
	Align Alignment
	Style tcell.Style
}

func NewTitle(text string) Title {
	return Title{Text: text}
}

func (t Title) Left() Title {
	t.Align = AlignLeft
	return t
}

func (t Title) Center() Title {
	t.Align = AlignCenter
	return t
}

func (t Title) Right() Title {
	t.Align = AlignRight
	return t
}

func (t Title) WithStyle(style tcell.Style) Title {
	t.Style = style
	return t
}

// TitleFunc builds a title from the explorer state each time it is drawn.
type TitleFunc func(state State) Title

// StaticTitle returns a TitleFunc ignoring state.
func StaticTitle(title Title) TitleFunc {
	return func(State) Title {
		return title
	}
}

// CwdTitle shows the current directory.
func CwdTitle(state State) Title {
	return NewTitle(state.Cwd())
}
