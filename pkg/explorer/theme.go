package explorer

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// HighlightSpacing decides when a column is reserved for the highlight symbol.
type HighlightSpacing int

const (
	// SpacingWhenSelected reserves the column only while an item is selected.
	SpacingWhenSelected HighlightSpacing = iota
	SpacingAlways
	SpacingNever
)

func (s HighlightSpacing) String() string {
	switch s {
	case SpacingWhenSelected:
		return "when_selected"
	case SpacingAlways:
		return "always"
	case SpacingNever:
		return "never"
	default:
		return "HighlightSpacing(?)"
	}
}

// Theme describes how an explorer is drawn.
//
// A Theme is a value: every With method returns a modified copy and never
// changes the receiver, so copies can be handed out freely.
type Theme struct {
	block             Block
	hasBlock          bool
	style             tcell.Style
	itemStyle         tcell.Style
	dirStyle          tcell.Style
	highlightStyle    tcell.Style
	highlightDirStyle tcell.Style
	highlightSymbol   string
	highlightSpacing  HighlightSpacing
	scrollPadding     int
	titleTop          []TitleFunc
	titleBottom       []TitleFunc
}

// NewTheme returns an empty theme: no block, default styles, no symbol.
func NewTheme() Theme {
	return Theme{}
}

// DefaultTheme is a plain bordered list titled with the current directory:
// white files, blue directories and a bold highlight.
func DefaultTheme() Theme {
	return NewTheme().
		WithBlock(Bordered()).
		WithItemStyle(tcell.StyleDefault.Foreground(tcell.ColorWhite)).
		WithDirStyle(tcell.StyleDefault.Foreground(tcell.ColorBlue)).
		WithHighlightStyle(tcell.StyleDefault.Bold(true)).
		WithHighlightDirStyle(tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)).
		WithHighlightSpacing(SpacingAlways).
		AddDefaultTitle()
}

func (t Theme) WithBlock(block Block) Theme {
	t.block, t.hasBlock = block, true
	return t
}

func (t Theme) WithoutBlock() Theme {
	t.block, t.hasBlock = Block{}, false
	return t
}

// WithStyle sets the style of the whole list area.
func (t Theme) WithStyle(style tcell.Style) Theme {
	t.style = style
	return t
}

func (t Theme) WithItemStyle(style tcell.Style) Theme {
	t.itemStyle = style
	return t
}

func (t Theme) WithDirStyle(style tcell.Style) Theme {
	t.dirStyle = style
	return t
}

// WithHighlightStyle sets the style patched over a selected file.
func (t Theme) WithHighlightStyle(style tcell.Style) Theme {
	t.highlightStyle = style
	return t
}

// WithHighlightDirStyle sets the style patched over a selected directory.
func (t Theme) WithHighlightDirStyle(style tcell.Style) Theme {
	t.highlightDirStyle = style
	return t
}

func (t Theme) WithHighlightSymbol(symbol string) Theme {
	t.highlightSymbol = symbol
	return t
}

func (t Theme) WithHighlightSpacing(spacing HighlightSpacing) Theme {
	t.highlightSpacing = spacing
	return t
}

// WithScrollPadding keeps n rows visible below the selection when scrolling.
func (t Theme) WithScrollPadding(n int) Theme {
	t.scrollPadding = max(0, n)
	return t
}

func (t Theme) WithTitleTop(title TitleFunc) Theme {
	t.titleTop = append(slices.Clip(t.titleTop), title)
	return t
}

func (t Theme) WithTitleBottom(title TitleFunc) Theme {
	t.titleBottom = append(slices.Clip(t.titleBottom), title)
	return t
}

// AddDefaultTitle adds a top title showing the current directory.
func (t Theme) AddDefaultTitle() Theme {
	return t.WithTitleTop(CwdTitle)
}

// Block returns the frame; ok is false for an unframed theme.
func (t Theme) Block() (block Block, ok bool) {
	return t.block, t.hasBlock
}

func (t Theme) Style() tcell.Style                 { return t.style }
func (t Theme) ItemStyle() tcell.Style             { return t.itemStyle }
func (t Theme) DirStyle() tcell.Style              { return t.dirStyle }
func (t Theme) HighlightStyle() tcell.Style        { return t.highlightStyle }
func (t Theme) HighlightDirStyle() tcell.Style     { return t.highlightDirStyle }
func (t Theme) HighlightSymbol() string            { return t.highlightSymbol }
func (t Theme) HighlightSpacing() HighlightSpacing { return t.highlightSpacing }
func (t Theme) ScrollPadding() int                 { return t.scrollPadding }

// TitlesTop evaluates the top titles against state, in insertion order.
func (t Theme) TitlesTop(state State) []Title {
	return evalTitles(t.titleTop, state)
}

func (t Theme) TitlesBottom(state State) []Title {
	return evalTitles(t.titleBottom, state)
}

func evalTitles(funcs []TitleFunc, state State) []Title {
	if len(funcs) == 0 {
		return nil
	}
	titles := make([]Title, 0, len(funcs))
	for _, f := range funcs {
		titles = append(titles, f(state))
	}
	return titles
}
