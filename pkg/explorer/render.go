package explorer

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Item is one styled row of a rendered listing.
type Item struct {
	Text  string
	Style tcell.Style
	IsDir bool
}

// Frame is a block with its titles already evaluated.
type Frame struct {
	Block  Block
	Top    []Title
	Bottom []Title
}

// List is a frontend-neutral projection of an explorer: everything a
// screen, a string renderer or a test needs to draw it.
type List struct {
	Items []Item
	// Selected is -1 when nothing is selected.
	Selected int
	Style    tcell.Style
	// Symbol is drawn before the selected item when ShowSymbol is set;
	// other rows get blanks of the same width.
	Symbol        string
	ShowSymbol    bool
	ScrollPadding int
	// Frame is nil for an unframed theme.
	Frame *Frame
}

// Render projects state through theme. It has no side effects beyond
// calling the theme's title functions.
func Render(state State, theme Theme) List {
	entries := state.Files()
	selected := state.SelectedIdx()
	if selected >= len(entries) {
		selected = -1
	}
	list := List{
		Items:         make([]Item, len(entries)),
		Selected:      selected,
		Style:         theme.Style(),
		Symbol:        theme.HighlightSymbol(),
		ScrollPadding: theme.ScrollPadding(),
	}
	for i, f := range entries {
		style := theme.ItemStyle()
		if f.IsDir() {
			style = theme.DirStyle()
		}
		if i == selected {
			highlight := theme.HighlightStyle()
			if f.IsDir() {
				highlight = theme.HighlightDirStyle()
			}
			style = Patch(style, highlight)
		}
		list.Items[i] = Item{Text: f.Name(), Style: style, IsDir: f.IsDir()}
	}
	if list.Symbol != "" {
		switch theme.HighlightSpacing() {
		case SpacingAlways:
			list.ShowSymbol = true
		case SpacingWhenSelected:
			list.ShowSymbol = selected >= 0
		}
	}
	if block, ok := theme.Block(); ok {
		list.Frame = &Frame{
			Block:  block,
			Top:    theme.TitlesTop(state),
			Bottom: theme.TitlesBottom(state),
		}
	}
	return list
}

// Prefix returns what precedes row i: the symbol, blanks or nothing.
func (l List) Prefix(i int) string {
	if !l.ShowSymbol {
		return ""
	}
	if i == l.Selected {
		return l.Symbol
	}
	return strings.Repeat(" ", runewidth.StringWidth(l.Symbol))
}

// Lines returns prefix and text of every row.
func (l List) Lines() []string {
	lines := make([]string, len(l.Items))
	for i, item := range l.Items {
		lines[i] = l.Prefix(i) + item.Text
	}
	return lines
}

// Offset returns the first row to show in a viewport of height rows so
// that the selection and ScrollPadding rows after it are visible.
func (l List) Offset(height int) int {
	n := len(l.Items)
	if height <= 0 || n <= height || l.Selected < 0 {
		return 0
	}
	padding := min(l.ScrollPadding, (height-1)/2)
	last := min(l.Selected+padding, n-1)
	if last < height {
		return 0
	}
	return last - height + 1
}

// TitleGroups splits titles by effective alignment, keeping order.
func TitleGroups(titles []Title, fallback Alignment) (left, center, right []Title) {
	for _, t := range titles {
		align := t.Align
		if align == AlignDefault {
			align = fallback
		}
		switch align {
		case AlignCenter:
			center = append(center, t)
		case AlignRight:
			right = append(right, t)
		default:
			left = append(left, t)
		}
	}
	return left, center, right
}

// TitlesWidth is the width of titles laid out with one blank between them.
func TitlesWidth(titles []Title) int {
	if len(titles) == 0 {
		return 0
	}
	width := len(titles) - 1
	for _, t := range titles {
		width += runewidth.StringWidth(t.Text)
	}
	return width
}
