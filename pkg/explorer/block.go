package explorer

import "github.com/gdamore/tcell/v2"

// Borders is a set of block edges.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) Has(edge Borders) bool {
	return b&edge == edge
}

type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// BorderSet holds the runes a border is drawn with.
type BorderSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

func (t BorderType) Set() BorderSet {
	switch t {
	case BorderRounded:
		return BorderSet{'─', '│', '╭', '╮', '╰', '╯'}
	case BorderDouble:
		return BorderSet{'═', '║', '╔', '╗', '╚', '╝'}
	case BorderThick:
		return BorderSet{'━', '┃', '┏', '┓', '┗', '┛'}
	default:
		return BorderSet{'─', '│', '┌', '┐', '└', '┘'}
	}
}

func (t BorderType) String() string {
	switch t {
	case BorderPlain:
		return "plain"
	case BorderRounded:
		return "rounded"
	case BorderDouble:
		return "double"
	case BorderThick:
		return "thick"
	default:
		return "BorderType(?)"
	}
}

type Padding struct {
	Top, Right, Bottom, Left int
}

// Block is the frame around the list: borders, padding and a base style.
// Titles belong to the Theme because they are computed from explorer state.
type Block struct {
	borders        Borders
	borderType     BorderType
	style          tcell.Style
	borderStyle    tcell.Style
	padding        Padding
	titleAlignment Alignment
}

// NewBlock returns a block without borders.
func NewBlock() Block {
	return Block{titleAlignment: AlignLeft}
}

// Bordered returns a plain block with all four borders.
func Bordered() Block {
	return NewBlock().WithBorders(BordersAll)
}

func (b Block) WithBorders(borders Borders) Block {
	b.borders = borders
	return b
}

func (b Block) WithBorderType(t BorderType) Block {
	b.borderType = t
	return b
}

func (b Block) WithStyle(style tcell.Style) Block {
	b.style = style
	return b
}

func (b Block) WithBorderStyle(style tcell.Style) Block {
	b.borderStyle = style
	return b
}

func (b Block) WithPadding(p Padding) Block {
	b.padding = p
	return b
}

// WithTitleAlignment sets the alignment of titles that do not choose one.
func (b Block) WithTitleAlignment(a Alignment) Block {
	if a == AlignDefault {
		a = AlignLeft
	}
	b.titleAlignment = a
	return b
}

func (b Block) Borders() Borders          { return b.borders }
func (b Block) BorderType() BorderType    { return b.borderType }
func (b Block) Style() tcell.Style        { return b.style }
func (b Block) BorderStyle() tcell.Style  { return b.borderStyle }
func (b Block) Padding() Padding          { return b.padding }
func (b Block) TitleAlignment() Alignment { return b.titleAlignment }

// Inner returns the content area left inside the given outer area.
func (b Block) Inner(x, y, width, height int) (int, int, int, int) {
	top, right, bottom, left := b.padding.Top, b.padding.Right, b.padding.Bottom, b.padding.Left
	if b.borders.Has(BorderTop) {
		top++
	}
	if b.borders.Has(BorderRight) {
		right++
	}
	if b.borders.Has(BorderBottom) {
		bottom++
	}
	if b.borders.Has(BorderLeft) {
		left++
	}
	width = max(0, width-left-right)
	height = max(0, height-top-bottom)
	return x + left, y + top, width, height
}
