package explorer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the part of tcell.Screen that drawing needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Draw paints list into the given area of screen.
func Draw(screen Canvas, list List, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if frame := list.Frame; frame != nil {
		fill(screen, x, y, width, height, frame.Block.Style())
		drawFrame(screen, *frame, x, y, width, height)
		x, y, width, height = frame.Inner(x, y, width, height)
		if width <= 0 || height <= 0 {
			return
		}
	}
	base := list.Style
	if list.Frame != nil {
		base = Patch(list.Frame.Block.Style(), list.Style)
	}
	fill(screen, x, y, width, height, base)

	offset := list.Offset(height)
	for row := 0; row < height && offset+row < len(list.Items); row++ {
		i := offset + row
		style := Patch(base, list.Items[i].Style)
		if i == list.Selected {
			fill(screen, x, y+row, width, 1, style)
		}
		cx := printText(screen, x, y+row, width, list.Prefix(i), style)
		printText(screen, cx, y+row, width-(cx-x), list.Items[i].Text, style)
	}
}

// Inner is the area left for rows inside the block. An edge that carries
// titles but no border gives up a row to them.
func (f Frame) Inner(x, y, width, height int) (int, int, int, int) {
	x, y, width, height = f.Block.Inner(x, y, width, height)
	borders := f.Block.Borders()
	if len(f.Top) > 0 && !borders.Has(BorderTop) && height > 0 {
		y, height = y+1, height-1
	}
	if len(f.Bottom) > 0 && !borders.Has(BorderBottom) && height > 0 {
		height--
	}
	return x, y, width, height
}

func drawFrame(screen Canvas, frame Frame, x, y, width, height int) {
	block := frame.Block
	borders := block.Borders()
	style := Patch(block.Style(), block.BorderStyle())
	set := block.BorderType().Set()
	right, bottom := x+width-1, y+height-1

	if borders.Has(BorderTop) {
		for cx := x; cx <= right; cx++ {
			screen.SetContent(cx, y, set.Horizontal, nil, style)
		}
	}
	if borders.Has(BorderBottom) {
		for cx := x; cx <= right; cx++ {
			screen.SetContent(cx, bottom, set.Horizontal, nil, style)
		}
	}
	if borders.Has(BorderLeft) {
		for cy := y; cy <= bottom; cy++ {
			screen.SetContent(x, cy, set.Vertical, nil, style)
		}
	}
	if borders.Has(BorderRight) {
		for cy := y; cy <= bottom; cy++ {
			screen.SetContent(right, cy, set.Vertical, nil, style)
		}
	}
	if borders.Has(BorderTop | BorderLeft) {
		screen.SetContent(x, y, set.TopLeft, nil, style)
	}
	if borders.Has(BorderTop | BorderRight) {
		screen.SetContent(right, y, set.TopRight, nil, style)
	}
	if borders.Has(BorderBottom | BorderLeft) {
		screen.SetContent(x, bottom, set.BottomLeft, nil, style)
	}
	if borders.Has(BorderBottom | BorderRight) {
		screen.SetContent(right, bottom, set.BottomRight, nil, style)
	}

	tx, tw := x, width
	if borders.Has(BorderLeft) {
		tx, tw = tx+1, tw-1
	}
	if borders.Has(BorderRight) {
		tw--
	}
	drawTitles(screen, frame.Top, block, tx, y, tw)
	if height > 1 {
		drawTitles(screen, frame.Bottom, block, tx, bottom, tw)
	}
}

func drawTitles(screen Canvas, titles []Title, block Block, x, y, width int) {
	if len(titles) == 0 || width <= 0 {
		return
	}
	left, center, right := TitleGroups(titles, block.TitleAlignment())
	layout := func(titles []Title, start int) {
		cx := start
		for i, t := range titles {
			if i > 0 {
				cx++
			}
			style := Patch(block.Style(), t.Style)
			cx = printText(screen, cx, y, width-(cx-x), t.Text, style)
		}
	}
	layout(right, x+max(0, width-TitlesWidth(right)))
	layout(center, x+max(0, (width-TitlesWidth(center))/2))
	layout(left, x)
}

// printText writes text from x, cutting it at maxWidth cells, and returns
// the column after the last cell written.
func printText(screen Canvas, x, y, maxWidth int, text string, style tcell.Style) int {
	end := x + maxWidth
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > end {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func fill(screen Canvas, x, y, width, height int, style tcell.Style) {
	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}
