// Package lipview renders an explorer.List to a string styled with
// lipgloss, for frontends that print frames instead of owning a tcell screen.
package lipview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Render draws list into width x height cells using the default lipgloss
// renderer. Lines are separated by "\n" and always width cells wide.
func Render(list explorer.List, width, height int) string {
	return RenderWith(lipgloss.DefaultRenderer(), list, width, height)
}

// RenderWith is Render with an explicit renderer, which decides the color
// profile of the output.
func RenderWith(r *lipgloss.Renderer, list explorer.List, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	g := newGrid(width, height)
	explorer.Draw(g, list, 0, 0, width, height)
	lines := make([]string, height)
	for y := range lines {
		lines[y] = g.line(r, y)
	}
	return strings.Join(lines, "\n")
}

type cell struct {
	r     rune
	style tcell.Style
	// cont marks the second column of a wide rune.
	cont bool
}

// grid is an explorer.Canvas kept in memory.
type grid struct {
	width, height int
	cells         []cell
}

var _ explorer.Canvas = (*grid)(nil)

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height, cells: make([]cell, width*height)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
	return g
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	wide := runewidth.RuneWidth(r) == 2
	if wide && x+1 == g.width {
		r, wide = ' ', false
	}
	i := y*g.width + x
	g.split(i)
	g.cells[i] = cell{r: r, style: style}
	if wide {
		g.split(i + 1)
		g.cells[i+1] = cell{style: style, cont: true}
	}
}

// split blanks the other half of a wide rune before cell i is overwritten.
func (g *grid) split(i int) {
	row := i - i%g.width
	if g.cells[i].cont && i > row {
		g.cells[i-1] = cell{r: ' ', style: g.cells[i-1].style}
	}
	if next := i + 1; next < row+g.width && g.cells[next].cont {
		g.cells[next] = cell{r: ' ', style: g.cells[next].style}
	}
}

// line renders row y, one lipgloss style per run of equally styled cells.
func (g *grid) line(r *lipgloss.Renderer, y int) string {
	var b, run strings.Builder
	row := g.cells[y*g.width : (y+1)*g.width]
	current := row[0].style
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(Style(r, current).Render(run.String()))
			run.Reset()
		}
	}
	for _, c := range row {
		if c.cont {
			continue
		}
		if c.style != current {
			flush()
			current = c.style
		}
		run.WriteRune(c.r)
	}
	flush()
	return b.String()
}
