package lipview

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Style converts a tcell style to the closest lipgloss style.
func Style(r *lipgloss.Renderer, s tcell.Style) lipgloss.Style {
	fg, bg, attrs := s.Decompose()
	style := r.NewStyle()
	if c, ok := Color(fg); ok {
		style = style.Foreground(c)
	}
	if c, ok := Color(bg); ok {
		style = style.Background(c)
	}
	if attrs&tcell.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcell.AttrDim != 0 {
		style = style.Faint(true)
	}
	if attrs&tcell.AttrItalic != 0 {
		style = style.Italic(true)
	}
	if attrs&tcell.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcell.AttrBlink != 0 {
		style = style.Blink(true)
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		style = style.Strikethrough(true)
	}
	return style
}

// Color maps palette colors to their ANSI index and RGB colors to hex.
// ok is false for the terminal default.
func Color(c tcell.Color) (lipgloss.Color, bool) {
	switch {
	case !c.Valid():
		return "", false
	case c.IsRGB():
		return lipgloss.Color(fmt.Sprintf("#%06x", c.Hex())), true
	default:
		return lipgloss.Color(strconv.Itoa(int(c &^ tcell.ColorValid))), true
	}
}
