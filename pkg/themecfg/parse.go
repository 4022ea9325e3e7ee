package themecfg

import (
	"fmt"
	"strings"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/gdamore/tcell/v2"
)

// Style converts the config to a tcell style.
func (s *StyleConfig) Style() (tcell.Style, error) {
	style := tcell.StyleDefault
	if s == nil {
		return style, nil
	}
	fg, err := parseColor(s.Fg)
	if err != nil {
		return style, err
	}
	bg, err := parseColor(s.Bg)
	if err != nil {
		return style, err
	}
	style = style.Foreground(fg).Background(bg)
	for _, attr := range s.Attrs {
		switch strings.ToLower(attr) {
		case "bold":
			style = style.Bold(true)
		case "dim":
			style = style.Dim(true)
		case "italic":
			style = style.Italic(true)
		case "reverse":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		case "strikethrough":
			style = style.StrikeThrough(true)
		case "underline":
			style = style.Underline(true)
		default:
			return style, fmt.Errorf("unknown attribute %q", attr)
		}
	}
	return style, nil
}

func parseColor(name string) (tcell.Color, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

func parseBorders(names []string) (explorer.Borders, error) {
	var borders explorer.Borders
	for _, name := range names {
		switch strings.ToLower(name) {
		case "all":
			borders |= explorer.BordersAll
		case "none":
		case "top":
			borders |= explorer.BorderTop
		case "right":
			borders |= explorer.BorderRight
		case "bottom":
			borders |= explorer.BorderBottom
		case "left":
			borders |= explorer.BorderLeft
		default:
			return borders, fmt.Errorf("unknown border %q", name)
		}
	}
	return borders, nil
}

func parseBorderType(name string) (explorer.BorderType, error) {
	for _, t := range []explorer.BorderType{
		explorer.BorderPlain, explorer.BorderRounded, explorer.BorderDouble, explorer.BorderThick,
	} {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return explorer.BorderPlain, fmt.Errorf("unknown border type %q", name)
}

func parseAlignment(name string) (explorer.Alignment, error) {
	for _, a := range []explorer.Alignment{
		explorer.AlignDefault, explorer.AlignLeft, explorer.AlignCenter, explorer.AlignRight,
	} {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return explorer.AlignDefault, fmt.Errorf("unknown alignment %q", name)
}

func parseSpacing(name string) (explorer.HighlightSpacing, error) {
	for _, s := range []explorer.HighlightSpacing{
		explorer.SpacingWhenSelected, explorer.SpacingAlways, explorer.SpacingNever,
	} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return explorer.SpacingWhenSelected, fmt.Errorf("unknown highlight spacing %q", name)
}
