package explorer

import "github.com/gdamore/tcell/v2"

// Patch lays over on top of base: colors set in over replace those of
// base and attributes of both are combined.
func Patch(base, over tcell.Style) tcell.Style {
	fg, bg, attrs := over.Decompose()
	if fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	_, _, baseAttrs := base.Decompose()
	return base.Attributes(baseAttrs | attrs)
}
