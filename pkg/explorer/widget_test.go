package explorer

import (
	"strings"
	"testing"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/nav"
	"github.com/filetug/ftexplorer/pkg/termtest"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(left, text string, width int, right string) string {
	return left + text + strings.Repeat(" ", width-len(text)) + right
}

func TestWidget_Draw(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	screen := termtest.NewSimScreen(t, 20, 6)
	w := fe.Widget()
	w.SetRect(0, 0, 20, 6)

	w.Draw(screen)

	assert.Equal(t, []string{
		"┌/tmp/x" + strings.Repeat("─", 12) + "┐",
		row("│", "../", 18, "│"),
		row("│", "A/", 18, "│"),
		row("│", "b.txt", 18, "│"),
		row("│", "", 18, "│"),
		"└" + strings.Repeat("─", 18) + "┘",
	}, termtest.ReadLines(screen))

	fg, _, attrs := termtest.StyleAt(screen, 1, 1).Decompose()
	assert.Equal(t, tcell.ColorBlue, fg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	fg, _, attrs = termtest.StyleAt(screen, 1, 3).Decompose()
	assert.Equal(t, tcell.ColorWhite, fg)
	assert.Zero(t, attrs&tcell.AttrBold)
	_, _, attrs = termtest.StyleAt(screen, 10, 1).Decompose()
	assert.NotZero(t, attrs&tcell.AttrBold, "highlight spans the row")
}

func TestDraw_titlesAndSymbol(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	theme := NewTheme().
		WithBlock(Bordered().WithBorderType(BorderRounded)).
		WithTitleTop(StaticTitle(NewTitle("L"))).
		WithTitleTop(StaticTitle(NewTitle("R").Right())).
		WithTitleTop(StaticTitle(NewTitle("M").Center())).
		WithTitleBottom(func(s State) Title {
			return NewTitle(s.Cwd())
		}).
		WithHighlightSymbol(">")
	fe.SetSelectedIdx(1)
	screen := termtest.NewSimScreen(t, 11, 4)

	Draw(screen, Render(fe, theme), 0, 0, 11, 4)

	assert.Equal(t, []string{
		"╭L───M───R╮",
		row("│", " ../", 9, "│"),
		row("│", ">A/", 9, "│"),
		"╰/tmp/x───╯",
	}, termtest.ReadLines(screen))
}

func TestDraw_scrollsToSelection(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	fe.SetSelectedIdx(2)
	screen := termtest.NewSimScreen(t, 8, 2)

	Draw(screen, Render(fe, NewTheme()), 0, 0, 8, 2)

	assert.Equal(t, []string{"A/", "b.txt"}, termtest.ReadLines(screen))
}

func TestDraw_paddingWithoutBorders(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	theme := NewTheme().WithBlock(NewBlock().WithPadding(Padding{Left: 2, Top: 1}))
	screen := termtest.NewSimScreen(t, 8, 3)

	Draw(screen, Render(fe, theme), 0, 0, 8, 3)

	assert.Equal(t, []string{"", "  ../", "  A/"}, termtest.ReadLines(screen))
}

func TestDraw_titlesWithoutBorders(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	theme := NewTheme().
		WithBlock(NewBlock()).
		WithTitleTop(StaticTitle(NewTitle("top"))).
		WithTitleBottom(StaticTitle(NewTitle("bottom")))
	screen := termtest.NewSimScreen(t, 8, 4)

	Draw(screen, Render(fe, theme), 0, 0, 8, 4)

	assert.Equal(t, []string{"top", "../", "A/", "bottom"}, termtest.ReadLines(screen))
}

func TestFrame_Inner(t *testing.T) {
	titled := []Title{NewTitle("t")}
	tests := []struct {
		name  string
		frame Frame
		want  [4]int
	}{
		{"no_titles", Frame{Block: NewBlock()}, [4]int{0, 0, 10, 5}},
		{"top_title", Frame{Block: NewBlock(), Top: titled}, [4]int{0, 1, 10, 4}},
		{"bottom_title", Frame{Block: NewBlock(), Bottom: titled}, [4]int{0, 0, 10, 4}},
		{"bordered", Frame{Block: Bordered(), Top: titled, Bottom: titled}, [4]int{1, 1, 8, 3}},
		{"left_border_only", Frame{Block: NewBlock().WithBorders(BorderLeft), Top: titled}, [4]int{1, 1, 9, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.frame.Inner(0, 0, 10, 5)
			assert.Equal(t, tt.want, [4]int{x, y, w, h})
		})
	}

	x, y, w, h := Frame{Block: NewBlock(), Top: titled, Bottom: titled}.Inner(0, 0, 4, 1)
	assert.Equal(t, [4]int{0, 1, 4, 0}, [4]int{x, y, w, h})
}

func TestDraw_truncates(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	screen := termtest.NewSimScreen(t, 6, 3)

	Draw(screen, Render(fe, NewTheme()), 0, 0, 4, 3)
	Draw(screen, Render(fe, NewTheme()), 0, 0, 0, 0)

	assert.Equal(t, []string{"../", "A/", "b.tx"}, termtest.ReadLines(screen))
}

func TestWidget_InputHandler(t *testing.T) {
	fe := newExplorer(t, newTmpX())
	w := NewWidget(fe)
	var changed int
	w.SetChangedFunc(func(got *FileExplorer) {
		assert.Same(t, fe, got)
		changed++
	})
	handler := w.InputHandler()

	handler(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), nil)
	assert.Equal(t, 1, fe.SelectedIdx())
	handler(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), nil)
	assert.Equal(t, "/tmp/x/A", fe.Cwd())
	handler(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), nil)
	assert.Equal(t, "/tmp/x", fe.Cwd())
	assert.Equal(t, 3, changed)
	assert.Same(t, fe, w.Explorer())
}

func TestWidget_Handle_error(t *testing.T) {
	store := newTmpX()
	fe := newExplorer(t, store)
	fe.SetSelectedIdx(1)
	store.Remove("/tmp/x/A")

	var got error
	changed := false
	w := NewWidget(fe).
		SetErrorFunc(func(err error) { got = err }).
		SetChangedFunc(func(*FileExplorer) { changed = true })

	w.Handle(nav.EnterChild)
	var listErr *files.ListError
	require.ErrorAs(t, got, &listErr)
	assert.False(t, changed)
	assert.Equal(t, "/tmp/x", fe.Cwd())

	assert.NotPanics(t, func() {
		NewWidget(fe).Handle(nav.EnterChild)
	})
}
