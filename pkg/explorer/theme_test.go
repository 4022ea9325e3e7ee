package explorer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	State
	cwd string
}

func (s fakeState) Cwd() string {
	return s.cwd
}

func titleTexts(titles []Title) []string {
	texts := make([]string, len(titles))
	for i, t := range titles {
		texts[i] = t.Text
	}
	return texts
}

func TestNewTheme(t *testing.T) {
	t.Parallel()
	theme := NewTheme()

	_, ok := theme.Block()
	assert.False(t, ok)
	assert.Equal(t, tcell.StyleDefault, theme.Style())
	assert.Equal(t, tcell.StyleDefault, theme.ItemStyle())
	assert.Equal(t, "", theme.HighlightSymbol())
	assert.Equal(t, SpacingWhenSelected, theme.HighlightSpacing())
	assert.Nil(t, theme.TitlesTop(fakeState{}))
	assert.Nil(t, theme.TitlesBottom(fakeState{}))
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()
	theme := DefaultTheme()

	block, ok := theme.Block()
	require.True(t, ok)
	assert.Equal(t, BordersAll, block.Borders())
	assert.Equal(t, BorderPlain, block.BorderType())
	assert.Equal(t, SpacingAlways, theme.HighlightSpacing())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue), theme.DirStyle())
	assert.Equal(t, tcell.StyleDefault.Bold(true), theme.HighlightStyle())
	assert.Equal(t, []string{"/home/u"}, titleTexts(theme.TitlesTop(fakeState{cwd: "/home/u"})))
}

func TestTheme_valueSemantics(t *testing.T) {
	t.Parallel()
	base := NewTheme().WithTitleTop(StaticTitle(NewTitle("a")))
	withB := base.WithTitleTop(StaticTitle(NewTitle("b")))
	withC := base.WithTitleTop(StaticTitle(NewTitle("c")))
	styled := base.WithItemStyle(tcell.StyleDefault.Italic(true)).WithHighlightSymbol(">")

	state := fakeState{}
	assert.Equal(t, []string{"a"}, titleTexts(base.TitlesTop(state)))
	assert.Equal(t, []string{"a", "b"}, titleTexts(withB.TitlesTop(state)))
	assert.Equal(t, []string{"a", "c"}, titleTexts(withC.TitlesTop(state)))
	assert.Equal(t, tcell.StyleDefault, base.ItemStyle())
	assert.Equal(t, "", base.HighlightSymbol())
	assert.Equal(t, ">", styled.HighlightSymbol())
}

func TestTheme_titlesSeeState(t *testing.T) {
	t.Parallel()
	calls := 0
	theme := NewTheme().
		WithTitleBottom(func(s State) Title {
			calls++
			return NewTitle("in " + s.Cwd()).Right()
		}).
		WithTitleBottom(StaticTitle(NewTitle("help")))

	titles := theme.TitlesBottom(fakeState{cwd: "/srv"})
	assert.Equal(t, []string{"in /srv", "help"}, titleTexts(titles))
	assert.Equal(t, AlignRight, titles[0].Align)
	assert.Equal(t, AlignDefault, titles[1].Align)
	assert.Equal(t, 1, calls)
}

func TestTheme_block(t *testing.T) {
	t.Parallel()
	theme := NewTheme().WithBlock(Bordered())
	_, ok := theme.Block()
	assert.True(t, ok)

	_, ok = theme.WithoutBlock().Block()
	assert.False(t, ok)
	_, ok = theme.Block()
	assert.True(t, ok)
}

func TestTheme_scrollPadding(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, NewTheme().WithScrollPadding(3).ScrollPadding())
	assert.Equal(t, 0, NewTheme().WithScrollPadding(-1).ScrollPadding())
}

func TestBlock(t *testing.T) {
	t.Parallel()
	block := NewBlock()
	assert.Equal(t, BordersNone, block.Borders())
	assert.Equal(t, AlignLeft, block.TitleAlignment())

	x, y, w, h := block.Inner(2, 3, 10, 5)
	assert.Equal(t, []int{2, 3, 10, 5}, []int{x, y, w, h})

	block = Bordered().WithPadding(Padding{Top: 1, Left: 2})
	x, y, w, h = block.Inner(0, 0, 10, 5)
	assert.Equal(t, []int{3, 2, 6, 2}, []int{x, y, w, h})

	block = NewBlock().WithBorders(BorderTop | BorderLeft)
	x, y, w, h = block.Inner(0, 0, 1, 1)
	assert.Equal(t, []int{1, 1, 0, 0}, []int{x, y, w, h})

	assert.Equal(t, AlignLeft, NewBlock().WithTitleAlignment(AlignDefault).TitleAlignment())
	assert.Equal(t, AlignCenter, NewBlock().WithTitleAlignment(AlignCenter).TitleAlignment())
}

func TestBorderType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, '┌', BorderPlain.Set().TopLeft)
	assert.Equal(t, '╭', BorderRounded.Set().TopLeft)
	assert.Equal(t, '║', BorderDouble.Set().Vertical)
	assert.Equal(t, '━', BorderThick.Set().Horizontal)
	assert.Equal(t, "rounded", BorderRounded.String())
	assert.Equal(t, "BorderType(?)", BorderType(9).String())
}

func TestPatch(t *testing.T) {
	t.Parallel()
	base := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Italic(true)

	patched := Patch(base, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	fg, bg, attrs := patched.Decompose()
	assert.Equal(t, tcell.ColorGreen, fg)
	assert.Equal(t, tcell.ColorBlack, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)
	assert.NotZero(t, attrs&tcell.AttrItalic)

	assert.Equal(t, base, Patch(base, tcell.StyleDefault))
}

func TestPresets(t *testing.T) {
	t.Parallel()
	for _, theme := range []Theme{LightTheme(), DarkTheme()} {
		block, ok := theme.Block()
		require.True(t, ok)
		assert.Equal(t, BordersAll, block.Borders())
		assert.Equal(t, "> ", theme.HighlightSymbol())
		titles := theme.TitlesTop(fakeState{cwd: "/w"})
		require.Len(t, titles, 2)
		assert.Equal(t, "/w", titles[0].Text)
		assert.Equal(t, AlignRight, titles[1].Align)
	}
}
