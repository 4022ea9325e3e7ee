package explorer

import "github.com/gdamore/tcell/v2"

// LightTheme is a rounded frame on a white background.
func LightTheme() Theme {
	base := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	return NewTheme().
		WithBlock(Bordered().
			WithBorderType(BorderRounded).
			WithStyle(base).
			WithBorderStyle(tcell.StyleDefault.Foreground(tcell.ColorNavy))).
		WithStyle(base).
		WithItemStyle(tcell.StyleDefault.Foreground(tcell.ColorBlack)).
		WithDirStyle(tcell.StyleDefault.Foreground(tcell.ColorNavy).Bold(true)).
		WithHighlightStyle(tcell.StyleDefault.Background(tcell.ColorSilver)).
		WithHighlightDirStyle(tcell.StyleDefault.Background(tcell.ColorSilver).Bold(true)).
		WithHighlightSymbol("> ").
		AddDefaultTitle().
		WithTitleTop(StaticTitle(NewTitle(" ☀ Theme ").Right()))
}

// DarkTheme is a double frame on a black background.
func DarkTheme() Theme {
	base := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	return NewTheme().
		WithBlock(Bordered().
			WithBorderType(BorderDouble).
			WithStyle(base).
			WithBorderStyle(tcell.StyleDefault.Foreground(tcell.ColorGray))).
		WithStyle(base).
		WithItemStyle(tcell.StyleDefault.Foreground(tcell.ColorYellow)).
		WithDirStyle(tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)).
		WithHighlightStyle(tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)).
		WithHighlightDirStyle(tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Bold(true)).
		WithHighlightSymbol("> ").
		AddDefaultTitle().
		WithTitleTop(StaticTitle(NewTitle(" ☾ Theme ").Right()))
}
