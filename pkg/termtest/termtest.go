// Package termtest has helpers for asserting on tcell simulation screens.
package termtest

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TB is the part of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

var newSimulationScreen = tcell.NewSimulationScreen

// NewSimScreen creates an initialised UTF-8 simulation screen of the given size.
func NewSimScreen(t TB, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := newSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadLines reads every line of the screen with trailing blanks removed.
func ReadLines(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

func StyleAt(screen tcell.Screen, x, y int) tcell.Style {
	_, style, _ := screen.Get(x, y)
	return style
}

// Find returns the position of the first occurrence of text on a single
// line of the screen. Only meaningful for single-width text.
func Find(screen tcell.Screen, text string) (x, y int, ok bool) {
	width, height := screen.Size()
	for y = 0; y < height; y++ {
		if x = strings.Index(ReadLine(screen, y, width), text); x >= 0 {
			return x, y, true
		}
	}
	return -1, -1, false
}
