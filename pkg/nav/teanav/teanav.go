// Package teanav maps bubbletea key messages to navigation commands.
package teanav

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/filetug/ftexplorer/pkg/nav"
)

// Map converts a bubbletea key message into a navigation command.
func Map(msg tea.KeyMsg) nav.Command {
	switch msg.Type {
	case tea.KeyDown:
		return nav.MoveDown
	case tea.KeyUp:
		return nav.MoveUp
	case tea.KeyLeft, tea.KeyBackspace:
		return nav.EnterParent
	case tea.KeyRight, tea.KeyEnter:
		return nav.EnterChild
	case tea.KeyHome:
		return nav.MoveToFirst
	case tea.KeyEnd:
		return nav.MoveToLast
	case tea.KeyPgUp:
		return nav.PageUp
	case tea.KeyPgDown:
		return nav.PageDown
	case tea.KeyCtrlH:
		return nav.ToggleHidden
	case tea.KeyRunes:
		if msg.Alt || msg.Paste || len(msg.Runes) != 1 {
			return nav.NoOp
		}
		c, _ := nav.FromRune(msg.Runes[0])
		return c
	default:
		return nav.NoOp
	}
}

// FromMsg maps any bubbletea message; only key messages yield commands.
func FromMsg(msg tea.Msg) nav.Command {
	if key, ok := msg.(tea.KeyMsg); ok {
		return Map(key)
	}
	return nav.NoOp
}

// Msg wraps a key message so it satisfies nav.Commander.
type Msg tea.KeyMsg

var _ nav.Commander = Msg{}

func (m Msg) NavCommand() nav.Command {
	return Map(tea.KeyMsg(m))
}
