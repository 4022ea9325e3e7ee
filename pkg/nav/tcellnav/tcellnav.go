// Package tcellnav maps tcell key events to navigation commands.
package tcellnav

import (
	"github.com/filetug/ftexplorer/pkg/nav"
	"github.com/gdamore/tcell/v2"
)

// Map converts a tcell key event into a navigation command.
// A nil event or an unknown key maps to nav.NoOp.
//
// tcell reports the 0x08 byte as tcell.KeyCtrlH (an alias of KeyBackspace),
// so that code toggles hidden files while tcell.KeyBackspace2 (DEL), the
// byte most terminals send for the backspace key, goes to the parent.
func Map(event *tcell.EventKey) nav.Command {
	if event == nil {
		return nav.NoOp
	}
	switch event.Key() {
	case tcell.KeyDown:
		return nav.MoveDown
	case tcell.KeyUp:
		return nav.MoveUp
	case tcell.KeyLeft, tcell.KeyBackspace2:
		return nav.EnterParent
	case tcell.KeyRight, tcell.KeyEnter:
		return nav.EnterChild
	case tcell.KeyHome:
		return nav.MoveToFirst
	case tcell.KeyEnd:
		return nav.MoveToLast
	case tcell.KeyPgUp:
		return nav.PageUp
	case tcell.KeyPgDn:
		return nav.PageDown
	case tcell.KeyCtrlH:
		return nav.ToggleHidden
	case tcell.KeyRune:
		return mapRune(event.Rune(), event.Modifiers())
	default:
		return nav.NoOp
	}
}

func mapRune(r rune, mod tcell.ModMask) nav.Command {
	if mod&tcell.ModCtrl != 0 {
		if r == 'h' || r == 'H' {
			return nav.ToggleHidden
		}
		return nav.NoOp
	}
	if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
		return nav.NoOp
	}
	c, _ := nav.FromRune(r)
	return c
}

// Event wraps a tcell key event so it can be handed to the explorer as is.
type Event struct {
	*tcell.EventKey
}

var _ nav.Commander = Event{}

func (e Event) NavCommand() nav.Command {
	return Map(e.EventKey)
}

// Key is a shorthand for Event{event}.
func Key(event *tcell.EventKey) Event {
	return Event{EventKey: event}
}
