// Package nav defines the navigation commands understood by the explorer.
//
// Host input libraries never reach the explorer directly: each adapter
// package (tcellnav, teanav, ansinav) maps its own key events to a Command.
package nav

// Command is an abstract user intent, independent of the input source.
type Command int

const (
	NoOp Command = iota
	MoveUp
	MoveDown
	MoveToFirst
	MoveToLast
	PageUp
	PageDown
	EnterParent
	EnterChild
	ToggleHidden
)

var commandNames = [...]string{
	NoOp:         "NoOp",
	MoveUp:       "MoveUp",
	MoveDown:     "MoveDown",
	MoveToFirst:  "MoveToFirst",
	MoveToLast:   "MoveToLast",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	EnterParent:  "EnterParent",
	EnterChild:   "EnterChild",
	ToggleHidden: "ToggleHidden",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "Command(?)"
	}
	return commandNames[c]
}

// Commander is anything that can be converted to a navigation command.
type Commander interface {
	NavCommand() Command
}

var _ Commander = NoOp

// NavCommand returns c itself, so a bare Command can be handled directly.
func (c Command) NavCommand() Command {
	return c
}

// FromRune maps the vi-style letters shared by all adapters.
// It reports false for runes that have no meaning on their own.
func FromRune(r rune) (Command, bool) {
	switch r {
	case 'j':
		return MoveDown, true
	case 'k':
		return MoveUp, true
	case 'h':
		return EnterParent, true
	case 'l':
		return EnterChild, true
	default:
		return NoOp, false
	}
}
