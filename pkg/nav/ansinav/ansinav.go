// Package ansinav decodes raw terminal input, as read from a terminal in raw
// mode, into navigation commands.
package ansinav

import (
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/filetug/ftexplorer/pkg/nav"
)

const (
	keyCtrlH     = 0x08
	keyLF        = '\n'
	keyCR        = '\r'
	keyBackspace = 0x7f
)

// Escape sequences sent by xterm-compatible terminals, in both the normal
// (CSI) and the application cursor-key (SS3) modes.
var sequences = map[string]nav.Command{
	"\x1b[A":  nav.MoveUp,
	"\x1bOA":  nav.MoveUp,
	"\x1b[B":  nav.MoveDown,
	"\x1bOB":  nav.MoveDown,
	"\x1b[C":  nav.EnterChild,
	"\x1bOC":  nav.EnterChild,
	"\x1b[D":  nav.EnterParent,
	"\x1bOD":  nav.EnterParent,
	"\x1b[H":  nav.MoveToFirst,
	"\x1bOH":  nav.MoveToFirst,
	"\x1b[1~": nav.MoveToFirst,
	"\x1b[7~": nav.MoveToFirst,
	"\x1b[F":  nav.MoveToLast,
	"\x1bOF":  nav.MoveToLast,
	"\x1b[4~": nav.MoveToLast,
	"\x1b[8~": nav.MoveToLast,
	"\x1b[5~": nav.PageUp,
	"\x1b[6~": nav.PageDown,
}

// Map converts one key's worth of raw input into a navigation command.
func Map(seq []byte) nav.Command {
	switch len(seq) {
	case 0:
		return nav.NoOp
	case 1:
		switch seq[0] {
		case keyCR, keyLF:
			return nav.EnterChild
		case keyBackspace:
			return nav.EnterParent
		case keyCtrlH:
			return nav.ToggleHidden
		}
		c, _ := nav.FromRune(rune(seq[0]))
		return c
	}
	if c, ok := sequences[string(seq)]; ok {
		return c
	}
	return nav.NoOp
}

// Seq is a raw input sequence that satisfies nav.Commander.
type Seq []byte

var _ nav.Commander = Seq(nil)

func (s Seq) NavCommand() nav.Command {
	return Map(s)
}

// Reader reads key sequences from a raw-mode terminal. A single read may
// carry several keys (key repeat, paste); they are returned one per call.
type Reader struct {
	r       io.Reader
	buf     [64]byte
	pending []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read blocks until the next key arrives and returns its raw bytes.
// The returned slice is only valid until the next call.
func (r *Reader) Read() (Seq, error) {
	if len(r.pending) == 0 {
		n, err := r.r.Read(r.buf[:])
		if n == 0 {
			if err == nil {
				err = io.ErrNoProgress
			}
			return nil, err
		}
		r.pending = r.buf[:n]
	}
	seq := Next(r.pending)
	r.pending = r.pending[len(seq):]
	return seq, nil
}

// Next returns the first key sequence of b. An escape sequence cut short by
// the end of b is returned as is, which makes a lone ESC the Escape key.
func Next(b []byte) Seq {
	if len(b) == 0 {
		return nil
	}
	_, _, n, _ := ansi.DecodeSequence(b, ansi.NormalState, nil)
	if n == 0 {
		n = 1
	}
	// SS3 keys are ESC O followed by the key byte.
	if n == 2 && b[0] == ansi.ESC && b[1] == 'O' && len(b) > 2 {
		n = 3
	}
	return Seq(b[:n])
}
