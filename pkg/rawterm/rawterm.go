// Package rawterm runs a FileExplorer directly on a raw-mode terminal,
// without a screen library: keys are decoded by ansinav and frames are
// printed by lipview.
package rawterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/lipview"
	"github.com/filetug/ftexplorer/pkg/nav/ansinav"
	"golang.org/x/term"
)

const (
	enterScreen = "\x1b[?1049h\x1b[?25l"
	leaveScreen = "\x1b[?25h\x1b[?1049l"
	home        = "\x1b[H\x1b[2J"
)

var (
	termMakeRaw = term.MakeRaw
	termRestore = term.Restore
	termGetSize = term.GetSize
)

// Run puts in into raw mode, draws fe on out until the user quits and
// restores the terminal.
func Run(fe *explorer.FileExplorer, in, out *os.File) error {
	fd := int(in.Fd())
	state, err := termMakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = termRestore(fd, state)
	}()
	size := func() (int, int) {
		w, h, err := termGetSize(int(out.Fd()))
		if err != nil {
			return 80, 24
		}
		return w, h
	}
	return Loop(fe, in, out, lipgloss.NewRenderer(out), size)
}

// Loop handles keys read from in and redraws after each of them until q,
// Ctrl-C, Ctrl-Q or the end of input.
func Loop(fe *explorer.FileExplorer, in io.Reader, out io.Writer, r *lipgloss.Renderer, size func() (int, int)) error {
	w := bufio.NewWriter(out)
	_, _ = w.WriteString(enterScreen)
	defer func() {
		_, _ = w.WriteString(leaveScreen)
		_ = w.Flush()
	}()

	keys := ansinav.NewReader(in)
	var status error
	for {
		width, height := size()
		_, _ = w.WriteString(home)
		_, _ = w.WriteString(Frame(r, fe, status, width, height))
		if err := w.Flush(); err != nil {
			return err
		}

		seq, err := keys.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if isQuit(seq) {
			return nil
		}
		status = fe.Handle(seq)
	}
}

func isQuit(seq ansinav.Seq) bool {
	if len(seq) != 1 {
		return false
	}
	switch seq[0] {
	case 'q', 0x03, 0x11:
		return true
	}
	return false
}

// Frame is a full screen: the list plus a status line, with CRLF line
// endings as a raw terminal needs.
func Frame(r *lipgloss.Renderer, fe *explorer.FileExplorer, status error, width, height int) string {
	lines := make([]string, 0, 2)
	if view := lipview.RenderWith(r, fe.Render(), width, max(0, height-1)); view != "" {
		lines = append(lines, view)
	}
	statusStyle := r.NewStyle().MaxWidth(width)
	switch current, ok := fe.Current(); {
	case status != nil:
		lines = append(lines, statusStyle.Foreground(lipgloss.Color("9")).Render(status.Error()))
	case ok:
		lines = append(lines, statusStyle.Faint(true).Render(current.Path()))
	default:
		lines = append(lines, statusStyle.Faint(true).Render("(empty)"))
	}
	return strings.ReplaceAll(strings.Join(lines, "\n"), "\n", "\r\n")
}
