// Package teaexplorer hosts a FileExplorer in a bubbletea program.
package teaexplorer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/lipview"
	"github.com/filetug/ftexplorer/pkg/nav/teanav"
)

// RefreshMsg asks the model to re-list the current directory.
type RefreshMsg struct{}

// Model is a bubbletea model around a FileExplorer. The last row of the
// view is a status line with the selected path or the last error.
type Model struct {
	explorer *explorer.FileExplorer
	renderer *lipgloss.Renderer
	width    int
	height   int
	err      error
}

var _ tea.Model = (*Model)(nil)

type Option func(m *Model)

func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithSize sets the initial view size, replaced by window size messages.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width, m.height = width, height
	}
}

func New(fe *explorer.FileExplorer, options ...Option) *Model {
	m := &Model{
		explorer: fe,
		renderer: lipgloss.DefaultRenderer(),
		width:    80,
		height:   24,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}
		m.err = m.explorer.Handle(teanav.Msg(msg))
	case RefreshMsg:
		m.err = m.explorer.Refresh()
	}
	return m, nil
}

func (m *Model) View() string {
	listHeight := max(0, m.height-1)
	view := lipview.RenderWith(m.renderer, m.explorer.Render(), m.width, listHeight)
	status := m.status()
	if view == "" {
		return status
	}
	return view + "\n" + status
}

func (m *Model) status() string {
	style := m.renderer.NewStyle().MaxWidth(m.width)
	if m.err != nil {
		return style.Foreground(lipgloss.Color("9")).Render(m.err.Error())
	}
	if current, ok := m.explorer.Current(); ok {
		return style.Faint(true).Render(current.Path())
	}
	return style.Faint(true).Render("(empty)")
}

func (m *Model) Explorer() *explorer.FileExplorer {
	return m.explorer
}

// Err returns the error of the last handled key, if any.
func (m *Model) Err() error {
	return m.err
}
