// Package ftapp assembles a full-screen tview application around a
// FileExplorer: the explorer widget, an optional preview pane, a status
// line, theme switching and an optional directory watcher.
package ftapp

import (
	"fmt"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/preview"
	"github.com/filetug/ftexplorer/pkg/watch"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// NamedTheme is one entry of the Ctrl-S theme cycle.
type NamedTheme struct {
	Name  string
	Theme explorer.Theme
}

// DefaultThemes is the cycle used when no themes are configured.
func DefaultThemes() []NamedTheme {
	return []NamedTheme{
		{Name: "default", Theme: explorer.DefaultTheme()},
		{Name: "light", Theme: explorer.LightTheme()},
		{Name: "dark", Theme: explorer.DarkTheme()},
	}
}

type options struct {
	themes  []NamedTheme
	preview bool
	watch   bool
	log     logrus.FieldLogger
}

type Option func(o *options)

// WithThemes sets the Ctrl-S cycle. The first theme is applied at start.
func WithThemes(themes ...NamedTheme) Option {
	return func(o *options) {
		o.themes = themes
	}
}

func WithPreview(enabled bool) Option {
	return func(o *options) {
		o.preview = enabled
	}
}

// WithWatch refreshes the listing when the current directory changes on disk.
func WithWatch(enabled bool) Option {
	return func(o *options) {
		o.watch = enabled
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

var newWatcher = watch.New

// Browser owns the primitives of the application.
type Browser struct {
	app      App
	explorer *explorer.FileExplorer
	widget   *explorer.Widget
	preview  *preview.View
	status   *tview.TextView
	root     *tview.Flex
	themes   []NamedTheme
	themeIdx int
	watcher  *watch.Watcher
	log      logrus.FieldLogger
}

// Setup builds the layout for fe and installs it as the root of app.
func Setup(app App, fe *explorer.FileExplorer, o ...Option) (*Browser, error) {
	var opts options
	for _, apply := range o {
		apply(&opts)
	}
	if opts.log == nil {
		opts.log = logrus.StandardLogger()
	}

	b := &Browser{
		app:      app,
		explorer: fe,
		widget:   fe.Widget(),
		status:   tview.NewTextView().SetDynamicColors(false),
		themes:   opts.themes,
		themeIdx: -1,
		log:      opts.log,
	}
	b.widget.SetChangedFunc(b.changed).SetErrorFunc(b.failed)

	panes := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(b.widget, 0, 1, true)
	if opts.preview {
		b.preview = preview.NewView()
		b.preview.SetBorder(true).SetTitle(" Preview ")
		panes.AddItem(b.preview, 0, 1, false)
	}
	b.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(panes, 0, 1, true).
		AddItem(b.status, 1, 0, false)
	b.root.SetInputCapture(b.capture)

	if len(b.themes) > 0 {
		b.NextTheme()
	}

	if opts.watch {
		w, err := newWatcher(b.dirChanged, watch.WithLogger(b.log))
		if err != nil {
			return nil, fmt.Errorf("failed to start watcher: %w", err)
		}
		if err = w.SetDir(fe.Cwd()); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", fe.Cwd(), err)
		}
		b.watcher = w
	}

	app.EnableMouse(true)
	app.SetRoot(b.root, true)
	app.SetFocus(b.widget)
	b.sync()
	return b, nil
}

func (b *Browser) Explorer() *explorer.FileExplorer {
	return b.explorer
}

func (b *Browser) Widget() *explorer.Widget {
	return b.widget
}

// Preview is nil unless the preview pane was enabled.
func (b *Browser) Preview() *preview.View {
	return b.preview
}

// Status returns the text of the status line.
func (b *Browser) Status() string {
	return b.status.GetText(false)
}

// ThemeName is the name of the active theme, or "" before any was applied.
func (b *Browser) ThemeName() string {
	if b.themeIdx < 0 {
		return ""
	}
	return b.themes[b.themeIdx].Name
}

// NextTheme applies the next theme of the cycle.
func (b *Browser) NextTheme() {
	if len(b.themes) == 0 {
		return
	}
	b.themeIdx = (b.themeIdx + 1) % len(b.themes)
	b.explorer.SetTheme(b.themes[b.themeIdx].Theme)
	b.log.WithField("theme", b.themes[b.themeIdx].Name).Debug("theme switched")
}

// Close stops the watcher, if any.
func (b *Browser) Close() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Close()
}

func (b *Browser) capture(event *tcell.EventKey) *tcell.EventKey {
	switch key(event) {
	case "q", "ctrl+q":
		b.app.Stop()
		return nil
	case "ctrl+s":
		b.NextTheme()
		b.setStatus("theme: "+b.ThemeName(), tview.Styles.SecondaryTextColor)
		return nil
	}
	return event
}

// key names the application shortcuts. Control letters may arrive either as
// tcell.KeyCtrlX or as a rune with tcell.ModCtrl.
func key(event *tcell.EventKey) string {
	switch event.Key() {
	case tcell.KeyCtrlQ:
		return "ctrl+q"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyRune:
		switch mod := event.Modifiers(); {
		case mod == tcell.ModNone && event.Rune() == 'q':
			return "q"
		case mod&tcell.ModCtrl != 0 && (event.Rune() == 'q' || event.Rune() == 's'):
			return "ctrl+" + string(event.Rune())
		}
	}
	return ""
}

func (b *Browser) changed(fe *explorer.FileExplorer) {
	if b.watcher != nil && b.watcher.Dir() != fe.Cwd() {
		if err := b.watcher.SetDir(fe.Cwd()); err != nil {
			b.log.WithError(err).WithField("dir", fe.Cwd()).Warn("failed to watch directory")
		}
	}
	b.sync()
}

func (b *Browser) failed(err error) {
	b.setStatus(err.Error(), tcell.ColorRed)
}

// dirChanged runs on the watcher goroutine.
func (b *Browser) dirChanged(dir string) {
	b.app.QueueUpdateDraw(func() {
		if dir != b.explorer.Cwd() {
			return
		}
		if err := b.explorer.Refresh(); err != nil {
			b.failed(err)
			return
		}
		b.sync()
	})
}

// sync shows the current entry in the preview pane and the status line.
func (b *Browser) sync() {
	current, ok := b.explorer.Current()
	if b.preview != nil {
		b.preview.Show(current, ok)
	}
	text := "(empty)"
	if ok {
		text = current.Path()
	}
	b.setStatus(text, tview.Styles.PrimaryTextColor)
}

func (b *Browser) setStatus(text string, color tcell.Color) {
	b.status.SetTextColor(color)
	b.status.SetText(text)
}
