package ftapp

import (
	"github.com/rivo/tview"
)

//go:generate mockgen -destination=mock_app.go -package=ftapp . App

// App is the part of *tview.Application the browser drives.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type AppMethod func(a *appProxy)

// NewApp adapts app to App. Methods can be replaced with With* options,
// which is how tests run the browser without a terminal.
func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(f func(func())) AppMethod {
	return func(a *appProxy) {
		a.queueUpdateDraw = f
	}
}

func WithRun(run func() error) AppMethod {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw func(func())
	setFocus        func(tview.Primitive)
	setRoot         func(tview.Primitive, bool)
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (a appProxy) EnableMouse(b bool)                      { a.enableMouse(b) }
func (a appProxy) QueueUpdateDraw(f func())                { a.queueUpdateDraw(f) }
func (a appProxy) SetFocus(p tview.Primitive)              { a.setFocus(p) }
func (a appProxy) SetRoot(root tview.Primitive, full bool) { a.setRoot(root, full) }
func (a appProxy) Run() error                              { return a.run() }
func (a appProxy) Stop()                                   { a.stop() }
