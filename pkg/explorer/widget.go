package explorer

import (
	"github.com/filetug/ftexplorer/pkg/nav"
	"github.com/filetug/ftexplorer/pkg/nav/tcellnav"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var _ tview.Primitive = (*Widget)(nil)

// Widget shows a FileExplorer inside a tview layout.
type Widget struct {
	*tview.Box
	explorer *FileExplorer
	changed  func(fe *FileExplorer)
	onError  func(err error)
}

func NewWidget(fe *FileExplorer) *Widget {
	return &Widget{
		Box:      tview.NewBox(),
		explorer: fe,
	}
}

// Widget returns a new tview primitive drawing fe.
func (fe *FileExplorer) Widget() *Widget {
	return NewWidget(fe)
}

func (w *Widget) Explorer() *FileExplorer {
	return w.explorer
}

// SetChangedFunc is called after every key the explorer handled successfully.
func (w *Widget) SetChangedFunc(f func(fe *FileExplorer)) *Widget {
	w.changed = f
	return w
}

// SetErrorFunc receives listing errors raised while handling keys.
func (w *Widget) SetErrorFunc(f func(err error)) *Widget {
	w.onError = f
	return w
}

func (w *Widget) Draw(screen tcell.Screen) {
	w.DrawForSubclass(screen, w)
	x, y, width, height := w.GetInnerRect()
	Draw(screen, w.explorer.Render(), x, y, width, height)
}

func (w *Widget) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return w.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		w.Handle(tcellnav.Key(event))
	})
}

// Handle forwards in to the explorer and reports the outcome to the
// changed or error callbacks.
func (w *Widget) Handle(in nav.Commander) {
	if err := w.explorer.Handle(in); err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.changed != nil {
		w.changed(w.explorer)
	}
}
