package app

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/planwerk/roomview/pkg/viewer"
)

const orbitScale = 0.01

// viewWidget embeds the software-rendered viewport in the fyne window and
// translates pointer input into camera interaction: primary drag orbits,
// secondary drag pans, scroll zooms. The camera only queues the deltas;
// the frame loop consumes them.
type viewWidget struct {
	widget.BaseWidget
	view *viewer.Viewer
	img  *canvas.Image

	panning bool
	panLast fyne.Position
}

func newViewWidget(view *viewer.Viewer) *viewWidget {
	w := &viewWidget{
		view: view,
		img:  canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	w.img.FillMode = canvas.ImageFillStretch
	w.img.ScaleMode = canvas.ImageScaleFastest
	w.ExtendBaseWidget(w)
	return w
}

// refreshFrame renders the next frame into the canvas image. Must run on
// the fyne UI thread.
func (w *viewWidget) refreshFrame() {
	frame := w.view.Frame()
	if frame == nil {
		return
	}
	w.img.Image = frame
	w.img.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (w *viewWidget) CreateRenderer() fyne.WidgetRenderer {
	return &viewWidgetRenderer{w: w}
}

// Dragged handles primary mouse drag for orbit rotation
func (w *viewWidget) Dragged(event *fyne.DragEvent) {
	if w.panning {
		return
	}
	w.view.Camera().Orbit(
		float64(event.Dragged.DX)*orbitScale,
		-float64(event.Dragged.DY)*orbitScale,
	)
}

// DragEnd handles the end of a drag event
func (w *viewWidget) DragEnd() {}

// Scrolled handles scroll events for zooming
func (w *viewWidget) Scrolled(event *fyne.ScrollEvent) {
	w.view.Camera().Zoom(-float64(event.Scrolled.DY) * 0.002)
}

// MouseDown starts a pan when the secondary button goes down
func (w *viewWidget) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonSecondary {
		w.panning = true
		w.panLast = event.Position
	}
}

// MouseUp ends a pan
func (w *viewWidget) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonSecondary {
		w.panning = false
	}
}

// MouseIn implements desktop.Hoverable
func (w *viewWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved feeds pan deltas while the secondary button is held
func (w *viewWidget) MouseMoved(event *desktop.MouseEvent) {
	if !w.panning {
		return
	}
	dx := float64(event.Position.X - w.panLast.X)
	dy := float64(event.Position.Y - w.panLast.Y)
	w.panLast = event.Position
	w.view.Camera().Pan(dx, dy)
}

// MouseOut implements desktop.Hoverable
func (w *viewWidget) MouseOut() {
	w.panning = false
}

// Tapped claims keyboard focus for the view shortcuts
func (w *viewWidget) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(w); c != nil {
		c.Focus(w)
	}
}

// FocusGained implements fyne.Focusable
func (w *viewWidget) FocusGained() {}

// FocusLost implements fyne.Focusable
func (w *viewWidget) FocusLost() {}

// TypedRune handles the view preset and toggle shortcuts
func (w *viewWidget) TypedRune(r rune) {
	switch r {
	case 't', 'T':
		w.view.Camera().TopView()
	case '1':
		w.view.Camera().FrontView()
	case 'w', 'W':
		w.view.ToggleWireframe()
	}
}

// TypedKey handles non-printing shortcuts
func (w *viewWidget) TypedKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyHome {
		w.view.Camera().Reset()
	}
}

type viewWidgetRenderer struct {
	w *viewWidget
}

func (r *viewWidgetRenderer) Layout(size fyne.Size) {
	r.w.img.Resize(size)

	width, height := int(size.Width), int(size.Height)
	if width <= 0 || height <= 0 {
		return
	}
	if cw, ch := r.w.view.Size(); cw != width || ch != height {
		_ = r.w.view.Resize(width, height)
	}
}

func (r *viewWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *viewWidgetRenderer) Refresh() {
	r.w.img.Refresh()
}

func (r *viewWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.img}
}

func (r *viewWidgetRenderer) Destroy() {}
