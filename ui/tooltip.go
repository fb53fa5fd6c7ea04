package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// tooltipLayer draws a hover hint above the window content.
// It implements no input interfaces, so taps and hover events pass through to the buttons below.
type tooltipLayer struct {
	widget.BaseWidget
	text string
	pos  fyne.Position
}

func newTooltipLayer() *tooltipLayer {
	l := &tooltipLayer{}
	l.ExtendBaseWidget(l)
	l.Hide()
	return l
}

// ShowAt displays text near pos, given in canvas coordinates
func (l *tooltipLayer) ShowAt(text string, pos fyne.Position) {
	l.text = text
	l.pos = pos
	l.Show()
	l.Refresh()
}

// Text returns the hint currently displayed, or "" when hidden
func (l *tooltipLayer) Text() string {
	if !l.Visible() {
		return ""
	}
	return l.text
}

func (l *tooltipLayer) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.OverlayBackgroundColor())
	bg.StrokeColor = theme.ShadowColor()
	bg.StrokeWidth = 1
	text := canvas.NewText(l.text, theme.ForegroundColor())
	text.TextSize = theme.TextSize()
	return &tooltipRenderer{layer: l, bg: bg, text: text}
}

type tooltipRenderer struct {
	layer *tooltipLayer
	bg    *canvas.Rectangle
	text  *canvas.Text
}

// MinSize is zero so the hint never grows the window
func (r *tooltipRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *tooltipRenderer) Layout(size fyne.Size) {
	pad := theme.Padding()
	textSize := r.text.MinSize()
	boxSize := textSize.AddWidthHeight(pad*2, pad*2)

	x := clampOffset(r.layer.pos.X+pad, boxSize.Width, size.Width)
	y := clampOffset(r.layer.pos.Y+pad, boxSize.Height, size.Height)

	r.bg.Move(fyne.NewPos(x, y))
	r.bg.Resize(boxSize)
	r.text.Move(fyne.NewPos(x+pad, y+pad))
	r.text.Resize(textSize)
}

func (r *tooltipRenderer) Refresh() {
	r.text.Text = r.layer.text
	r.text.Color = theme.ForegroundColor()
	r.bg.FillColor = theme.OverlayBackgroundColor()
	r.Layout(r.layer.Size())
	r.bg.Refresh()
	r.text.Refresh()
}

func (r *tooltipRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *tooltipRenderer) Destroy() {}

// clampOffset keeps a box of length extent inside [0, limit], preferring want
func clampOffset(want, extent, limit float32) float32 {
	if want+extent > limit {
		want = limit - extent
	}
	if want < 0 {
		want = 0
	}
	return want
}
