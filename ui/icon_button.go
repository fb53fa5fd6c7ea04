package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// IconButton is a flat button that shows only an image at a fixed size
type IconButton struct {
	widget.BaseWidget
	resource fyne.Resource
	iconSize float32
	hovered  bool
	tips     *tooltipLayer

	Tooltip           string
	OnTapped          func()
	OnTappedSecondary func(*fyne.PointEvent)
}

// NewIconButton creates a new icon button
func NewIconButton(res fyne.Resource, iconSize float32, tooltip string, tapped func()) *IconButton {
	b := &IconButton{
		resource: res,
		iconSize: iconSize,
		Tooltip:  tooltip,
		OnTapped: tapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *IconButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	img := canvas.NewImageFromResource(b.resource)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(b.iconSize, b.iconSize))

	return &iconButtonRenderer{
		button: b,
		bg:     bg,
		img:    img,
	}
}

// Resource returns the image currently shown
func (b *IconButton) Resource() fyne.Resource {
	return b.resource
}

// SetResource replaces the image
func (b *IconButton) SetResource(res fyne.Resource) {
	b.resource = res
	b.Refresh()
}

// Tapped implements fyne.Tappable
func (b *IconButton) Tapped(*fyne.PointEvent) {
	b.hideTooltip()
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// TappedSecondary implements fyne.SecondaryTappable
func (b *IconButton) TappedSecondary(e *fyne.PointEvent) {
	b.hideTooltip()
	if b.OnTappedSecondary != nil {
		b.OnTappedSecondary(e)
	}
}

// MouseIn implements desktop.Hoverable
func (b *IconButton) MouseIn(e *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
	b.showTooltip(e.AbsolutePosition)
}

// MouseMoved implements desktop.Hoverable
func (b *IconButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *IconButton) MouseOut() {
	b.hovered = false
	b.hideTooltip()
	b.Refresh()
}

// setTooltipLayer routes the hover hint to a layer stacked over the window content
func (b *IconButton) setTooltipLayer(l *tooltipLayer) {
	b.tips = l
}

func (b *IconButton) showTooltip(pos fyne.Position) {
	if b.Tooltip == "" || b.tips == nil {
		return
	}
	b.tips.ShowAt(b.Tooltip, pos)
}

func (b *IconButton) hideTooltip() {
	if b.tips != nil {
		b.tips.Hide()
	}
}

type iconButtonRenderer struct {
	button *IconButton
	bg     *canvas.Rectangle
	img    *canvas.Image
}

func (r *iconButtonRenderer) MinSize() fyne.Size {
	pad := theme.Padding() * 2
	return r.img.MinSize().AddWidthHeight(pad, pad)
}

func (r *iconButtonRenderer) Layout(size fyne.Size) {
	pad := theme.Padding()
	r.bg.Resize(size)
	r.img.Move(fyne.NewPos(pad, pad))
	r.img.Resize(size.SubtractWidthHeight(pad*2, pad*2))
}

func (r *iconButtonRenderer) Refresh() {
	if r.button.hovered {
		r.bg.FillColor = theme.HoverColor()
	} else {
		r.bg.FillColor = color.Transparent
	}
	r.img.Resource = r.button.resource
	r.bg.Refresh()
	r.img.Refresh()
}

func (r *iconButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.img}
}

func (r *iconButtonRenderer) Destroy() {}
