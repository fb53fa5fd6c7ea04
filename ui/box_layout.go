package ui

import (
	"exitmenu/models"

	"fyne.io/fyne/v2"
)

// BoxLayout places objects in a single row or column with a margin around
// the edge and fixed spacing between them. Spare room along the main axis
// is shared equally; objects fill the cross axis.
type BoxLayout struct {
	Orientation models.Orientation
	Margin      float32
	Spacing     float32
}

// NewBoxLayout creates a box layout
func NewBoxLayout(o models.Orientation, margin, spacing float32) *BoxLayout {
	return &BoxLayout{Orientation: o, Margin: margin, Spacing: spacing}
}

func (l *BoxLayout) horizontal() bool {
	return l.Orientation == models.Horizontal
}

// MinSize implements fyne.Layout
func (l *BoxLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var main, cross float32
	visible := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		visible++
		minSize := o.MinSize()
		if l.horizontal() {
			main += minSize.Width
			cross = fyne.Max(cross, minSize.Height)
		} else {
			main += minSize.Height
			cross = fyne.Max(cross, minSize.Width)
		}
	}
	if visible > 1 {
		main += l.Spacing * float32(visible-1)
	}
	main += 2 * l.Margin
	cross += 2 * l.Margin

	if l.horizontal() {
		return fyne.NewSize(main, cross)
	}
	return fyne.NewSize(cross, main)
}

// Layout implements fyne.Layout
func (l *BoxLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var visible []fyne.CanvasObject
	var used float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		visible = append(visible, o)
		if l.horizontal() {
			used += o.MinSize().Width
		} else {
			used += o.MinSize().Height
		}
	}
	if len(visible) == 0 {
		return
	}

	available := size.Height
	cross := size.Width - 2*l.Margin
	if l.horizontal() {
		available = size.Width
		cross = size.Height - 2*l.Margin
	}
	available -= 2*l.Margin + l.Spacing*float32(len(visible)-1)
	extra := float32(0)
	if available > used {
		extra = (available - used) / float32(len(visible))
	}

	offset := l.Margin
	for _, o := range visible {
		minSize := o.MinSize()
		if l.horizontal() {
			w := minSize.Width + extra
			o.Move(fyne.NewPos(offset, l.Margin))
			o.Resize(fyne.NewSize(w, cross))
			offset += w + l.Spacing
		} else {
			h := minSize.Height + extra
			o.Move(fyne.NewPos(l.Margin, offset))
			o.Resize(fyne.NewSize(cross, h))
			offset += h + l.Spacing
		}
	}
}
