package ui

import (
	"exitmenu/models"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

func newBlock(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Black)
	r.SetMinSize(fyne.NewSize(w, h))
	return r
}

func TestBoxLayoutMinSize(t *testing.T) {
	objects := []fyne.CanvasObject{newBlock(50, 50), newBlock(50, 60), newBlock(40, 50)}

	h := NewBoxLayout(models.Horizontal, 3, 2)
	if got, want := h.MinSize(objects), fyne.NewSize(50+50+40+2*2+2*3, 60+2*3); got != want {
		t.Errorf("Expected horizontal min size %v, got %v", want, got)
	}

	v := NewBoxLayout(models.Vertical, 3, 2)
	if got, want := v.MinSize(objects), fyne.NewSize(50+2*3, 50+60+50+2*2+2*3); got != want {
		t.Errorf("Expected vertical min size %v, got %v", want, got)
	}
}

func TestBoxLayoutSkipsHidden(t *testing.T) {
	hidden := newBlock(50, 50)
	hidden.Hide()
	objects := []fyne.CanvasObject{newBlock(50, 50), hidden, newBlock(50, 50)}

	l := NewBoxLayout(models.Vertical, 0, 5)
	if got, want := l.MinSize(objects), fyne.NewSize(50, 105); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBoxLayoutPositions(t *testing.T) {
	a, b := newBlock(50, 50), newBlock(50, 50)
	l := NewBoxLayout(models.Horizontal, 3, 4)

	// 20 spare pixels are shared between the two objects
	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(3+50+4+50+3+20, 70))

	if a.Position() != fyne.NewPos(3, 3) {
		t.Errorf("Expected first at (3,3), got %v", a.Position())
	}
	if a.Size() != fyne.NewSize(60, 64) {
		t.Errorf("Expected first size 60x64, got %v", a.Size())
	}
	if b.Position() != fyne.NewPos(3+60+4, 3) {
		t.Errorf("Expected second at (67,3), got %v", b.Position())
	}
}

func TestBoxLayoutVerticalPositions(t *testing.T) {
	a, b := newBlock(40, 40), newBlock(40, 40)
	l := NewBoxLayout(models.Vertical, 2, 6)

	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(44, 90))

	if b.Position() != fyne.NewPos(2, 2+40+6) {
		t.Errorf("Expected second at (2,48), got %v", b.Position())
	}
	if b.Size() != fyne.NewSize(40, 40) {
		t.Errorf("Expected second size 40x40, got %v", b.Size())
	}
}
