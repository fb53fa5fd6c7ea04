package icons

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDefaultIcons(t *testing.T) {
	for _, key := range []string{"LockIcon", "LogoutIcon", "SuspendIcon", "RebootIcon", "ShutdownIcon"} {
		res := Default(key)
		if res == nil {
			t.Fatalf("Expected default icon for %s", key)
		}
		if len(res.Content()) == 0 {
			t.Errorf("Expected content for %s", key)
		}
	}

	if Default("BogusIcon") != nil {
		t.Error("Expected nil for unknown key")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	res := Load("LockIcon", filepath.Join(t.TempDir(), "missing.png"))
	if res.Name() != "system-lock.svg" {
		t.Errorf("Expected 'system-lock.svg', got '%s'", res.Name())
	}

	res = Load("LockIcon", t.TempDir())
	if res.Name() != "system-lock.svg" {
		t.Errorf("Expected directory override to be ignored, got '%s'", res.Name())
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock.svg")
	content := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	res := Load("LockIcon", path)
	if res.Name() != "lock.svg" {
		t.Errorf("Expected 'lock.svg', got '%s'", res.Name())
	}
	if !bytes.Equal(res.Content(), content) {
		t.Error("Expected override content to be used as is")
	}
}

func TestFromFileConvertsBMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "reboot.BMP")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := FromFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Name() != "reboot.png" {
		t.Errorf("Expected 'reboot.png', got '%s'", res.Name())
	}

	decoded, err := png.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		t.Fatalf("Expected PNG content, got %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("Expected width 4, got %d", decoded.Bounds().Dx())
	}
}

func TestFromFileRejectsCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.webp")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := FromFile(path); err == nil {
		t.Error("Expected decode error")
	}
	if res := Load("ShutdownIcon", path); res.Name() != "system-shutdown.svg" {
		t.Errorf("Expected fallback to default, got '%s'", res.Name())
	}
}

func TestSupported(t *testing.T) {
	if !Supported("/x/a.PNG") || !Supported("b.tiff") {
		t.Error("Expected png and tiff to be supported")
	}
	if Supported("c.gif") {
		t.Error("Expected gif to be unsupported")
	}
}
