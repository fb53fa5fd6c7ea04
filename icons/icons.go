// Package icons provides the button images, either the embedded defaults
// or files configured by the user.
package icons

import (
	"bytes"
	"embed"
	"exitmenu/logging"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

//go:embed data/*.svg
var data embed.FS

var defaults = map[string]string{
	"LockIcon":     "system-lock.svg",
	"LogoutIcon":   "system-log-out.svg",
	"SuspendIcon":  "system-sleep.svg",
	"RebootIcon":   "system-restart.svg",
	"ShutdownIcon": "system-shutdown.svg",
}

// decoders for formats the toolkit can't draw directly
var decoders = map[string]func(r *bytes.Reader) (image.Image, error){
	".bmp":  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	".tif":  func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	".tiff": func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	".webp": func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
}

// Default returns the embedded icon for a settings key such as "LockIcon", or nil for unknown keys
func Default(key string) fyne.Resource {
	name, ok := defaults[key]
	if !ok {
		return nil
	}
	content, err := data.ReadFile("data/" + name)
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource(name, content)
}

// Load returns the icon for key. The override file is used when it exists and
// can be read, otherwise the embedded default.
func Load(key, override string) fyne.Resource {
	if override != "" {
		if info, err := os.Stat(override); err == nil && !info.IsDir() {
			res, err := FromFile(override)
			if err == nil {
				return res
			}
			logging.Debugf("icon %s for %s unusable: %v", override, key, err)
		}
	}
	return Default(key)
}

// FromFile loads an image file as a resource. BMP, TIFF and WebP files are converted to PNG.
func FromFile(path string) (fyne.Resource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return fyne.NewStaticResource(filepath.Base(path), content), nil
	}

	img, err := decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decode %s icon: %w", ext, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode icon: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	return fyne.NewStaticResource(name, buf.Bytes()), nil
}

// Supported reports whether path has an extension Load can handle
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := decoders[ext]; ok {
		return true
	}
	switch ext {
	case ".png", ".jpg", ".jpeg", ".svg":
		return true
	}
	return false
}

// Extensions lists the file extensions accepted for icon overrides
func Extensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".svg", ".bmp", ".tif", ".tiff", ".webp"}
}
