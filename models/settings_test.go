package models

import "testing"

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Margin != 3 {
		t.Errorf("Expected margin 3, got %d", settings.Margin)
	}
	if settings.Spacing != 3 {
		t.Errorf("Expected spacing 3, got %d", settings.Spacing)
	}
	if settings.IconSize != 50 {
		t.Errorf("Expected icon size 50, got %d", settings.IconSize)
	}
	if settings.Geometry != nil {
		t.Error("Expected no stored geometry")
	}
}

func TestResolveOrientation(t *testing.T) {
	tests := []struct {
		saved      string
		horizontal bool
		vertical   bool
		want       Orientation
	}{
		{"", false, false, Vertical},
		{"vertical", false, false, Vertical},
		{"horizontal", false, false, Horizontal},
		{"", true, false, Horizontal},
		{"horizontal", false, true, Vertical},
		{"", true, true, Vertical},
		{"Horizontal", false, false, Vertical},
	}

	for _, tt := range tests {
		got := ResolveOrientation(tt.saved, tt.horizontal, tt.vertical)
		if got != tt.want {
			t.Errorf("ResolveOrientation(%q, %t, %t): expected %s, got %s",
				tt.saved, tt.horizontal, tt.vertical, tt.want, got)
		}
	}
}

func TestIconOverride(t *testing.T) {
	settings := DefaultSettings()
	settings.SetIconOverride("RebootIcon", "/usr/share/icons/reboot.png")
	settings.SetIconOverride("NoSuchIcon", "/tmp/x.png")

	if got := settings.IconOverride("RebootIcon"); got != "/usr/share/icons/reboot.png" {
		t.Errorf("Expected override path, got '%s'", got)
	}
	if settings.RebootIcon != "/usr/share/icons/reboot.png" {
		t.Errorf("Expected RebootIcon field to be set, got '%s'", settings.RebootIcon)
	}
	if got := settings.IconOverride("NoSuchIcon"); got != "" {
		t.Errorf("Expected empty path for unknown key, got '%s'", got)
	}
}
