package models

// Orientation is the direction the buttons are laid out in
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Settings represents the persisted dialog settings
type Settings struct {
	LockIcon     string `json:"LockIcon,omitempty"`
	LogoutIcon   string `json:"LogoutIcon,omitempty"`
	SuspendIcon  string `json:"SuspendIcon,omitempty"`
	RebootIcon   string `json:"RebootIcon,omitempty"`
	ShutdownIcon string `json:"ShutdownIcon,omitempty"`

	Layout   string `json:"layout,omitempty"`
	Margin   uint   `json:"Margin"`
	Spacing  uint   `json:"Spacing"`
	IconSize uint   `json:"IconSize"`
	Geometry []byte `json:"geometry,omitempty"`
}

// DefaultSettings returns default dialog settings
func DefaultSettings() *Settings {
	return &Settings{
		Margin:   3,
		Spacing:  3,
		IconSize: 50,
	}
}

// IconOverride returns the configured file path for an icon key such as "LockIcon"
func (s *Settings) IconOverride(key string) string {
	switch key {
	case "LockIcon":
		return s.LockIcon
	case "LogoutIcon":
		return s.LogoutIcon
	case "SuspendIcon":
		return s.SuspendIcon
	case "RebootIcon":
		return s.RebootIcon
	case "ShutdownIcon":
		return s.ShutdownIcon
	}
	return ""
}

// SetIconOverride stores a file path for an icon key. Unknown keys are ignored.
func (s *Settings) SetIconOverride(key, path string) {
	switch key {
	case "LockIcon":
		s.LockIcon = path
	case "LogoutIcon":
		s.LogoutIcon = path
	case "SuspendIcon":
		s.SuspendIcon = path
	case "RebootIcon":
		s.RebootIcon = path
	case "ShutdownIcon":
		s.ShutdownIcon = path
	}
}

// ResolveOrientation picks the layout from the saved setting and the command-line flags.
// --vertical always wins.
func ResolveOrientation(saved string, horizontalFlag, verticalFlag bool) Orientation {
	if (saved == string(Horizontal) || horizontalFlag) && !verticalFlag {
		return Horizontal
	}
	return Vertical
}
