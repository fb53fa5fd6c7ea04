package session

// Action is one of the buttons offered by the dialog
type Action int

const (
	Lock Action = iota
	Logout
	Suspend
	Reboot
	Shutdown
)

// AllActions lists every action in display order
var AllActions = []Action{Lock, Logout, Suspend, Reboot, Shutdown}

func (a Action) String() string {
	switch a {
	case Lock:
		return "lock"
	case Logout:
		return "logout"
	case Suspend:
		return "suspend"
	case Reboot:
		return "reboot"
	case Shutdown:
		return "shutdown"
	}
	return "unknown"
}

// IconKey is the settings key holding the icon override for the action
func (a Action) IconKey() string {
	switch a {
	case Lock:
		return "LockIcon"
	case Logout:
		return "LogoutIcon"
	case Suspend:
		return "SuspendIcon"
	case Reboot:
		return "RebootIcon"
	case Shutdown:
		return "ShutdownIcon"
	}
	return ""
}

// Tooltip is the hover text shown on the action's button
func (a Action) Tooltip() string {
	switch a {
	case Lock:
		return "Lock Screen"
	case Logout:
		return "Log Out"
	case Suspend:
		return "Suspend"
	case Reboot:
		return "Reboot"
	case Shutdown:
		return "Shutdown"
	}
	return ""
}
