package session

import (
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"
)

const (
	login1Dest    = "org.freedesktop.login1"
	login1Path    = "/org/freedesktop/login1"
	login1Manager = "org.freedesktop.login1.Manager"
)

// Locker locks the current login session without an external tool
type Locker interface {
	LockSession() error
}

// LogindLocker asks systemd-logind over the system bus to lock a session.
type LogindLocker struct {
	sessionID string
}

// NewLogindLocker creates a locker for sessionID, usually XDG_SESSION_ID.
// An empty id locks the session this process belongs to.
func NewLogindLocker(sessionID string) *LogindLocker {
	return &LogindLocker{sessionID: sessionID}
}

func (l *LogindLocker) LockSession() error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("failed to connect to system bus: %w", err)
	}
	defer conn.Close()

	manager := conn.Object(login1Dest, login1Path)
	if l.sessionID != "" {
		if err := manager.Call(login1Manager+".LockSession", 0, l.sessionID).Err; err != nil {
			return fmt.Errorf("could not lock session %s: %w", l.sessionID, err)
		}
		return nil
	}

	var sessionPath dbus.ObjectPath
	err = manager.Call(login1Manager+".GetSessionByPID", 0, uint32(os.Getpid())).Store(&sessionPath)
	if err != nil {
		return fmt.Errorf("could not find own session: %w", err)
	}

	if err := conn.Object(login1Dest, sessionPath).Call("org.freedesktop.login1.Session.Lock", 0).Err; err != nil {
		return fmt.Errorf("could not lock session %s: %w", sessionPath, err)
	}
	return nil
}
