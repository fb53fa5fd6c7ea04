package session

import (
	"exitmenu/logging"
	"os"
	"os/exec"
)

// Environment answers the questions the dispatcher asks about the running system
type Environment interface {
	Getenv(key string) string
	// ProcessRunning reports whether a process with the given name exists
	ProcessRunning(name string) bool
	// ServiceActive reports whether a systemd unit is active
	ServiceActive(unit string) bool
	// FileExists reports whether path is a regular file
	FileExists(path string) bool
	// HasCommand reports whether name can be found on PATH
	HasCommand(name string) bool
}

// SystemEnvironment inspects the real system
type SystemEnvironment struct {
	runner Runner
}

// NewSystemEnvironment creates an environment that runs its checks with runner
func NewSystemEnvironment(runner Runner) *SystemEnvironment {
	return &SystemEnvironment{runner: runner}
}

// Getenv reads a variable from the process environment
func (e *SystemEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

// ProcessRunning reports whether `pidof -q name` exits with 0
func (e *SystemEnvironment) ProcessRunning(name string) bool {
	return e.succeeds("pidof", "-q", name)
}

// ServiceActive reports whether `systemctl is-active --quiet unit` exits with 0
func (e *SystemEnvironment) ServiceActive(unit string) bool {
	return e.succeeds("systemctl", "is-active", "--quiet", unit)
}

// FileExists reports whether path names a regular file
func (e *SystemEnvironment) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// HasCommand reports whether name is found on PATH
func (e *SystemEnvironment) HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *SystemEnvironment) succeeds(name string, args ...string) bool {
	code, err := e.runner.Run(name, args...)
	if err != nil {
		logging.Debugf("check %s failed: %v", name, err)
		return false
	}
	return code == 0
}
