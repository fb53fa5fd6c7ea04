package session

import (
	"exitmenu/logging"
	"log"
	"strings"
)

const (
	sessionDesktopVar = "XDG_SESSION_DESKTOP"
	raspberryPiIssue  = "/etc/rpi-issue"
	lockTool          = "dm-tool"
)

// sessions that get a logout button regardless of the process checks
var logoutSessions = []string{"xfce", "KDE", "i3", "fluxbox"}

// Command is one external program invocation
type Command struct {
	Name string
	Args []string
	// Wait makes the dispatcher block until the program exits
	Wait bool
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Dispatcher maps button actions to session-management commands
type Dispatcher struct {
	env    Environment
	runner Runner
	locker Locker
}

// NewDispatcher creates a dispatcher. locker may be nil.
func NewDispatcher(env Environment, runner Runner, locker Locker) *Dispatcher {
	return &Dispatcher{
		env:    env,
		runner: runner,
		locker: locker,
	}
}

// Plan returns the commands that carry out action in the current environment
func (d *Dispatcher) Plan(action Action) []Command {
	switch action {
	case Lock:
		return []Command{{Name: lockTool, Args: []string{"switch-to-greeter"}}}
	case Logout:
		return d.logoutPlan()
	case Suspend:
		return []Command{{Name: "sudo", Args: []string{"-n", "pm-suspend"}}}
	case Reboot:
		return []Command{{Name: "sudo", Args: []string{"-n", "reboot"}}}
	case Shutdown:
		return []Command{{Name: "sudo", Args: []string{"-n", "/sbin/halt"}}}
	}
	return nil
}

func (d *Dispatcher) logoutPlan() []Command {
	if d.env.ProcessRunning("fluxbox") {
		return []Command{
			{Name: "fluxbox-remote", Args: []string{"exit"}, Wait: true},
			// remote actions may be disabled in the fluxbox config
			{Name: "killall", Args: []string{"fluxbox"}},
		}
	}

	switch d.env.Getenv(sessionDesktopVar) {
	case "xfce":
		return []Command{{Name: "xfce4-session-logout", Args: []string{"--logout"}}}
	case "KDE":
		return []Command{{Name: "qdbus", Args: []string{"org.kde.ksmserver", "/KSMServer", "logout", "0", "0", "0"}}}
	case "i3":
		return []Command{{Name: "i3-msg", Args: []string{"exit"}}}
	}
	return []Command{{Name: "loginctl", Args: []string{"terminate-user", d.env.Getenv("USER")}}}
}

// Dispatch carries out action. Failures are logged and otherwise ignored.
func (d *Dispatcher) Dispatch(action Action) {
	log.Printf("Dispatching %s", action)

	if action == Lock && d.locker != nil && !d.env.HasCommand(lockTool) {
		logging.Debugf("%s not found, locking through logind", lockTool)
		if err := d.locker.LockSession(); err != nil {
			log.Printf("lock failed: %v", err)
		}
		return
	}

	for _, cmd := range d.Plan(action) {
		logging.Debugf("running %s (wait=%t)", cmd, cmd.Wait)
		if cmd.Wait {
			code, err := d.runner.Run(cmd.Name, cmd.Args...)
			if err != nil {
				log.Printf("%s failed: %v", cmd.Name, err)
			} else if code != 0 {
				logging.Debugf("%s exited with %d", cmd.Name, code)
			}
			continue
		}
		if err := d.runner.Start(cmd.Name, cmd.Args...); err != nil {
			log.Printf("%s failed: %v", cmd.Name, err)
		}
	}
}

// ShowLogout reports whether a session manager we know how to leave is running
func ShowLogout(env Environment) bool {
	desktop := env.Getenv(sessionDesktopVar)
	for _, s := range logoutSessions {
		if desktop == s {
			return true
		}
	}
	return env.ProcessRunning("fluxbox") || env.ServiceActive("service")
}

// IsRaspberryPi reports whether the system is a Raspberry Pi OS install
func IsRaspberryPi(env Environment) bool {
	return env.FileExists(raspberryPiIssue)
}

// VisibleActions returns the actions to offer, in display order
func VisibleActions(env Environment) []Action {
	actions := make([]Action, 0, len(AllActions))
	for _, a := range AllActions {
		switch a {
		case Logout:
			if !ShowLogout(env) {
				continue
			}
		case Suspend:
			if IsRaspberryPi(env) {
				continue
			}
		}
		actions = append(actions, a)
	}
	return actions
}
