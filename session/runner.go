package session

import (
	"errors"
	"exitmenu/logging"
	"fmt"
	"os/exec"
)

// Runner starts external programs
type Runner interface {
	// Start launches the program without waiting for it
	Start(name string, args ...string) error
	// Run launches the program, waits for it and returns its exit code
	Run(name string, args ...string) (int, error)
}

// ExecRunner runs programs with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new process runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Start launches name detached. The child is reaped in the background.
func (r *ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	logging.Debugf("started %s %v (pid %d)", name, args, cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Run executes name and waits for it. A program that can't be started reports -1.
func (r *ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("run %s: %w", name, err)
}
