package system

import (
	"os/exec"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	// Leave stdio unset so the child writes to the null device instead of
	// the screen the TUI is drawing on.
	detachProcess(cmd)

	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the child once it exits; nobody reads the result.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func (e *osExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
