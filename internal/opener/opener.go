// Package opener opens folders in the desktop's file manager.
package opener

import (
	"fmt"
	"runtime"

	"github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// Opener launches a file manager on a folder without waiting for it.
type Opener struct {
	name string
	args []string
	exec system.CommandExecutor
}

// New returns an Opener for the given command line. An empty command
// selects the platform default. The folder path is appended as the last
// argument.
func New(command string, exec system.CommandExecutor) (*Opener, error) {
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	argv, err := Command(command, runtime.GOOS)
	if err != nil {
		return nil, err
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		// Not fatal: the folder just won't open. The browser keeps working.
		logging.Warn("folder opener not found", "command", argv[0], "error", err)
	}

	return &Opener{name: argv[0], args: argv[1:], exec: exec}, nil
}

// Command returns the argv used to open a folder on goos. A non-empty
// command is split with shell quoting rules.
func Command(command, goos string) ([]string, error) {
	if command != "" {
		argv, err := shellquote.Split(command)
		if err != nil {
			return nil, fmt.Errorf("invalid opener command %q: %w", command, err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("invalid opener command %q: empty", command)
		}
		return argv, nil
	}

	switch goos {
	case "darwin":
		return []string{"open"}, nil
	case "windows":
		return []string{"explorer"}, nil
	default:
		return []string{"xdg-open"}, nil
	}
}

// Open starts the file manager on path. The launched process is detached
// and its exit status is never collected by the caller.
func (o *Opener) Open(path string) error {
	args := append(append([]string{}, o.args...), path)
	logging.Debug("opening folder", "command", o.name, "args", args)
	if err := o.exec.Start(o.name, args...); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.name, err)
	}
	return nil
}

// String returns the command line, without the folder argument.
func (o *Opener) String() string {
	return shellquote.Join(append([]string{o.name}, o.args...)...)
}
