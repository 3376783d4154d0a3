package browser

import (
	"time"

	"github.com/firefly-engineering/steamdirs/internal/errors"
	"github.com/firefly-engineering/steamdirs/internal/logging"
)

// DefaultPollTimeout bounds each wait for input.
const DefaultPollTimeout = 100 * time.Millisecond

// Terminal is the screen the loop draws on and reads keys from.
type Terminal interface {
	// Render draws a frame. It must not retain or modify f.Items.
	Render(f Frame) error

	// Poll waits up to timeout for one key press. ok is false when the
	// timeout elapsed without input.
	Poll(timeout time.Duration) (k Key, ok bool, err error)

	// Close restores the terminal to the state it had before opening.
	Close() error
}

// Loop renders the state, waits for a key and dispatches it, until the
// quit key is pressed in navigate mode. Render and input failures end the
// loop with a typed error.
func Loop(s *State, t Terminal, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}

	for {
		if err := t.Render(s.Frame()); err != nil {
			return errors.RenderError(err)
		}

		k, ok, err := t.Poll(timeout)
		if err != nil {
			return errors.InputError(err)
		}
		if !ok {
			continue
		}

		if Dispatch(s, k) {
			logging.Debug("quit requested")
			return nil
		}
	}
}

// Run opens a terminal, runs the loop on it and closes it again on every
// exit path.
func Run(s *State, open func() (Terminal, error), timeout time.Duration) (err error) {
	t, err := open()
	if err != nil {
		return errors.TerminalError("failed to initialize terminal", err)
	}

	defer func() {
		cerr := t.Close()
		if cerr == nil {
			return
		}
		if err == nil {
			err = errors.TerminalError("failed to restore terminal", cerr)
			return
		}
		logging.Warn("failed to restore terminal", "error", cerr)
	}()

	return Loop(s, t, timeout)
}
