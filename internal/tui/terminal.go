package tui

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/firefly-engineering/steamdirs/internal/browser"
	"github.com/firefly-engineering/steamdirs/internal/logging"
)

// keyBuffer bounds the keys queued between two polls.
const keyBuffer = 64

// Terminal is a browser.Terminal backed by a bubbletea program running in
// the alternate screen. The program owns raw mode and restores the
// terminal when it exits.
type Terminal struct {
	program *tea.Program
	keys    chan browser.Key
	done    chan struct{}

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// Open starts a Terminal on the process's stdin and stdout. Both must be
// terminals.
func Open(st Styles) (*Terminal, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return nil, fmt.Errorf("stdin and stdout must be a terminal")
	}
	return start(st, tea.WithAltScreen()), nil
}

// Opener returns a function that opens a Terminal with the given styles,
// for use with browser.Run.
func Opener(st Styles) func() (browser.Terminal, error) {
	return func() (browser.Terminal, error) {
		t, err := Open(st)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// start runs a program for the model in the background.
func start(st Styles, opts ...tea.ProgramOption) *Terminal {
	t := &Terminal{
		keys: make(chan browser.Key, keyBuffer),
		done: make(chan struct{}),
	}
	t.program = tea.NewProgram(newModel(st, t.keys), opts...)

	go func() {
		defer close(t.done)
		_, err := t.program.Run()
		if err != nil {
			logging.Debug("terminal program exited", "error", err)
		}
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
	}()

	return t
}

// Render sends f to the program for drawing.
func (t *Terminal) Render(f browser.Frame) error {
	select {
	case <-t.done:
		return t.exitErr()
	default:
	}
	t.program.Send(frameMsg(f))
	return nil
}

// Poll waits up to timeout for a key press.
func (t *Terminal) Poll(timeout time.Duration) (browser.Key, bool, error) {
	select {
	case k := <-t.keys:
		return k, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-t.keys:
		return k, true, nil
	case <-t.done:
		return browser.Key{}, false, t.exitErr()
	case <-timer.C:
		return browser.Key{}, false, nil
	}
}

// Close stops the program and waits until the terminal is restored.
func (t *Terminal) Close() error {
	var err error
	t.closeOnce.Do(func() {
		t.program.Quit()
		<-t.done
		t.mu.Lock()
		err = t.err
		t.mu.Unlock()
	})
	return err
}

// exitErr describes why the program stopped before Close.
func (t *Terminal) exitErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return fmt.Errorf("terminal session ended: %w", t.err)
	}
	return fmt.Errorf("terminal session ended")
}
