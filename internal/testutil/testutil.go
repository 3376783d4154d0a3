package testutil

import (
	"errors"
	"time"

	"github.com/firefly-engineering/steamdirs/internal/browser"
)

// ErrScriptExhausted is returned by ScriptedTerminal.Poll once every key
// has been delivered. Scripts should end with the quit key.
var ErrScriptExhausted = errors.New("testutil: key script exhausted")

// ScriptedTerminal is a browser.Terminal that replays keys and records the
// frames it is asked to draw.
type ScriptedTerminal struct {
	Keys   []browser.Key
	Frames []browser.Frame
	Opened int
	Closed int
}

// Open returns s as a freshly opened terminal.
func (s *ScriptedTerminal) Open() (browser.Terminal, error) {
	s.Opened++
	return s, nil
}

// Render records f.
func (s *ScriptedTerminal) Render(f browser.Frame) error {
	s.Frames = append(s.Frames, f)
	return nil
}

// Poll returns the next scripted key.
func (s *ScriptedTerminal) Poll(time.Duration) (browser.Key, bool, error) {
	if len(s.Keys) == 0 {
		return browser.Key{}, false, ErrScriptExhausted
	}
	k := s.Keys[0]
	s.Keys = s.Keys[1:]
	return k, true, nil
}

// Close records the call.
func (s *ScriptedTerminal) Close() error {
	s.Closed++
	return nil
}

// LastFrame returns the most recently drawn frame.
func (s *ScriptedTerminal) LastFrame() browser.Frame {
	if len(s.Frames) == 0 {
		return browser.Frame{}
	}
	return s.Frames[len(s.Frames)-1]
}
