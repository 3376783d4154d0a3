package browser

import "unicode"

// KeyCode identifies the keys the browser reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
)

// Key is one key press. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the key press for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Dispatch applies a key press to the state and reports whether the
// browser should quit.
func Dispatch(s *State, k Key) (quit bool) {
	if s.Searching() {
		dispatchSearch(s, k)
		return false
	}
	return dispatchNavigate(s, k)
}

func dispatchSearch(s *State, k Key) {
	switch k.Code {
	case KeyEnter:
		s.ExitSearch()
	case KeyBackspace:
		s.RemoveLastChar()
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			s.AppendChar(k.Rune)
		}
	}
}

func dispatchNavigate(s *State, k Key) bool {
	switch k.Code {
	case KeyRune:
		switch k.Rune {
		case 'q':
			return true
		case '/':
			s.EnterSearch()
		}
	case KeyDown:
		s.MoveNext()
	case KeyUp:
		s.MovePrevious()
	case KeyEnter:
		s.OpenCurrent()
	}
	return false
}
