package browser

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/firefly-engineering/steamdirs/internal/catalog"
	"github.com/firefly-engineering/steamdirs/internal/logging"
	"github.com/firefly-engineering/steamdirs/internal/system"
)

// noCursor marks an unset cursor.
const noCursor = -1

// Status messages
const (
	statusHelp         = "Use '/' to search, 'q' to exit."
	statusHelpNoSearch = "Use ↑/↓ to navigate, Enter to open, 'q' to exit."
	statusOpenedPrefix = "Opened prefix folder."
	statusOpenedGame   = "Opened game folder."
	statusMissing      = "Folder does not exist."
)

// Opener launches the platform folder viewer for a path.
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error { return f(path) }

// State is the live view over a catalog: filter text, visible subset,
// cursor, search mode and status line.
type State struct {
	catalog   *catalog.Catalog
	filter    string
	searching bool
	visible   []catalog.Item
	cursor    int
	status    string

	searchEnabled bool
	fs            system.FileSystem
	opener        Opener
}

// Option configures a State.
type Option func(*State)

// WithFS sets the file system used to check folder existence.
func WithFS(fs system.FileSystem) Option {
	return func(s *State) {
		s.fs = fs
	}
}

// WithOpener sets the folder opener.
func WithOpener(o Opener) Option {
	return func(s *State) {
		s.opener = o
	}
}

// WithSearch enables or disables the search field. With search disabled
// the browser is navigate-only.
func WithSearch(enabled bool) Option {
	return func(s *State) {
		s.searchEnabled = enabled
	}
}

// New creates a State in navigate mode showing the whole catalog, with the
// first row selected when there is one.
func New(c *catalog.Catalog, opts ...Option) *State {
	s := &State{
		catalog:       c,
		cursor:        noCursor,
		searchEnabled: true,
		fs:            system.DefaultFS(),
		opener:        OpenerFunc(func(string) error { return nil }),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.status = statusHelp
	if !s.searchEnabled {
		s.status = statusHelpNoSearch
	}

	s.visible = c.Items()
	if len(s.visible) > 0 {
		s.cursor = 0
	}
	return s
}

// RecomputeVisible rebuilds the visible set from the filter text and
// repairs the cursor if it fell out of range.
func (s *State) RecomputeVisible() {
	query := strings.ToLower(s.filter)

	visible := make([]catalog.Item, 0, s.catalog.Len())
	for _, it := range s.catalog.Items() {
		if strings.Contains(strings.ToLower(it.Name), query) {
			visible = append(visible, it)
		}
	}
	s.visible = visible

	// Out of range resets to the top rather than clamping to the last row.
	if s.cursor != noCursor && s.cursor >= len(s.visible) {
		if len(s.visible) > 0 {
			s.cursor = 0
		} else {
			s.cursor = noCursor
		}
	}
}

// EnterSearch switches to search mode.
func (s *State) EnterSearch() {
	if !s.searchEnabled {
		return
	}
	s.searching = true
}

// ExitSearch leaves search mode and clears the filter, so the next search
// starts over from the full catalog.
func (s *State) ExitSearch() {
	s.searching = false
	s.filter = ""
	s.RecomputeVisible()
}

// AppendChar adds r to the filter text.
func (s *State) AppendChar(r rune) {
	s.filter += string(r)
	s.RecomputeVisible()
}

// RemoveLastChar drops the last character of the filter text, if any.
func (s *State) RemoveLastChar() {
	if s.filter != "" {
		_, size := utf8.DecodeLastRuneInString(s.filter)
		s.filter = s.filter[:len(s.filter)-size]
	}
	s.RecomputeVisible()
}

// MoveNext moves the cursor down one row, wrapping to the top.
func (s *State) MoveNext() {
	n := len(s.visible)
	if n == 0 {
		return
	}
	if s.cursor == noCursor || s.cursor >= n-1 {
		s.cursor = 0
		return
	}
	s.cursor++
}

// MovePrevious moves the cursor up one row, wrapping to the bottom.
func (s *State) MovePrevious() {
	n := len(s.visible)
	if n == 0 {
		return
	}
	switch {
	case s.cursor == noCursor:
		s.cursor = 0
	case s.cursor == 0:
		s.cursor = n - 1
	default:
		s.cursor--
	}
}

// OpenCurrent opens the folder of the selected item. Launch failures are
// logged and otherwise ignored; a missing folder is reported in the status.
func (s *State) OpenCurrent() {
	if s.cursor == noCursor {
		return
	}
	it := s.visible[s.cursor]

	if !s.fs.Exists(it.Path) {
		logging.Debug("folder missing", "app_id", it.AppID, "path", it.Path)
		s.status = statusMissing
		return
	}

	if err := s.opener.Open(it.Path); err != nil {
		logging.Debug("opener failed", "app_id", it.AppID, "path", it.Path, "error", err)
	}

	if it.Proxied {
		s.status = statusOpenedPrefix
	} else {
		s.status = statusOpenedGame
	}
}

// Filter returns the current filter text.
func (s *State) Filter() string { return s.filter }

// Searching reports whether keystrokes edit the filter.
func (s *State) Searching() bool { return s.searching }

// Visible returns a copy of the visible items.
func (s *State) Visible() []catalog.Item {
	out := make([]catalog.Item, len(s.visible))
	copy(out, s.visible)
	return out
}

// Cursor returns the selected row and whether one is selected.
func (s *State) Cursor() (int, bool) {
	return s.cursor, s.cursor != noCursor
}

// Status returns the status line.
func (s *State) Status() string { return s.status }

// Suggestion returns the catalog name that best fuzzy-matches the filter
// when the filter matches nothing, or "" otherwise.
func (s *State) Suggestion() string {
	if s.filter == "" || len(s.visible) > 0 {
		return ""
	}

	names := make([]string, s.catalog.Len())
	for i := range names {
		names[i] = s.catalog.At(i).Name
	}

	matches := fuzzy.Find(s.filter, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Frame returns a read-only snapshot for rendering.
func (s *State) Frame() Frame {
	return Frame{
		Filter:        s.filter,
		Searching:     s.searching,
		SearchEnabled: s.searchEnabled,
		Items:         s.Visible(),
		Cursor:        s.cursor,
		Total:         s.catalog.Len(),
		Status:        s.status,
		Suggestion:    s.Suggestion(),
	}
}
