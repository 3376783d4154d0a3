package browser

import "github.com/firefly-engineering/steamdirs/internal/catalog"

// Frame is what the renderer draws for one iteration of the loop.
type Frame struct {
	Filter        string
	Searching     bool
	SearchEnabled bool

	// Items are the visible rows in display order.
	Items []catalog.Item

	// Cursor indexes Items, or is -1 when nothing is selected.
	Cursor int

	// Total is the size of the whole catalog.
	Total int

	Status string

	// Suggestion is a near match shown when the filter matches nothing.
	Suggestion string
}

// HasCursor reports whether a row is selected.
func (f Frame) HasCursor() bool {
	return f.Cursor >= 0 && f.Cursor < len(f.Items)
}
