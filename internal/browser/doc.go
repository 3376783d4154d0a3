// Package browser implements the list/search state machine and the
// render-poll-dispatch loop of the interactive browser.
//
// # States
//
// The browser is either navigating or searching:
//
//	Navigate  q: quit   /: search   ↑/↓: move   Enter: open folder
//	Search    Enter: leave search (clears filter)   Backspace: delete   rune: type
//
// Filtering is a case-insensitive substring match on the display name that
// keeps catalog order. The cursor is repaired only by RecomputeVisible: an
// out-of-range cursor goes back to the first row, or to none when nothing is
// visible.
//
// # Loop
//
// Run acquires a Terminal, then Loop renders a Frame, polls for one key with
// a bounded timeout and dispatches it. The terminal is closed on every exit
// path:
//
//	st := browser.New(cat, browser.WithOpener(op))
//	err := browser.Run(st, tui.Opener(tui.DefaultStyles()), browser.DefaultPollTimeout)
package browser
