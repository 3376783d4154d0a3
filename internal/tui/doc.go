// Package tui draws the browser on a real terminal.
//
// Terminal implements browser.Terminal with a Bubble Tea program running
// in the alternate screen. The program only draws and reads keys: frames
// arrive with Program.Send, key presses leave through a buffered channel
// that Poll reads with a timeout. The browser state never crosses into
// the program's goroutines.
//
//	err := browser.Run(st, tui.Opener(tui.DefaultStyles()), browser.DefaultPollTimeout)
//
// # Screen
//
//	╭──────────────────────────────────────────────╮
//	│Search (press '/' to enter search mode)       │
//	│No search query                               │
//	╰──────────────────────────────────────────────╯
//	╭──────────────────────────────────────────────╮
//	│Games (2/2, ↑/↓ to navigate, Enter to open, q…│
//	│>> Portal 2 (App ID: 620)                     │
//	│   Non-Steam: Battle.net (App ID: 3000000001) │
//	╰──────────────────────────────────────────────╯
//	╭──────────────────────────────────────────────╮
//	│Use '/' to search, 'q' to exit.               │
//	╰──────────────────────────────────────────────╯
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - terminal session and input
//   - github.com/charmbracelet/bubbles/key - key bindings and help text
//   - github.com/charmbracelet/lipgloss - Styling
package tui
