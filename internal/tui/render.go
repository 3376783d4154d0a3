package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/firefly-engineering/steamdirs/internal/browser"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// Rows taken by the header and footer boxes, borders included.
	headerHeight = 4
	footerHeight = 3

	// Border plus title line of the list box.
	listChrome = 3

	highlightSymbol = ">> "
)

// Render draws a frame as three stacked boxes: the search field, the list
// and the status line.
func Render(f browser.Frame, width, height int, st Styles) string {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	rows := height - headerHeight - footerHeight - listChrome
	if rows < 1 {
		rows = 1
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(f, inner, st),
		renderList(f, inner, rows, st),
		renderFooter(f, inner, st),
	)
}

func renderHeader(f browser.Frame, inner int, st Styles) string {
	title := "Search (press '" + keys.Search.Help().Key + "' to enter search mode)"
	switch {
	case f.Searching:
		title = "Search (type to search, " + keys.Enter.Help().Key + " to exit)"
	case !f.SearchEnabled:
		title = "Search (disabled)"
	}

	body := f.Filter
	if body == "" && !f.Searching {
		body = "No search query"
	}

	content := st.Title.Render(fit(title, inner)) + "\n" + st.Normal.Render(fit(body, inner))
	return st.Border.Width(inner).Render(content)
}

func renderList(f browser.Frame, inner, rows int, st Styles) string {
	title := fmt.Sprintf("Games (%d/%d, %s)", len(f.Items), f.Total, listHelp())

	lines := make([]string, 0, rows+1)
	lines = append(lines, st.Title.Render(fit(title, inner)))

	if len(f.Items) == 0 {
		hint := "No matches."
		if f.Suggestion != "" {
			hint = fmt.Sprintf("No matches. Did you mean %q?", f.Suggestion)
		}
		lines = append(lines, st.Hint.Render(fit(hint, inner)))
	}

	start, end := scrollWindow(len(f.Items), f.Cursor, rows)
	for i := start; i < end; i++ {
		label := f.Items[i].Label()
		if f.HasCursor() && i == f.Cursor {
			lines = append(lines, st.Highlight.Width(inner).Render(fit(highlightSymbol+label, inner)))
			continue
		}
		pad := strings.Repeat(" ", len(highlightSymbol))
		lines = append(lines, st.Normal.Render(fit(pad+label, inner)))
	}

	for len(lines) < rows+1 {
		lines = append(lines, "")
	}

	return st.Border.Width(inner).Render(strings.Join(lines, "\n"))
}

func renderFooter(f browser.Frame, inner int, st Styles) string {
	return st.Border.Width(inner).Render(st.Status.Render(fit(f.Status, inner)))
}

// scrollWindow returns the range of rows to draw so that the cursor stays
// visible, keeping the list pinned to the top while it can be.
func scrollWindow(n, cursor, rows int) (start, end int) {
	if n <= rows {
		return 0, n
	}
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, start + rows
}

// fit truncates s to w terminal cells.
func fit(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
