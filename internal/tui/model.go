package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/steamdirs/internal/browser"
	"github.com/firefly-engineering/steamdirs/internal/logging"
)

// frameMsg carries the next frame to draw.
type frameMsg browser.Frame

// model is the bubbletea side of a Terminal. It draws whatever frame it
// was sent last and forwards key presses; it never changes browser state.
type model struct {
	frame    browser.Frame
	hasFrame bool
	width    int
	height   int
	styles   Styles
	keys     chan<- browser.Key
}

func newModel(st Styles, keys chan<- browser.Key) model {
	return model{styles: st, keys: keys}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		m.frame = browser.Frame(msg)
		m.hasFrame = true

	case tea.KeyMsg:
		for _, k := range translate(msg) {
			select {
			case m.keys <- k:
			default:
				logging.Debug("key buffer full, dropping key", "key", msg.String())
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.hasFrame {
		return ""
	}
	return Render(m.frame, m.width, m.height, m.styles)
}
