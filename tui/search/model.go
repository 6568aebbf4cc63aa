package search

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sfera/app"
	"sfera/tui/common"
)

// Model holds the state for the user-search page. The input stays focused
// while the page is active; results are a pure projection of the query.
type Model struct {
	svc  app.DirectoryService
	keys common.KeyMap

	input  textinput.Model
	cursor int

	width  int
	height int
}

// New creates a search model over the injected directory.
func New(svc app.DirectoryService) Model {
	in := textinput.New()
	in.Placeholder = "Найти пользователей..."
	in.CharLimit = 64

	return Model{
		svc:   svc,
		keys:  common.DefaultKeyMap(),
		input: in,
	}
}

// Init is a no-op; the query input is focused with /.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether the query input owns the keyboard. Esc blurs it so
// navigation keys work again; / refocuses.
func (m Model) Typing() bool {
	return m.input.Focused()
}

// Update handles messages for the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m.updateBrowse(msg)
		}
		return m.updateQuery(msg)
	}
	return m, nil
}

func (m Model) updateQuery(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		// First esc leaves the input, second clears the query.
		m.input.Blur()
		return m, nil

	// Literal arrows only: j and k belong to the query text here.
	case key.Matches(msg, m.keys.Up) && msg.String() == "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down) && msg.String() == "down":
		results := m.svc.SearchUsers(m.input.Value())
		if m.cursor < len(results)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// The result set changes with the query; keep the cursor in range.
	if n := len(m.svc.SearchUsers(m.input.Value())); m.cursor >= n {
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.String() == "/":
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Back):
		m.input.Reset()
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		results := m.svc.SearchUsers(m.input.Value())
		if m.cursor < len(results)-1 {
			m.cursor++
		}
	}
	return m, nil
}
