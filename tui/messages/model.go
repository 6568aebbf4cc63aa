package messages

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sfera/app"
	"sfera/domain"
	"sfera/tui/common"
)

// Model holds the state for the messages page: the dialog list and, when a
// dialog is open, its chat view.
type Model struct {
	svc  app.DialogService
	keys common.KeyMap

	cursor int
	openID string // Empty while the list is shown

	input  textinput.Model
	status string

	width  int
	height int
}

// New creates a messages model with the injected dialog service.
func New(svc app.DialogService) Model {
	in := textinput.New()
	in.Placeholder = "Сообщение..."
	in.CharLimit = 500

	return Model{
		svc:   svc,
		keys:  common.DefaultKeyMap(),
		input: in,
	}
}

// Init is a no-op: dialogs live in local state.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether the chat input owns the keyboard.
func (m Model) Typing() bool {
	return m.openID != ""
}

// Update handles messages for the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.openID != "" {
			return m.updateChat(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	dialogs := m.svc.Dialogs()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(dialogs)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if len(dialogs) == 0 {
			break
		}
		d := dialogs[m.cursor]
		// Opening is what marks the dialog read.
		m.svc.OpenDialog(d.ID)
		m.openID = d.ID
		m.status = ""
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateChat(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.openID = ""
		m.status = ""
		m.input.Reset()
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			m.status = common.ErrorStyle.Render(common.ErrorText(domain.ErrEmptyMessage))
			return m, nil
		}
		m.svc.SendMessage(m.openID, text)
		m.input.Reset()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
