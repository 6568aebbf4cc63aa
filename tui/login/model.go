package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sfera/domain"
)

type mode int

const (
	loginMode mode = iota
	registerMode
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// LoggedInMsg is sent when the form is submitted with non-empty credentials.
// There is no backend: any non-empty email and password succeed.
type LoggedInMsg struct{}

// Model holds the state for the login/register form.
type Model struct {
	mode   mode
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
	width  int
	height int
}

// New creates the form with the email field focused.
func New() Model {
	name := textinput.New()
	name.Placeholder = "Ваше имя"
	name.CharLimit = 64
	name.Width = 32

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "Пароль"
	password.CharLimit = 128
	password.Width = 32
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		inputs: [fieldCount]textinput.Model{name, email, password},
		focus:  fieldEmail,
	}
	m.inputs[fieldEmail].Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			// Switch between the login and register tabs.
			if m.mode == loginMode {
				m.mode = registerMode
				m.setFocus(fieldName)
			} else {
				m.mode = loginMode
				m.setFocus(fieldEmail)
			}
			m.err = nil
			return m, textinput.Blink

		case "tab", "down":
			m.setFocus(m.nextField(1))
			return m, textinput.Blink

		case "shift+tab", "up":
			m.setFocus(m.nextField(-1))
			return m, textinput.Blink

		case "enter":
			if m.focus != fieldPassword {
				m.setFocus(m.nextField(1))
				return m, textinput.Blink
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit applies the deliberately unguarded auth rule: any non-empty email
// and password log the session in.
func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()
	if email == "" || password == "" {
		m.err = domain.ErrEmptyCredentials
		return m, nil
	}
	m.err = nil
	return m, func() tea.Msg { return LoggedInMsg{} }
}

func (m *Model) firstField() int {
	if m.mode == registerMode {
		return fieldName
	}
	return fieldEmail
}

func (m *Model) nextField(dir int) int {
	first := m.firstField()
	span := fieldCount - first
	pos := m.focus - first
	pos = (pos + dir + span) % span
	return first + pos
}

func (m *Model) setFocus(field int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[m.focus].Focus()
}

// Reset returns a fresh form, used after logout.
func (m Model) Reset() Model {
	fresh := New()
	fresh.width = m.width
	fresh.height = m.height
	return fresh
}
