package settings

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sfera/tui/common"
)

// LogoutMsg tells the root model to drop the session and show the login page.
type LogoutMsg struct{}

// entry is a settings row. Only the logout entry does anything; the others
// are decorative, matching the demo's account page.
type entry struct {
	title  string
	detail string
	logout bool
}

var entries = []entry{
	{title: "Уведомления", detail: "Пуш-уведомления и почта"},
	{title: "Приватность", detail: "Кто видит ваши посты"},
	{title: "Безопасность", detail: "Пароль и сеансы"},
	{title: "Выйти из аккаунта", detail: "Завершить текущий сеанс", logout: true},
}

// Model is the settings page: a cursor over a fixed list of entries.
type Model struct {
	keys   common.KeyMap
	cursor int
	status string
	width  int
	height int
}

// New creates the settings model.
func New() Model {
	return Model{keys: common.DefaultKeyMap()}
}

// Init is a no-op.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether an input owns the keyboard. Settings has none.
func (m Model) Typing() bool {
	return false
}

// Update handles messages for the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.status = ""
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(entries)-1 {
				m.cursor++
			}
			m.status = ""
		case key.Matches(msg, m.keys.Enter):
			if entries[m.cursor].logout {
				return m, func() tea.Msg { return LogoutMsg{} }
			}
			m.status = common.MutedStyle.Render("Раздел недоступен в демо-версии")
		}
	}
	return m, nil
}
