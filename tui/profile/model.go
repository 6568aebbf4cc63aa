package profile

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sfera/app"
	"sfera/tui/common"
)

const (
	fieldName = iota
	fieldUsername
	fieldBio
	fieldCount
)

// AvatarLoadedMsg is sent when the avatar file read completes.
type AvatarLoadedMsg struct {
	Ref string
	Err error
}

// Model holds the state for the profile page: the card, the user's own
// posts, the inline edit form and the avatar picker.
type Model struct {
	account app.AccountService
	feed    app.FeedService
	avatars app.AvatarSource
	keys    common.KeyMap

	editing bool
	inputs  [fieldCount]textinput.Model
	focus   int

	pickingAvatar bool
	avatarInput   textinput.Model
	loadingAvatar bool
	spinner       spinner.Model

	status string
	width  int
	height int
}

// New creates a profile model with injected services.
func New(account app.AccountService, feed app.FeedService, avatars app.AvatarSource) Model {
	name := textinput.New()
	name.Placeholder = "Имя"
	name.CharLimit = 64
	name.Width = 32

	username := textinput.New()
	username.Placeholder = "Имя пользователя"
	username.CharLimit = 32
	username.Width = 32

	bio := textinput.New()
	bio.Placeholder = "Расскажите о себе..."
	bio.CharLimit = 160
	bio.Width = 48

	avatarPath := textinput.New()
	avatarPath.Placeholder = "Путь к изображению..."
	avatarPath.CharLimit = 256
	avatarPath.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#B7BDF8"))

	return Model{
		account:     account,
		feed:        feed,
		avatars:     avatars,
		keys:        common.DefaultKeyMap(),
		inputs:      [fieldCount]textinput.Model{name, username, bio},
		avatarInput: avatarPath,
		spinner:     sp,
	}
}

// Init is a no-op: the profile reads local state.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether an input owns the keyboard.
func (m Model) Typing() bool {
	return m.editing || m.pickingAvatar
}

// Update handles messages for the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loadingAvatar {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AvatarLoadedMsg:
		m.loadingAvatar = false
		if msg.Err != nil {
			m.status = common.ErrorStyle.Render("Не удалось загрузить аватар: " + msg.Err.Error())
			return m, nil
		}
		ref := msg.Ref
		m.account.UpdateProfile(app.ProfileUpdate{Avatar: &ref})
		m.status = common.SuccessStyle.Render("Аватар обновлён")
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEdit(msg)
		}
		if m.pickingAvatar {
			return m.updateAvatarPicker(msg)
		}
		return m.updateIdle(msg)
	}
	return m, nil
}

func (m Model) updateIdle(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		u := m.account.CurrentUser()
		m.inputs[fieldName].SetValue(u.Name)
		m.inputs[fieldUsername].SetValue(u.Username)
		m.inputs[fieldBio].SetValue(u.Bio)
		m.editing = true
		m.status = ""
		m.setFocus(fieldName)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Avatar):
		m.pickingAvatar = true
		m.status = ""
		m.avatarInput.Reset()
		m.avatarInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.blurAll()
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, textinput.Blink

	case "enter":
		update := app.ProfileUpdate{}
		// Name and username cannot be blanked; the bio can.
		if v := strings.TrimSpace(m.inputs[fieldName].Value()); v != "" {
			update.Name = &v
		}
		if v := strings.TrimSpace(m.inputs[fieldUsername].Value()); v != "" {
			update.Username = &v
		}
		bio := m.inputs[fieldBio].Value()
		update.Bio = &bio

		m.account.UpdateProfile(update)
		m.editing = false
		m.blurAll()
		m.status = common.SuccessStyle.Render("Профиль обновлён")
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateAvatarPicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pickingAvatar = false
		m.avatarInput.Blur()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.avatarInput.Value())
		if path == "" {
			m.pickingAvatar = false
			m.avatarInput.Blur()
			return m, nil
		}
		m.pickingAvatar = false
		m.avatarInput.Blur()
		m.loadingAvatar = true
		return m, tea.Batch(m.spinner.Tick, m.loadAvatar(path))
	}

	var cmd tea.Cmd
	m.avatarInput, cmd = m.avatarInput.Update(msg)
	return m, cmd
}

// loadAvatar reads the file off the update loop; the result comes back as a
// message and only then touches the store.
func (m Model) loadAvatar(path string) tea.Cmd {
	avatars := m.avatars
	return func() tea.Msg {
		ref, err := avatars.Load(context.Background(), path)
		return AvatarLoadedMsg{Ref: ref, Err: err}
	}
}

func (m *Model) setFocus(field int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = field
	m.inputs[m.focus].Focus()
}

func (m *Model) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
