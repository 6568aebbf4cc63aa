package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sfera/app"
	"sfera/infra/config"
	"sfera/tui/common"
	"sfera/tui/feed"
	"sfera/tui/login"
	"sfera/tui/messages"
	"sfera/tui/profile"
	"sfera/tui/search"
	"sfera/tui/settings"
)

type page int

const (
	pageFeed page = iota
	pageSearch
	pageMessages
	pageProfile
	pageSettings
	pageCount
)

var pageNames = [pageCount]string{"feed", "search", "messages", "profile", "settings"}

var pageTitles = [pageCount]string{"Лента", "Поиск", "Сообщения", "Профиль", "Настройки"}

func pageByName(name string) (page, bool) {
	for p, n := range pageNames {
		if n == name {
			return page(p), true
		}
	}
	return pageFeed, false
}

// Deps carries everything the root model needs to run.
type Deps struct {
	Feed      app.FeedService
	Dialogs   app.DialogService
	Directory app.DirectoryService
	Account   app.AccountService
	Avatars   app.AvatarSource

	// StatePath is where UI preferences are persisted. Empty disables
	// persistence.
	StatePath string

	// StartPage restores the last open page by name. Unknown names fall
	// back to the feed.
	StartPage string
}

type stateSavedMsg struct{ err error }

// Model is the root: a login gate in front of five pages.
type Model struct {
	deps Deps
	keys common.KeyMap

	authed bool
	page   page

	login    login.Model
	feed     feed.Model
	search   search.Model
	messages messages.Model
	profile  profile.Model
	settings settings.Model

	status string
	width  int
	height int
}

// NewApp wires the pages to their services.
func NewApp(deps Deps) Model {
	start := pageFeed
	if p, ok := pageByName(deps.StartPage); ok {
		start = p
	}
	return Model{
		deps:     deps,
		keys:     common.DefaultKeyMap(),
		page:     start,
		login:    login.New(),
		feed:     feed.New(deps.Feed, deps.Account),
		search:   search.New(deps.Directory),
		messages: messages.New(deps.Dialogs),
		profile:  profile.New(deps.Account, deps.Feed, deps.Avatars),
		settings: settings.New(),
	}
}

// Init starts the login form's cursor blink.
func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

// Update routes messages: global keys first, then the active page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.fanOutSize(msg)

	case login.LoggedInMsg:
		m.authed = true
		m.status = ""
		return m, nil

	case settings.LogoutMsg:
		m.authed = false
		m.login = m.login.Reset()
		m.status = common.MutedStyle.Render("Вы вышли из аккаунта")
		return m, m.login.Init()

	case stateSavedMsg:
		// Persistence is best effort; a failed write never blocks the UI.
		return m, nil

	case tea.KeyMsg:
		if !m.authed {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.login, cmd = m.login.Update(msg)
			return m, cmd
		}
		if !m.activeTyping() {
			if handled, next, cmd := m.handleNavKey(msg); handled {
				return next, cmd
			}
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updatePage(msg)
	}

	if !m.authed {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}
	return m.updatePage(msg)
}

// handleNavKey handles quit, tab cycling and the 1-5 page shortcuts. Only
// consulted when no input on the active page is focused.
func (m Model) handleNavKey(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.NextPage):
		next, cmd := m.switchPage((m.page + 1) % pageCount)
		return true, next, cmd
	}

	switch msg.String() {
	case "1", "2", "3", "4", "5":
		target := page(msg.String()[0] - '1')
		next, cmd := m.switchPage(target)
		return true, next, cmd
	}
	return false, m, nil
}

func (m Model) switchPage(target page) (Model, tea.Cmd) {
	if target == m.page {
		return m, nil
	}
	m.page = target
	m.status = ""
	return m, m.saveState()
}

// saveState persists the open page off the update loop.
func (m Model) saveState() tea.Cmd {
	if m.deps.StatePath == "" {
		return nil
	}
	path := m.deps.StatePath
	st := config.UIState{Page: pageNames[m.page]}
	return func() tea.Msg {
		return stateSavedMsg{err: config.SaveUIState(path, st)}
	}
}

func (m Model) activeTyping() bool {
	switch m.page {
	case pageFeed:
		return m.feed.Typing()
	case pageSearch:
		return m.search.Typing()
	case pageMessages:
		return m.messages.Typing()
	case pageProfile:
		return m.profile.Typing()
	case pageSettings:
		return m.settings.Typing()
	}
	return false
}

func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageFeed:
		m.feed, cmd = m.feed.Update(msg)
	case pageSearch:
		m.search, cmd = m.search.Update(msg)
	case pageMessages:
		m.messages, cmd = m.messages.Update(msg)
	case pageProfile:
		m.profile, cmd = m.profile.Update(msg)
	case pageSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) fanOutSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	cmds = append(cmds, cmd)
	m.feed, cmd = m.feed.Update(msg)
	cmds = append(cmds, cmd)
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.messages, cmd = m.messages.Update(msg)
	cmds = append(cmds, cmd)
	m.profile, cmd = m.profile.Update(msg)
	cmds = append(cmds, cmd)
	m.settings, cmd = m.settings.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the login gate or the nav bar plus the active page.
func (m Model) View() string {
	if !m.authed {
		view := m.login.View()
		if m.status != "" {
			view += "\n" + m.status
		}
		return view
	}

	var b strings.Builder
	b.WriteString(m.navView())
	b.WriteString("\n")

	switch m.page {
	case pageFeed:
		b.WriteString(m.feed.View())
	case pageSearch:
		b.WriteString(m.search.View())
	case pageMessages:
		b.WriteString(m.messages.View())
	case pageProfile:
		b.WriteString(m.profile.View())
	case pageSettings:
		b.WriteString(m.settings.View())
	}
	return b.String()
}

func (m Model) navView() string {
	items := make([]string, 0, pageCount+1)
	items = append(items, common.AppTitleStyle.Render("Сфера"))

	unread := m.deps.Dialogs.UnreadTotal()
	for p := pageFeed; p < pageCount; p++ {
		label := fmt.Sprintf("%d %s", int(p)+1, pageTitles[p])
		if p == pageMessages && unread > 0 {
			label = fmt.Sprintf("%s (%d)", label, unread)
		}
		style := common.NavInactiveStyle
		if p == m.page {
			style = common.NavActiveStyle
		}
		items = append(items, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...)
}
