package feed

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sfera/app"
	"sfera/domain"
	"sfera/tui/common"
)

const composeLimit = 500

// Model holds the state for the feed page: the post list, the compose box
// and the comment thread detail view.
type Model struct {
	feed    app.FeedService
	account app.AccountService
	keys    common.KeyMap

	compose   textarea.Model
	composing bool

	commentInput textinput.Model
	commenting   bool

	cursor     int
	startIndex int // First visible item in the list (for scrolling)

	showDetail   bool
	detailID     string
	detailCursor int // 0 for the post, 1...n for its comments

	width  int
	height int
	status string // Transient inline status
}

// New creates a feed model with injected services.
func New(feed app.FeedService, account app.AccountService) Model {
	ta := textarea.New()
	ta.Placeholder = "Что у вас нового?"
	ta.CharLimit = composeLimit
	ta.SetWidth(72)
	ta.SetHeight(4)

	ci := textinput.New()
	ci.Placeholder = "Комментарий..."
	ci.CharLimit = composeLimit

	return Model{
		feed:         feed,
		account:      account,
		keys:         common.DefaultKeyMap(),
		compose:      ta,
		commentInput: ci,
	}
}

// Init is a no-op: the feed reads local state, nothing to fetch.
func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether a text input currently owns the keyboard, so the
// root model leaves navigation keys alone.
func (m Model) Typing() bool {
	return m.composing || m.commenting
}

// Update handles messages for the feed page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compose.SetWidth(min(72, max(msg.Width-6, 20)))
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		if m.composing {
			return m.updateCompose(msg)
		}
		if m.commenting {
			return m.updateComment(msg)
		}
		if m.showDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.composing = false
		m.compose.Blur()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		text := m.compose.Value()
		if strings.TrimSpace(text) == "" {
			m.status = common.ErrorStyle.Render(common.ErrorText(domain.ErrEmptyPost))
			return m, nil
		}
		m.feed.AddPost(m.account.CurrentUser(), text)
		m.compose.Reset()
		m.compose.Blur()
		m.composing = false
		m.cursor = 0
		m.startIndex = 0
		m.status = common.SuccessStyle.Render("Пост опубликован")
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m Model) updateComment(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.commenting = false
		m.commentInput.Blur()
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		text := m.commentInput.Value()
		if strings.TrimSpace(text) == "" {
			m.status = common.ErrorStyle.Render(common.ErrorText(domain.ErrEmptyComment))
			return m, nil
		}
		if _, ok := m.feed.AddComment(m.detailID, m.account.CurrentUser(), text); ok {
			if post, found := m.findPost(m.detailID); found {
				m.detailCursor = len(post.Comments)
			}
		}
		m.commentInput.Reset()
		m.commentInput.Blur()
		m.commenting = false
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	post, found := m.findPost(m.detailID)
	if !found {
		m.closeDetail()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.detailCursor > 0 {
			m.detailCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.detailCursor < len(post.Comments) {
			m.detailCursor++
		}

	case key.Matches(msg, m.keys.Like):
		if m.detailCursor == 0 {
			m.feed.TogglePostLike(post.ID)
		} else {
			m.feed.ToggleCommentLike(post.ID, post.Comments[m.detailCursor-1].ID)
		}

	case key.Matches(msg, m.keys.Comment):
		m.commenting = true
		m.commentInput.Focus()
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	posts := m.feed.Posts()

	switch {
	case key.Matches(msg, m.keys.Compose):
		m.composing = true
		m.compose.Focus()
		m.status = ""
		return m, textarea.Blink

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.status = ""
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(posts)-1 {
			m.cursor++
		}
		m.status = ""
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Like):
		if len(posts) > 0 {
			m.feed.TogglePostLike(posts[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Comment):
		if len(posts) == 0 {
			break
		}
		p := posts[m.cursor]
		m.showDetail = true
		m.detailID = p.ID
		m.detailCursor = 0
		m.status = ""
		if !p.ShowComments {
			m.feed.ToggleComments(p.ID)
		}
		if key.Matches(msg, m.keys.Comment) {
			m.commenting = true
			m.commentInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m *Model) closeDetail() {
	if post, found := m.findPost(m.detailID); found && post.ShowComments {
		m.feed.ToggleComments(post.ID)
	}
	m.showDetail = false
	m.detailID = ""
	m.detailCursor = 0
	m.status = ""
}

func (m Model) findPost(id string) (domain.Post, bool) {
	for _, p := range m.feed.Posts() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// visibleCount estimates how many post cards fit in the viewport. Each card
// is about six lines tall (four content lines plus the border).
func (m Model) visibleCount() int {
	reserved := 10 // title, compose hint, status, help
	available := m.height - reserved
	count := available / 6
	if count < 1 {
		count = 1
	}
	return count
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.startIndex {
		m.startIndex = m.cursor
	}
	last := m.startIndex + m.visibleCount() - 1
	if m.cursor > last {
		m.startIndex = m.cursor - m.visibleCount() + 1
	}
	if m.startIndex < 0 {
		m.startIndex = 0
	}
}
