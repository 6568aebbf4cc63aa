package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sfera/domain"
	"sfera/tui/common"
)

// View renders the profile card, the edit form or the avatar picker, and the
// user's own posts.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("Профиль"))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.editView())
	} else if m.pickingAvatar || m.loadingAvatar {
		b.WriteString(m.avatarView())
	} else {
		b.WriteString(m.cardView())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) cardView() string {
	u := m.account.CurrentUser()
	posts := m.feed.OwnPosts()

	avatar := common.AvatarStyle.Render(common.Initials(u.Name))
	if u.Avatar != "" {
		avatar = common.AvatarStyle.Render("◉ " + common.Initials(u.Name))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatar,
		" ",
		common.AuthorStyle.Render(u.Name),
		" ",
		common.UsernameStyle.Render("@"+u.Username),
	)

	counts := common.MetadataStyle.Render(fmt.Sprintf(
		"Посты: %d  Подписчики: %d  Подписки: %d",
		len(posts), u.Followers, u.Following,
	))

	bio := common.MutedStyle.Render("Расскажите о себе...")
	if u.Bio != "" {
		bio = common.ContentStyle.Render(u.Bio)
	}

	card := common.SelectedStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, bio, counts))

	var b strings.Builder
	b.WriteString(card)
	b.WriteString("\n\n")
	b.WriteString(common.AuthorStyle.Render("Мои посты"))
	b.WriteString("\n")

	if len(posts) == 0 {
		b.WriteString(common.MutedStyle.Render("У вас ещё нет постов"))
		b.WriteString("\n")
		return b.String()
	}
	for _, p := range posts {
		b.WriteString(m.renderOwnPost(p))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOwnPost(p domain.Post) string {
	width := max(m.width-6, 30)
	text := common.ContentStyle.Render(common.Truncate(p.Text, width))

	likeMark := "♡"
	likeStyle := common.MetadataStyle
	if p.Liked {
		likeMark = "♥"
		likeStyle = common.LikeActiveStyle
	}
	meta := lipgloss.JoinHorizontal(lipgloss.Left,
		common.TimestampStyle.Render(p.CreatedLabel),
		"  ",
		likeStyle.Render(fmt.Sprintf("%s %d", likeMark, p.Likes)),
		"  ",
		common.MetadataStyle.Render(fmt.Sprintf("✉ %d", len(p.Comments))),
	)
	return common.UnselectedStyle.Width(width).Render(text + "\n" + meta)
}

func (m Model) editView() string {
	labels := [fieldCount]string{"Имя", "Имя пользователя", "О себе"}

	var b strings.Builder
	b.WriteString(common.AuthorStyle.Render("Редактирование профиля"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		label := common.MetadataStyle.Render(labels[i])
		if i == m.focus {
			label = common.AuthorStyle.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) avatarView() string {
	var b strings.Builder
	b.WriteString(common.AuthorStyle.Render("Загрузка аватара"))
	b.WriteString("\n\n")
	if m.loadingAvatar {
		b.WriteString(m.spinner.View())
		b.WriteString(common.MutedStyle.Render(" Читаем файл..."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.avatarInput.View())
	b.WriteString("\n")
	return b.String()
}

func (m Model) helpView() string {
	var hints string
	switch {
	case m.editing:
		hints = "tab: поле • enter: сохранить • esc: отмена"
	case m.pickingAvatar:
		hints = "enter: загрузить • esc: отмена"
	case m.loadingAvatar:
		hints = ""
	default:
		hints = "e: редактировать • a: аватар • tab: страница • q: выход"
	}
	return common.StatusBarStyle.Render("  " + hints)
}
