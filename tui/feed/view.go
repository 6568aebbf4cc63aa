package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sfera/domain"
	"sfera/tui/common"
)

// View renders the feed page.
func (m Model) View() string {
	if m.showDetail {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString("  " + common.AppTitleStyle.Padding(0).Render("Лента") + "\n\n")

	if m.composing {
		b.WriteString(m.compose.View() + "\n")
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: опубликовать • esc: отмена • %d/%d", len([]rune(m.compose.Value())), composeLimit)) + "\n")
	} else {
		b.WriteString(common.MutedStyle.Render("  p: что у вас нового?") + "\n")
	}
	b.WriteString("\n")

	posts := m.feed.Posts()
	if len(posts) == 0 {
		b.WriteString(common.MutedStyle.Render("  Пока нет постов. Напишите первый!") + "\n")
	} else {
		end := m.startIndex + m.visibleCount()
		if end > len(posts) {
			end = len(posts)
		}
		for i := m.startIndex; i < end; i++ {
			b.WriteString(m.renderPostCard(posts[i], i == m.cursor && !m.composing) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n  " + m.status)
	}
	b.WriteString("\n" + m.helpView())
	return b.String()
}

func (m Model) renderPostCard(p domain.Post, selected bool) string {
	header := common.AvatarStyle.Render(common.Initials(p.AuthorName)) + " " +
		common.AuthorStyle.Render(p.AuthorName) + " " +
		common.UsernameStyle.Render("@"+p.AuthorUsername) + "  " +
		common.TimestampStyle.Render(p.CreatedLabel)
	if p.IsOwn() {
		header += common.SuccessStyle.Render(" (вы)")
	}

	body := common.ContentStyle.Render(truncateToTwoLines(p.Text, m.cardWidth()))

	likeIcon := "♡"
	likeStyle := common.MetadataStyle
	if p.Liked {
		likeIcon = "♥"
		likeStyle = common.LikeActiveStyle
	}
	meta := fmt.Sprintf("%s %d  ✉ %d", likeStyle.Render(likeIcon), p.Likes, len(p.Comments))

	card := header + "\n" + body + "\n" + common.MetadataStyle.Render(meta)
	if selected {
		return common.SelectedStyle.Render(card)
	}
	return common.UnselectedStyle.Render(card)
}

func (m Model) renderDetail() string {
	post, found := m.findPost(m.detailID)
	if !found {
		return common.MutedStyle.Render("  Пост не найден") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + common.AppTitleStyle.Padding(0).Render("Пост") + "\n\n")
	b.WriteString(m.renderPostCard(post, m.detailCursor == 0) + "\n")

	if len(post.Comments) == 0 {
		b.WriteString(common.MutedStyle.Render("  Комментариев пока нет") + "\n")
	}
	for i, c := range post.Comments {
		b.WriteString(m.renderComment(c, m.detailCursor == i+1) + "\n")
	}

	if m.commenting {
		b.WriteString("\n  " + m.commentInput.View() + "\n")
		b.WriteString(common.StatusBarStyle.Render("  enter: отправить • esc: отмена"))
	} else {
		b.WriteString(common.StatusBarStyle.Render("  j/k: фокус • l: лайк • c: комментарий • esc: назад"))
	}
	if m.status != "" {
		b.WriteString("\n  " + m.status)
	}
	return b.String()
}

func (m Model) renderComment(c domain.Comment, selected bool) string {
	marker := "  "
	if selected {
		marker = common.AuthorStyle.Render("❯ ")
	}
	likeIcon := "♡"
	likeStyle := common.MetadataStyle
	if c.Liked {
		likeIcon = "♥"
		likeStyle = common.LikeActiveStyle
	}
	likes := ""
	if c.Likes > 0 || c.Liked {
		likes = fmt.Sprintf(" %d", c.Likes)
	}
	return fmt.Sprintf("  %s%s %s %s %s",
		marker,
		common.AvatarStyle.Render(common.Initials(c.AuthorName)),
		common.AuthorStyle.Render(c.AuthorName),
		common.ContentStyle.Render(common.Truncate(common.FirstLine(c.Text), m.cardWidth()-20)),
		likeStyle.Render(likeIcon)+common.MetadataStyle.Render(likes))
}

func (m Model) helpView() string {
	var items []string
	if m.composing {
		items = []string{"ctrl+d: опубликовать", "esc: отмена"}
	} else {
		items = []string{"j/k: фокус", "enter: комментарии", "p: пост", "l: лайк", "tab: страница", "q: выход"}
	}
	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}

func (m Model) cardWidth() int {
	w := m.width - 6
	if w < 24 {
		w = 70
	}
	return w
}

func truncateToTwoLines(text string, width int) string {
	if width < 12 {
		width = 12
	}
	// Render with width to handle both explicit newlines and wrapping.
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}
