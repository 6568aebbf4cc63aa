package search

import (
	"fmt"
	"strings"

	"sfera/domain"
	"sfera/tui/common"
)

// View renders the search page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString("  " + common.AppTitleStyle.Padding(0).Render("Поиск") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n\n")

	results := m.svc.SearchUsers(m.input.Value())
	if len(results) == 0 {
		b.WriteString(common.MutedStyle.Render("  Пользователи не найдены") + "\n")
	}
	for i, u := range results {
		b.WriteString(m.renderUserRow(u, i == m.cursor) + "\n")
	}

	hints := "↑/↓: фокус • esc: закончить ввод"
	if !m.input.Focused() {
		hints = "/: поиск • j/k: фокус • esc: очистить • tab: страница • q: выход"
	}
	b.WriteString("\n" + common.StatusBarStyle.Render("  "+hints))
	return b.String()
}

func (m Model) renderUserRow(u domain.User, selected bool) string {
	row := common.AvatarStyle.Render(common.Initials(u.Name)) + " " +
		common.AuthorStyle.Render(u.Name) + "\n" +
		common.UsernameStyle.Render(fmt.Sprintf("@%s · %d подписчиков", u.Username, u.Followers)) + "  " +
		common.MutedStyle.Render("[подписаться]")

	if selected {
		return common.SelectedStyle.Render(row)
	}
	return common.UnselectedStyle.Render(row)
}
