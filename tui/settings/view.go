package settings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sfera/tui/common"
)

// View renders the settings list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("Настройки"))
	b.WriteString("\n\n")

	width := max(m.width-6, 30)
	for i, e := range entries {
		title := common.ContentStyle.Render(e.title)
		if e.logout {
			title = common.ErrorStyle.Render(e.title)
		}
		row := lipgloss.JoinVertical(lipgloss.Left,
			title,
			common.MutedStyle.Render(e.detail),
		)
		style := common.UnselectedStyle
		if i == m.cursor {
			style = common.SelectedStyle
		}
		b.WriteString(style.Width(width).Render(row))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render("  j/k: фокус • enter: выбрать • tab: страница • q: выход"))
	return b.String()
}
