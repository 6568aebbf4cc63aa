package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sfera/tui/common"
)

// View renders the auth gate.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("● Сфера"))
	b.WriteString(common.TaglineStyle.Render("общение без лишнего"))
	b.WriteString("\n\n")

	loginTab := "Войти"
	registerTab := "Регистрация"
	if m.mode == loginMode {
		b.WriteString("  " + common.NavActiveStyle.Render(loginTab) + common.NavInactiveStyle.Render(registerTab))
	} else {
		b.WriteString("  " + common.NavInactiveStyle.Render(loginTab) + common.NavActiveStyle.Render(registerTab))
	}
	b.WriteString("\n\n")

	if m.mode == registerMode {
		b.WriteString("  " + m.inputs[fieldName].View() + "\n")
	}
	b.WriteString("  " + m.inputs[fieldEmail].View() + "\n")
	b.WriteString("  " + m.inputs[fieldPassword].View() + "\n")

	if m.err != nil {
		b.WriteString("\n  " + common.ErrorStyle.Render(common.ErrorText(m.err)) + "\n")
	}

	action := "войти"
	if m.mode == registerMode {
		action = "создать аккаунт"
	}
	b.WriteString(common.StatusBarStyle.Render(
		"  enter: " + action + " • tab: поле • ctrl+r: " + tabHint(m.mode) + " • ctrl+c: выход"))
	b.WriteString("\n" + common.MutedStyle.Render("  Нажимая кнопку, вы принимаете условия использования"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Center, content)
	}
	return content
}

func tabHint(current mode) string {
	if current == loginMode {
		return "регистрация"
	}
	return "вход"
}
