package messages

import (
	"fmt"
	"strings"

	"sfera/domain"
	"sfera/tui/common"
)

// View renders the dialog list or the open chat.
func (m Model) View() string {
	if m.openID != "" {
		return m.renderChat()
	}

	var b strings.Builder
	b.WriteString("  " + common.AppTitleStyle.Padding(0).Render("Сообщения") + "\n\n")

	dialogs := m.svc.Dialogs()
	if len(dialogs) == 0 {
		b.WriteString(common.MutedStyle.Render("  Диалогов пока нет") + "\n")
	}
	for i, d := range dialogs {
		b.WriteString(m.renderDialogRow(d, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + common.MutedStyle.Render("  Выберите диалог, чтобы написать сообщение"))
	b.WriteString("\n" + common.StatusBarStyle.Render("  j/k: фокус • enter: открыть • tab: страница"))
	return b.String()
}

func (m Model) renderDialogRow(d domain.Dialog, selected bool) string {
	header := common.AvatarStyle.Render(common.Initials(d.PeerName)) + " " +
		common.AuthorStyle.Render(d.PeerName) + "  " +
		common.TimestampStyle.Render(d.LastTime)
	if d.Unread > 0 {
		header += "  " + common.UnreadBadgeStyle.Render(fmt.Sprintf("%d", d.Unread))
	}
	preview := common.MetadataStyle.Render(common.Truncate(common.FirstLine(d.Preview), m.rowWidth()))

	row := header + "\n" + preview
	if selected {
		return common.SelectedStyle.Render(row)
	}
	return common.UnselectedStyle.Render(row)
}

func (m Model) renderChat() string {
	d, found := m.svc.Dialog(m.openID)
	if !found {
		return common.MutedStyle.Render("  Диалог не найден") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + common.AppTitleStyle.Padding(0).Render(d.PeerName) + "\n\n")

	for _, msg := range d.Messages {
		b.WriteString(m.renderMessage(msg) + "\n")
	}

	b.WriteString("\n  " + m.input.View() + "\n")
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	b.WriteString(common.StatusBarStyle.Render("  enter: отправить • esc: к диалогам"))
	return b.String()
}

func (m Model) renderMessage(msg domain.ChatMessage) string {
	text := common.Truncate(common.FirstLine(msg.Text), m.rowWidth())
	stamp := common.TimestampStyle.Render(msg.TimeLabel)
	if msg.FromMe {
		return "  " + common.OwnBubbleStyle.Render(text) + " " + stamp
	}
	return "  " + common.PeerBubbleStyle.Render(text) + " " + stamp
}

func (m Model) rowWidth() int {
	w := m.width - 10
	if w < 24 {
		w = 60
	}
	return w
}
