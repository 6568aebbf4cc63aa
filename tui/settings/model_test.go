package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, keys string) Model {
	for _, r := range keys {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestCursor_ClampsToEntryList(t *testing.T) {
	m := New()

	m = press(m, "kkk")
	if m.cursor != 0 {
		t.Fatalf("cursor must not go above the first entry, got %d", m.cursor)
	}

	m = press(m, "jjjjjjj")
	if m.cursor != len(entries)-1 {
		t.Fatalf("cursor must stop at the last entry, got %d", m.cursor)
	}
}

func TestEnterOnLogout_EmitsLogoutMsg(t *testing.T) {
	m := New()
	m = press(m, "jjjj")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("logout entry must return a command")
	}
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Fatalf("logout entry must emit LogoutMsg")
	}
	_ = m
}

func TestEnterOnDecorativeEntry_ShowsStatusOnly(t *testing.T) {
	m := New()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("decorative entries must not emit commands")
	}
	if m.status == "" {
		t.Fatalf("decorative entries must explain themselves in the status line")
	}
}
