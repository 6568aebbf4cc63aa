package search

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"sfera/store"
)

func newTestModel() Model {
	return New(store.New(store.DemoSeed(), nil))
}

func focused(m Model) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	return m
}

func typeQuery(m Model, q string) Model {
	for _, r := range q {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestQuery_FiltersDirectoryLive(t *testing.T) {
	m := typeQuery(focused(newTestModel()), "maria")

	got := m.svc.SearchUsers(m.input.Value())
	if len(got) != 1 || got[0].Username != "mariasova" {
		t.Fatalf("expected only mariasova, got %+v", got)
	}

	view := m.View()
	if !strings.Contains(view, "Мария Сова") {
		t.Fatalf("view must show the matching user")
	}
	if strings.Contains(view, "Иван Петров") {
		t.Fatalf("view must not show filtered-out users")
	}
}

func TestEmptyQuery_ShowsFullDirectory(t *testing.T) {
	view := newTestModel().View()
	for _, name := range []string{"Алексей Громов", "Мария Сова", "Иван Петров"} {
		if !strings.Contains(view, name) {
			t.Fatalf("empty query must list %s", name)
		}
	}
}

func TestNoMatch_ShowsEmptyState(t *testing.T) {
	m := typeQuery(focused(newTestModel()), "zzz")
	if !strings.Contains(m.View(), "Пользователи не найдены") {
		t.Fatalf("expected empty-state message")
	}
}

func TestBrowseKeys_MoveResultCursorWithoutTyping(t *testing.T) {
	m := newTestModel()
	if m.Typing() {
		t.Fatalf("page must start in browse mode")
	}

	m = typeQuery(m, "jj")
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}
	if m.input.Value() != "" {
		t.Fatalf("browse-mode keys must not type into the query")
	}

	m = typeQuery(m, "j")
	if m.cursor != 2 {
		t.Fatalf("cursor must clamp at the last result, got %d", m.cursor)
	}
}

func TestArrows_MoveCursorWhileTyping(t *testing.T) {
	m := focused(newTestModel())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = typeQuery(m, "a") // a belongs to the query while focused
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	if m.input.Value() != "a" {
		t.Fatalf("a must type into the focused query, got %q", m.input.Value())
	}
}

func TestCursor_ResetsWhenResultSetShrinks(t *testing.T) {
	m := typeQuery(newTestModel(), "jj") // browse to the last result
	m = typeQuery(focused(m), "maria")
	if m.cursor != 0 {
		t.Fatalf("cursor must reset when it falls out of range, got %d", m.cursor)
	}
}

func TestEsc_BlursThenClearsQuery(t *testing.T) {
	m := typeQuery(focused(newTestModel()), "ivan")
	if !m.Typing() {
		t.Fatalf("query input must be focused while typing")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Typing() {
		t.Fatalf("first esc must blur the input")
	}
	if m.input.Value() != "ivan" {
		t.Fatalf("first esc must keep the query, got %q", m.input.Value())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.input.Value() != "" {
		t.Fatalf("second esc must clear the query, got %q", m.input.Value())
	}
}
