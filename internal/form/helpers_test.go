package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/book"
	"github.com/smileynet/contacts/internal/contact"
)

// memSaver records the last flushed list and optionally fails.
type memSaver struct {
	saved []contact.Contact
	err   error
}

func (s *memSaver) Save(contacts []contact.Contact) error {
	s.saved = contacts
	return s.err
}

var (
	alice = contact.Contact{Name: "Alice", Phone: "555-1000", Email: "a@x.com"}
	bob   = contact.Contact{Name: "Bob", Phone: "555-2000", Email: "b@x.com"}
)

// newTestBook returns a book seeded with initial and its saver.
func newTestBook(initial ...contact.Contact) (*book.Book, *memSaver) {
	s := &memSaver{}
	return book.New(s, initial), s
}

func newSizedModel(b ContactBook, w, h int) Model {
	m := NewModel(b)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// press sends a single key to the model.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(k)
	return updated.(Model)
}

// typeText sends s as individual rune key presses.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// fillFields tabs from the table through all three inputs, typing each value.
func fillFields(t *testing.T, m Model, name, phone, email string) Model {
	t.Helper()
	for _, v := range []string{name, phone, email} {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		m = typeText(t, m, v)
	}
	return m
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}
