package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/scriv/pkg/codec"
	"tableflip.dev/scriv/pkg/dateutil"
	"tableflip.dev/scriv/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newModel(t *testing.T, settings codec.Settings) (*Model, store.Persistence) {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	m := New(p, settings)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, p
}

func press(m *Model, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func typeString(m *Model, text string) {
	for _, r := range text {
		if r == '\n' {
			m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			continue
		}
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func esc(m *Model, key rune) {
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m.Update(tea.KeyPressMsg{Text: string(key), Code: key})
}

func TestModeSelect(t *testing.T) {
	m, _ := newModel(t, codec.DefaultSettings())

	view := m.View()
	for _, want := range []string{"SCRIV", "Markdown Editor", "Journal", "Typewriter"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(m.View(), "DOCUMENTS") {
		t.Fatalf("enter on first option should open the document list:\n%s", m.View())
	}
}

func TestEditorTypingAndPreview(t *testing.T) {
	m, _ := newModel(t, codec.DefaultSettings())

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter}) // doc list
	typeString(m, "n")                            // new document
	typeString(m, "# Title\nbody")

	view := m.View()
	if !strings.Contains(view, "# Title") {
		t.Fatalf("edit view should show raw markdown:\n%s", view)
	}
	if !strings.Contains(view, "Untitled") {
		t.Errorf("status bar missing document name:\n%s", view)
	}
	if !strings.Contains(view, "EDIT") {
		t.Errorf("status bar missing mode:\n%s", view)
	}

	esc(m, 'p')
	view = m.View()
	if strings.Contains(view, "# Title") {
		t.Fatalf("preview should strip the heading marker:\n%s", view)
	}
	if !strings.Contains(view, "Title") || !strings.Contains(view, "PREVIEW") {
		t.Fatalf("preview view unexpected:\n%s", view)
	}
}

func TestEscSavePersists(t *testing.T) {
	m, p := newModel(t, codec.DefaultSettings())

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeString(m, "n")
	typeString(m, "keep this")
	esc(m, 's')

	body, err := p.LoadDocument("Untitled")
	if err != nil {
		t.Fatal(err)
	}
	if body != "keep this" {
		t.Fatalf("stored body = %q", body)
	}
}

func TestEscQuitReturnsToDocList(t *testing.T) {
	m, _ := newModel(t, codec.DefaultSettings())

	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeString(m, "n")
	typeString(m, "hello")
	esc(m, 'q')

	view := m.View()
	if !strings.Contains(view, "DOCUMENTS") || !strings.Contains(view, "Untitled") {
		t.Fatalf("doc list should show the saved document:\n%s", view)
	}
}

func TestJournalPaging(t *testing.T) {
	settings := codec.DefaultSettings()
	settings.DefaultMode = codec.ModeJournal
	m, _ := newModel(t, settings)

	today := dateutil.FromEpochMS(time.Now().UnixMilli())
	if m.journal.Date() != today {
		t.Fatalf("journal opened on %s, want %s", m.journal.Date(), today)
	}
	if !strings.Contains(m.View(), "JOURNAL") {
		t.Fatalf("view missing journal header:\n%s", m.View())
	}

	esc(m, '[')
	if m.journal.Date() != today.Prev() {
		t.Fatalf("date after prev = %s", m.journal.Date())
	}
	esc(m, ']')
	if m.journal.Date() != today {
		t.Fatalf("date after next = %s", m.journal.Date())
	}
}

func TestJournalSearchFlow(t *testing.T) {
	settings := codec.DefaultSettings()
	settings.DefaultMode = codec.ModeJournal
	m, p := newModel(t, settings)

	d := dateutil.Date{Year: 2026, Month: 1, Day: 10}
	if err := p.SaveEntry(d, "heavy rain all day"); err != nil {
		t.Fatal(err)
	}

	esc(m, '/')
	if !strings.Contains(m.View(), "SEARCH JOURNAL") {
		t.Fatalf("search view missing:\n%s", m.View())
	}
	typeString(m, "rain")
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	view := m.View()
	if !strings.Contains(view, "2026-01-10") {
		t.Fatalf("results missing date:\n%s", view)
	}

	// Second enter jumps to the selected day.
	press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.journal.Date() != d {
		t.Fatalf("date after opening result = %s", m.journal.Date())
	}
	if !strings.Contains(m.journal.Buffer().String(), "rain") {
		t.Fatal("result day not loaded")
	}
}

func TestTypewriterAppendOnly(t *testing.T) {
	settings := codec.DefaultSettings()
	settings.DefaultMode = codec.ModeTypewriter
	m, p := newModel(t, settings)

	typeString(m, "abc")
	press(m, tea.KeyPressMsg{Code: tea.KeyBackspace})
	if got := m.writer.Buffer().String(); got != "abc" {
		t.Fatalf("backspace should be ignored, buffer = %q", got)
	}

	esc(m, 'd')
	view := m.View()
	for _, want := range []string{"SESSION COMPLETE", "Words: 1", "Characters: 3", "Lines: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("done view missing %q:\n%s", want, view)
		}
	}

	typeString(m, "s")
	body, err := p.LoadDocument("Freewrite")
	if err != nil {
		t.Fatal(err)
	}
	if body != "abc" {
		t.Fatalf("saved body = %q", body)
	}
	if !strings.Contains(m.View(), "SCRIV") {
		t.Fatal("save should return to mode select")
	}
}
