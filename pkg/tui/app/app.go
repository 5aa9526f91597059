// Package app composes the full-screen writing UI. A single root model
// owns the mode state machine and routes keys to whichever screen is
// active, with an Esc prefix introducing screen commands.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/scriv/pkg/codec"
	"tableflip.dev/scriv/pkg/editor"
	"tableflip.dev/scriv/pkg/export"
	"tableflip.dev/scriv/pkg/journal"
	"tableflip.dev/scriv/pkg/store"
	"tableflip.dev/scriv/pkg/textbuf"
	"tableflip.dev/scriv/pkg/tui/theme"
	"tableflip.dev/scriv/pkg/typewriter"
)

type mode int

const (
	modeSelect mode = iota
	modeDocList
	modeEditorEdit
	modeEditorPreview
	modeFileMenu
	modeExportMenu
	modeJournalDay
	modeJournalSearch
	modeTypewriterEdit
	modeTypewriterDone
)

type exportDoneMsg struct {
	err error
}

// Model is the root Bubble Tea model for the writing UI.
type Model struct {
	persistence store.Persistence
	settings    codec.Settings
	theme       theme.Theme

	width  int
	height int

	mode       mode
	escPending bool
	status     string

	modeCursor       int
	docList          []string
	docCursor        int
	fileMenuCursor   int
	exportMenuCursor int
	exporting        bool

	session *editor.Session
	journal *journal.Journal
	writer  *typewriter.Session

	search       textinput.Model
	results      []journal.Result
	resultCursor int
	searched     bool

	doneStats typewriter.Stats
}

// New constructs the root model over the given persistence layer.
func New(p store.Persistence, settings codec.Settings) *Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "Query: "

	m := &Model{
		persistence: p,
		settings:    settings,
		theme:       theme.Default(),
		session:     editor.New(p),
		journal:     journal.New(p),
		writer:      typewriter.New(p),
		search:      search,
	}

	switch settings.DefaultMode {
	case codec.ModeJournal:
		m.enterJournal()
	case codec.ModeTypewriter:
		m.mode = modeTypewriterEdit
	default:
		m.mode = modeSelect
	}
	return m
}

// Run launches the Bubble Tea program in the alternate screen.
func Run(p store.Persistence, settings codec.Settings) error {
	prog := tea.NewProgram(New(p, settings), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeBuffers()
		return m, nil
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "ctrl+c" {
		m.saveAll()
		return m, tea.Quit
	}

	if m.escPending {
		m.escPending = false
		return m.handleEscCommand(s)
	}
	if s == "esc" {
		m.escPending = true
		return m, nil
	}

	switch m.mode {
	case modeSelect:
		return m.keyModeSelect(s)
	case modeDocList:
		return m.keyDocList(s)
	case modeEditorEdit:
		if doc := m.session.Document(); doc != nil {
			m.keyBuffer(doc.Body, msg)
		}
		return m, nil
	case modeEditorPreview:
		return m, nil
	case modeFileMenu:
		return m.keyFileMenu(s)
	case modeExportMenu:
		return m.keyExportMenu(s)
	case modeJournalDay:
		m.keyBuffer(m.journal.Buffer(), msg)
		return m, nil
	case modeJournalSearch:
		return m.keyJournalSearch(msg)
	case modeTypewriterEdit:
		m.keyTypewriter(msg)
		return m, nil
	case modeTypewriterDone:
		return m.keyTypewriterDone(s)
	}
	return m, nil
}

// handleEscCommand dispatches the key following an Esc press.
func (m *Model) handleEscCommand(s string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEditorEdit:
		switch s {
		case "p":
			m.mode = modeEditorPreview
		case "s":
			m.saveDoc()
		case "e":
			m.exportMenuCursor = 0
			m.mode = modeExportMenu
		case "f":
			m.fileMenuCursor = 0
			m.mode = modeFileMenu
		case "q":
			m.saveDoc()
			m.refreshDocList()
			m.mode = modeDocList
		}
	case modeEditorPreview:
		switch s {
		case "p":
			m.mode = modeEditorEdit
		case "q":
			m.saveDoc()
			m.refreshDocList()
			m.mode = modeDocList
		}
	case modeJournalDay:
		switch s {
		case "[":
			m.journalStep(m.journal.PrevDay)
		case "]":
			m.journalStep(m.journal.NextDay)
		case "t":
			m.saveJournal()
			m.enterJournal()
		case "/":
			m.search.SetValue("")
			m.search.Focus()
			m.results = nil
			m.resultCursor = 0
			m.searched = false
			m.mode = modeJournalSearch
		case "s":
			m.saveJournal()
		case "q":
			m.saveJournal()
			m.mode = modeSelect
		}
	case modeJournalSearch:
		m.search.Blur()
		m.mode = modeJournalDay
	case modeTypewriterEdit:
		if s == "d" {
			m.doneStats = m.writer.Stats()
			m.mode = modeTypewriterDone
		}
	}
	return m, nil
}

func (m *Model) keyModeSelect(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "up", "k":
		if m.modeCursor > 0 {
			m.modeCursor--
		}
	case "down", "j":
		if m.modeCursor < 2 {
			m.modeCursor++
		}
	case "enter":
		switch m.modeCursor {
		case 0:
			m.refreshDocList()
			m.mode = modeDocList
		case 1:
			m.enterJournal()
		case 2:
			m.writer = typewriter.New(m.persistence)
			m.resizeBuffers()
			m.mode = modeTypewriterEdit
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) keyDocList(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "up", "k":
		if m.docCursor > 0 {
			m.docCursor--
		}
	case "down", "j":
		if m.docCursor+1 < len(m.docList) {
			m.docCursor++
		}
	case "enter":
		if len(m.docList) > 0 {
			m.openDoc(m.docList[m.docCursor])
		}
	case "n":
		m.newDoc()
	case "d":
		if len(m.docList) > 0 {
			if err := m.persistence.DeleteDocument(m.docList[m.docCursor]); err != nil {
				m.status = err.Error()
			}
			m.refreshDocList()
		}
	case "q":
		m.mode = modeSelect
	}
	return m, nil
}

func (m *Model) keyFileMenu(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "up", "k":
		if m.fileMenuCursor > 0 {
			m.fileMenuCursor--
		}
	case "down", "j":
		if m.fileMenuCursor < 2 {
			m.fileMenuCursor++
		}
	case "enter":
		switch m.fileMenuCursor {
		case 0:
			m.saveDoc()
			m.newDoc()
		case 1:
			if err := m.session.Delete(); err != nil {
				m.status = err.Error()
			}
			m.refreshDocList()
			m.mode = modeDocList
		case 2:
			m.mode = modeEditorEdit
		}
	case "q":
		m.mode = modeEditorEdit
	}
	return m, nil
}

func (m *Model) keyExportMenu(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "up", "k":
		if m.exportMenuCursor > 0 {
			m.exportMenuCursor--
		}
	case "down", "j":
		if m.exportMenuCursor < 1 {
			m.exportMenuCursor++
		}
	case "enter":
		cmd := tea.Cmd(nil)
		if m.exportMenuCursor == 0 {
			cmd = m.exportCmd()
		}
		m.mode = modeEditorEdit
		return m, cmd
	case "q":
		m.mode = modeEditorEdit
	}
	return m, nil
}

func (m *Model) keyJournalSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !m.searched {
			m.runSearch()
			return m, nil
		}
		if len(m.results) > 0 {
			if err := m.journal.OpenResult(m.results[m.resultCursor]); err != nil {
				m.status = err.Error()
			}
			m.search.Blur()
			m.resizeBuffers()
			m.mode = modeJournalDay
		}
		return m, nil
	case "up":
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil
	case "down":
		if m.resultCursor+1 < len(m.results) {
			m.resultCursor++
		}
		return m, nil
	case "q":
		if m.search.Value() == "" {
			m.search.Blur()
			m.mode = modeJournalDay
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.searched = false
	return m, cmd
}

func (m *Model) keyTypewriter(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		m.writer.Newline()
	default:
		// No deletion and no cursor movement in this mode.
		if text := msg.Key().Text; text != "" {
			for _, r := range text {
				if err := m.writer.Type(r); err != nil {
					m.status = err.Error()
				}
			}
		}
	}
}

func (m *Model) keyTypewriterDone(s string) (tea.Model, tea.Cmd) {
	switch s {
	case "s":
		if _, _, err := m.writer.Finish(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeSelect
	case "q":
		m.mode = modeSelect
	}
	return m, nil
}

// keyBuffer applies the editing keys shared by the editor and journal.
func (m *Model) keyBuffer(buf *textbuf.Buffer, msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		buf.Move(textbuf.Up)
	case "down":
		buf.Move(textbuf.Down)
	case "left":
		buf.Move(textbuf.Left)
	case "right":
		buf.Move(textbuf.Right)
	case "home", "ctrl+a":
		buf.Move(textbuf.Home)
	case "end", "ctrl+e":
		buf.Move(textbuf.End)
	case "enter":
		buf.InsertNewline()
	case "backspace":
		buf.Backspace()
	case "delete":
		buf.DeleteForward()
	default:
		if text := msg.Key().Text; text != "" {
			for _, r := range text {
				if err := buf.InsertRune(r); err != nil {
					m.status = err.Error()
				}
			}
		}
	}
}

func (m *Model) refreshDocList() {
	names, err := m.session.List()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.docList = names
	if m.docCursor >= len(m.docList) && m.docCursor > 0 {
		m.docCursor = len(m.docList) - 1
	}
}

func (m *Model) newDoc() {
	if _, err := m.session.Create(); err != nil {
		m.status = err.Error()
		return
	}
	m.resizeBuffers()
	m.mode = modeEditorEdit
}

func (m *Model) openDoc(name string) {
	if _, err := m.session.Open(name); err != nil {
		m.status = err.Error()
		return
	}
	m.resizeBuffers()
	m.mode = modeEditorEdit
}

func (m *Model) saveDoc() {
	if err := m.session.Save(); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) enterJournal() {
	if err := m.journal.Today(time.Now().UnixMilli()); err != nil {
		m.status = err.Error()
	}
	m.resizeBuffers()
	m.mode = modeJournalDay
}

func (m *Model) saveJournal() {
	if err := m.journal.Save(); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) journalStep(step func() error) {
	if err := step(); err != nil {
		m.status = err.Error()
	}
	m.resizeBuffers()
}

func (m *Model) runSearch() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	results, err := m.journal.Search(ctx, m.search.Value())
	if err != nil {
		m.status = err.Error()
		return
	}
	m.results = results
	m.resultCursor = 0
	m.searched = true
}

// saveAll flushes open buffers before the program exits.
func (m *Model) saveAll() {
	if !m.settings.Autosave {
		return
	}
	switch m.mode {
	case modeEditorEdit, modeEditorPreview, modeFileMenu, modeExportMenu:
		m.saveDoc()
	case modeJournalDay, modeJournalSearch:
		m.saveJournal()
	}
}

func (m *Model) exportCmd() tea.Cmd {
	doc := m.session.Document()
	if doc == nil {
		return nil
	}
	m.exporting = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		srv := &export.Server{}
		return exportDoneMsg{err: srv.Serve(ctx, doc)}
	}
}

// resizeBuffers keeps viewport heights in step with the window.
func (m *Model) resizeBuffers() {
	h := m.contentHeight()
	_ = m.journal.Buffer().Resize(h)
	_ = m.writer.Buffer().Resize(h)
	if doc := m.session.Document(); doc != nil {
		_ = doc.Body.Resize(h)
	}
}

func (m *Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = textbuf.DefaultHeight
	}
	return h
}
