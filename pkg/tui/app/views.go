package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/scriv/pkg/export"
	"tableflip.dev/scriv/pkg/markdown"
	"tableflip.dev/scriv/pkg/printers"
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeSelect:
		return m.viewModeSelect()
	case modeDocList:
		return m.viewDocList()
	case modeEditorEdit:
		return m.viewEditor(false)
	case modeEditorPreview:
		return m.viewEditor(true)
	case modeFileMenu:
		return m.viewMenu("FILE", []string{"New Document", "Delete Current", "Back to Editor"}, m.fileMenuCursor)
	case modeExportMenu:
		return m.viewMenu("EXPORT", []string{fmt.Sprintf("TCP (port %d)", export.DefaultPort), "Back"}, m.exportMenuCursor)
	case modeJournalDay:
		return m.viewJournal()
	case modeJournalSearch:
		return m.viewJournalSearch()
	case modeTypewriterEdit:
		return m.viewTypewriter()
	case modeTypewriterDone:
		return m.viewTypewriterDone()
	}
	return ""
}

func (m *Model) viewModeSelect() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("SCRIV"))
	b.WriteString("\n\n")
	options := []string{"Markdown Editor", "Journal", "Typewriter"}
	for i, opt := range options {
		b.WriteString(m.menuLine(opt, i == m.modeCursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("arrows=select  ENTER=open  q=quit"))
	return b.String()
}

func (m *Model) viewDocList() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("DOCUMENTS"))
	b.WriteString("\n\n")
	if len(m.docList) == 0 {
		b.WriteString(m.theme.Menu.Empty.Render("No documents yet"))
		b.WriteString("\n")
	} else {
		for i, name := range m.docList {
			b.WriteString(m.menuLine(name, i == m.docCursor))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("ENTER=open  n=new  d=delete  q=back"))
	return b.String()
}

func (m *Model) viewMenu(title string, options []string, cursor int) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render(title))
	b.WriteString("\n\n")
	for i, opt := range options {
		b.WriteString(m.menuLine(opt, i == cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("ENTER=select  q=cancel"))
	return b.String()
}

func (m *Model) viewEditor(preview bool) string {
	doc := m.session.Document()
	if doc == nil {
		return m.theme.Menu.Empty.Render("No document open")
	}
	buf := doc.Body
	cur := buf.Cursor()

	var b strings.Builder
	for _, vl := range buf.VisibleLines() {
		line := vl.Text
		switch {
		case preview && vl.Mark.Kind == markdown.Rule:
			line = m.theme.Header.Rule.Render(strings.Repeat("─", m.ruleWidth()))
		case preview:
			style := m.theme.Markdown.ForLine(vl.Mark)
			text := markdown.StripPrefix(vl.Text)
			if vl.Mark.Kind == markdown.Quote {
				text = "│ " + text
			}
			line = style.Render(text)
		default:
			if vl.Index == cur.Line {
				line = m.renderCursorLine(vl.Text, cur.Offset)
			}
			if m.settings.ShowLineNumbers {
				line = m.theme.Header.Hint.Render(fmt.Sprintf("%3d ", vl.Index+1)) + line
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	modeStr := "EDIT"
	if preview {
		modeStr = "PREVIEW"
	}
	if m.exporting {
		modeStr = "EXPORTING " + modeStr
	}
	modified := ""
	if buf.Modified() {
		modified = m.theme.Status.Modified.Render("*")
	}
	left := fmt.Sprintf("%s%s %d:%d W:%s",
		doc.Title, modified, cur.Line+1, cur.Offset+1,
		printers.FormatNumber(buf.WordCount()))
	b.WriteString(m.statusLine(left, m.theme.Status.Mode.Render(modeStr)))
	return b.String()
}

func (m *Model) viewJournal() string {
	date := m.journal.Date()
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render(fmt.Sprintf("JOURNAL  %s %s", date, date.Weekday())))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("Esc[=prev  Esc]=next  Esc/=search"))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Rule.Render(strings.Repeat("─", m.ruleWidth())))
	b.WriteString("\n")

	buf := m.journal.Buffer()
	cur := buf.Cursor()
	for _, vl := range buf.VisibleLines() {
		line := vl.Text
		if vl.Index == cur.Line {
			line = m.renderCursorLine(vl.Text, cur.Offset)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	left := fmt.Sprintf("Words: %s", printers.FormatNumber(buf.WordCount()))
	b.WriteString(m.statusLine(left, m.status))
	return b.String()
}

func (m *Model) viewJournalSearch() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("SEARCH JOURNAL"))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if m.searched && len(m.results) == 0 {
		b.WriteString(m.theme.Menu.Empty.Render("No matches found"))
		b.WriteString("\n")
	}
	for i, r := range m.results {
		line := fmt.Sprintf("%s: %s", r.Date, printers.Truncate(r.Line, 40))
		b.WriteString(m.menuLine(line, m.searched && i == m.resultCursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("ENTER=search  q(empty)=back"))
	return b.String()
}

func (m *Model) viewTypewriter() string {
	buf := m.writer.Buffer()
	var b strings.Builder
	header := fmt.Sprintf("TYPEWRITER  Words: %s  Esc+d=done", printers.FormatNumber(buf.WordCount()))
	b.WriteString(m.theme.Header.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Rule.Render(strings.Repeat("─", m.ruleWidth())))
	b.WriteString("\n")
	for _, vl := range buf.VisibleLines() {
		b.WriteString(vl.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewTypewriterDone() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("SESSION COMPLETE"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Words: %s\n", printers.FormatNumber(m.doneStats.Words)))
	b.WriteString(fmt.Sprintf("Characters: %s\n", printers.FormatNumber(m.doneStats.Chars)))
	b.WriteString(fmt.Sprintf("Lines: %s\n", printers.FormatNumber(m.doneStats.Lines)))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Hint.Render("s=save as doc  q=discard"))
	return b.String()
}

func (m *Model) menuLine(text string, selected bool) string {
	if selected {
		return m.theme.Menu.Selected.Render("> " + text)
	}
	return m.theme.Menu.Unselected.Render("  " + text)
}

// renderCursorLine draws the cursor as a reversed cell at the byte
// offset, or past the end of the line.
func (m *Model) renderCursorLine(line string, offset int) string {
	if offset >= len(line) {
		return line + m.theme.Cursor.Render(" ")
	}
	head := line[:offset]
	rest := line[offset:]
	_, size := utf8.DecodeRuneInString(rest)
	return head + m.theme.Cursor.Render(rest[:size]) + rest[size:]
}

// statusLine pads left and right content to the window width.
func (m *Model) statusLine(left, right string) string {
	gap := m.width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	return m.theme.Status.Bar.Render(left) + strings.Repeat(" ", gap) + right
}

func (m *Model) ruleWidth() int {
	if m.width > 2 {
		return m.width - 2
	}
	return 20
}
