// Package typewriter provides an append-only drafting session. Input is
// only ever added at the end of the buffer, there is no cursor movement
// and no deletion, which keeps the writer moving forward.
package typewriter

import (
	"tableflip.dev/scriv/pkg/document"
	"tableflip.dev/scriv/pkg/store"
	"tableflip.dev/scriv/pkg/textbuf"
)

// DefaultPrefix names finished sessions on disk.
const DefaultPrefix = "Freewrite"

// Stats summarizes a finished session.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Session accumulates text and saves it as a new document when finished.
type Session struct {
	persistence store.Persistence
	buffer      *textbuf.Buffer
}

func New(p store.Persistence) *Session {
	return &Session{
		persistence: p,
		buffer:      textbuf.New(),
	}
}

// Buffer exposes the underlying buffer for rendering. Callers must not
// move the cursor or delete through it.
func (s *Session) Buffer() *textbuf.Buffer { return s.buffer }

// Type appends a single rune at the end of the buffer.
func (s *Session) Type(r rune) error {
	if r == '\n' {
		s.buffer.AppendNewline()
		return nil
	}
	return s.buffer.AppendRune(r)
}

// Newline appends a line break at the end of the buffer.
func (s *Session) Newline() {
	s.buffer.AppendNewline()
}

// Stats reports the session's word, character and line counts.
func (s *Session) Stats() Stats {
	return Stats{
		Words: s.buffer.WordCount(),
		Chars: s.buffer.CharCount(),
		Lines: s.buffer.LineCount(),
	}
}

// Finish saves the session as the next available Freewrite document and
// returns it along with the closing stats. An empty session saves
// nothing and returns a nil document.
func (s *Session) Finish() (*document.Document, Stats, error) {
	stats := s.Stats()
	if s.buffer.WordCount() == 0 && s.buffer.CharCount() == 0 {
		return nil, stats, nil
	}
	name, err := s.persistence.NextDocumentName(DefaultPrefix)
	if err != nil {
		return nil, stats, err
	}
	doc := document.FromText(name, s.buffer.String())
	if err := s.persistence.SaveDocument(doc.Title, doc.Body.String()); err != nil {
		return nil, stats, err
	}
	return doc, stats, nil
}
