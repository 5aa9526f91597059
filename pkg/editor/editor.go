// Package editor manages the named-document writing surface: one open
// document at a time plus the stored document list.
package editor

import (
	"errors"

	"tableflip.dev/scriv/pkg/document"
	"tableflip.dev/scriv/pkg/store"
)

// DefaultPrefix seeds auto-generated document names.
const DefaultPrefix = "Untitled"

// Session is the editor state around one open document.
type Session struct {
	persistence store.Persistence
	doc         *document.Document
}

// New returns an editor session with no document open.
func New(p store.Persistence) *Session {
	return &Session{persistence: p}
}

// Document returns the open document, or nil when none is open.
func (s *Session) Document() *document.Document { return s.doc }

// List returns the stored document titles in creation order.
func (s *Session) List() ([]string, error) {
	return s.persistence.ListDocuments()
}

// Create opens a fresh document under the next free auto-generated name.
func (s *Session) Create() (*document.Document, error) {
	name, err := s.persistence.NextDocumentName(DefaultPrefix)
	if err != nil {
		return nil, err
	}
	s.doc = document.New(name)
	return s.doc, nil
}

// Open loads a stored document by title. An unknown title opens a new
// empty document under that title, matching the device's behavior when
// an index entry has lost its record.
func (s *Session) Open(title string) (*document.Document, error) {
	body, err := s.persistence.LoadDocument(title)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.doc = document.New(title)
	case err != nil:
		return nil, err
	default:
		s.doc = document.FromText(title, body)
	}
	s.doc.Body.ClearModified()
	return s.doc, nil
}

// Save writes the open document. A session without an open document
// saves nothing.
func (s *Session) Save() error {
	if s.doc == nil || s.doc.Title == "" {
		return nil
	}
	if err := s.persistence.SaveDocument(s.doc.Title, s.doc.Body.String()); err != nil {
		return err
	}
	s.doc.Body.ClearModified()
	return nil
}

// Delete removes the open document from the store and closes it.
func (s *Session) Delete() error {
	if s.doc == nil {
		return nil
	}
	if err := s.persistence.DeleteDocument(s.doc.Title); err != nil {
		return err
	}
	s.doc = nil
	return nil
}
