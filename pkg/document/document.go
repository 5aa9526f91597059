// Package document pairs a title with a text buffer. The editor keys
// documents by title; the journal reuses the same shape keyed by date.
package document

import (
	"tableflip.dev/scriv/pkg/textbuf"
)

// Document is one titled body of text. Identity is the title, unique
// within the store's document set.
type Document struct {
	Title string
	Body  *textbuf.Buffer
}

// New returns an empty document with the given title.
func New(title string) *Document {
	return &Document{Title: title, Body: textbuf.New()}
}

// FromText returns a document whose body is loaded from text.
func FromText(title, text string) *Document {
	return &Document{Title: title, Body: textbuf.FromText(text)}
}

// Export renders the full document, title and body, as a single string
// with no framing, for the export collaborator.
func (d *Document) Export() string {
	body := d.Body.String()
	if d.Title == "" {
		return body
	}
	return d.Title + "\n\n" + body
}
