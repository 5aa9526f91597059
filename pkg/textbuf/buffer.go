// Package textbuf implements the mutable multi-line text buffer behind
// every editing surface: an ordered list of UTF-8 lines, a cursor, and a
// viewport window.
//
// The buffer is single-threaded and total: every operation completes
// immediately, boundary conditions are documented no-ops, and after every
// call the cursor sits on a valid UTF-8 boundary inside a valid line and
// the viewport contains the cursor.
package textbuf

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrOutOfRange reports an argument a caller should never pass, such as a
// viewport height below one. Edit-boundary conditions are no-ops, not
// errors.
var ErrOutOfRange = errors.New("textbuf: out of range")

// DefaultHeight is the viewport height buffers start with, matching the
// thirteen rows of the device panel the editor was written for.
const DefaultHeight = 13

// Cursor addresses a position in the buffer. Offset is a byte offset into
// the line and always falls on a UTF-8 boundary.
type Cursor struct {
	Line   int
	Offset int
}

// Viewport is the window of lines eligible for display.
type Viewport struct {
	Top    int
	Height int
}

// Buffer is a never-empty sequence of lines plus cursor and viewport
// state. The zero value is not usable; construct with New or FromText.
type Buffer struct {
	lines    []string
	cursor   Cursor
	viewport Viewport
	modified bool
}

// New returns an empty buffer: one empty line, cursor at the origin.
func New() *Buffer {
	return &Buffer{
		lines:    []string{""},
		viewport: Viewport{Height: DefaultHeight},
	}
}

// FromText splits text on newlines into a buffer. Empty text still yields
// a single empty line.
func FromText(text string) *Buffer {
	b := New()
	if text != "" {
		b.lines = strings.Split(text, "\n")
	}
	return b
}

// Resize sets the viewport height and rescrolls so the cursor stays
// visible. Heights below one are a programmer error.
func (b *Buffer) Resize(height int) error {
	if height < 1 {
		return ErrOutOfRange
	}
	b.viewport.Height = height
	b.adjustViewport()
	return nil
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// Viewport returns the current viewport window.
func (b *Buffer) Viewport() Viewport { return b.viewport }

// Line returns the text of line i, or the empty string when i is out of
// range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineCount returns the number of lines, always at least one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// String joins the lines with newlines, reproducing the buffer text.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Modified reports whether the buffer changed since the last ClearModified.
func (b *Buffer) Modified() bool { return b.modified }

// ClearModified marks the buffer clean, typically after a save or load.
func (b *Buffer) ClearModified() { b.modified = false }

// WordCount counts maximal runs of non-whitespace across the whole buffer.
func (b *Buffer) WordCount() int {
	n := 0
	for _, line := range b.lines {
		n += len(strings.Fields(line))
	}
	return n
}

// CharCount counts UTF-8 scalar values in the buffer, including the
// newlines separating lines.
func (b *Buffer) CharCount() int {
	n := 0
	for _, line := range b.lines {
		n += utf8.RuneCountInString(line)
	}
	return n + len(b.lines) - 1
}

// adjustViewport re-establishes the viewport invariant after any change:
// the top index stays inside the document and the cursor's line stays
// inside the window.
func (b *Buffer) adjustViewport() {
	maxTop := len(b.lines) - b.viewport.Height
	if maxTop < 0 {
		maxTop = 0
	}
	if b.viewport.Top > maxTop {
		b.viewport.Top = maxTop
	}
	if b.viewport.Top < 0 {
		b.viewport.Top = 0
	}
	if b.cursor.Line < b.viewport.Top {
		b.viewport.Top = b.cursor.Line
	} else if b.cursor.Line >= b.viewport.Top+b.viewport.Height {
		b.viewport.Top = b.cursor.Line - b.viewport.Height + 1
	}
}
