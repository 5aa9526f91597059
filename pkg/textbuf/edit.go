package textbuf

import "unicode/utf8"

// InsertRune inserts one rune at the cursor and advances the cursor by the
// rune's encoded length. Newlines are rejected; use InsertNewline.
func (b *Buffer) InsertRune(r rune) error {
	if r == '\n' {
		return ErrOutOfRange
	}
	line := b.lines[b.cursor.Line]
	at := b.cursor.Offset
	b.lines[b.cursor.Line] = line[:at] + string(r) + line[at:]
	b.cursor.Offset = at + utf8.RuneLen(r)
	b.modified = true
	b.adjustViewport()
	return nil
}

// InsertNewline splits the current line at the cursor. The cursor moves to
// the start of the newly created line.
func (b *Buffer) InsertNewline() {
	line := b.lines[b.cursor.Line]
	at := b.cursor.Offset
	rest := line[at:]
	b.lines[b.cursor.Line] = line[:at]

	b.cursor.Line++
	b.cursor.Offset = 0
	b.lines = append(b.lines, "")
	copy(b.lines[b.cursor.Line+1:], b.lines[b.cursor.Line:])
	b.lines[b.cursor.Line] = rest

	b.modified = true
	b.adjustViewport()
}

// Backspace removes the rune before the cursor, or merges the current line
// onto the previous one when the cursor is at column zero. A no-op at the
// very start of the buffer.
func (b *Buffer) Backspace() {
	switch {
	case b.cursor.Offset > 0:
		line := b.lines[b.cursor.Line]
		_, size := utf8.DecodeLastRuneInString(line[:b.cursor.Offset])
		at := b.cursor.Offset - size
		b.lines[b.cursor.Line] = line[:at] + line[b.cursor.Offset:]
		b.cursor.Offset = at
		b.modified = true
	case b.cursor.Line > 0:
		merged := b.lines[b.cursor.Line]
		b.lines = append(b.lines[:b.cursor.Line], b.lines[b.cursor.Line+1:]...)
		b.cursor.Line--
		b.cursor.Offset = len(b.lines[b.cursor.Line])
		b.lines[b.cursor.Line] += merged
		b.modified = true
	default:
		return
	}
	b.adjustViewport()
}

// DeleteForward removes the rune under the cursor, or merges the next line
// onto this one when the cursor is at the end of the line. A no-op at the
// very end of the buffer.
func (b *Buffer) DeleteForward() {
	line := b.lines[b.cursor.Line]
	switch {
	case b.cursor.Offset < len(line):
		_, size := utf8.DecodeRuneInString(line[b.cursor.Offset:])
		b.lines[b.cursor.Line] = line[:b.cursor.Offset] + line[b.cursor.Offset+size:]
		b.modified = true
	case b.cursor.Line+1 < len(b.lines):
		next := b.lines[b.cursor.Line+1]
		b.lines = append(b.lines[:b.cursor.Line+1], b.lines[b.cursor.Line+2:]...)
		b.lines[b.cursor.Line] += next
		b.modified = true
	default:
		return
	}
	b.adjustViewport()
}

// AppendRune adds a rune at the very end of the buffer and moves the
// cursor there. Typewriter mode edits exclusively through the append
// operations, so the cursor can never back up.
func (b *Buffer) AppendRune(r rune) error {
	if r == '\n' {
		return ErrOutOfRange
	}
	last := len(b.lines) - 1
	b.lines[last] += string(r)
	b.cursor = Cursor{Line: last, Offset: len(b.lines[last])}
	b.modified = true
	b.adjustViewport()
	return nil
}

// AppendNewline opens a new empty line at the end of the buffer and moves
// the cursor onto it.
func (b *Buffer) AppendNewline() {
	b.lines = append(b.lines, "")
	b.cursor = Cursor{Line: len(b.lines) - 1, Offset: 0}
	b.modified = true
	b.adjustViewport()
}
