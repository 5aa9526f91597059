package textbuf

import "unicode/utf8"

// Direction names a cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// Move steps the cursor. Left and Right move by one rune and wrap across
// line boundaries; Up and Down keep the rune column as closely as the
// target line allows; Home and End jump within the current line. Moves
// past the buffer edges are no-ops.
func (b *Buffer) Move(dir Direction) {
	switch dir {
	case Left:
		b.moveLeft()
	case Right:
		b.moveRight()
	case Up:
		b.moveVertical(-1)
	case Down:
		b.moveVertical(1)
	case Home:
		b.cursor.Offset = 0
	case End:
		b.cursor.Offset = len(b.lines[b.cursor.Line])
	}
	b.adjustViewport()
}

func (b *Buffer) moveLeft() {
	if b.cursor.Offset > 0 {
		_, size := utf8.DecodeLastRuneInString(b.lines[b.cursor.Line][:b.cursor.Offset])
		b.cursor.Offset -= size
		return
	}
	if b.cursor.Line > 0 {
		b.cursor.Line--
		b.cursor.Offset = len(b.lines[b.cursor.Line])
	}
}

func (b *Buffer) moveRight() {
	line := b.lines[b.cursor.Line]
	if b.cursor.Offset < len(line) {
		_, size := utf8.DecodeRuneInString(line[b.cursor.Offset:])
		b.cursor.Offset += size
		return
	}
	if b.cursor.Line+1 < len(b.lines) {
		b.cursor.Line++
		b.cursor.Offset = 0
	}
}

func (b *Buffer) moveVertical(delta int) {
	target := b.cursor.Line + delta
	if target < 0 || target >= len(b.lines) {
		return
	}
	col := utf8.RuneCountInString(b.lines[b.cursor.Line][:b.cursor.Offset])
	b.cursor.Line = target
	b.cursor.Offset = offsetForColumn(b.lines[target], col)
}

// offsetForColumn returns the byte offset of the given rune column,
// clamped to the end of the line.
func offsetForColumn(line string, col int) int {
	at := 0
	for i := 0; i < col; i++ {
		if at >= len(line) {
			break
		}
		_, size := utf8.DecodeRuneInString(line[at:])
		at += size
	}
	return at
}
