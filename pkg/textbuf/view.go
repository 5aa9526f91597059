package textbuf

import "tableflip.dev/scriv/pkg/markdown"

// VisibleLine pairs one displayable line with its markdown classification.
type VisibleLine struct {
	// Index is the line's position in the buffer, for cursor math and
	// line numbering.
	Index int
	Text  string
	Mark  markdown.Line
}

// VisibleLines returns the viewport's slice of lines, classified for
// rendering. The result is recomputed on every call and never cached
// across mutations.
func (b *Buffer) VisibleLines() []VisibleLine {
	end := b.viewport.Top + b.viewport.Height
	if end > len(b.lines) {
		end = len(b.lines)
	}
	out := make([]VisibleLine, 0, end-b.viewport.Top)
	for i := b.viewport.Top; i < end; i++ {
		out = append(out, VisibleLine{
			Index: i,
			Text:  b.lines[i],
			Mark:  markdown.Classify(b.lines[i]),
		})
	}
	return out
}
