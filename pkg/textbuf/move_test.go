package textbuf

import "testing"

func TestMoveLeftRightWithinLine(t *testing.T) {
	b := FromText("ab")
	b.Move(Right)
	if b.Cursor().Offset != 1 {
		t.Fatalf("offset = %d", b.Cursor().Offset)
	}
	b.Move(Left)
	if b.Cursor().Offset != 0 {
		t.Fatalf("offset = %d", b.Cursor().Offset)
	}
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	b := FromText("ab\ncd")
	b.Move(End)
	b.Move(Right)
	if c := b.Cursor(); c.Line != 1 || c.Offset != 0 {
		t.Fatalf("cursor = %+v, want start of line 1", c)
	}
}

func TestMoveLeftWrapsToPreviousLine(t *testing.T) {
	b := FromText("ab\ncd")
	b.Move(Down)
	b.Move(Home)
	b.Move(Left)
	if c := b.Cursor(); c.Line != 0 || c.Offset != 2 {
		t.Fatalf("cursor = %+v, want end of line 0", c)
	}
}

func TestMoveRightAtBufferEndIsNoop(t *testing.T) {
	b := FromText("ab")
	b.Move(End)
	before := b.Cursor()
	b.Move(Right)
	if b.Cursor() != before {
		t.Fatalf("cursor moved past end: %+v", b.Cursor())
	}
}

func TestMoveLeftAtOriginIsNoop(t *testing.T) {
	b := FromText("ab")
	b.Move(Left)
	if b.Cursor() != (Cursor{}) {
		t.Fatalf("cursor moved before origin: %+v", b.Cursor())
	}
}

func TestMoveStepsByRuneNotByte(t *testing.T) {
	b := FromText("日本語")
	b.Move(Right)
	if b.Cursor().Offset != 3 {
		t.Fatalf("offset = %d, want 3 (one rune)", b.Cursor().Offset)
	}
	b.Move(Right)
	b.Move(Left)
	if b.Cursor().Offset != 3 {
		t.Fatalf("offset = %d after right+left, want 3", b.Cursor().Offset)
	}
}

func TestMoveUpClampsColumn(t *testing.T) {
	b := FromText("# Title\nbody text")
	b.Move(Down)
	for i := 0; i < 4; i++ {
		b.Move(Right)
	}
	b.Move(Up)
	if c := b.Cursor(); c.Line != 0 || c.Offset != 4 {
		t.Fatalf("cursor = %+v, want (0,4)", c)
	}

	// Shorter target line clamps to its end.
	b = FromText("ab\nlonger line")
	b.Move(Down)
	b.Move(End)
	b.Move(Up)
	if c := b.Cursor(); c.Line != 0 || c.Offset != 2 {
		t.Fatalf("cursor = %+v, want clamped to (0,2)", c)
	}
}

func TestMoveDownPreservesRuneColumn(t *testing.T) {
	b := FromText("ééé\nabc")
	b.Move(End) // offset 6, rune column 3
	b.Move(Down)
	if c := b.Cursor(); c.Line != 1 || c.Offset != 3 {
		t.Fatalf("cursor = %+v, want rune column 3 of ASCII line", c)
	}
}

func TestMoveUpAtFirstLineIsNoop(t *testing.T) {
	b := FromText("one\ntwo")
	before := b.Cursor()
	b.Move(Up)
	if b.Cursor() != before {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
}

func TestMoveDownAtLastLineIsNoop(t *testing.T) {
	b := FromText("one\ntwo")
	b.Move(Down)
	before := b.Cursor()
	b.Move(Down)
	if b.Cursor() != before {
		t.Fatalf("cursor = %+v", b.Cursor())
	}
}

func TestHomeEnd(t *testing.T) {
	b := FromText("hello")
	b.Move(End)
	if b.Cursor().Offset != 5 {
		t.Fatalf("End: offset = %d", b.Cursor().Offset)
	}
	b.Move(Home)
	if b.Cursor().Offset != 0 {
		t.Fatalf("Home: offset = %d", b.Cursor().Offset)
	}
}
