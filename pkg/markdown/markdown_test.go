package markdown

import "testing"

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		line  string
		kind  Kind
		level int
	}{
		{"hello world", Plain, 0},
		{"", Plain, 0},
		{"# Title", Heading, 1},
		{"## Subtitle", Heading, 2},
		{"### Section", Heading, 3},
		{"###### Deep", Heading, 6},
		{"####### Too deep", Plain, 0},
		{"#nospace", Plain, 0},
		{"##nospace", Plain, 0},
		{"```", CodeBlock, 0},
		{"```go", CodeBlock, 0},
		{"    indented", CodeBlock, 0},
		{"\tindented", CodeBlock, 0},
		{"> quote", Quote, 0},
		{">", Quote, 0},
		{">tight", Quote, 0},
		{"- item", ListItem, 0},
		{"* item", ListItem, 0},
		{"+ item", ListItem, 0},
		{"1. first", ListItem, 0},
		{"12. twelfth", ListItem, 0},
		{"1.nospace", Plain, 0},
		{"-tight", Plain, 0},
		{"---", Rule, 0},
		{"***", Rule, 0},
		{"___", Rule, 0},
		{"_ _ _", Rule, 0},
		{"--", Plain, 0},
		{"-*-", Plain, 0},
		{"just text", Plain, 0},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Classify(tt.line)
			if got.Kind != tt.kind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tt.line, got.Kind, tt.kind)
			}
			if got.Level != tt.level {
				t.Fatalf("Classify(%q).Level = %d, want %d", tt.line, got.Level, tt.level)
			}
		})
	}
}

func TestListMarker(t *testing.T) {
	tests := []struct {
		line   string
		marker string
	}{
		{"- item", "-"},
		{"* item", "*"},
		{"+ item", "+"},
		{"12. twelfth", "12."},
		{"# heading", ""},
		{"plain", ""},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got.Marker != tt.marker {
			t.Errorf("Classify(%q).Marker = %q, want %q", tt.line, got.Marker, tt.marker)
		}
	}
}

func TestClassifyListBeforeRule(t *testing.T) {
	// A bullet followed by a space matches the list rule first, even when
	// the remaining characters would also satisfy the rule pattern.
	if got := Classify("- - -"); got.Kind != ListItem {
		t.Fatalf("Classify(\"- - -\").Kind = %v, want %v", got.Kind, ListItem)
	}
}

func TestContentStart(t *testing.T) {
	tests := []struct {
		line  string
		start int
	}{
		{"# Title", 2},
		{"### Sec", 4},
		{"> quote", 2},
		{">", 1},
		{">tight", 1},
		{"- item", 2},
		{"10. tenth", 4},
		{"    code", 4},
		{"\tcode", 1},
		{"```go", 5},
		{"---", 3},
		{"plain", 0},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got.ContentStart != tt.start {
			t.Errorf("Classify(%q).ContentStart = %d, want %d", tt.line, got.ContentStart, tt.start)
		}
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"# Title", "Title"},
		{"## Sub", "Sub"},
		{"> text", "text"},
		{">", ""},
		{"- item", "item"},
		{"1. first", "first"},
		{"    code", "code"},
		{"\tcode", "code"},
		{"```go", ""},
		{"---", ""},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		if got := StripPrefix(tt.line); got != tt.want {
			t.Errorf("StripPrefix(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestClassifyIsStable(t *testing.T) {
	lines := []string{"# Title", "> quote", "- item", "---", "plain", "```"}
	for _, line := range lines {
		if a, b := Classify(line), Classify(line); a != b {
			t.Errorf("Classify(%q) not deterministic: %+v vs %+v", line, a, b)
		}
	}
}

func TestStripPrefixIdempotent(t *testing.T) {
	lines := []string{"# Title", "> text", "- item", "7. seventh", "plain", "---"}
	for _, line := range lines {
		once := StripPrefix(line)
		if twice := StripPrefix(once); twice != once {
			t.Errorf("StripPrefix(%q): second strip changed %q to %q", line, once, twice)
		}
	}
}

func TestNonASCIIContent(t *testing.T) {
	got := Classify("# über")
	if got.Kind != Heading || got.ContentStart != 2 {
		t.Fatalf("Classify(\"# über\") = %+v", got)
	}
	if s := StripPrefix("# über"); s != "über" {
		t.Fatalf("StripPrefix(\"# über\") = %q", s)
	}
}
