// Package markdown classifies single lines of text by their markdown role.
//
// Classification is strictly per line: a fence line does not put following
// lines into a code block. The editor re-classifies a line every time its
// text changes, so the rules here must stay cheap and stateless.
package markdown

import (
	"strings"
	"unicode"
)

// Kind is the markdown role of one line.
type Kind int

const (
	Plain Kind = iota
	Heading
	CodeBlock
	Quote
	ListItem
	Rule
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case ListItem:
		return "list"
	case Rule:
		return "rule"
	default:
		return "plain"
	}
}

// Line is the classification result for a single line.
type Line struct {
	Kind Kind
	// Level is the heading level, 1 through 6. Zero for every other kind.
	Level int
	// Marker is the literal list marker ("-", "*", "+", or the numeric
	// prefix such as "3."). Empty for every other kind.
	Marker string
	// ContentStart is the byte offset where the line's content begins,
	// after any prefix marker. It is always a valid offset into the line.
	ContentStart int
}

// Classify determines the markdown role of a single line.
//
// Rules are evaluated in order and the first match wins: heading, code,
// quote, list item, rule, plain.
func Classify(line string) Line {
	if level, start, ok := headingPrefix(line); ok {
		return Line{Kind: Heading, Level: level, ContentStart: start}
	}

	if strings.HasPrefix(line, "```") {
		// The whole fence line is marker; the preview drops it.
		return Line{Kind: CodeBlock, ContentStart: len(line)}
	}
	if strings.HasPrefix(line, "    ") {
		return Line{Kind: CodeBlock, ContentStart: 4}
	}
	if strings.HasPrefix(line, "\t") {
		return Line{Kind: CodeBlock, ContentStart: 1}
	}

	if strings.HasPrefix(line, ">") {
		start := 1
		if strings.HasPrefix(line[1:], " ") {
			start = 2
		}
		return Line{Kind: Quote, ContentStart: start}
	}

	if marker, start, ok := listPrefix(line); ok {
		return Line{Kind: ListItem, Marker: marker, ContentStart: start}
	}

	if isRule(line) {
		return Line{Kind: Rule, ContentStart: len(line)}
	}

	return Line{Kind: Plain}
}

// StripPrefix returns the content of a line with its markdown marker
// removed, as shown in preview mode. Rule and fence lines strip to the
// empty string; plain lines come back unchanged.
func StripPrefix(line string) string {
	return line[Classify(line).ContentStart:]
}

func headingPrefix(line string) (level, start int, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) || line[n] != ' ' {
		return 0, 0, false
	}
	return n, n + 1, true
}

func listPrefix(line string) (marker string, start int, ok bool) {
	if len(line) >= 2 && line[1] == ' ' {
		switch line[0] {
		case '-', '*', '+':
			return line[:1], 2, true
		}
	}

	// Ordered list: one or more digits, then ". ".
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n > 0 && strings.HasPrefix(line[n:], ". ") {
		return line[:n+1], n + 2, true
	}
	return "", 0, false
}

// isRule reports whether the line consists solely of three or more repeated
// '-', '*', or '_' characters, optionally separated by spaces.
func isRule(line string) bool {
	var marker rune
	count := 0
	for _, r := range line {
		if r == ' ' {
			continue
		}
		if unicode.IsSpace(r) {
			return false
		}
		if marker == 0 {
			if r != '-' && r != '*' && r != '_' {
				return false
			}
			marker = r
		} else if r != marker {
			return false
		}
		count++
	}
	return count >= 3
}
