package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/scriv/pkg/journal"
)

type PrettyPrint struct{}

// DocumentInfo carries the per-document columns for the listing table.
type DocumentInfo struct {
	Title string
	Words int
	Lines int
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) Documents(docs ...DocumentInfo) {
	if len(docs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("TITLE", "WORDS", "LINES")
	for _, d := range docs {
		table.AddRow(Truncate(d.Title, 50), FormatNumber(d.Words), FormatNumber(d.Lines))
	}
	fmt.Println(table)
	fmt.Println("")
}

func (pp *PrettyPrint) SearchResults(results ...journal.Result) {
	if len(results) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.FgHiYellow, color.Italic)
	for _, r := range results {
		_, _ = d.Printf("%s  ", r.Date)
		_, _ = t.Println(Truncate(r.Line, 60))
	}
	_, _ = t.Println("")
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max > 3 {
		return string(runes[:max-3]) + "..."
	}
	return string(runes[:max])
}

// FormatNumber renders n with comma separators, as in 1,847.
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
