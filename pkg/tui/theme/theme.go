package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/scriv/pkg/markdown"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Status   StatusTheme
	Menu     MenuTheme
	Markdown MarkdownTheme
	Cursor   lipgloss.Style
}

// HeaderTheme styles the per-screen title row.
type HeaderTheme struct {
	Title lipgloss.Style
	Hint  lipgloss.Style
	Rule  lipgloss.Style
}

// StatusTheme styles the bottom status bar.
type StatusTheme struct {
	Bar      lipgloss.Style
	Mode     lipgloss.Style
	Modified lipgloss.Style
}

// MenuTheme styles selectable lists (mode select, document list, menus).
type MenuTheme struct {
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Empty      lipgloss.Style
}

// MarkdownTheme styles preview lines by their classification.
type MarkdownTheme struct {
	Heading1 lipgloss.Style
	Heading  lipgloss.Style
	Code     lipgloss.Style
	Quote    lipgloss.Style
	List     lipgloss.Style
	Plain    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Rule:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Status: StatusTheme{
			Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Modified: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Menu: MenuTheme{
			Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Unselected: lipgloss.NewStyle(),
			Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Cursor: lipgloss.NewStyle().Reverse(true),
		Markdown: MarkdownTheme{
			Heading1: lipgloss.NewStyle().Bold(true).Underline(true),
			Heading:  lipgloss.NewStyle().Bold(true),
			Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Quote:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			List:     lipgloss.NewStyle(),
			Plain:    lipgloss.NewStyle(),
		},
	}
}

// ForLine picks the preview style for a classified line.
func (t MarkdownTheme) ForLine(mark markdown.Line) lipgloss.Style {
	switch mark.Kind {
	case markdown.Heading:
		if mark.Level == 1 {
			return t.Heading1
		}
		return t.Heading
	case markdown.CodeBlock:
		return t.Code
	case markdown.Quote:
		return t.Quote
	case markdown.ListItem:
		return t.List
	default:
		return t.Plain
	}
}
