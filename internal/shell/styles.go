package shell

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// ANSI 16-color palette indexes.
var (
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorYellow  = lipgloss.Color("3")
	colorGreen   = lipgloss.Color("2")
)

// styles holds the renderers for the menu. With color disabled every
// style renders its input unchanged.
type styles struct {
	heading lipgloss.Style
	title   lipgloss.Style
	pager   lipgloss.Style
	prompt  lipgloss.Style
	results lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{heading: plain, title: plain, pager: plain, prompt: plain, results: plain}
	}

	return styles{
		heading: lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		title:   lipgloss.NewStyle().Foreground(colorCyan),
		pager:   lipgloss.NewStyle().Foreground(colorMagenta),
		prompt:  lipgloss.NewStyle().Foreground(colorYellow),
		results: lipgloss.NewStyle().Foreground(colorGreen),
	}
}

// book renders one catalog line with the quoted title highlighted.
func (s styles) book(b catalog.Book) string {
	title := s.title.Render(`"` + b.Title + `"`)
	return fmt.Sprintf("%s by %s | ISBN: %s | Year: %s", title, b.Author, b.ISBN, b.Year)
}
