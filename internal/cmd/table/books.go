// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// maxCellWidth is the width long titles and authors are cut to in narrow tables.
const maxCellWidth = 40

// BooksToTableData converts books to table format. Rows are numbered from
// first, so a page of a longer listing keeps its position in the sequence.
// Narrow tables truncate long titles and authors; wide tables show them whole.
func BooksToTableData(books []catalog.Book, first int, wide bool) Data {
	headers := []string{"#", "Title", "Author", "ISBN", "Year"}

	rows := make([][]string, 0, len(books))
	for i, book := range books {
		title, author := book.Title, book.Author
		if !wide {
			title = Truncate(title, maxCellWidth)
			author = Truncate(author, maxCellWidth)
		}

		rows = append(rows, []string{
			strconv.Itoa(first + i),
			orDash(title),
			orDash(author),
			orDash(book.ISBN),
			orDash(book.Year),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
}

// PageToTableData converts one page of a listing to table format.
func PageToTableData(page catalog.Page, wide bool) Data {
	return BooksToTableData(page.Books, page.First(), wide)
}

// Truncate shortens s to at most n runes, ending with "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n || n < 4 {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
