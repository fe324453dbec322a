package output

import (
	"encoding/json"
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// BookList is a run of books numbered from First. JSON and YAML output
// carry the books only; tables carry the running number too.
type BookList struct {
	First int
	Books []catalog.Book
}

// TableData implements Tabular.
func (l BookList) TableData(wide bool) table.Data {
	return table.BooksToTableData(l.Books, l.First, wide)
}

// MarshalJSON emits the plain book array.
func (l BookList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.books())
}

// MarshalYAML emits the plain book array.
func (l BookList) MarshalYAML() (any, error) {
	return l.books(), nil
}

func (l BookList) books() []catalog.Book {
	if l.Books == nil {
		return []catalog.Book{}
	}
	return l.Books
}

// FormatBooks writes books in the given format, numbering table rows from first.
func FormatBooks(w io.Writer, books []catalog.Book, first int, format Format) error {
	return NewFormatter(format).Format(w, BookList{First: first, Books: books})
}

// FormatPage writes one page of a listing.
func FormatPage(w io.Writer, page catalog.Page, format Format) error {
	return FormatBooks(w, page.Books, page.First(), format)
}
