package catalog

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Storage keys for the four book fields, in the order they are written.
const (
	KeyTitle  = "title"
	KeyAuthor = "author"
	KeyISBN   = "isbn"
	KeyYear   = "year"
)

// Book is one catalogued book. Year is kept as text and never parsed.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	ISBN   string `json:"isbn" yaml:"isbn"`
	Year   string `json:"year" yaml:"year"`
}

// NewBook creates a Book from its four fields.
func NewBook(title, author, isbn, year string) Book {
	return Book{Title: title, Author: author, ISBN: isbn, Year: year}
}

// ToStorage returns the four fields verbatim as a key/value mapping.
func (b Book) ToStorage() map[string]string {
	return map[string]string{
		KeyTitle:  b.Title,
		KeyAuthor: b.Author,
		KeyISBN:   b.ISBN,
		KeyYear:   b.Year,
	}
}

// FromStorage builds a Book from a decoded mapping. Missing keys and nulls
// become empty strings; it never fails.
func FromStorage(data map[string]any) Book {
	return Book{
		Title:  storageString(data, KeyTitle),
		Author: storageString(data, KeyAuthor),
		ISBN:   storageString(data, KeyISBN),
		Year:   storageString(data, KeyYear),
	}
}

// String renders the book the way the catalog prints it.
func (b Book) String() string {
	return fmt.Sprintf(`"%s" by %s | ISBN: %s | Year: %s`, b.Title, b.Author, b.ISBN, b.Year)
}

// storageString reads one field. Hand-edited files sometimes carry numbers
// (year: 1999), so scalars keep their textual form; objects and arrays are dropped.
func storageString(data map[string]any, key string) string {
	value, ok := data[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return fmt.Sprint(v)
	case bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// identity is the case-insensitive (title, author) pair used for duplicate detection.
type identity struct {
	title  string
	author string
}

func identityOf(b Book) identity {
	return identity{title: fold(b.Title), author: fold(b.Author)}
}

// fold lower-cases s for case-insensitive comparison.
// A new Caser is created per call because Casers carry state.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
