package catalog

import (
	"slices"
	"strings"
)

// Changes holds replacement values for an edit. Empty (or blank) values
// keep the current field. The ISBN cannot be changed.
type Changes struct {
	Title  string
	Author string
	Year   string
}

// apply returns b with the non-blank changes applied, trimmed.
func (ch Changes) apply(b Book) Book {
	if v := strings.TrimSpace(ch.Title); v != "" {
		b.Title = v
	}
	if v := strings.TrimSpace(ch.Author); v != "" {
		b.Author = v
	}
	if v := strings.TrimSpace(ch.Year); v != "" {
		b.Year = v
	}
	return b
}

// IsEmpty reports whether the changes would keep every field.
func (ch Changes) IsEmpty() bool {
	return strings.TrimSpace(ch.Title) == "" &&
		strings.TrimSpace(ch.Author) == "" &&
		strings.TrimSpace(ch.Year) == ""
}

// Find returns the first book whose ISBN equals isbn exactly.
func (c *Catalog) Find(isbn string) (Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(isbn); i >= 0 {
		return c.books[i], true
	}
	return Book{}, false
}

// Edit applies changes to the first book with the given ISBN and persists
// the catalog. It returns the updated book, or false when no book matches.
// Later books sharing the ISBN are not touched.
func (c *Catalog) Edit(isbn string, changes Changes) (Book, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(isbn)
	if i < 0 {
		c.logger.Debug().Str("isbn", isbn).Msg("No book to edit")
		return Book{}, false, nil
	}

	c.books[i] = changes.apply(c.books[i])
	c.logger.Debug().
		Str("isbn", isbn).
		Int("position", i+1).
		Msg("Book updated")

	return c.books[i], true, c.save()
}

// indexOf returns the position of the first book with isbn, or -1.
// Callers must hold the lock.
func (c *Catalog) indexOf(isbn string) int {
	return slices.IndexFunc(c.books, func(b Book) bool { return b.ISBN == isbn })
}
