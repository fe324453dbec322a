package catalog

import "strings"

// SearchTitle returns every book whose title contains query, ignoring case.
// An empty slice means nothing matched; use Len to tell an empty catalog apart.
func (c *Catalog) SearchTitle(query string) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := fold(query)
	results := []Book{}
	for _, book := range c.books {
		if strings.Contains(fold(book.Title), q) {
			results = append(results, book)
		}
	}
	return results
}

// SearchISBN returns every book whose ISBN equals isbn exactly.
// Several books may share an ISBN.
func (c *Catalog) SearchISBN(isbn string) []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := []Book{}
	for _, book := range c.books {
		if book.ISBN == isbn {
			results = append(results, book)
		}
	}
	return results
}
