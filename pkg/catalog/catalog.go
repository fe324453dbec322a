// Package catalog provides the book catalog: an ordered sequence of books
// backed by a single JSON file. Every mutating operation (add, sort, edit)
// writes the whole sequence back to the store before returning.
//
// Example usage:
//
//	cat, err := catalog.Open("library.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	added, err := cat.Add(catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !added {
//	    fmt.Println("Duplicate book. Not added.")
//	}
//
//	for _, book := range cat.SearchTitle("dune") {
//	    fmt.Println(book)
//	}
package catalog

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Catalog owns the ordered book sequence and its store. The in-memory
// sequence is authoritative; the store is overwritten after each mutation.
type Catalog struct {
	mu       sync.RWMutex
	books    []Book
	store    Store
	logger   *zerolog.Logger
	pageSize int
}

// New creates a catalog and loads it from store.
// A missing backing file gives an empty catalog. A malformed one also gives
// an empty catalog and is left untouched until the next mutation. Any other
// read failure is returned.
func New(store Store, opts ...Option) (*Catalog, error) {
	if store == nil {
		return nil, &errors.ConfigError{
			Component: "catalog",
			Message:   "store is required",
		}
	}

	options := defaults().apply(opts...)
	c := &Catalog{
		store:    store,
		logger:   options.logger,
		pageSize: options.pageSize,
	}

	books, err := store.Load()
	switch {
	case err == nil:
		c.books = books
	case errors.IsParseError(err):
		c.logger.Warn().
			Err(err).
			Str("file", store.Path()).
			Msg("Backing file is malformed, starting with an empty catalog")
		c.books = nil
	default:
		return nil, errors.WrapResource("load", "catalog", store.Path(), err)
	}

	c.logger.Debug().
		Str("file", store.Path()).
		Int("books", len(c.books)).
		Msg("Catalog loaded")

	return c, nil
}

// Open creates a catalog backed by the JSON file at path.
func Open(path string, opts ...Option) (*Catalog, error) {
	return New(NewJSONStore(path), opts...)
}

// Path returns the path of the backing store.
func (c *Catalog) Path() string {
	return c.store.Path()
}

// PageSize returns the pagination window size.
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// Books returns a copy of the sequence in its current order.
func (c *Catalog) Books() []Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.books)
}

// Add appends book unless a book with the same title and author
// (case-insensitive) already exists, in which case it returns false and
// changes nothing. ISBN collisions are allowed.
//
// When the write fails the book stays in memory and the error is returned
// alongside true.
func (c *Catalog) Add(book Book) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := identityOf(book)
	for _, existing := range c.books {
		if identityOf(existing) == key {
			c.logger.Debug().
				Str("title", book.Title).
				Str("author", book.Author).
				Msg("Duplicate book rejected")
			return false, nil
		}
	}

	c.books = append(c.books, book)
	c.logger.Debug().
		Str("title", book.Title).
		Str("isbn", book.ISBN).
		Int("books", len(c.books)).
		Msg("Book added")

	return true, c.save()
}

// save writes the full sequence to the store. Callers must hold the write lock.
func (c *Catalog) save() error {
	if err := c.store.Save(c.books); err != nil {
		c.logger.Error().
			Err(err).
			Str("file", c.store.Path()).
			Msg("Failed to save catalog")
		return errors.WrapResource("save", "catalog", c.store.Path(), err)
	}

	c.logger.Debug().
		Str("file", c.store.Path()).
		Int("books", len(c.books)).
		Msg("Catalog saved")
	return nil
}
