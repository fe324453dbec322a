package catalog

import (
	"slices"
	"strings"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// SortKey names the field the catalog can be sorted by.
type SortKey string

// Sort keys.
const (
	SortByTitle  SortKey = "title"
	SortByAuthor SortKey = "author"
	SortByYear   SortKey = "year"
)

// SortKeys lists the supported keys in menu order.
func SortKeys() []SortKey {
	return []SortKey{SortByTitle, SortByAuthor, SortByYear}
}

// ParseSortKey normalizes s and returns the matching key.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !key.Valid() {
		return "", errors.NewSortKeyError(s)
	}
	return key, nil
}

// Valid reports whether k is a supported key.
func (k SortKey) Valid() bool {
	return k.compare() != nil
}

// String returns the key name.
func (k SortKey) String() string {
	return string(k)
}

// compare returns the ordering function for k, or nil for an unknown key.
// Title and author compare case-insensitively; year compares as plain text,
// so "1999" sorts before "2" and "10" before "9".
func (k SortKey) compare() func(a, b Book) int {
	switch k {
	case SortByTitle:
		return func(a, b Book) int { return strings.Compare(fold(a.Title), fold(b.Title)) }
	case SortByAuthor:
		return func(a, b Book) int { return strings.Compare(fold(a.Author), fold(b.Author)) }
	case SortByYear:
		return func(a, b Book) int { return strings.Compare(a.Year, b.Year) }
	default:
		return nil
	}
}

// Sort reorders the catalog by key and persists it. Equal elements keep
// their relative order. An unknown key returns an error matching
// errors.ErrUnknownSortKey and leaves both memory and the store untouched.
func (c *Catalog) Sort(key SortKey) error {
	cmp := key.compare()
	if cmp == nil {
		return errors.NewSortKeyError(string(key))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	slices.SortStableFunc(c.books, cmp)
	c.logger.Debug().
		Str("key", key.String()).
		Int("books", len(c.books)).
		Msg("Catalog sorted")

	return c.save()
}
