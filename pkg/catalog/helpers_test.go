package catalog_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// quiet keeps catalog logs out of test output.
func quiet() catalog.Option {
	logger := zerolog.Nop()
	return catalog.WithLogger(&logger)
}

// openTemp opens a catalog backed by a fresh file in a temp dir.
func openTemp(t *testing.T, opts ...catalog.Option) (*catalog.Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.json")
	cat, err := catalog.Open(path, append([]catalog.Option{quiet()}, opts...)...)
	require.NoError(t, err)
	return cat, path
}

// numbered returns n books titled "Book 01".."Book n".
func numbered(n int) []catalog.Book {
	books := make([]catalog.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, catalog.NewBook(
			fmt.Sprintf("Book %02d", i),
			fmt.Sprintf("Author %02d", i),
			fmt.Sprintf("isbn-%02d", i),
			fmt.Sprintf("%d", 1990+i),
		))
	}
	return books
}

func titles(books []catalog.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}
