package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalog"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
)

func TestJSONStore_MissingFile(t *testing.T) {
	store := catalog.NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	books, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestJSONStore_Malformed(t *testing.T) {
	for name, content := range map[string]string{
		"garbage":       "{not json",
		"empty file":    "",
		"object":        `{"title": "Dune"}`,
		"array of ints": "[1, 2]",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "library.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := catalog.NewJSONStore(path).Load()
			require.Error(t, err)
			assert.True(t, pkgerrors.IsParseError(err))
		})
	}
}

func TestJSONStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	store := catalog.NewJSONStore(path)

	require.NoError(t, store.Save([]catalog.Book{
		catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965"),
	}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
    {
        "title": "Dune",
        "author": "Frank Herbert",
        "isbn": "9780441013593",
        "year": "1965"
    }
]`
	assert.Equal(t, want, string(content))
}

func TestJSONStore_EmptySequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	store := catalog.NewJSONStore(path)

	require.NoError(t, store.Save(nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
}

func TestJSONStore_NumericYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title": "Emma", "year": 1815}]`), 0o644))

	books, err := catalog.NewJSONStore(path).Load()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, catalog.Book{Title: "Emma", Year: "1815"}, books[0])
}

func TestJSONStore_WriteFailure(t *testing.T) {
	// A directory cannot be overwritten as a file.
	dir := t.TempDir()
	store := catalog.NewJSONStore(dir)

	err := store.Save(nil)
	require.Error(t, err)

	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Operation)
}

func TestJSONStore_DefaultPath(t *testing.T) {
	assert.Equal(t, "library.json", catalog.NewJSONStore("").Path())
}

func TestMemoryStore(t *testing.T) {
	store := catalog.NewMemoryStore(catalog.NewBook("Emma", "Jane Austen", "1", "1815"))

	books, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma"}, titles(books))

	require.NoError(t, store.Save(nil))
	assert.Equal(t, 1, store.Saves())

	store.FailSaves(errors.New("disk full"))
	assert.Error(t, store.Save(nil))
	assert.Equal(t, 1, store.Saves())
}
