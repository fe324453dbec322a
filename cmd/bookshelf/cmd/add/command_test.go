package add

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

func setup(t *testing.T, books ...catalog.Book) (*application.Mock, *catalog.Catalog, *catalog.MemoryStore) {
	t.Helper()
	mock := &application.Mock{}
	store := catalog.NewMemoryStore(books...)
	cat, err := catalog.New(store, catalog.WithLogger(mock.Logger()))
	require.NoError(t, err)
	mock.CatalogFunc = func() (*catalog.Catalog, error) { return cat, nil }
	return mock, cat, store
}

func execute(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAdd(t *testing.T) {
	mock, cat, store := setup(t)

	out, err := execute(t, mock, "--title", "Dune", "--author", "Frank Herbert", "--isbn", "9780441013593", "--year", "1965")
	require.NoError(t, err)

	assert.Contains(t, out, "Book added successfully.")
	assert.Equal(t, []catalog.Book{catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965")}, cat.Books())
	assert.Equal(t, 1, store.Saves())
}

func TestAdd_Duplicate(t *testing.T) {
	mock, cat, store := setup(t, catalog.NewBook("Dune", "Frank Herbert", "1", "1965"))

	out, err := execute(t, mock, "-t", "DUNE", "-a", "frank herbert")
	require.NoError(t, err)

	assert.Contains(t, out, "Duplicate book. Not added.")
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, 0, store.Saves())
}

func TestAdd_TitleRequired(t *testing.T) {
	mock, _, _ := setup(t)
	_, err := execute(t, mock, "--author", "Nobody")
	assert.Error(t, err)
}

func TestAdd_SaveFailure(t *testing.T) {
	mock, cat, store := setup(t)
	store.FailSaves(errors.New("read-only file system"))

	_, err := execute(t, mock, "--title", "Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only file system")
	assert.Equal(t, 1, cat.Len())
}

func TestAdd_JSONAlert(t *testing.T) {
	mock, _, _ := setup(t)
	mock.OutputFormatFunc = func() string { return "json" }

	out, err := execute(t, mock, "--title", "Dune")
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"success","message":"Book added successfully."}`, out)
}
