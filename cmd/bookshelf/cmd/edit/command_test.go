package edit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func execute(t *testing.T, args ...string) (*catalog.Catalog, string, error) {
	t.Helper()

	mock := &application.Mock{}
	cat, err := catalog.New(catalog.NewMemoryStore(
		catalog.NewBook("Emma", "Jane Austen", "123", "1815"),
	), catalog.WithLogger(mock.Logger()))
	require.NoError(t, err)
	mock.CatalogFunc = func() (*catalog.Catalog, error) { return cat, nil }

	cmd := NewCommand(mock)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err = cmd.Execute()
	return cat, out.String(), err
}

func TestEdit_YearOnly(t *testing.T) {
	cat, out, err := execute(t, "123", "--year", "1816")
	require.NoError(t, err)

	assert.Contains(t, out, "Book updated successfully.")
	assert.Equal(t, []catalog.Book{catalog.NewBook("Emma", "Jane Austen", "123", "1816")}, cat.Books())
}

func TestEdit_NotFound(t *testing.T) {
	cat, _, err := execute(t, "999", "--title", "x")
	require.Error(t, err)

	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "Emma", cat.Books()[0].Title)
}

func TestEdit_NothingToChange(t *testing.T) {
	_, _, err := execute(t, "123")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
