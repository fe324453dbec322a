package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "book",
			ID:       "9780141439518",
		}
		assert.Equal(t, "book with ID 9780141439518 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("book", "123")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "title",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field title: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad input"}
		assert.Equal(t, "validation failed: bad input", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("sort key", func(t *testing.T) {
		err := pkgerrors.NewSortKeyError("isbn")
		assert.Contains(t, err.Error(), `"isbn"`)
		assert.True(t, pkgerrors.IsUnknownSortKey(err))
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.Equal(t, "isbn", err.Value)
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "library.json", base)

	assert.Equal(t, "IO error during write of library.json: permission denied", err.Error())
	assert.ErrorIs(t, err, base)

	noPath := &pkgerrors.IOError{Operation: "read", Message: "closed"}
	assert.Equal(t, "IO error during read: closed", noPath.Error())
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected end of JSON input")
	err := pkgerrors.NewParseError("json", "library.json", base.Error(), base)

	assert.Equal(t, "parse error in json file library.json: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, base)
	assert.True(t, pkgerrors.IsParseError(fmt.Errorf("load: %w", err)))
	assert.False(t, pkgerrors.IsParseError(base))
}

func TestResourceError(t *testing.T) {
	base := errors.New("disk full")
	err := pkgerrors.NewResourceError("save", "catalog", "", base)
	assert.Equal(t, "failed to save catalog: disk full", err.Error())

	withID := pkgerrors.NewResourceError("edit", "book", "123", base)
	assert.Equal(t, "failed to edit book 123: disk full", withID.Error())
	assert.ErrorIs(t, withID, base)
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("config", "page_size must be positive", nil)
	assert.Equal(t, "configuration error in config: page_size must be positive", err.Error())

	bare := &pkgerrors.ConfigError{Message: "missing file"}
	assert.Equal(t, "configuration error: missing file", bare.Error())
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapResource("load", "catalog", "", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	})

	t.Run("wraps", func(t *testing.T) {
		base := errors.New("boom")

		var ioErr *pkgerrors.IOError
		require.ErrorAs(t, pkgerrors.WrapIO("read", "x", base), &ioErr)
		assert.Equal(t, "read", ioErr.Operation)

		var resErr *pkgerrors.ResourceError
		require.ErrorAs(t, pkgerrors.WrapResource("load", "catalog", "", base), &resErr)
		assert.Equal(t, "catalog", resErr.Resource)

		var parseErr *pkgerrors.ParseError
		require.ErrorAs(t, pkgerrors.WrapParse("json", "x", base), &parseErr)
		assert.Equal(t, "boom", parseErr.Message)
	})
}

func TestErrorChaining(t *testing.T) {
	notFound := pkgerrors.NewNotFoundError("book", "123")
	resource := pkgerrors.WrapResource("edit", "book", "123", notFound)

	assert.True(t, pkgerrors.IsNotFound(resource))
	assert.False(t, pkgerrors.IsValidationError(resource))
}
