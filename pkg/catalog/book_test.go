package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

func TestBook_ToStorage(t *testing.T) {
	book := catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965")

	assert.Equal(t, map[string]string{
		"title":  "Dune",
		"author": "Frank Herbert",
		"isbn":   "9780441013593",
		"year":   "1965",
	}, book.ToStorage())
}

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want catalog.Book
	}{
		{
			name: "all fields",
			data: map[string]any{"title": "Emma", "author": "Jane Austen", "isbn": "1", "year": "1815"},
			want: catalog.NewBook("Emma", "Jane Austen", "1", "1815"),
		},
		{
			name: "missing fields become empty",
			data: map[string]any{"title": "Emma"},
			want: catalog.Book{Title: "Emma"},
		},
		{
			name: "empty mapping",
			data: map[string]any{},
			want: catalog.Book{},
		},
		{
			name: "null and numeric values",
			data: map[string]any{"title": nil, "year": json.Number("1815"), "isbn": float64(42)},
			want: catalog.Book{ISBN: "42", Year: "1815"},
		},
		{
			name: "nested values are dropped",
			data: map[string]any{"author": []any{"a", "b"}, "title": map[string]any{"x": 1}},
			want: catalog.Book{},
		},
		{
			name: "unknown keys ignored",
			data: map[string]any{"title": "Emma", "shelf": "B2"},
			want: catalog.Book{Title: "Emma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.FromStorage(tt.data))
		})
	}
}

func TestBook_String(t *testing.T) {
	book := catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965")
	assert.Equal(t, `"Dune" by Frank Herbert | ISBN: 9780441013593 | Year: 1965`, book.String())
}
