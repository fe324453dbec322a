package catalog_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

func Example() {
	dir, _ := os.MkdirTemp("", "bookshelf")
	defer os.RemoveAll(dir)

	cat, err := catalog.Open(filepath.Join(dir, "library.json"), quiet())
	if err != nil {
		fmt.Println(err)
		return
	}

	_, _ = cat.Add(catalog.NewBook("Emma", "Jane Austen", "9780141439587", "1815"))
	_, _ = cat.Add(catalog.NewBook("Dune", "Frank Herbert", "9780441013593", "1965"))

	added, _ := cat.Add(catalog.NewBook("DUNE", "frank herbert", "0000", "2000"))
	fmt.Println("duplicate added:", added)

	_ = cat.Sort(catalog.SortByTitle)
	for _, book := range cat.Books() {
		fmt.Println(book)
	}
	// Output:
	// duplicate added: false
	// "Dune" by Frank Herbert | ISBN: 9780441013593 | Year: 1965
	// "Emma" by Jane Austen | ISBN: 9780141439587 | Year: 1815
}

func ExamplePaginator() {
	books := make([]catalog.Book, 0, 7)
	for i := 1; i <= 7; i++ {
		books = append(books, catalog.NewBook(fmt.Sprintf("Book %d", i), "Anon", "", ""))
	}

	p := catalog.NewPaginator(books, 5)
	for {
		page := p.Current()
		fmt.Printf("showing %d-%d of %d\n", page.First(), page.Last(), page.Total)
		if !p.Next() {
			break
		}
	}
	// Output:
	// showing 1-5 of 7
	// showing 6-7 of 7
}
