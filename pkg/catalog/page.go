package catalog

import "github.com/agentstation/bookshelf/pkg/constants"

// Page is one window of the book sequence.
type Page struct {
	Index int    // zero-based page index
	Size  int    // window size
	Start int    // zero-based index of the first book in the window
	End   int    // exclusive end index, clamped to Total
	Total int    // number of books in the whole sequence
	Books []Book // books in the window
}

// First returns the 1-based number of the first book shown.
func (p Page) First() int {
	return p.Start + 1
}

// Last returns the 1-based number of the last book shown.
func (p Page) Last() int {
	return p.End
}

// Number returns the 1-based number of the i-th book on the page.
// Numbering continues across pages.
func (p Page) Number(i int) int {
	return p.Start + i + 1
}

// HasNext reports whether a later window exists.
func (p Page) HasNext() bool {
	return p.Start+p.Size < p.Total
}

// HasPrev reports whether an earlier window exists.
func (p Page) HasPrev() bool {
	return p.Index > 0
}

// PageOf cuts the window at index out of books. Windows past the end are empty.
func PageOf(books []Book, index, size int) Page {
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	if index < 0 {
		index = 0
	}

	total := len(books)
	start := total
	if index <= total/size {
		start = min(index*size, total)
	}
	end := min(start+size, total)

	return Page{
		Index: index,
		Size:  size,
		Start: start,
		End:   end,
		Total: total,
		Books: books[start:end:end],
	}
}

// PageCount returns how many windows of size cover total books.
func PageCount(total, size int) int {
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Page returns the window at index using the catalog page size.
func (c *Catalog) Page(index int) Page {
	return PageOf(c.Books(), index, c.pageSize)
}

// Paginator walks the windows of a snapshot of the catalog.
// Next and Prev are guarded: they do nothing at the last and first page.
type Paginator struct {
	books []Book
	size  int
	index int
}

// NewPaginator creates a paginator over books starting at the first page.
func NewPaginator(books []Book, size int) *Paginator {
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	return &Paginator{books: books, size: size}
}

// Paginate returns a paginator over the current sequence.
func (c *Catalog) Paginate() *Paginator {
	return NewPaginator(c.Books(), c.pageSize)
}

// Current returns the window at the current position.
func (p *Paginator) Current() Page {
	return PageOf(p.books, p.index, p.size)
}

// Index returns the current zero-based page index.
func (p *Paginator) Index() int {
	return p.index
}

// PageCount returns the number of windows.
func (p *Paginator) PageCount() int {
	return PageCount(len(p.books), p.size)
}

// Empty reports whether there is nothing to show.
func (p *Paginator) Empty() bool {
	return len(p.books) == 0
}

// SinglePage reports whether the first window already holds every book,
// in which case it is shown once with no navigation.
func (p *Paginator) SinglePage() bool {
	return len(p.books) <= p.size
}

// Next moves to the following window. It returns false on the last page.
func (p *Paginator) Next() bool {
	if !p.Current().HasNext() {
		return false
	}
	p.index++
	return true
}

// Prev moves to the preceding window. It returns false on the first page.
func (p *Paginator) Prev() bool {
	if p.index == 0 {
		return false
	}
	p.index--
	return true
}
