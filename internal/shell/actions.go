package shell

import (
	"fmt"
	"strings"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// add reads the four fields verbatim and adds the book.
func (s *Shell) add() error {
	var fields [4]string
	for i, label := range []string{"Title: ", "Author: ", "ISBN: ", "Year: "} {
		value, err := s.prompt.ask(label)
		if err != nil {
			return err
		}
		fields[i] = value
	}

	added, err := s.catalog.Add(catalog.NewBook(fields[0], fields[1], fields[2], fields[3]))
	switch {
	case !added:
		return s.alert(alerts.NewWarning("Duplicate book. Not added."))
	case err != nil:
		return s.alert(alerts.NewError("Book added but the library could not be saved").WithError(err))
	default:
		return s.alert(alerts.NewSuccess("Book added successfully."))
	}
}

// view pages through the catalog.
func (s *Shell) view() error {
	p := s.catalog.Paginate()
	if p.Empty() {
		return s.alert(alerts.NewInfo("No books available."))
	}

	for {
		page := p.Current()
		s.println()
		s.println(s.styles.pager.Render(fmt.Sprintf("Showing books %d to %d of %d", page.First(), page.Last(), page.Total)))
		s.println()
		for i, book := range page.Books {
			s.println(fmt.Sprintf("%d. %s", page.Number(i), s.styles.book(book)))
		}

		if p.SinglePage() {
			return nil
		}

		choice, err := s.prompt.ask("\n" + s.styles.prompt.Render("[N]ext  [P]revious  [Q]uit : "))
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "n":
			p.Next()
		case "p":
			p.Prev()
		case "q":
			return nil
		}
	}
}

func (s *Shell) searchTitle() error {
	query, err := s.prompt.ask("Enter title keyword: ")
	if err != nil {
		return err
	}
	return s.printResults(s.catalog.SearchTitle(query))
}

func (s *Shell) searchISBN() error {
	isbn, err := s.prompt.ask("Enter ISBN: ")
	if err != nil {
		return err
	}
	return s.printResults(s.catalog.SearchISBN(isbn))
}

func (s *Shell) printResults(results []catalog.Book) error {
	if len(results) == 0 {
		return s.alert(alerts.NewInfo("No matching books found."))
	}

	s.println()
	s.println(s.styles.results.Render("Search Results:"))
	for _, book := range results {
		s.println(s.styles.book(book))
	}
	return nil
}

func (s *Shell) sort() error {
	s.println("Sort by: title / author / year")
	choice, err := s.prompt.ask("Choice: ")
	if err != nil {
		return err
	}

	key, err := catalog.ParseSortKey(choice)
	if err == nil {
		err = s.catalog.Sort(key)
	}

	switch {
	case errors.IsUnknownSortKey(err):
		return s.alert(alerts.NewError("Books not sorted").WithError(err))
	case err != nil:
		return s.alert(alerts.NewError("Books sorted but the library could not be saved").WithError(err))
	default:
		return s.alert(alerts.NewSuccess("Books sorted successfully."))
	}
}

// edit prompts for replacement values, showing the current ones.
func (s *Shell) edit() error {
	isbn, err := s.prompt.ask("Enter ISBN of book to edit: ")
	if err != nil {
		return err
	}

	book, found := s.catalog.Find(isbn)
	if !found {
		return s.alert(alerts.NewError("Book not found."))
	}

	if err := s.alert(alerts.NewInfo("Leave blank to keep existing value")); err != nil {
		return err
	}
	s.println()

	var changes catalog.Changes
	if changes.Title, err = s.prompt.ask(fmt.Sprintf("New title (%s): ", book.Title)); err != nil {
		return err
	}
	if changes.Author, err = s.prompt.ask(fmt.Sprintf("New author (%s): ", book.Author)); err != nil {
		return err
	}
	if changes.Year, err = s.prompt.ask(fmt.Sprintf("New year (%s): ", book.Year)); err != nil {
		return err
	}

	_, found, err = s.catalog.Edit(isbn, changes)
	switch {
	case !found:
		return s.alert(alerts.NewError("Book not found."))
	case err != nil:
		return s.alert(alerts.NewError("Book updated but the library could not be saved").WithError(err))
	default:
		return s.alert(alerts.NewSuccess("Book updated successfully."))
	}
}

func (s *Shell) export() error {
	if err := s.catalog.Export(s.exportFile, s.exportFormat); err != nil {
		return s.alert(alerts.NewError("Export failed").WithError(err))
	}
	return s.alert(alerts.NewSuccess("Exported to " + s.exportFile))
}
