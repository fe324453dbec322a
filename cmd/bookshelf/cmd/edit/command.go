// Package edit provides the edit command.
package edit

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// AppContext defines what the edit command needs from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the edit command.
func NewCommand(app AppContext) *cobra.Command {
	var changes catalog.Changes

	cmd := &cobra.Command{
		Use:     "edit <isbn>",
		GroupID: "catalog",
		Short:   "Change the title, author or year of a book",
		Long: `Edit updates the first book whose ISBN matches exactly.

Only the fields given as flags change; the ISBN itself cannot be edited.`,
		Example: `  bookshelf edit 9780441013593 --year 1966
  bookshelf edit 9780441013593 --title "Dune (Deluxe Edition)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn := args[0]
			if changes.IsEmpty() {
				return errors.NewValidationError("changes", nil, "give at least one of --title, --author, --year")
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			book, found, err := cat.Edit(isbn, changes)
			if !found {
				return errors.NewNotFoundError("book", isbn)
			}
			if err != nil {
				return err
			}

			return alerts.NewCommandWriter(cmd.OutOrStdout(), app.OutputFormat(), app.UseColor()).
				WriteAlert(alerts.NewSuccess("Book updated successfully.").WithDetails(book.String()))
		},
	}

	cmd.Flags().StringVarP(&changes.Title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&changes.Author, "author", "a", "", "new author")
	cmd.Flags().StringVar(&changes.Year, "year", "", "new publication year")

	return cmd
}
