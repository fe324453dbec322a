// Package add provides the add command.
package add

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// AppContext defines what the add command needs from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the add command.
func NewCommand(app AppContext) *cobra.Command {
	var book catalog.Book

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "catalog",
		Short:   "Add a book to the library",
		Long: `Add appends a book to the library and saves it.

A book with the same title and author as an existing one (ignoring case)
is a duplicate and is not added. Books may share an ISBN.`,
		Example: `  bookshelf add --title "Dune" --author "Frank Herbert" --isbn 9780441013593 --year 1965
  bookshelf add --title "Notes" --author "Me"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			w := alerts.NewCommandWriter(cmd.OutOrStdout(), app.OutputFormat(), app.UseColor())

			added, err := cat.Add(book)
			if !added {
				return w.WriteAlert(alerts.NewWarning("Duplicate book. Not added.").
					WithDetails(book.String()))
			}
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Debug().Str("title", book.Title).Msg("Added from command line")
			return w.WriteAlert(alerts.NewSuccess("Book added successfully."))
		},
	}

	cmd.Flags().StringVarP(&book.Title, "title", "t", "", "book title")
	cmd.Flags().StringVarP(&book.Author, "author", "a", "", "book author")
	cmd.Flags().StringVar(&book.ISBN, "isbn", "", "ISBN")
	cmd.Flags().StringVar(&book.Year, "year", "", "publication year")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
