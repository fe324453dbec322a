// Package list provides the list command.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// AppContext defines the interface that the list command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the list command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		page int
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "view"},
		GroupID: "catalog",
		Short:   "List books one page at a time",
		Long: `List shows the library in its current order, one page at a time.

Books are numbered continuously across pages, so book 6 is the first
book on page 2 with the default page size of 5.`,
		Example: `  bookshelf list                  # first page
  bookshelf list --page 3         # third page
  bookshelf list --page-size 20   # bigger pages
  bookshelf list --all -o json    # everything as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			if page < 1 {
				return errors.NewValidationError("page", page, "pages are numbered from 1")
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cat.Len() == 0 && format.IsTable() {
				return alerts.NewCommandWriter(out, string(format), app.UseColor()).
					WriteAlert(alerts.NewInfo("No books available."))
			}

			if all {
				return output.FormatBooks(out, cat.Books(), 1, format)
			}

			current := cat.Page(page - 1)
			if len(current.Books) == 0 && current.Total > 0 {
				return errors.NewValidationError("page", page,
					fmt.Sprintf("there are only %d pages", catalog.PageCount(current.Total, current.Size)))
			}

			if format.IsTable() {
				if _, err := fmt.Fprintf(out, "Showing books %d to %d of %d\n",
					current.First(), current.Last(), current.Total); err != nil {
					return err
				}
			}
			return output.FormatPage(out, current, format)
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number to show")
	cmd.Flags().BoolVar(&all, "all", false, "show every book on one page")
	cmd.Flags().Int("page-size", 0, "books per page (default from config, 5)")

	return cmd
}
