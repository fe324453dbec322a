// Package search provides the search command and its title and isbn subcommands.
package search

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// AppContext defines what the search commands need from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the search command.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search",
		GroupID: "catalog",
		Short:   "Search books by title or ISBN",
		Example: `  bookshelf search title alice   # titles containing "alice", any case
  bookshelf search isbn 9780441013593`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newTitleCommand(app))
	cmd.AddCommand(newISBNCommand(app))

	return cmd
}

func newTitleCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "title <keyword>",
		Short: "Find books whose title contains keyword (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, func(cat *catalog.Catalog) []catalog.Book {
				return cat.SearchTitle(args[0])
			})
		},
	}
}

func newISBNCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "isbn <isbn>",
		Short: "Find books whose ISBN matches exactly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, func(cat *catalog.Catalog) []catalog.Book {
				return cat.SearchISBN(args[0])
			})
		},
	}
}

// run executes a search and prints the results, or a notice when nothing matched.
func run(cmd *cobra.Command, app AppContext, search func(*catalog.Catalog) []catalog.Book) error {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	results := search(cat)
	logging.FromContext(cmd.Context()).Debug().Int("results", len(results)).Msg("Search finished")

	out := cmd.OutOrStdout()
	if len(results) == 0 && format.IsTable() {
		return alerts.NewCommandWriter(out, string(format), app.UseColor()).
			WriteAlert(alerts.NewInfo("No matching books found."))
	}
	return output.FormatBooks(out, results, 1, format)
}
