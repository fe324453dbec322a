// Package sort provides the sort command.
package sort

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// AppContext defines what the sort command needs from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the sort command.
func NewCommand(app AppContext) *cobra.Command {
	validKeys := make([]string, 0, len(catalog.SortKeys()))
	for _, key := range catalog.SortKeys() {
		validKeys = append(validKeys, key.String())
	}

	return &cobra.Command{
		Use:     "sort <title|author|year>",
		GroupID: "catalog",
		Short:   "Reorder the library and save it",
		Long: `Sort reorders the whole library and saves the new order.

Title and author ignore case. Year is compared as text, so "1999" sorts
before "2" and "10" before "9". Books with equal keys keep their order.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: validKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalog.ParseSortKey(args[0])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			if err := cat.Sort(key); err != nil {
				return err
			}

			return alerts.NewCommandWriter(cmd.OutOrStdout(), app.OutputFormat(), app.UseColor()).
				WriteAlert(alerts.NewSuccess("Books sorted successfully."))
		},
	}
}
