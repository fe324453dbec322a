// Package export provides the export command.
package export

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// AppContext defines what the export command needs from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	ExportFile() string
	OutputFormat() string
	UseColor() bool
}

// NewCommand creates the export command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "catalog",
		Short:   "Write the library to a CSV or markdown file",
		Long: `Export writes every book, in the current order, to a file.

CSV output starts with the header row Title,Author,ISBN,Year. The library
file itself is not changed. Use --file - to write to standard output.`,
		Example: `  bookshelf export                          # library.csv
  bookshelf export --file books.csv
  bookshelf export --format markdown --file BOOKS.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exportFormat, err := catalog.ParseExportFormat(format)
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			if file == constants.StdoutFile {
				return cat.ExportTo(cmd.OutOrStdout(), exportFormat)
			}

			path := file
			if path == "" {
				path = app.ExportFile()
			}
			if err := cat.Export(path, exportFormat); err != nil {
				return err
			}

			return alerts.NewCommandWriter(cmd.OutOrStdout(), app.OutputFormat(), app.UseColor()).
				WriteAlert(alerts.NewSuccess("Exported to " + path))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "destination file (default from config, library.csv)")
	cmd.Flags().StringVar(&format, "format", constants.FormatCSV,
		"export format: "+strings.Join(constants.ExportFormats(), ", "))

	return cmd
}
