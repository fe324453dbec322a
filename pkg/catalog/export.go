package catalog

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// ExportFormat is the file format written by Export.
type ExportFormat string

// Export formats.
const (
	ExportCSV      ExportFormat = "csv"
	ExportMarkdown ExportFormat = "markdown"
)

// exportHeader is the fixed first row of every export.
var exportHeader = []string{"Title", "Author", "ISBN", "Year"}

// ParseExportFormat returns the format named by s. An empty string means CSV.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case ExportCSV, "":
		return ExportCSV, nil
	case ExportMarkdown, "md":
		return ExportMarkdown, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be one of: csv, markdown",
			Err:     errors.ErrUnsupportedFormat,
		}
	}
}

// Export writes the catalog to the file at path in the given format,
// replacing any existing file. It does not change the catalog or its store.
func (c *Catalog) Export(path string, format ExportFormat) error {
	format, err := ParseExportFormat(string(format))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.ExportTo(&buf, format); err != nil {
		return errors.WrapResource("export", "catalog", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	c.logger.Debug().
		Str("file", path).
		Str("format", string(format)).
		Msg("Catalog exported")
	return nil
}

// ExportTo writes the header row and one row per book, in the current
// order with values verbatim.
func (c *Catalog) ExportTo(w io.Writer, format ExportFormat) error {
	rows := exportRows(c.Books())

	switch format {
	case ExportCSV, "":
		return writeCSV(w, rows)
	case ExportMarkdown:
		return writeMarkdown(w, rows)
	default:
		_, err := ParseExportFormat(string(format))
		return err
	}
}

func exportRows(books []Book) [][]string {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{b.Title, b.Author, b.ISBN, b.Year})
	}
	return rows
}

// writeCSV uses CRLF line endings, the usual terminator for CSV consumers.
func writeCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func writeMarkdown(w io.Writer, rows [][]string) error {
	return md.NewMarkdown(w).
		Table(md.TableSet{
			Header: exportHeader,
			Rows:   rows,
		}).
		Build()
}
