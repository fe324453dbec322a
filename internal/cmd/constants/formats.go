// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used by list, search and alert output.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table that keeps long titles and authors untruncated.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// Export format constants accepted by the export command and the shell.
const (
	// FormatCSV writes comma-separated values with a Title,Author,ISBN,Year header.
	FormatCSV = "csv"

	// FormatMarkdown writes a markdown table with the same columns.
	FormatMarkdown = "markdown"
)

// StdoutFile is the export destination that means standard output.
const StdoutFile = "-"

// OutputFormats lists the values accepted by -o/--output.
func OutputFormats() []string {
	return []string{FormatTable, FormatWide, FormatJSON, FormatYAML}
}

// ExportFormats lists the values accepted by export --format.
func ExportFormats() []string {
	return []string{FormatCSV, FormatMarkdown}
}
