// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across the menu and the subcommands.
package emoji

// Symbol constants used for status indicators and user feedback.
const (
	// Success represents successful completion of an operation.
	// Used for: book added, book updated, catalog sorted, export written.
	Success = "✓"

	// Error represents failures.
	// Used for: write failures, unknown sort keys, invalid input.
	Error = "✗"

	// Warning represents non-critical issues.
	// Used for: duplicates, malformed backing files.
	Warning = "!"

	// Info represents informational messages.
	// Used for: empty catalog, no matches, book not found.
	Info = "i"

	// Book marks a single catalog entry in the interactive listing.
	Book = "•"
)
