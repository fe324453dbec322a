// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file names, permissions and paging defaults that should be
// consistent across the catalog and the CLI.
package constants

// File constants define the default on-disk artifacts
const (
	// DefaultLibraryFile is the backing JSON file used when none is configured
	DefaultLibraryFile = "library.json"

	// DefaultExportFile is the CSV file written by export when none is given
	DefaultExportFile = "library.csv"

	// ConfigFileName is the config file name searched for in $HOME and the working directory
	ConfigFileName = ".bookshelf"

	// EnvPrefix is the prefix for environment variables read by the CLI
	EnvPrefix = "BOOKSHELF"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Paging constants
const (
	// DefaultPageSize is the number of books shown per window when listing
	DefaultPageSize = 5

	// MaxPageSize caps the window size accepted from flags and config
	MaxPageSize = 1000
)

// Storage format constants
const (
	// StoreIndent is the indentation used when writing the backing JSON file
	StoreIndent = "    "
)
