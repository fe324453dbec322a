// Package application provides the application interface for bookshelf commands.
//
// The Application interface is the contract between the application layer
// and command implementations. Commands accept it rather than the concrete
// App type so they can be tested with a mock.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cat, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use cat
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (*catalog.Catalog, error) {
//	        return catalog.New(catalog.NewMemoryStore())
//	    },
//	}
//	cmd := add.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Application provides what commands need from the application.
type Application interface {
	// Catalog returns the catalog, opening its backing file on first use.
	// Every call returns the same instance.
	Catalog() (*catalog.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	// An empty string means auto-detect.
	OutputFormat() string

	// ExportFile returns the default export destination.
	ExportFile() string

	// UseColor reports whether styled terminal output is allowed.
	UseColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
