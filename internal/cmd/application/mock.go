// Package application provides test doubles for the command application interface.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/constants"
)

// Mock provides a mock implementation of application.Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	cat, _ := catalog.New(catalog.NewMemoryStore())
//	mock := &application.Mock{
//	    CatalogFunc: func() (*catalog.Catalog, error) { return cat, nil },
//	}
//	cmd := list.NewCommand(mock)
type Mock struct {
	CatalogFunc      func() (*catalog.Catalog, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	ExportFileFunc   func() string
	UseColorFunc     func() bool
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Catalog returns a catalog using the mock function or an empty in-memory catalog.
func (m *Mock) Catalog() (*catalog.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return catalog.New(catalog.NewMemoryStore(), catalog.WithLogger(m.Logger()))
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// ExportFile returns the export path using the mock function or the default.
func (m *Mock) ExportFile() string {
	if m.ExportFileFunc != nil {
		return m.ExportFileFunc()
	}
	return constants.DefaultExportFile
}

// UseColor returns the color setting using the mock function or false.
func (m *Mock) UseColor() bool {
	if m.UseColorFunc != nil {
		return m.UseColorFunc()
	}
	return false
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ application.Application = (*Mock)(nil)
