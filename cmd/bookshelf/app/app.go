// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging and the
// catalog so commands receive them through the application interface.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Command I/O; nil means the process streams
	in  io.Reader
	out io.Writer

	// Catalog instance (lazy-initialized, singleton)
	mu      sync.Mutex
	catalog *catalog.Catalog
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with configuration from files and the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ExportFile returns the default export destination.
func (a *App) ExportFile() string {
	return a.config.ExportFile
}

// UseColor reports whether stdout is a terminal and color is not disabled.
func (a *App) UseColor() bool {
	if a.config.NoColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Catalog returns the catalog, opening the library file on first use.
// With dry-run enabled the file is read once and changes stay in memory.
func (a *App) Catalog() (*catalog.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	store, err := a.store()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(store,
		catalog.WithLogger(a.logger),
		catalog.WithPageSize(a.config.PageSize),
	)
	if err != nil {
		return nil, errors.WrapResource("open", "catalog", a.config.File, err)
	}

	a.catalog = cat
	return cat, nil
}

// store builds the backing store from the configuration.
func (a *App) store() (catalog.Store, error) {
	file := catalog.NewJSONStore(a.config.File)
	if !a.config.DryRun {
		return file, nil
	}

	books, err := file.Load()
	switch {
	case err == nil:
	case errors.IsParseError(err):
		a.logger.Warn().
			Err(err).
			Str("file", file.Path()).
			Msg("Backing file is malformed, starting with an empty catalog")
	default:
		return nil, errors.WrapResource("load", "catalog", a.config.File, err)
	}
	a.logger.Debug().Str("file", a.config.File).Msg("Dry run, changes will not be saved")
	return catalog.NewMemoryStore(books...), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithIO sets the streams commands read from and write to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}

// WithCatalog sets a custom catalog instance (useful for testing).
func WithCatalog(cat *catalog.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}
