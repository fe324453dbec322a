package catalog

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// options holds the catalog configuration.
type options struct {
	logger   *zerolog.Logger
	pageSize int
}

// defaults returns the default options for a catalog.
func defaults() *options {
	return &options{
		logger:   logging.Default(),
		pageSize: constants.DefaultPageSize,
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a catalog.
type Option func(*options)

// WithLogger sets the logger used for catalog events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPageSize sets the pagination window size. Values outside
// 1..constants.MaxPageSize keep the default.
func WithPageSize(size int) Option {
	return func(o *options) {
		if size > 0 && size <= constants.MaxPageSize {
			o.pageSize = size
		}
	}
}
