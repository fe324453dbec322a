// Package shell implements the interactive numbered menu over a catalog.
// It reads choices and field values line by line from any io.Reader and
// writes to any io.Writer, so it runs the same on a terminal and in tests.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Menu lines, in order. The number printed before each is its choice.
var menuItems = []string{
	"Add Book",
	"View Books (Paginated)",
	"Search by Title",
	"Search by ISBN",
	"Sort Books",
	"Edit Book",
	"Export to CSV",
	"Quit",
}

// Shell runs the interactive menu.
type Shell struct {
	catalog      *catalog.Catalog
	prompt       *prompter
	out          io.Writer
	alerts       alerts.Writer
	styles       styles
	logger       *zerolog.Logger
	exportFile   string
	exportFormat catalog.ExportFormat
}

// Option configures a Shell.
type Option func(*Shell)

// WithExportFile sets the file written by the export action.
func WithExportFile(path string) Option {
	return func(s *Shell) {
		if path != "" {
			s.exportFile = path
		}
	}
}

// WithExportFormat sets the format written by the export action.
func WithExportFormat(format catalog.ExportFormat) Option {
	return func(s *Shell) {
		if format != "" {
			s.exportFormat = format
		}
	}
}

// WithColor turns styled output on or off.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		s.styles = newStyles(enabled)
		s.alerts = alerts.NewFormatWriter(s.out, output.FormatTable).
			WithConfig(alerts.WriterConfig{ShowDetails: true, UseColor: enabled})
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a shell over cat reading from in and writing to out.
// Output is uncolored unless WithColor(true) is given.
func New(cat *catalog.Catalog, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		catalog:      cat,
		prompt:       &prompter{in: bufio.NewReader(in), out: out},
		out:          out,
		logger:       logging.Default(),
		exportFile:   constants.DefaultExportFile,
		exportFormat: catalog.ExportCSV,
	}
	WithColor(false)(s)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run shows the menu until the user quits, the input ends, or ctx is done.
// Failures inside an action are reported and the menu continues; only
// input and output errors end the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.prompt.ask("Choose option (1-8): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.println()
				return nil
			}
			return err
		}

		quit, err := s.dispatch(strings.TrimSpace(choice))
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.println()
				return nil
			}
			return err
		}
		if quit {
			s.println()
			s.println(s.styles.title.Render("Goodbye 👋"))
			return nil
		}
	}
}

// dispatch runs the action for choice and reports whether to quit.
func (s *Shell) dispatch(choice string) (bool, error) {
	s.logger.Debug().Str("choice", choice).Msg("Menu choice")

	switch choice {
	case "1":
		return false, s.add()
	case "2":
		return false, s.view()
	case "3":
		return false, s.searchTitle()
	case "4":
		return false, s.searchISBN()
	case "5":
		return false, s.sort()
	case "6":
		return false, s.edit()
	case "7":
		return false, s.export()
	case "8":
		return true, nil
	default:
		return false, s.alert(alerts.NewError("Invalid option."))
	}
}

func (s *Shell) printMenu() {
	s.println()
	s.println(s.styles.heading.Render("===== Personal Library Catalog ====="))
	for i, item := range menuItems {
		s.println(fmt.Sprintf("%d. %s", i+1, item))
	}
}

func (s *Shell) alert(a *alerts.Alert) error {
	s.println()
	return s.alerts.WriteAlert(a)
}

func (s *Shell) println(lines ...string) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(s.out)
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(s.out, line)
	}
}
