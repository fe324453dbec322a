package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/shell"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Execute runs the bookshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Running the root command without a subcommand starts the interactive menu.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Personal library catalog",
		Version: a.version,
		Long: `Bookshelf keeps a personal library catalog in a single JSON file.

Run it without arguments for the interactive menu, or use the subcommands
to add, list, search, sort, edit and export books from scripts.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              shell.NewCommand(a).RunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog",
		Title: "Catalog Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "utility",
		Title: "Utility Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.bookshelf.yaml or $HOME/.bookshelf.yaml)")
	flags.String("library", a.config.File, "library JSON file")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.Bool("dry-run", false, "read the library but never write it")
	flags.StringP("output", "o", "", "output format: "+strings.Join(constants.OutputFormats(), ", "))
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")

	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
		rootCmd.SetErr(a.out)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. A --config flag reloads
// the configuration from that file before the other flags are applied.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		path, err := flags.GetString("config")
		if err != nil {
			return err
		}
		config, err := loadConfig(path)
		if err != nil {
			return err
		}
		a.config = config
	}

	if err := a.config.UpdateFromFlags(flags); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, a.logger)
	cmd.SetContext(logging.WithOperation(ctx, cmd.Name()))

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("library", a.config.File).
		Bool("dry_run", a.config.DryRun).
		Msg("Starting")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err and, for mistakes the user can correct, a hint.
func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	switch {
	case errors.IsNotFound(err):
		_, _ = fmt.Fprintln(w, "Hint: use 'bookshelf search isbn <isbn>' to check the ISBN")
	case errors.IsValidationError(err):
		_, _ = fmt.Fprintln(w, "Hint: run the command with --help for usage")
	}
}
