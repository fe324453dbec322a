package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/edit"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/export"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/shell"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/sort"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(sort.NewCommand(a))
	rootCmd.AddCommand(edit.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(shell.NewCommand(a))
	rootCmd.AddCommand(a.createVersionCommand())
}

// createVersionCommand creates the version command.
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "utility",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("bookshelf %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:     %s\n", a.commit)
				cmd.Printf("  built:      %s\n", a.date)
				cmd.Printf("  built by:   %s\n", a.builtBy)
				cmd.Printf("  go version: %s\n", runtime.Version())
				cmd.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
