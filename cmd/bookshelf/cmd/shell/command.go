// Package shell provides the command that starts the interactive menu.
package shell

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/shell"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// AppContext defines what the interactive menu needs from the app.
type AppContext interface {
	Catalog() (*catalog.Catalog, error)
	ExportFile() string
	UseColor() bool
}

// NewCommand creates the shell command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"menu"},
		GroupID: "utility",
		Short:   "Start the interactive menu (the default with no command)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			sh := shell.New(cat, cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithExportFile(app.ExportFile()),
				shell.WithColor(app.UseColor()),
				shell.WithLogger(logging.FromContext(cmd.Context())),
			)
			return sh.Run(cmd.Context())
		},
	}
}
