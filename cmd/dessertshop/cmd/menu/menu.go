// Package menu implements the interactive menu command.
package menu

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/menu"
)

// NewCommand creates the menu command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive numbered menu",
		Long: `Menu reads choices and field values line by line from standard input.
Invalid values are asked for again. Choose 10 or send EOF to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			m := menu.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), menu.WithLogger(app.Logger()))
			return m.Run(cmd.Context())
		},
	}
}
