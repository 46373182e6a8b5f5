// Package add implements the add command.
package add

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
)

// NewCommand creates the add command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "add " + cmdutil.DessertArgsUse,
		Short: "Add a dessert to the catalog",
		Long: `Add appends a new dessert to the catalog and saves the snapshot.
The ID must not already be in use. SEASONAL accepts yes/no or true/false.`,
		Example: `  dessertshop add D001 "Chocolate Cake" chocolate 12.50 8 yes`,
		Args:    cmdutil.DessertArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := cmdutil.ParseDessert(args)
			if err != nil {
				return err
			}

			store, err := app.Store()
			if err != nil {
				return err
			}

			return cmdutil.ReportMutation(cmd, app, "added", d.ID, store.Add(&d))
		},
	}
}
