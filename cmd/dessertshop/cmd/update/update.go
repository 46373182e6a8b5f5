// Package update implements the update command.
package update

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/completion"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
)

// NewCommand creates the update command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "update " + cmdutil.DessertArgsUse,
		Short: "Replace a dessert's details",
		Long: `Update replaces every field of the dessert with the given ID, keeping
its position in the catalog, and saves the snapshot.`,
		Example:           `  dessertshop update D001 "Chocolate Cake" "dark chocolate" 13 6 no`,
		Args:              cmdutil.DessertArgs,
		ValidArgsFunction: completion.DessertIDs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := cmdutil.ParseDessert(args)
			if err != nil {
				return err
			}

			store, err := app.Store()
			if err != nil {
				return err
			}

			return cmdutil.ReportMutation(cmd, app, "updated", d.ID, store.Update(d.ID, &d))
		},
	}
}
