// Package seasonal implements the seasonal command.
package seasonal

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
)

// NewCommand creates the seasonal command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "seasonal",
		Short: "List seasonal limited-edition desserts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			found := store.FilterSeasonal()
			format := cmdutil.Format(app)
			if len(found) == 0 && format.IsTable() {
				return cmdutil.Notice(cmd, app, "No seasonal limited desserts available")
			}
			return output.FormatDesserts(cmd.OutOrStdout(), format, found, false)
		},
	}
}
