// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/cmd/output"
)

// Info is the build information printed by the command.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewCommand creates the version command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := cmdutil.Format(app)
			if format.IsTable() {
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "dessertshop %s\n", app.Version())
				fmt.Fprintf(w, "  commit:   %s\n", app.Commit())
				fmt.Fprintf(w, "  built:    %s\n", app.Date())
				fmt.Fprintf(w, "  built by: %s\n", app.BuiltBy())
				return nil
			}

			info := Info{
				Version: app.Version(),
				Commit:  app.Commit(),
				Date:    app.Date(),
				BuiltBy: app.BuiltBy(),
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
		},
	}
}
