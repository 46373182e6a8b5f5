// Package report implements the report command.
package report

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/alerts"
	"github.com/agentstation/dessertshop/internal/cmd/cmdutil"
	"github.com/agentstation/dessertshop/internal/report"
	"github.com/agentstation/dessertshop/pkg/constants"
	"github.com/agentstation/dessertshop/pkg/errors"
)

// NewCommand creates the report command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a Markdown inventory report",
		Long: `Report renders a Markdown summary of the catalog: totals, the price
distribution, the full catalog table and the seasonal specials.`,
		Example: `  dessertshop report
  dessertshop report --out inventory.md --title "March Stock"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			if out == "" {
				return report.Write(cmd.OutOrStdout(), store, report.WithTitle(title))
			}

			var buf bytes.Buffer
			if err := report.Write(&buf, store, report.WithTitle(title)); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), constants.FilePermissions); err != nil {
				return errors.WrapIO("write", out, err)
			}

			app.Logger().Debug().Str("path", out).Int("bytes", buf.Len()).Msg("Report written")
			return alerts.NewFormatWriter(cmd.OutOrStdout(), cmdutil.Format(app)).
				WriteAlert(alerts.NewSuccess("Report written to " + out))
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "report title")

	return cmd
}
