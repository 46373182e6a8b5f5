package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/add"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/completion"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/get"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/histogram"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/list"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/menu"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/remove"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/report"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/search"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/seasonal"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/update"
	"github.com/agentstation/dessertshop/cmd/dessertshop/cmd/version"
	"github.com/agentstation/dessertshop/internal/cmd/output"
)

// Command group IDs.
const (
	groupCatalog = "catalog"
	groupQuery   = "query"
)

// Execute runs the dessertshop CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dessertshop",
		Short:   "Dessert shop inventory manager",
		Version: a.version,
		Long: `Dessertshop keeps the catalog of a small dessert shop in a local
snapshot file. Every change is written back to the snapshot immediately.

Run "dessertshop menu" for the interactive numbered menu.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCatalog,
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupQuery,
		Title: "Query Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.dessertshop.yaml)")
	flags.String("data-file", a.config.DataFile, "snapshot file holding the catalog")
	flags.String("snapshot-format", a.config.SnapshotFormat, "snapshot encoding: auto, yaml, json")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("dessertshop {{.Version}}\n")
	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(cmd)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", a.config.ConfigFile).
		Str("data_file", a.config.DataFile).
		Msg("Command setup complete")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	catalog := []*cobra.Command{
		add.NewCommand(a),
		update.NewCommand(a),
		remove.NewCommand(a),
		menu.NewCommand(a),
	}
	for _, c := range catalog {
		c.GroupID = groupCatalog
		rootCmd.AddCommand(c)
	}

	query := []*cobra.Command{
		list.NewCommand(a),
		get.NewCommand(a),
		search.NewCommand(a),
		seasonal.NewCommand(a),
		histogram.NewCommand(a),
		report.NewCommand(a),
	}
	for _, c := range query {
		c.GroupID = groupQuery
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(version.NewCommand(a))
	rootCmd.AddCommand(completion.NewCommand())
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
