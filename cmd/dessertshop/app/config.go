package app

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/dessertshop/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Snapshot configuration
	DataFile       string
	SnapshotFormat string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (DESSERTSHOP_*, LOG_*)
//  3. .env files
//  4. Config file (configFile, or .dessertshop.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_file", constants.DefaultDataFile)
	v.SetDefault("snapshot_format", "auto")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicit config file must exist; the search paths are optional.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DataFile:       v.GetString("data_file"),
		SnapshotFormat: v.GetString("snapshot_format"),

		LogLevel:  firstNonEmpty(os.Getenv("LOG_LEVEL"), v.GetString("log_level")),
		LogFormat: firstNonEmpty(os.Getenv("LOG_FORMAT"), v.GetString("log_format"), "auto"),
		LogOutput: firstNonEmpty(os.Getenv("LOG_OUTPUT"), v.GetString("log_output"), "stderr"),
	}, nil
}

// UpdateFromFlags copies the persistent flags the user actually set, so
// flag values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = mustGetBool(cmd, "verbose")
	}
	if flags.Changed("quiet") {
		c.Quiet = mustGetBool(cmd, "quiet")
	}
	if flags.Changed("no-color") {
		c.NoColor = mustGetBool(cmd, "no-color")
	}
	if flags.Changed("format") {
		c.Format = mustGetString(cmd, "format")
	}
	if flags.Changed("log-level") {
		c.LogLevel = mustGetString(cmd, "log-level")
	}
	if flags.Changed("data-file") {
		c.DataFile = mustGetString(cmd, "data-file")
	}
	if flags.Changed("snapshot-format") {
		c.SnapshotFormat = mustGetString(cmd, "snapshot-format")
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overwritten.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
