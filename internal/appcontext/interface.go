// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/pkg/desserts"
)

// Interface defines what commands need from the application.
// The App struct from cmd/dessertshop/app implements it; tests use Mock.
type Interface interface {
	// Store returns the dessert store, loading the snapshot on first use.
	Store() (*desserts.Store, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
