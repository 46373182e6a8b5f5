// Package app provides the application context and dependency management
// for the dessertshop CLI. It owns the configuration, the logger and the
// single dessert Store that commands operate on.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/internal/appcontext"
	"github.com/agentstation/dessertshop/internal/cmd/output"
	"github.com/agentstation/dessertshop/pkg/desserts"
	"github.com/agentstation/dessertshop/pkg/errors"
	"github.com/agentstation/dessertshop/pkg/snapshot"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the dessertshop application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Command I/O; nil means the process streams.
	in  io.Reader
	out io.Writer

	// Store is created and loaded on first use.
	mu    sync.Mutex
	store *desserts.Store
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.NewConfigError("app", "loading config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detecting one from
// the terminal when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Store returns the dessert store, creating it and loading the snapshot
// on first use. A snapshot that exists but cannot be read is an error;
// commands refuse to run rather than overwrite it.
func (a *App) Store() (*desserts.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		return a.store, nil
	}

	format, err := snapshot.ParseFormat(a.config.SnapshotFormat)
	if err != nil {
		return nil, err
	}
	file, err := snapshot.NewFile(a.config.DataFile, snapshot.WithFormat(format))
	if err != nil {
		return nil, err
	}

	store := desserts.NewStore(
		desserts.WithPersister(file),
		desserts.WithLogger(a.logger),
	)
	if err := store.Load(); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("path", file.Location()).
		Str("format", string(file.Format())).
		Int("count", store.Len()).
		Msg("Store ready")

	a.store = store
	return store, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom store (useful for testing).
func WithStore(store *desserts.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

// WithIO sets the streams commands read from and write to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}
