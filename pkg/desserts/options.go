package desserts

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/pkg/logging"
)

// Option configures a Store.
type Option func(*Store)

// WithPersister sets where snapshots are read from and written to.
// A Store without a Persister keeps its data in memory only.
func WithPersister(p Persister) Option {
	return func(s *Store) {
		s.persister = p
	}
}

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDesserts seeds the Store with an initial sequence. Later entries
// whose ID repeats an earlier one are dropped.
func WithDesserts(ds ...Dessert) Option {
	return func(s *Store) {
		for _, d := range ds {
			if s.indexOf(d.ID) < 0 {
				s.desserts = append(s.desserts, d)
			}
		}
	}
}

func defaultLogger() *zerolog.Logger {
	return logging.Default()
}
