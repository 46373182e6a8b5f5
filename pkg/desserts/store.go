package desserts

import (
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/agentstation/dessertshop/pkg/errors"
)

const resource = "dessert"

// Persister reads and writes whole-catalog snapshots.
//
// Read must return an error matching fs.ErrNotExist when no snapshot has
// been written yet.
type Persister interface {
	Read() ([]Dessert, error)
	Write([]Dessert) error
	Location() string
}

// Store owns the ordered dessert sequence. IDs are unique at all times and
// insertion order is the iteration order.
type Store struct {
	desserts  []Dessert
	persister Persister
	logger    *zerolog.Logger
	loaded    bool
}

// NewStore creates an empty Store. Call Load to restore a saved snapshot.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: defaultLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the sequence with the persisted snapshot.
//
// A missing snapshot leaves the sequence as it is. An unreadable or corrupt
// snapshot empties the sequence and returns an error matching
// errors.ErrPersistenceRead.
func (s *Store) Load() error {
	if s.persister == nil {
		s.loaded = true
		return nil
	}

	ds, err := s.persister.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			s.logger.Debug().Str("path", s.persister.Location()).Msg("No snapshot found, starting empty")
			return nil
		}
		s.desserts = nil
		s.loaded = false
		s.logger.Warn().Err(err).Str("path", s.persister.Location()).Msg("Snapshot unreadable, starting empty")
		return errors.NewReadError(s.persister.Location(), err)
	}

	if dup := firstDuplicate(ds); dup != "" {
		s.desserts = nil
		s.loaded = false
		err := errors.NewAlreadyExistsError(resource, dup)
		s.logger.Warn().Err(err).Str("path", s.persister.Location()).Msg("Snapshot has duplicate IDs, starting empty")
		return errors.NewReadError(s.persister.Location(), err)
	}

	s.desserts = ds
	s.loaded = true
	s.logger.Debug().Int("count", len(ds)).Str("path", s.persister.Location()).Msg("Snapshot loaded")
	return nil
}

// Loaded reports whether Load has completed successfully.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Save writes the whole sequence, replacing the previous snapshot. A
// failure returns an error matching errors.ErrPersistenceWrite and leaves
// the in-memory sequence untouched.
func (s *Store) Save() error {
	if s.persister == nil {
		return nil
	}
	if err := s.persister.Write(s.ToArray()); err != nil {
		s.logger.Error().Err(err).Str("path", s.persister.Location()).Msg("Snapshot write failed")
		return errors.NewWriteError(s.persister.Location(), err)
	}
	return nil
}

// Add appends d and persists. It is rejected without any change when d is
// nil or its ID is already present.
func (s *Store) Add(d *Dessert) error {
	if d == nil {
		return errors.NewValidationError("dessert", nil, "dessert is required")
	}
	if s.indexOf(d.ID) >= 0 {
		return errors.NewAlreadyExistsError(resource, d.ID)
	}

	s.desserts = append(s.desserts, *d)
	s.logger.Debug().Str("dessert_id", d.ID).Msg("Dessert added")
	return s.Save()
}

// Update replaces the first dessert with the given id by d, keeping its
// position, and persists. The id of d is not compared with id.
func (s *Store) Update(id string, d *Dessert) error {
	if d == nil {
		return errors.NewValidationError("dessert", nil, "dessert is required")
	}
	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError(resource, id)
	}

	s.desserts[i] = *d
	s.logger.Debug().Str("dessert_id", id).Int("index", i).Msg("Dessert updated")
	return s.Save()
}

// Delete removes every dessert with the given id and persists.
func (s *Store) Delete(id string) error {
	kept := s.desserts[:0:0]
	for _, d := range s.desserts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	removed := len(s.desserts) - len(kept)
	if removed == 0 {
		return errors.NewNotFoundError(resource, id)
	}

	s.desserts = kept
	s.logger.Debug().Str("dessert_id", id).Int("removed", removed).Msg("Dessert deleted")
	return s.Save()
}

// FindByID returns the first dessert with the given id.
func (s *Store) FindByID(id string) (Dessert, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.desserts[i], true
	}
	return Dessert{}, false
}

// FindByKeyword returns, in order, the desserts whose name or flavor
// contains text. The result is empty, never nil, when nothing matches.
func (s *Store) FindByKeyword(text string) []Dessert {
	return s.filter(func(d Dessert) bool { return d.Matches(text) })
}

// FindByKeywordFold is FindByKeyword ignoring case.
func (s *Store) FindByKeywordFold(text string) []Dessert {
	return s.filter(func(d Dessert) bool { return d.MatchesFold(text) })
}

// FilterSeasonal returns, in order, the seasonal limited-edition desserts.
func (s *Store) FilterSeasonal() []Dessert {
	return s.filter(func(d Dessert) bool { return d.Seasonal })
}

// ToArray returns a copy of the sequence. Changing it does not affect s.
func (s *Store) ToArray() []Dessert {
	out := make([]Dessert, len(s.desserts))
	copy(out, s.desserts)
	return out
}

// Len returns the number of desserts.
func (s *Store) Len() int {
	return len(s.desserts)
}

// PriceHistogram counts desserts per price band.
func (s *Store) PriceHistogram() PriceHistogram {
	var h PriceHistogram
	for _, d := range s.desserts {
		if i := bucketIndex(d.Price); i >= 0 {
			h[i]++
		}
	}
	return h
}

func (s *Store) filter(keep func(Dessert) bool) []Dessert {
	out := []Dessert{}
	for _, d := range s.desserts {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s *Store) indexOf(id string) int {
	for i, d := range s.desserts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// firstDuplicate returns the first ID that occurs more than once.
func firstDuplicate(ds []Dessert) string {
	seen := make(map[string]struct{}, len(ds))
	for _, d := range ds {
		if _, ok := seen[d.ID]; ok {
			return d.ID
		}
		seen[d.ID] = struct{}{}
	}
	return ""
}
