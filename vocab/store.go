package vocab

import (
	"math/rand"

	"go.uber.org/zap"
)

// StoreConfig locates the two tabular files backing a Store and names the
// CSV header columns.
type StoreConfig struct {
	// ProgressPath is the mutable file holding the words still to learn.
	ProgressPath string
	// SeedPath is the read-only bundled word list used for the initial
	// load and for restarts. When it is missing the built-in seed is used.
	SeedPath string

	FrontLanguage string
	BackLanguage  string
}

// Store owns the in-memory set of unlearned word pairs and its persistence.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	cfg     StoreConfig
	logger  *zap.Logger
	entries []Entry
}

// NewStore returns a Store for the given files. Call Load before use.
func NewStore(cfg StoreConfig, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{cfg: cfg, logger: logger}
}

// Load reads the persisted progress file, falling back to the seed list when
// the file is missing, empty or malformed. Load never fails: the worst case
// is the built-in vocabulary.
func (s *Store) Load() {
	entries, err := readEntriesFile(s.cfg.ProgressPath, s.cfg.FrontLanguage, s.cfg.BackLanguage)
	if err != nil {
		s.logger.Info("no usable progress file, starting from seed list",
			zap.String("path", s.cfg.ProgressPath), zap.Error(err))
		s.entries = s.seedEntries()
		return
	}
	s.entries = entries
	s.logger.Info("progress loaded",
		zap.String("path", s.cfg.ProgressPath), zap.Int("words", len(entries)))
}

// Save overwrites the progress file with the exact current set, one row per
// entry in current order. The write is atomic so a crash mid-save cannot
// leave a truncated file behind.
func (s *Store) Save() error {
	header := []string{s.cfg.FrontLanguage, s.cfg.BackLanguage}
	return writeEntriesFile(s.cfg.ProgressPath, header, s.entries)
}

// Remove deletes the first entry matching e. It reports whether an entry was
// removed; removing an absent entry is a no-op, not an error.
func (s *Store) Remove(e Entry) bool {
	for i, have := range s.entries {
		if have == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Reset discards the in-memory set and reloads the seed list.
func (s *Store) Reset() {
	s.entries = s.seedEntries()
}

// Random returns a uniformly random entry. Every remaining entry is equally
// eligible on each draw, so an entry may recur across consecutive picks.
func (s *Store) Random(r *rand.Rand) (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[r.Intn(len(s.entries))], true
}

// Len returns the number of unlearned entries.
func (s *Store) Len() int { return len(s.entries) }

// IsEmpty reports whether every word has been learned.
func (s *Store) IsEmpty() bool { return len(s.entries) == 0 }

// Entries returns a copy of the current set in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// SeedSize returns the size of the seed deck backing this store.
func (s *Store) SeedSize() int { return len(s.seedEntries()) }

func (s *Store) seedEntries() []Entry {
	entries, err := readEntriesFile(s.cfg.SeedPath, s.cfg.FrontLanguage, s.cfg.BackLanguage)
	if err != nil {
		s.logger.Info("seed file unavailable, using built-in vocabulary",
			zap.String("path", s.cfg.SeedPath), zap.Error(err))
		return DefaultEntries()
	}
	return entries
}
