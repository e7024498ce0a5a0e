package store

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"power-bidding/internal/ingest"
	"power-bidding/internal/model"
)

// Store holds the historical observations for the process lifetime.
//
// Load replaces the snapshot wholesale: the replacement slice is built
// outside the lock and swapped in under it, so concurrent readers never
// observe a partially replaced store. Query methods return subslices of the
// current snapshot, which is never mutated after publication.
type Store struct {
	mu  sync.RWMutex
	obs []model.Observation
}

func New() *Store { return &Store{} }

// Load replaces the store content with observations parsed from the given
// sources, concatenated in source order. A missing source is logged and
// skipped; a source that exists but cannot be parsed is skipped as a
// model.SourceError. The load fails, leaving the previous snapshot intact,
// only when no source could be read at all and at least one failed to parse.
func (s *Store) Load(paths []string) (int, error) {
	var next []model.Observation
	var firstErr error
	loadedAny := false

	for _, p := range paths {
		rows, err := ingest.ReadSource(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn().Str("source", p).Msg("source not found, skipping")
				continue
			}
			srcErr := &model.SourceError{Path: p, Err: err}
			log.Warn().Err(srcErr).Msg("source unreadable, skipping")
			if firstErr == nil {
				firstErr = srcErr
			}
			continue
		}
		loadedAny = true
		next = append(next, rows...)
		log.Info().Str("source", p).Int("observations", len(rows)).Msg("source loaded")
	}

	if !loadedAny && firstErr != nil {
		return 0, firstErr
	}

	s.mu.Lock()
	s.obs = next
	s.mu.Unlock()
	return len(next), nil
}

// RecentWindow returns the last n observations in store order, fewer if the
// store holds less. An empty result means "not ready", not an error.
func (s *Store) RecentWindow(n int) []model.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 || len(s.obs) == 0 {
		return nil
	}
	if n > len(s.obs) {
		n = len(s.obs)
	}
	return s.obs[len(s.obs)-n:]
}

// FilterRange returns the observations with timestamp in [start, end).
func (s *Store) FilterRange(start, end time.Time) []model.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Observation
	for _, o := range s.obs {
		if !o.Timestamp.Before(start) && o.Timestamp.Before(end) {
			out = append(out, o)
		}
	}
	return out
}

// All returns the full snapshot in store order.
func (s *Store) All() []model.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.obs
}

// Summary describes the current snapshot.
type Summary struct {
	Count    int            `json:"count"`
	Earliest time.Time      `json:"earliest"`
	Latest   time.Time      `json:"latest"`
	ByMonth  map[string]int `json:"by_month"`
}

// Status derives a summary of the snapshot: count, min/max timestamp and a
// count grouped by calendar month. Purely derived; calling it twice without
// an intervening Load yields identical results.
func (s *Store) Status() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{
		Count:   len(s.obs),
		ByMonth: make(map[string]int),
	}
	for i, o := range s.obs {
		if i == 0 || o.Timestamp.Before(sum.Earliest) {
			sum.Earliest = o.Timestamp
		}
		if i == 0 || o.Timestamp.After(sum.Latest) {
			sum.Latest = o.Timestamp
		}
		sum.ByMonth[o.Timestamp.Format("2006-01")]++
	}
	return sum
}
