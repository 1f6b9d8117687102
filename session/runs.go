package session

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/etnz/simfolio"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxRuns is the default capacity of Runs.
const DefaultMaxRuns = 64

// ErrRunNotFound is returned for a run that was never stored, or was evicted.
var ErrRunNotFound = errors.New("run not found")

// Runs stores the latest runs of a session, evicting the least recently used
// ones beyond its capacity. It is safe for concurrent use.
type Runs struct {
	cache *lru.Cache[simfolio.RunID, *simfolio.Run]
	now   func() time.Time
}

// NewRuns returns a store for at most size runs; size <= 0 means DefaultMaxRuns.
func NewRuns(size int) (*Runs, error) {
	if size <= 0 {
		size = DefaultMaxRuns
	}
	cache, err := lru.New[simfolio.RunID, *simfolio.Run](size)
	if err != nil {
		return nil, fmt.Errorf("cannot create run store: %w", err)
	}
	return &Runs{cache: cache, now: time.Now}, nil
}

// Add stamps run with a fresh ID and creation time, and stores it.
func (s *Runs) Add(run *simfolio.Run) (simfolio.RunID, error) {
	id, err := simfolio.NewRunID()
	if err != nil {
		return "", err
	}
	run.ID, run.Created = id, s.now()
	s.cache.Add(id, run)
	return id, nil
}

// Get returns the run identified by id.
func (s *Runs) Get(id simfolio.RunID) (*simfolio.Run, error) {
	run, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, nil
}

// List returns the stored runs, newest first.
func (s *Runs) List() []*simfolio.Run {
	runs := s.cache.Values()
	slices.SortStableFunc(runs, func(a, b *simfolio.Run) int {
		if c := b.Created.Compare(a.Created); c != 0 {
			return c
		}
		// ids are time ordered.
		return cmp.Compare(b.ID, a.ID)
	})
	return runs
}

// Len returns the number of runs stored.
func (s *Runs) Len() int { return s.cache.Len() }
