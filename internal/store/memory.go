package store

import (
	"sort"
	"sync"
	"time"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// ErrNotFound is returned when no data is available for a given garden or range.
var ErrNotFound = soil.ErrNotFound

// SampleHistory holds a date-ordered list of soil samples for a garden.
type SampleHistory struct {
	Samples []soil.Sample
}

// MemoryStore is a concurrency-safe in-memory implementation of a soil store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: garden id, value: history
	data map[string]*SampleHistory

	// retention configuration
	maxHistory int           // max number of samples per garden
	maxAge     time.Duration // optional max age for samples

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*SampleHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SaveSample stores a sample for a garden and enforces retention.
// A sample dated on a day that is already stored replaces it, so each day
// appears at most once.
func (s *MemoryStore) SaveSample(garden string, sample soil.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[garden]
	if !ok {
		history = &SampleHistory{}
		s.data[garden] = history
	}

	history.Samples = upsert(history.Samples, sample)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Samples) > s.maxHistory {
		over := len(history.Samples) - s.maxHistory
		history.Samples = history.Samples[over:]
	}

	// Enforce retention by age; the newest sample is always kept.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Samples)-1; i++ {
			if !history.Samples[i].Date.Before(cutoff) {
				break
			}
		}
		history.Samples = history.Samples[i:]
	}
}

// upsert inserts sample in date order, replacing any sample on the same date.
func upsert(samples []soil.Sample, sample soil.Sample) []soil.Sample {
	i := sort.Search(len(samples), func(i int) bool {
		return !samples[i].Date.Before(sample.Date)
	})
	if i < len(samples) && samples[i].Date.Equal(sample.Date) {
		samples[i] = sample
		return samples
	}

	samples = append(samples, soil.Sample{})
	copy(samples[i+1:], samples[i:])
	samples[i] = sample
	return samples
}

// GetLatest returns the most recent sample for a garden.
func (s *MemoryStore) GetLatest(garden string) (soil.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[garden]
	if !ok || len(history.Samples) == 0 {
		return soil.Sample{}, ErrNotFound
	}
	return history.Samples[len(history.Samples)-1], nil
}

// GetRange returns all samples for a garden dated between from and to (inclusive).
func (s *MemoryStore) GetRange(garden string, from, to time.Time) ([]soil.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[garden]
	if !ok || len(history.Samples) == 0 {
		return nil, ErrNotFound
	}

	result := soil.Window(history.Samples, from, to)
	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}

// Gardens returns the ids of every garden with stored samples, sorted.
func (s *MemoryStore) Gardens() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id, h := range s.data {
		if len(h.Samples) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
