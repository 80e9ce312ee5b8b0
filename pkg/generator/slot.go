package generator

import (
	"sync"
	"sync/atomic"
)

// ResultSlot is a size-1 overwrite buffer between search workers and a
// single consumer. A newer hit replaces an unconsumed one.
type ResultSlot struct {
	mu      sync.Mutex
	hit     Hit
	full    bool
	dropped atomic.Uint64
}

// Put stores the hit and reports whether an unconsumed hit was replaced.
func (s *ResultSlot) Put(hit Hit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.full
	if replaced {
		s.dropped.Add(1)
	}
	s.hit = hit
	s.full = true
	return replaced
}

// Take removes and returns the stored hit, if any.
func (s *ResultSlot) Take() (Hit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.full {
		return Hit{}, false
	}
	hit := s.hit
	s.hit = Hit{}
	s.full = false
	return hit, true
}

// Reset discards any stored hit without counting it as dropped.
func (s *ResultSlot) Reset() {
	s.mu.Lock()
	s.hit = Hit{}
	s.full = false
	s.mu.Unlock()
}

// Dropped returns how many hits were overwritten before being taken.
func (s *ResultSlot) Dropped() uint64 {
	return s.dropped.Load()
}
