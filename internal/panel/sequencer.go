package panel

import "sync"

// sequencer orders fetches for one view. Every issued fetch takes a
// number from next; a result may only render if its number is newer than
// the last rendered one, which stops a slow early fetch from overwriting
// a later fetch's result.
type sequencer struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// next reserves a sequence number for a fetch about to be issued.
func (s *sequencer) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// apply reports whether a result with the given sequence number may
// render, and records it as rendered if so.
func (s *sequencer) apply(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	return true
}

// lastApplied returns the sequence number of the currently rendered data.
func (s *sequencer) lastApplied() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
