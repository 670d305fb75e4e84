package mqttsn

import "sync"

// MsgIDSequence hands out 16-bit message identifiers in increasing,
// wrapping order. An identifier stays unavailable until the request that
// used it resolves, so retransmissions and replies correlate unambiguously.
type MsgIDSequence struct {
	mu   sync.Mutex
	used map[uint16]struct{}
	next uint16
}

// NewMsgIDSequence creates a sequence starting at 1. Zero is never issued:
// the wire format reserves it for messages without an identifier.
func NewMsgIDSequence() *MsgIDSequence {
	return &MsgIDSequence{
		used: make(map[uint16]struct{}),
		next: 1,
	}
}

// Next returns the next free message identifier and marks it in use.
func (s *MsgIDSequence) Next() (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.next
	for {
		id := s.next
		s.next++
		if s.next == 0 {
			s.next = 1
		}

		if _, inUse := s.used[id]; !inUse {
			s.used[id] = struct{}{}
			return id, nil
		}

		if s.next == start {
			return 0, ErrMessageIDExhausted
		}
	}
}

// Release frees an identifier once its request has resolved.
func (s *MsgIDSequence) Release(id uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.used, id)
}

// InUse returns the number of identifiers currently held.
func (s *MsgIDSequence) InUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.used)
}
