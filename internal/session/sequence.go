package session

import "sync/atomic"

// Sequence numbers outbound envelopes with an atomic counter
type Sequence struct {
	counter uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.counter, 1)
}
