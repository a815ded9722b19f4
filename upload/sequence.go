package upload

import (
	"time"

	"go.uber.org/atomic"
)

// sequence hands out strictly increasing numbers seeded by the wall clock in
// milliseconds, so two uploads in the same millisecond still get distinct names.
type sequence struct {
	last *atomic.Int64
	now  func() time.Time
}

func newSequence(now func() time.Time) *sequence {
	return &sequence{last: atomic.NewInt64(0), now: now}
}

func (s *sequence) Next() int64 {
	for {
		prev := s.last.Load()
		next := s.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if s.last.CompareAndSwap(prev, next) {
			return next
		}
	}
}
