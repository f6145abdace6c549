package resource

import (
	"errors"
	"fmt"
	"sync"
)

// ErrScopeClosed is returned by Acquire after Close.
var ErrScopeClosed = errors.New("resource: scope closed")

// Scope tracks the memory reserved for a single run against a Controller.
// It is owned by one goroutine; it is not safe for concurrent use.
// A nil *Scope accepts every reservation without tracking it.
type Scope struct {
	rc     *Controller
	held   int64
	peak   int64
	closed bool
	once   sync.Once
}

// NewScope creates a scope drawing from rc. A nil rc yields a scope that only
// tracks usage.
func NewScope(rc *Controller) *Scope {
	return &Scope{rc: rc}
}

// Acquire reserves bytes for the run.
// Returns ErrMemoryLimitExceeded (wrapped with the request size) if the
// Controller cannot satisfy the reservation.
func (s *Scope) Acquire(bytes int64) error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrScopeClosed
	}
	if bytes <= 0 {
		return nil
	}
	if err := s.rc.Reserve(bytes); err != nil {
		return fmt.Errorf("reserve %d bytes (held %d): %w", bytes, s.held, err)
	}
	s.held += bytes
	if s.held > s.peak {
		s.peak = s.held
	}
	return nil
}

// Release returns part of the reservation, e.g. when a structure is discarded.
// Releasing more than is held releases only what is held.
func (s *Scope) Release(bytes int64) {
	if s == nil || s.closed || bytes <= 0 {
		return
	}
	bytes = min(bytes, s.held)
	s.rc.Free(bytes)
	s.held -= bytes
}

// Held returns the bytes currently reserved by the scope.
func (s *Scope) Held() int64 {
	if s == nil {
		return 0
	}
	return s.held
}

// Peak returns the largest reservation the scope held at once.
func (s *Scope) Peak() int64 {
	if s == nil {
		return 0
	}
	return s.peak
}

// Close releases everything still held. Only the first call has an effect.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.rc.Free(s.held)
		s.held = 0
		s.closed = true
	})
}
