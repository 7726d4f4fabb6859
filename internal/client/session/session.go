// Package session runs background work for one UI slot where a newer
// request supersedes any older one still in flight.
//
// Every Start gets the next sequence number and cancels the previous run.
// When a run finishes, its outcome becomes visible only if no newer run
// was started meanwhile; stale outcomes are dropped without notice.
package session

import (
	"context"
	"sync"
)

// Result is the outcome of one run.
type Result[T any] struct {
	Seq   uint64
	Value T
	Err   error
}

type Session[T any] struct {
	onResult func(Result[T])

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current *Result[T]
	running bool

	wg sync.WaitGroup
}

// New returns a Session that calls onResult (may be nil) for every
// outcome that becomes visible.
func New[T any](onResult func(Result[T])) *Session[T] {
	return &Session[T]{onResult: onResult}
}

// Start runs fn in the background under a fresh sequence number and
// returns that number. The context passed to fn is cancelled when a newer
// run starts, on Cancel, or when parent is done.
func (s *Session[T]) Start(parent context.Context, fn func(ctx context.Context) (T, error)) uint64 {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	s.cancel = cancel
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		v, err := fn(ctx)
		s.finish(Result[T]{Seq: seq, Value: v, Err: err})
	}()

	return seq
}

func (s *Session[T]) finish(r Result[T]) {
	s.mu.Lock()
	if r.Seq != s.seq {
		s.mu.Unlock()
		return
	}
	s.current = &r
	s.running = false
	s.cancel = nil
	s.mu.Unlock()

	if s.onResult != nil {
		s.onResult(r)
	}
}

// Cancel abandons the in-flight run, if any. Its outcome will not be
// reported.
func (s *Session[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.running {
		s.seq++
		s.running = false
	}
}

// Current returns the latest visible outcome.
func (s *Session[T]) Current() (Result[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Result[T]{}, false
	}
	return *s.current, true
}

// Running reports whether the newest run has not finished yet.
func (s *Session[T]) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Reset cancels any run and forgets the visible outcome.
func (s *Session[T]) Reset() {
	s.Cancel()
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Wait blocks until every started run has returned, including superseded
// ones.
func (s *Session[T]) Wait() {
	s.wg.Wait()
}
