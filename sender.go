package mpsc

import "sync"

// Sender is a producer handle for an mpsc channel. A Sender value is owned
// by a single goroutine at a time; to produce from several goroutines, give
// each its own handle via Clone. Every handle, original and clones alike,
// must eventually be closed - the channel reports closure to the Receiver
// only once all of them are.
type Sender[T any] struct {
	shared *sharedState[T]
	once   sync.Once
	closed bool
}

// Send enqueues v and wakes the Receiver if it is parked. The queue is
// unbounded, so Send never blocks and has no failure mode. Send panics if
// the handle has already been closed.
func (s *Sender[T]) Send(v T) {
	if s.closed {
		panic("mpsc: Send on closed Sender")
	}
	sh := s.shared
	sh.mu.Lock()
	sh.push(v)
	sh.mu.Unlock()
	// Signal outside the critical section so the woken Receiver does not
	// immediately contend with us for the lock.
	sh.available.Signal()
}

// Clone registers a new producer and returns a handle for it. The clone
// references the same channel and is indistinguishable from the original;
// both must be closed independently. Clone panics if the handle has already
// been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed {
		panic("mpsc: Clone of closed Sender")
	}
	sh := s.shared
	sh.mu.Lock()
	sh.senders++
	sh.mu.Unlock()
	return &Sender[T]{shared: sh}
}

// Close retires this handle, decrementing the live-producer count exactly
// once no matter how many times it is called. When the last handle closes,
// the Receiver is woken so it can observe closure once the queue drains.
// Items already enqueued are still delivered.
func (s *Sender[T]) Close() {
	s.once.Do(func() {
		s.closed = true
		sh := s.shared
		sh.mu.Lock()
		sh.senders--
		last := sh.senders == 0
		sh.mu.Unlock()
		if last {
			sh.available.Signal()
		}
	})
}
