package mpsc

import "sync"

// sharedState is the record jointly owned by every Sender and the Receiver
// of one channel. Both fields are guarded by mu, and the condition variable
// is tied to the same mutex so a parked Receiver releases the lock for the
// duration of its sleep. The closed state is never stored: it is derived as
// "queue empty and senders == 0", and because one lock guards both fields
// that conjunction is evaluated atomically.
type sharedState[T any] struct {
	mu        sync.Mutex
	available *sync.Cond

	queue   []T
	head    int
	senders int
}

// push appends v to the back of the queue. Callers must hold mu.
func (s *sharedState[T]) push(v T) {
	s.queue = append(s.queue, v)
}

// pop removes and returns the front of the queue. Callers must hold mu and
// must have checked that the queue is non-empty. Popped slots are zeroed so
// delivered items do not linger in the buffer, and the buffer is reused once
// fully drained rather than reallocated.
func (s *sharedState[T]) pop() T {
	v := s.queue[s.head]
	var zero T
	s.queue[s.head] = zero
	s.head++
	if s.head == len(s.queue) {
		s.queue = s.queue[:0]
		s.head = 0
	}
	return v
}

// empty reports whether no items are pending. Callers must hold mu.
func (s *sharedState[T]) empty() bool {
	return s.head == len(s.queue)
}

// size returns the number of pending items. Callers must hold mu.
func (s *sharedState[T]) size() int {
	return len(s.queue) - s.head
}

// New creates an unbounded multi-producer single-consumer channel and
// returns the two handles bound to it: one Sender (more can be obtained via
// Clone) and the only Receiver there will ever be. This is the sole
// construction path; there is no way to attach another Receiver later.
//
// Example:
//
//	tx, rx := mpsc.New[int]()
//	go func() {
//	    tx.Send(42)
//	    tx.Close()
//	}()
//	v, ok := rx.Recv() // 42, true
//	_, ok = rx.Recv()  // closed: zero, false
func New[T any]() (*Sender[T], *Receiver[T]) {
	shared := &sharedState[T]{senders: 1}
	shared.available = sync.NewCond(&shared.mu)
	return &Sender[T]{shared: shared}, &Receiver[T]{shared: shared}
}
