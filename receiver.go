package mpsc

// Receiver is the single consumer handle of an mpsc channel. Exactly one
// goroutine may call Recv; the handle must not be shared across concurrent
// callers.
type Receiver[T any] struct {
	shared *sharedState[T]
}

// Recv blocks until an item is available or the channel closes. It returns
// (item, true) for each delivered item, and (zero, false) once every Sender
// has been closed and the queue has drained - closure is a normal terminal
// state, not an error. Items are delivered in the order they were enqueued.
//
// There is no timeout and no non-blocking variant: a parked Recv is released
// only by a Send or by the last Sender closing.
func (r *Receiver[T]) Recv() (T, bool) {
	sh := r.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()
	// Wait in a loop: a wakeup only means "re-check", never "ready". The
	// predicate is re-evaluated under the lock after every wake, which keeps
	// spurious wakeups harmless.
	for sh.empty() && sh.senders > 0 {
		sh.available.Wait()
	}
	if sh.empty() {
		var zero T
		return zero, false
	}
	return sh.pop(), true
}

// Len returns the number of items currently queued. It is observational
// only: by the time the caller acts on it, producers may have enqueued more.
func (r *Receiver[T]) Len() int {
	sh := r.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.size()
}
