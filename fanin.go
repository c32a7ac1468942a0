package mpsc

import "sync"

// FanIn merges multiple native Go channels into a single mpsc channel. It
// implements the fan-in concurrency pattern where messages from multiple
// sources are combined into one stream, using the channel's own multi-producer
// mechanics: every source gets a cloned Sender, and the merged channel closes
// once FanIn itself is closed and every source has been exhausted.
type FanIn[T any] struct {
	// OnSourceDone is called when a source channel is exhausted so the caller
	// can perform other cleanups etc based on this
	OnSourceDone func(fi *FanIn[T], src <-chan T)

	tx *Sender[T]
	rx *Receiver[T]

	mu     sync.Mutex
	wg     sync.WaitGroup
	active int
	sealed bool
}

// NewFanIn creates a FanIn merging the given sources. Sources can also be
// attached later with Add. Forwarding starts immediately upon creation.
func NewFanIn[T any](sources ...<-chan T) *FanIn[T] {
	tx, rx := New[T]()
	out := &FanIn[T]{tx: tx, rx: rx}
	out.Add(sources...)
	return out
}

// Receiver returns the consumer handle for the merged stream. As with any
// mpsc channel, only one goroutine may consume from it.
func (fi *FanIn[T]) Receiver() *Receiver[T] {
	return fi.rx
}

// Recv receives the next merged item. It reports closure only after Close
// has been called and every source has drained.
func (fi *FanIn[T]) Recv() (T, bool) {
	return fi.rx.Recv()
}

// Add attaches one or more source channels. Each source is forwarded by its
// own goroutine holding its own cloned Sender, so items from different
// sources may interleave arbitrarily while items from one source stay in
// order. Panics if any source is nil or if the FanIn is already closed.
func (fi *FanIn[T]) Add(sources ...<-chan T) {
	for _, src := range sources {
		if src == nil {
			panic("mpsc: Add of nil source channel")
		}
	}
	fi.mu.Lock()
	if fi.sealed {
		fi.mu.Unlock()
		panic("mpsc: Add on closed FanIn")
	}
	for _, src := range sources {
		fi.active++
		fi.wg.Add(1)
		go fi.forward(fi.tx.Clone(), src)
	}
	fi.mu.Unlock()
}

// Count returns the number of sources currently being forwarded.
func (fi *FanIn[T]) Count() int {
	fi.mu.Lock()
	defer fi.mu.Unlock()
	return fi.active
}

// Close seals the FanIn: no further sources may be added, and once the
// already-attached sources drain, the merged channel closes. Close does not
// interrupt in-flight forwarding and is safe to call more than once.
func (fi *FanIn[T]) Close() {
	fi.mu.Lock()
	if !fi.sealed {
		fi.sealed = true
		fi.tx.Close()
	}
	fi.mu.Unlock()
}

// Wait blocks until every attached source has been fully forwarded. It does
// not imply the merged channel is closed - that additionally requires Close.
func (fi *FanIn[T]) Wait() {
	fi.wg.Wait()
}

func (fi *FanIn[T]) forward(tx *Sender[T], src <-chan T) {
	defer fi.wg.Done()
	for v := range src {
		tx.Send(v)
	}
	tx.Close()
	fi.mu.Lock()
	fi.active--
	fi.mu.Unlock()
	if fi.OnSourceDone != nil {
		fi.OnSourceDone(fi, src)
	}
}
