package mpsc

// Batcher collects items from an mpsc channel into fixed-size slices. A
// batch is emitted once it reaches FlushSize items; any partial batch is
// flushed when the channel closes, so no delivered item is ever lost.
//
// Batching here is size-driven only. A time-driven flush would require the
// consumer to poll or time out, and the Receiver deliberately offers
// neither.
type Batcher[T any] struct {
	FlushSize int
	OnDone    func(b *Batcher[T])

	rx         *Receiver[T]
	output     chan []T
	selfOwnOut bool
	doneChan   chan struct{}
	pending    []T
}

// BatcherOption is a functional option for configuring a Batcher
type BatcherOption[T any] func(*Batcher[T])

// WithFlushSize sets the number of items per emitted batch
func WithFlushSize[T any](n int) BatcherOption[T] {
	return func(b *Batcher[T]) {
		b.FlushSize = n
	}
}

// WithBatchOutput sets the output channel for emitted batches. The channel
// remains owned by the caller and is not closed when the batcher finishes.
func WithBatchOutput[T any](ch chan []T) BatcherOption[T] {
	return func(b *Batcher[T]) {
		b.output = ch
		b.selfOwnOut = false
	}
}

// NewBatcher creates a batcher consuming rx. If no output channel is
// provided via options, the batcher creates and owns one, closing it when
// it finishes. Just like the other runners, the Batcher starts as soon as
// it is created.
func NewBatcher[T any](rx *Receiver[T], opts ...BatcherOption[T]) *Batcher[T] {
	out := &Batcher[T]{
		FlushSize:  64,
		rx:         rx,
		selfOwnOut: true,
		doneChan:   make(chan struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(out)
	}
	if out.FlushSize <= 0 {
		panic("mpsc: Batcher requires a positive flush size")
	}
	if out.output == nil {
		out.output = make(chan []T)
	}
	out.start()
	return out
}

// RecvChan returns the channel from which emitted batches can be read.
func (b *Batcher[T]) RecvChan() <-chan []T {
	return b.output
}

// Wait blocks until the batcher has finished, which happens once the mpsc
// channel closes and the final partial batch (if any) has been emitted.
func (b *Batcher[T]) Wait() {
	<-b.doneChan
}

func (b *Batcher[T]) start() {
	go func() {
		defer b.cleanup()
		for {
			v, ok := b.rx.Recv()
			if !ok {
				return
			}
			b.pending = append(b.pending, v)
			if len(b.pending) >= b.FlushSize {
				b.flush()
			}
		}
	}()
}

// flush emits the pending batch and starts a fresh one.
func (b *Batcher[T]) flush() {
	if len(b.pending) == 0 {
		return
	}
	batch := b.pending
	b.pending = make([]T, 0, b.FlushSize)
	b.output <- batch
}

func (b *Batcher[T]) cleanup() {
	b.flush()
	if b.OnDone != nil {
		b.OnDone(b)
	}
	if b.selfOwnOut {
		close(b.output)
	}
	close(b.doneChan)
}
