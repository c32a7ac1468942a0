package mpsc

func idPumpFunc[T any](input T) (output T, skip bool, stop bool) {
	output = input
	return
}

// Pump bridges an mpsc Receiver to a native Go channel, applying a transform
// to each item in between. It consumes the Receiver, so it must be the
// channel's only consumer while it runs.
type Pump[I any, O any] struct {
	// MapFunc is applied to each received value and returns a tuple of 3
	// things - outval, skip, stop.
	// if skip is false, outval is sent to the output channel
	// if stop is true, the pump stops processing any further elements; items
	// still queued in the channel are left unconsumed.
	MapFunc func(I) (O, bool, bool)
	OnDone  func(p *Pump[I, O])

	rx         *Receiver[I]
	output     chan O
	selfOwnOut bool
	doneChan   chan struct{}
}

// NewPump creates a pump from rx into output. If output is nil, a new
// channel is created, owned by the Pump, and closed when the pump finishes;
// a caller-provided output channel is never closed. The pump runs until the
// mpsc channel closes or the map function asks it to stop - there is no
// external way to interrupt it while the channel stays open, matching the
// Receiver's own blocking contract.
// The map function returns (output, skip, stop) where:
// - output: the transformed value
// - skip: if true, the output is not sent to the output channel
// - stop: if true, the pump stops processing further elements
func NewPump[I any, O any](rx *Receiver[I], output chan O, mapper func(I) (O, bool, bool)) *Pump[I, O] {
	selfOwnOut := false
	if output == nil {
		output = make(chan O)
		selfOwnOut = true
	}
	out := &Pump[I, O]{
		MapFunc:    mapper,
		rx:         rx,
		output:     output,
		selfOwnOut: selfOwnOut,
		doneChan:   make(chan struct{}),
	}
	out.start()
	return out
}

// NewForward creates a pump that forwards every item from rx to output
// unchanged. It is a Pump with the identity transform, the mpsc analogue of
// a pipe.
func NewForward[T any](rx *Receiver[T], output chan T) *Pump[T, T] {
	return NewPump(rx, output, idPumpFunc)
}

// OutputChan returns the channel on which transformed items are delivered.
func (p *Pump[I, O]) OutputChan() <-chan O {
	return p.output
}

// DoneChan returns a channel closed when the pump has finished.
func (p *Pump[I, O]) DoneChan() <-chan struct{} {
	return p.doneChan
}

// Wait blocks until the pump has finished.
func (p *Pump[I, O]) Wait() {
	<-p.doneChan
}

func (p *Pump[I, O]) start() {
	go func() {
		defer p.cleanup()
		for {
			value, ok := p.rx.Recv()
			if !ok {
				// channel closed, no more inputs
				return
			}
			outval, skip, stop := p.MapFunc(value)
			if !skip {
				p.output <- outval
			}
			if stop {
				return
			}
		}
	}()
}

func (p *Pump[I, O]) cleanup() {
	if p.OnDone != nil {
		p.OnDone(p)
	}
	if p.selfOwnOut {
		close(p.output)
	}
	close(p.doneChan)
}
