package mpsc

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

// ReadFunc is the type of the read method driving a Source.
type ReadFunc[T any] func() (msg T, err error)

// Source is a producer goroutine which repeatedly calls a read function and
// sends each result into an mpsc channel via its own Sender handle. It runs
// until the read function returns an error (io.EOF meaning a clean end of
// input) or until Stop is called, and then closes its Sender so the channel
// can observe closure once all other producers are done too.
type Source[T any] struct {
	Read   ReadFunc[T]
	OnDone func(s *Source[T])

	tx         *Sender[T]
	closedChan chan error
	doneChan   chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once
	err        error
}

// SourceOption is a functional option for configuring a Source
type SourceOption[T any] func(*Source[T])

// WithOnDone sets the callback to be called when the source finishes
func WithOnDone[T any](fn func(*Source[T])) SourceOption[T] {
	return func(s *Source[T]) {
		s.OnDone = fn
	}
}

// NewSource creates a source producing into tx. The Source takes ownership
// of tx and will close it when it finishes; callers that still need to
// produce on the same channel should hand the Source a Clone. The source
// starts running immediately upon creation.
//
// Examples:
//
//	// Feed a channel from a reader function
//	src := NewSource(tx, nextRecord)
//
//	// Several sources sharing one channel
//	a := NewSource(tx.Clone(), readerA)
//	b := NewSource(tx, readerB)
func NewSource[T any](tx *Sender[T], read ReadFunc[T], opts ...SourceOption[T]) *Source[T] {
	out := &Source[T]{
		Read:       read,
		tx:         tx,
		closedChan: make(chan error, 1),
		doneChan:   make(chan struct{}),
		stopChan:   make(chan struct{}),
	}

	// Apply options
	for _, opt := range opts {
		opt(out)
	}

	out.start()
	return out
}

// ClosedChan returns the channel used to signal when the source is done. If
// the read function failed with anything other than io.EOF, that error is
// delivered on it before it is closed.
func (s *Source[T]) ClosedChan() <-chan error {
	return s.closedChan
}

// Err returns the error that terminated the source, nil for a clean end.
// Only meaningful after ClosedChan has signalled.
func (s *Source[T]) Err() error {
	return s.err
}

// Wait blocks until the source has finished and closed its Sender.
func (s *Source[T]) Wait() {
	<-s.doneChan
}

// Stop asks the source to stop before the next read. It does not interrupt
// a read already in progress. Safe to call more than once.
func (s *Source[T]) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

func (s *Source[T]) start() {
	go func() {
		defer s.cleanup()
		for {
			// Check if we should stop
			select {
			case <-s.stopChan:
				return
			default:
			}

			msg, err := s.Read()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					slog.Debug("source read error", "error", err)
					s.err = err
				}
				return
			}
			s.tx.Send(msg)
		}
	}()
}

func (s *Source[T]) cleanup() {
	s.tx.Close()
	if s.OnDone != nil {
		s.OnDone(s)
	}
	if s.err != nil {
		s.closedChan <- s.err
	}
	close(s.closedChan)
	close(s.doneChan)
}
