package mpsc

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceReader returns a ReadFunc yielding the given values and then io.EOF.
func sliceReader[T any](values []T) ReadFunc[T] {
	i := 0
	return func() (T, error) {
		if i >= len(values) {
			var zero T
			return zero, io.EOF
		}
		v := values[i]
		i++
		return v, nil
	}
}

func TestSourceDeliversUntilEOF(t *testing.T) {
	log.Println("============== TestSourceDeliversUntilEOF ================")
	tx, rx := New[int]()

	src := NewSource(tx, sliceReader([]int{10, 20, 30}))

	assert.Equal(t, []int{10, 20, 30}, Collect(rx))

	err := <-src.ClosedChan()
	assert.NoError(t, err)
	assert.NoError(t, src.Err())
}

func TestSourceReadError(t *testing.T) {
	log.Println("============== TestSourceReadError ================")
	tx, rx := New[int]()
	boom := errors.New("upstream failed")

	calls := 0
	src := NewSource(tx, func() (int, error) {
		calls++
		if calls > 2 {
			return 0, boom
		}
		return calls, nil
	})

	assert.Equal(t, []int{1, 2}, Collect(rx), "Items read before the error should still be delivered")

	err := withTimeout(t, src.ClosedChan())
	require.ErrorIs(t, err, boom)
	assert.ErrorIs(t, src.Err(), boom)
}

func TestSourceClosesItsSender(t *testing.T) {
	log.Println("============== TestSourceClosesItsSender ================")
	tx, rx := New[string]()

	// The source owns a clone; the original stays with us. The channel must
	// stay open until both are closed.
	src := NewSource(tx.Clone(), sliceReader([]string{"a"}))
	src.Wait()

	tx.Send("b")
	tx.Close()

	values := Collect(rx)
	assert.ElementsMatch(t, []string{"a", "b"}, values)
}

func TestSourceStop(t *testing.T) {
	log.Println("============== TestSourceStop ================")
	tx, rx := New[int]()

	// A reader that never runs dry; only Stop can end this source.
	n := 0
	blocked := make(chan struct{})
	release := make(chan struct{})
	src := NewSource(tx, func() (int, error) {
		n++
		if n == 3 {
			close(blocked)
			<-release
		}
		return n, nil
	})

	withTimeout(t, blocked)
	src.Stop()
	close(release)
	src.Wait()

	// Everything produced before the stop took effect is still delivered.
	values := Collect(rx)
	assert.GreaterOrEqual(t, len(values), 2)
	assert.NoError(t, src.Err())
}

func TestSourceOnDone(t *testing.T) {
	log.Println("============== TestSourceOnDone ================")
	tx, rx := New[int]()

	called := make(chan struct{})
	NewSource(tx, sliceReader([]int{1}),
		WithOnDone(func(s *Source[int]) { close(called) }))

	Drain(rx)
	withTimeout(t, called)
}
