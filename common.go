package mpsc

// Collect drains rx until the channel closes and returns every item received,
// in delivery order. It blocks for as long as any Sender remains open.
func Collect[T any](rx *Receiver[T]) []T {
	var out []T
	for {
		v, ok := rx.Recv()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Drain reads and discards items from rx until the channel closes. Useful
// during teardown when the remaining items are no longer interesting but the
// producers should not be kept waiting on a dead consumer path.
func Drain[T any](rx *Receiver[T]) {
	for {
		if _, ok := rx.Recv(); !ok {
			return
		}
	}
}

// SendAll sends each value on tx, in order. The Sender is left open.
func SendAll[T any](tx *Sender[T], values ...T) {
	for _, v := range values {
		tx.Send(v)
	}
}
