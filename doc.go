// Package mpsc provides an unbounded multi-producer single-consumer channel
// built directly on a mutex and a condition variable, together with helpers
// for feeding it from and draining it into native Go channels.
//
// Unlike a buffered Go channel, the queue has no capacity limit: Send never
// blocks, and closing is inferred rather than signalled - the channel is
// closed once every Sender handle has been closed and the queue has drained.
//
// The main components include:
//
//   - Sender: A producer handle supporting Send, Clone (to add producers) and an idempotent Close
//   - Receiver: The single consumer handle whose Recv blocks until an item arrives or the channel closes
//   - FanIn: Merges multiple native Go channels into one mpsc channel, one cloned Sender per source
//   - Source: A goroutine that repeatedly calls a read function and sends results until an error
//   - Pump: Bridges a Receiver to a native Go channel, applying a transform to each item
//   - Batcher: Collects items from a Receiver into fixed-size slices
//   - Group: Aggregates the lifecycles of the above so a pipeline can be awaited as one unit
//
// Exactly one goroutine may consume from a Receiver, and each Sender value is
// owned by one goroutine at a time; concurrent producers are obtained by
// cloning, never by sharing a Sender across goroutines.
package mpsc
