package mpsc

import "sync"

// Waiter represents any building block whose completion can be awaited.
// FanIn, Source, Pump and Batcher all implement this interface.
type Waiter interface {
	// Wait blocks until the component has finished its work
	Wait()
}

// Group represents a composite made up of multiple connected components.
// A Group itself is a Waiter and can be nested within other Groups.
type Group struct {
	name    string
	mu      sync.RWMutex
	members []Waiter
}

// NewGroup creates a new group with the given name
func NewGroup(name string) *Group {
	return &Group{
		name:    name,
		members: make([]Waiter, 0),
	}
}

// Add adds one or more components to this group
func (g *Group) Add(members ...Waiter) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.members = append(g.members, members...)
}

// Wait blocks until every member of the group has finished. Members are
// awaited in the order they were added, so adding producers before the
// consumers that drain them reflects the natural completion order of a
// pipeline.
func (g *Group) Wait() {
	g.mu.RLock()
	members := make([]Waiter, len(g.members))
	copy(members, g.members)
	g.mu.RUnlock()

	for _, m := range members {
		m.Wait()
	}
}

// Name returns the group's name
func (g *Group) Name() string {
	return g.name
}

// Count returns the number of components in this group
func (g *Group) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.members)
}
