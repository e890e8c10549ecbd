// Package collection implements the synchronized-collection pattern shared
// by every list view: a local, id-keyed mirror of a server-owned collection,
// loaded wholesale, mutated confirm-then-apply, and reconciled against the
// server response after every mutation.
package collection

import (
	"context"
	"errors"
	"sync"
)

// State of a controller. Loading and Mutating may transition to Failed;
// Dismiss returns a Failed controller to Ready with its prior items.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateMutating
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateMutating:
		return "mutating"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrMutationInFlight is returned when a second mutation is attempted for a
// logical entity whose previous mutation has not finished yet. Mutations on
// distinct entities proceed independently.
var ErrMutationInFlight = errors.New("mutation already in flight for this entry")

// Controller keeps the local mirror for one list view. The mirror is
// eventually equal to server state; optimistic divergence is bounded by one
// round trip, and no change is applied before the server confirms it.
type Controller[T any] struct {
	key func(T) int64

	mu       sync.Mutex
	items    []T
	state    State
	inflight map[int64]struct{}
	creating bool
	gen      uint64
}

// New returns a controller whose entries are keyed by the given id function.
func New[T any](key func(T) int64) *Controller[T] {
	return &Controller[T]{
		key:      key,
		state:    StateIdle,
		inflight: make(map[int64]struct{}),
	}
}

// State returns the current lifecycle state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the mirror in server order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the mirror size.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the entry with the given id.
func (c *Controller[T]) Get(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an entry with the given id is present.
func (c *Controller[T]) Contains(id int64) bool {
	_, ok := c.Get(id)
	return ok
}

// Filter returns the entries matching pred, preserving order. It is a pure
// function of the current mirror: the result is always a subset, and
// filtering never touches the server.
func (c *Controller[T]) Filter(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Dismiss acknowledges a failure, returning the controller to Ready with
// its prior items intact.
func (c *Controller[T]) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateFailed {
		c.state = StateReady
	}
}

// Load fetches the collection and replaces the mirror wholesale, discarding
// any prior unconfirmed state. A stale response (one overtaken by a newer
// Load) is discarded rather than applied.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.state = StateLoading
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// Overtaken; the newer load owns the mirror now.
		return err
	}
	if err != nil {
		c.state = StateFailed
		return err
	}
	c.items = items
	c.state = StateReady
	return nil
}

// Create submits a new entity and, only on success, appends the
// server-returned entity (carrying the server-assigned id) to the mirror.
// On failure the mirror is untouched. A single create per view may be in
// flight at a time.
func (c *Controller[T]) Create(ctx context.Context, submit func(context.Context) (T, error)) (T, error) {
	var zero T

	c.mu.Lock()
	if c.creating {
		c.mu.Unlock()
		return zero, ErrMutationInFlight
	}
	c.creating = true
	c.state = StateMutating
	c.mu.Unlock()

	created, err := submit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creating = false
	if err != nil {
		c.state = StateFailed
		return zero, err
	}

	// Exactly once: a re-confirmed id replaces rather than duplicates.
	id := c.key(created)
	replaced := false
	for i, item := range c.items {
		if c.key(item) == id {
			c.items[i] = created
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append(c.items, created)
	}
	c.state = StateReady
	return created, nil
}

// Update submits a patch for the identified entry and, only on success,
// splices apply's result into the matching entry. On failure the mirror is
// untouched, so the caller can keep its form open with the prior input.
func (c *Controller[T]) Update(ctx context.Context, id int64, submit func(context.Context) error, apply func(T) T) error {
	if err := c.begin(id); err != nil {
		return err
	}

	err := submit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)
	if err != nil {
		c.state = StateFailed
		return err
	}
	for i, item := range c.items {
		if c.key(item) == id {
			c.items[i] = apply(item)
			break
		}
	}
	c.state = StateReady
	return nil
}

// Delete asks confirm first; a declined confirmation sends no request and
// changes nothing. On success exactly the identified entry is removed from
// the mirror. The bool result reports whether the user confirmed.
func (c *Controller[T]) Delete(ctx context.Context, id int64, confirm func() bool, submit func(context.Context) error) (bool, error) {
	if !confirm() {
		return false, nil
	}

	if err := c.begin(id); err != nil {
		return true, err
	}

	err := submit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)
	if err != nil {
		c.state = StateFailed
		return true, err
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if c.key(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.state = StateReady
	return true, nil
}

// begin marks id's mutation as in flight, rejecting a duplicate submission
// of the same logical mutation while one is outstanding.
func (c *Controller[T]) begin(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[id]; busy {
		return ErrMutationInFlight
	}
	c.inflight[id] = struct{}{}
	c.state = StateMutating
	return nil
}
