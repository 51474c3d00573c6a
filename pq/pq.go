package pq

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/densepath/dynarray"
)

// Sentinel errors returned by Queue.
var (
	// ErrNilQueue indicates a method call on a nil *Queue.
	ErrNilQueue = errors.New("pq: queue is nil")

	// ErrEmptyQueue indicates a peek or removal on a queue holding no entries.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrDestroyed indicates use of a queue after Destroy.
	ErrDestroyed = errors.New("pq: queue is destroyed")

	// ErrHeapViolation indicates that a parent has a larger priority than its child.
	ErrHeapViolation = errors.New("pq: heap property violated")
)

// entry pairs a payload with its priority. The queue owns the wrapper only.
type entry[V any, P constraints.Integer] struct {
	priority P
	value    V
}

// Queue is a min-priority queue of V keyed by an integer priority P.
type Queue[V any, P constraints.Integer] struct {
	items     *dynarray.Array[entry[V, P]]
	destroyed bool
}

// New returns an empty queue.
func New[V any, P constraints.Integer]() *Queue[V, P] {
	return &Queue[V, P]{items: dynarray.New[entry[V, P]]()}
}

// IsEmpty reports whether the queue holds no entries. A nil or destroyed
// queue is empty.
func (q *Queue[V, P]) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of entries held.
func (q *Queue[V, P]) Len() int {
	if q == nil || q.destroyed {
		return 0
	}

	return q.items.Len()
}

// Insert adds value with the given priority and restores the heap property.
func (q *Queue[V, P]) Insert(value V, priority P) error {
	if err := q.usable(); err != nil {
		return err
	}
	q.items.Append(entry[V, P]{priority: priority, value: value})

	return q.siftUp(q.items.Len() - 1)
}

// PeekFirst returns the value with the lowest priority without removing it.
func (q *Queue[V, P]) PeekFirst() (V, error) {
	root, err := q.root()
	if err != nil {
		var zero V
		return zero, err
	}

	return root.value, nil
}

// PeekFirstPriority returns the lowest priority currently held.
func (q *Queue[V, P]) PeekFirstPriority() (P, error) {
	root, err := q.root()
	if err != nil {
		return 0, err
	}

	return root.priority, nil
}

// RemoveFirst removes and returns the value with the lowest priority.
// The payload is handed over to the caller; the queue drops its reference.
func (q *Queue[V, P]) RemoveFirst() (V, error) {
	var zero V
	root, err := q.root()
	if err != nil {
		return zero, err
	}

	last, err := q.items.Last()
	if err != nil {
		return zero, err
	}
	if err = q.items.Set(0, last); err != nil {
		return zero, err
	}
	if err = q.items.DecrementSize(); err != nil {
		return zero, err
	}
	if q.items.Len() > 0 {
		if err = q.siftDown(0); err != nil {
			return zero, err
		}
	}

	return root.value, nil
}

// Destroy releases every remaining entry. Payloads are not touched; any
// further use of the queue returns ErrDestroyed.
func (q *Queue[V, P]) Destroy() error {
	if q == nil {
		return ErrNilQueue
	}
	if q.destroyed {
		return ErrDestroyed
	}
	q.items.Clear()
	q.destroyed = true

	return nil
}

// Validate checks the heap property over the whole backing array and
// reports the first offending parent/child pair.
func (q *Queue[V, P]) Validate() error {
	if err := q.usable(); err != nil {
		return err
	}
	for i := 1; i < q.items.Len(); i++ {
		p := parent(i)
		pp, err := q.priorityAt(p)
		if err != nil {
			return err
		}
		cp, err := q.priorityAt(i)
		if err != nil {
			return err
		}
		if pp > cp {
			return fmt.Errorf("%w: parent %d (priority %d) > child %d (priority %d)",
				ErrHeapViolation, p, pp, i, cp)
		}
	}

	return nil
}

// usable rejects nil and destroyed queues.
func (q *Queue[V, P]) usable() error {
	if q == nil {
		return ErrNilQueue
	}
	if q.destroyed {
		return ErrDestroyed
	}

	return nil
}

// root returns the entry at index 0.
func (q *Queue[V, P]) root() (entry[V, P], error) {
	if err := q.usable(); err != nil {
		return entry[V, P]{}, err
	}
	if q.items.Len() == 0 {
		return entry[V, P]{}, ErrEmptyQueue
	}

	return q.items.Get(0)
}

func (q *Queue[V, P]) priorityAt(i int) (P, error) {
	e, err := q.items.Get(i)
	if err != nil {
		return 0, err
	}

	return e.priority, nil
}

// siftUp moves the entry at i towards the root while it is strictly smaller
// than its parent.
func (q *Queue[V, P]) siftUp(i int) error {
	for i > 0 {
		p := parent(i)
		cur, err := q.priorityAt(i)
		if err != nil {
			return err
		}
		pp, err := q.priorityAt(p)
		if err != nil {
			return err
		}
		if cur >= pp {
			return nil
		}
		if err = q.items.Swap(i, p); err != nil {
			return err
		}
		i = p
	}

	return nil
}

// siftDown moves the entry at i towards the leaves, swapping with the
// smaller child until neither child is smaller.
func (q *Queue[V, P]) siftDown(i int) error {
	n := q.items.Len()
	for {
		smallest := i
		best, err := q.priorityAt(i)
		if err != nil {
			return err
		}
		for _, c := range [2]int{left(i), right(i)} {
			if c >= n {
				continue
			}
			cp, err := q.priorityAt(c)
			if err != nil {
				return err
			}
			if cp < best {
				smallest, best = c, cp
			}
		}
		if smallest == i {
			return nil
		}
		if err = q.items.Swap(i, smallest); err != nil {
			return err
		}
		i = smallest
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
