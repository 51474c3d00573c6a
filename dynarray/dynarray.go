// Package dynarray provides Array, an ordered, index-addressable container
// with amortized O(1) append.
//
// Storage policy:
//   - Initial capacity is InitialCapacity (8).
//   - Append doubles the capacity when Len() == Cap(); this is the only resize trigger.
//   - Capacity never shrinks, even as the logical length decreases.
//   - Slots past Len() are considered absent; they are zeroed when vacated so a
//     dropped element is never kept reachable by the array.
//
// Errors:
//   - ErrOutOfRange: index outside [0, Len()).
//   - ErrEmpty:      Last/DecrementSize on an empty array.
//
// Complexity:
//   - Append: amortized O(1), worst O(n) on reallocation.
//   - Get/Set/Last/DecrementSize: O(1).
//   - RemoveAt: O(n - index) for the left shift.
package dynarray

import (
	"errors"
	"fmt"
)

// InitialCapacity is the number of slots allocated by New.
const InitialCapacity = 8

// growthFactor multiplies the capacity on reallocation.
const growthFactor = 2

var (
	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmpty indicates that an operation needs at least one element.
	ErrEmpty = errors.New("dynarray: array is empty")
)

// Array is a growable sequence of T. The zero value is not usable; create
// arrays with New.
type Array[T any] struct {
	data []T // backing storage; len(data) is the capacity
	size int // logical length, 0 <= size <= len(data)
}

// New returns an empty array with InitialCapacity slots.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, InitialCapacity)}
}

// Len returns the number of elements stored (not the capacity).
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return len(a.data) }

// Append stores v after the last element, doubling the backing storage
// first when it is full.
func (a *Array[T]) Append(v T) {
	if a.size == len(a.data) {
		a.resize(growthFactor * len(a.data))
	}
	a.data[a.size] = v
	a.size++
}

// resize moves the live elements into a fresh buffer of newCap slots.
func (a *Array[T]) resize(newCap int) {
	buf := make([]T, newCap)
	copy(buf, a.data[:a.size])
	a.data = buf
}

// RemoveAt deletes the element at index i, shifting every following element
// one slot to the left.
func (a *Array[T]) RemoveAt(i int) error {
	if err := a.check("RemoveAt", i); err != nil {
		return err
	}
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	a.size--
	var zero T
	a.data[a.size] = zero

	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.check("Get", i); err != nil {
		var zero T
		return zero, err
	}

	return a.data[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check("Set", i); err != nil {
		return err
	}
	a.data[i] = v

	return nil
}

// Last returns the most recently appended element still present.
func (a *Array[T]) Last() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, fmt.Errorf("Last: %w", ErrEmpty)
	}

	return a.data[a.size-1], nil
}

// DecrementSize logically drops the last element in O(1). The capacity is
// unchanged.
func (a *Array[T]) DecrementSize() error {
	if a.size == 0 {
		return fmt.Errorf("DecrementSize: %w", ErrEmpty)
	}
	a.size--
	var zero T
	a.data[a.size] = zero

	return nil
}

// Swap exchanges the elements at indices i and j.
func (a *Array[T]) Swap(i, j int) error {
	if err := a.check("Swap", i); err != nil {
		return err
	}
	if err := a.check("Swap", j); err != nil {
		return err
	}
	a.data[i], a.data[j] = a.data[j], a.data[i]

	return nil
}

// Clear drops every element and zeroes the used slots, keeping the capacity.
func (a *Array[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
}

// check enforces 0 <= i < Len().
func (a *Array[T]) check(method string, i int) error {
	if i < 0 || i >= a.size {
		return fmt.Errorf("%s(%d) with len %d: %w", method, i, a.size, ErrOutOfRange)
	}

	return nil
}
