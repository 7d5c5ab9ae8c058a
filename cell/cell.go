/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cell implements the write-once, read-many slot primitive.
//
// A Cell starts Empty and accepts exactly one Set over its whole lifetime,
// no matter how many goroutines race for it. Reads are lock-free: they are a
// single atomic pointer load, never block, never allocate, and never observe
// a partially-installed value.
//
// Interface values in Go are two words (type word + data word) and cannot be
// swapped atomically as one unit. The cell therefore keeps a single
// atomically-swappable pointer to a heap-allocated box that owns the value.
// The box is fully constructed before the compare-and-swap publishes it and
// is never relocated or mutated afterwards, so the box pointer alone decides
// Empty vs Occupied and any value obtained from a successful read stays
// valid for the life of the cell.
//
// T is typically an interface or pointer type; the cell hands back the
// installed value as stored, so all readers share one underlying instance.
package cell

import (
	"errors"
	"sync/atomic"

	"dirpx.dev/slot/apis"
)

var (
	// ErrOccupied is returned by Set when a value has already been installed,
	// whether by an earlier call or by a concurrent winner.
	ErrOccupied = errors.New("slot(cell): value already installed")
	// ErrEmpty is returned by Value when no value has been installed yet.
	ErrEmpty = errors.New("slot(cell): no value installed")
)

// box owns an installed value. It is allocated once per accepted Set and
// never mutated after publication.
type box[T any] struct {
	value T
}

// Cell is a slot that can be written exactly once and read concurrently at
// any time. The zero value is an empty, ready-to-use cell.
type Cell[T any] struct {
	// ptr is nil while Empty and points to the owning box once Occupied.
	// CompareAndSwap on ptr is the cell's entire state machine.
	ptr atomic.Pointer[box[T]]
}

// Ensure the untyped instantiation satisfies the Table currency.
var _ apis.Holder = (*Cell[any])(nil)

// New returns an empty cell. Equivalent to new(Cell[T]).
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Of returns a cell that is already occupied by v.
// Set on the returned cell fails with ErrOccupied.
func Of[T any](v T) *Cell[T] {
	c := &Cell[T]{}
	c.ptr.Store(&box[T]{value: v})
	return c
}

// Set installs v. Exactly one call over the cell's lifetime succeeds; every
// other call, including concurrent racers, returns ErrOccupied and leaves
// the installed value untouched. The rejected v is simply not retained.
//
// The successful swap publishes the fully-constructed box with release
// semantics, so a reader that observes Occupied also observes every write
// the setter performed before Set.
func (c *Cell[T]) Set(v T) error {
	if !c.ptr.CompareAndSwap(nil, &box[T]{value: v}) {
		return ErrOccupied
	}
	return nil
}

// Lookup returns the installed value, or the zero value of T and false while
// the cell is Empty. It never blocks and never allocates.
func (c *Cell[T]) Lookup() (T, bool) {
	if b := c.ptr.Load(); b != nil {
		return b.value, true
	}
	var zero T
	return zero, false
}

// Value returns the installed value, or ErrEmpty while the cell is Empty.
func (c *Cell[T]) Value() (T, error) {
	if b := c.ptr.Load(); b != nil {
		return b.value, nil
	}
	var zero T
	return zero, ErrEmpty
}

// State reports whether the cell is Empty or Occupied. A cell that reports
// Occupied stays Occupied with the same value forever.
func (c *Cell[T]) State() apis.State {
	if c.ptr.Load() != nil {
		return apis.StateOccupied
	}
	return apis.StateEmpty
}
