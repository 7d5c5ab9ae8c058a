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

package cell

import (
	"errors"
	"sync"
)

// ErrNilDefault is the panic value of WithDefault when def is nil.
var ErrNilDefault = errors.New("slot(cell): nil default constructor")

// Fallback is the default-backed cell variant. It behaves like Cell, and
// additionally offers Get: a transparent read that substitutes a static
// default instance while the cell is still Empty.
//
// Go cannot conditionally expose a method depending on a capability of T,
// so the gate is structural instead: Get exists only on Fallback, and a
// Fallback can only be built through WithDefault. A plain Cell offers no
// read path that could silently hand out an uninitialized value.
type Fallback[T any] struct {
	Cell[T]
	def func() T
}

// WithDefault returns an empty fallback-backed cell.
//
// def supplies the default instance. It is memoized: it runs at most once,
// on the first Get that finds the cell Empty, and every pre-install Get
// returns that same instance. If the cell is Set before anyone reads it,
// def is never invoked. The default must be safe for concurrent use with no
// further initialization; a no-op or sentinel implementation is expected.
//
// WithDefault panics with ErrNilDefault if def is nil.
func WithDefault[T any](def func() T) *Fallback[T] {
	if def == nil {
		panic(ErrNilDefault)
	}
	return &Fallback[T]{def: sync.OnceValue(def)}
}

// Get returns the installed value, or the default instance while Empty.
// It never fails and never blocks. Note that it shadows Cell.Value's error
// form; the checked reads remain available via Lookup and Value.
//
// A zero-value Fallback (not built through WithDefault) carries no default:
// Get on one panics with ErrNilDefault while the cell is Empty. Use the
// checked reads, or construct via WithDefault.
func (f *Fallback[T]) Get() T {
	if v, ok := f.Lookup(); ok {
		return v
	}
	if f.def == nil {
		panic(ErrNilDefault)
	}
	return f.def()
}
