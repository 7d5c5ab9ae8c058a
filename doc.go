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

// Package slot provides write-once, read-many capability slots.
//
// A slot is a place a process can publish a dynamically-dispatched value
// exactly once, and read concurrently at any time, including before it has
// been published. This is the mechanism behind facade patterns: a library
// declares an abstract capability and a slot for it, the embedding binary
// installs the concrete implementation once at startup, and all other code
// reads through the slot without knowing the concrete type.
//
// # Design
//
// The module is layered:
//
//   - cell: the primitive. cell.Cell[T] is a generic slot whose zero value
//     is an empty, ready-to-use cell. Set installs a value with a single
//     compare-and-swap and exactly one concurrent caller ever wins; every
//     read is one atomic pointer load. Interface values in Go are two
//     machine words and cannot be swapped atomically as a unit, so the cell
//     stores one atomically-swappable pointer to a heap box that owns the
//     value; the box is never relocated or mutated after publication.
//
//   - cell.Fallback[T]: the default-backed variant. Its Get substitutes a
//     memoized static default instance while the cell is still empty, so a
//     facade's call sites stay oblivious to whether startup wiring has run
//     yet. A plain Cell deliberately has no never-fails read: Go cannot
//     gate a method on a capability of T, so the gate is structural — Get
//     exists only on Fallback, and a Fallback is only built with a default.
//
//   - apis: the small interface surface (Holder, Table, Builder, Config,
//     State) shared by all layers.
//
//   - table: a process-wide mapping from stable names ("log.sink",
//     "metrics.backend") to untyped slots, for binaries that wire
//     capabilities dynamically rather than through package-level variables.
//
//   - This root package: a read-mostly global snapshot (state) holding the
//     active Config, Table and Builder. Readers load the snapshot pointer
//     atomically and never take locks; writers take a short build mutex,
//     assemble a brand-new state and publish it with one atomic swap.
//
// # Global API
//
// Read helpers:
//
//	Declare(name) (apis.Holder, error)
//	Peek[T](name) (T, bool)
//	Stat(name) (apis.State, bool)
//	Config() / Table() / Builder() / IsTablePinned()
//
// These are safe for concurrent use without additional locking and always
// read from the latest published snapshot.
//
// Write helpers:
//
//	Install[T](name, v) error
//	SetConfig(cfg) / SetBuilder(b) / SetTable(tbl)
//	PinTable() / UnpinTable()
//	SetAll(cfg, tbl, bld)
//
// Install is the one-shot publication: the first Install for a name wins,
// every later Install returns cell.ErrOccupied, and the installed value is
// permanent for the life of the table. The remaining write helpers
// reconfigure the snapshot itself; SetAll is the hard-reset API used mainly
// by tests to get deterministic state between cases.
//
// # Concurrency model
//
// Slot reads (Peek, cell.Lookup, Fallback.Get) are wait-free: one atomic
// load, no locks, no allocation, no error path. The install CAS publishes
// the fully-constructed value with release semantics and readers observe it
// with acquire semantics, so no reader ever sees a partially-constructed
// value. Snapshot writes (SetConfig and friends) take buildMu, build a new
// state, and swap it in; a table rebuild adopts the existing holders, so an
// occupied slot is never reset, replaced, or dropped by reconfiguration. A
// rebuild that cannot adopt every holder panics instead of publishing a
// lossy snapshot, leaving the previous state in effect.
//
// # Pinning
//
// SetTable(tbl) installs an exact Table and pins it: later SetConfig or
// SetBuilder calls will not rebuild it until UnpinTable(). Pinning exists
// for binaries (and tests) that need full control of the table while still
// letting configuration evolve.
//
// # Usage pattern in a facade library
//
// A typical capability-owning package does:
//
//	type Sink interface{ Write(e Event) }
//
//	var sink = cell.WithDefault(func() Sink { return nopSink{} })
//
//	func SetSink(s Sink) error { return sink.Set(s) }
//	func write(e Event)        { sink.Get().Write(e) }
//
// and the embedding binary calls SetSink exactly once during startup.
// Before that call every write goes to the harmless default; after it,
// every write goes to the installed implementation, forever.
//
// # Scope
//
// slot is intentionally small. It does not try to be a DI container or a
// service locator. It only solves one job:
//
//	"Publish a capability implementation at most once, and let any number
//	 of concurrent readers dereference it safely, with a static fallback
//	 before publication."
//
// Reinitialization, goroutine-local slots, and the facades themselves
// belong to higher layers.
package slot
