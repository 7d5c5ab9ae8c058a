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

package slot

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/slot/apis"
	"dirpx.dev/slot/builder"
	"dirpx.dev/slot/config"
)

// init initializes the global slot state.
func init() {
	// Initialize state with default cfg, bld, and tbl.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	tbl, err := b.BuildTable(s.cfg, nil)
	if err != nil {
		panic(err)
	}
	s.tbl = tbl
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

// ErrNilTable is returned when a builder returns a nil table.
var ErrNilTable = errors.New("slot: builder returned nil table")

// Declare returns the global slot named name, creating an empty one on
// first use. Declaring the same name again returns the same slot.
// This is a convenience wrapper around the global tbl.
func Declare(name string) (apis.Holder, error) {
	return st.Load().tbl.Declare(name)
}

// Install declares the global slot named name if needed and installs v into
// it. Exactly one Install per name ever succeeds; later calls return
// cell.ErrOccupied and leave the installed value untouched.
// This is a convenience wrapper around the global tbl.
func Install[T any](name string, v T) error {
	h, err := Declare(name)
	if err != nil {
		return err
	}
	return h.Set(v)
}

// Peek returns the value installed under name, typed as T.
// It reports false while the slot is undeclared, still empty, or holds a
// value of a different type.
// This is a convenience wrapper around the global tbl.
func Peek[T any](name string) (T, bool) {
	var zero T
	h, ok := st.Load().tbl.Lookup(name)
	if !ok {
		return zero, false
	}
	v, ok := h.Lookup()
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Stat reports the state of the slot named name and whether it is declared.
// This is a convenience wrapper around the global tbl.
func Stat(name string) (apis.State, bool) {
	if h, ok := st.Load().tbl.Lookup(name); ok {
		return h.State(), true
	}
	return apis.StateEmpty, false
}

// SetAll explicitly sets all global slot state components.
//
// Nil arguments leave the corresponding component unchanged, except for tbl:
// a nil tbl is rebuilt from the previous one via the builder and unpinned.
// SetAll panics if the rebuild cannot adopt an existing slot, rather than
// publishing a snapshot that lost declarations.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, tbl apis.Table, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Table
	ntbl := tbl
	nptbl := false
	if ntbl == nil {
		var err error
		ntbl, err = nbld.BuildTable(ncfg, old.tbl)
		if err != nil {
			panic(err)
		}
	} else {
		nptbl = true
	}

	// Ensure non-nil tbl.
	if ntbl == nil {
		panic(ErrNilTable)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			tbl:  ntbl,
			bld:  nbld,
			ptbl: nptbl,
		},
	)
}

// Config returns the global slot configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global slot configuration to cfg.
// It rebuilds the global tbl using the new configuration unless the tbl is
// pinned; a rebuild adopts the existing holders, so occupied slots keep
// their installed values. If the new configuration cannot hold an existing
// slot (for example, a tightened naming rule), SetConfig panics and the
// previous snapshot stays in effect.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build a new tbl based on the new cfg and old state.
	ntbl := old.tbl
	if !old.ptbl {
		var err error
		ntbl, err = b.BuildTable(cfg, old.tbl)
		if err != nil {
			panic(err)
		}
	}

	// Ensure non-nil tbl.
	if ntbl == nil {
		panic(ErrNilTable)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			tbl:  ntbl,
			bld:  b,
			ptbl: old.ptbl,
		},
	)
}

// Table returns the global slot tbl.
func Table() apis.Table {
	return st.Load().tbl
}

// SetTable sets the global slot tbl to tbl and pins it.
// This is a convenience wrapper around the global state.
func SetTable(tbl apis.Table) {
	if tbl == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			tbl:  tbl,
			bld:  old.bld,
			ptbl: true,
		},
	)
}

// Builder returns the global slot bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global slot bld to b.
// It rebuilds the global tbl with the new builder unless the tbl is pinned,
// panicking (with the previous snapshot intact) if the rebuild cannot adopt
// an existing slot.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build a new tbl based on the new bld and old state.
	ntbl := old.tbl
	if !old.ptbl {
		var err error
		ntbl, err = b.BuildTable(old.cfg, old.tbl)
		if err != nil {
			panic(err)
		}
	}

	// Ensure non-nil tbl.
	if ntbl == nil {
		panic(ErrNilTable)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			tbl:  ntbl,
			bld:  b,
			ptbl: old.ptbl,
		},
	)
}

// IsTablePinned returns whether the global slot tbl is pinned (immutable).
func IsTablePinned() bool {
	return st.Load().ptbl
}

// PinTable makes the global slot tbl immune to rebuilds.
func PinTable() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			tbl:  old.tbl,
			bld:  old.bld,
			ptbl: true,
		},
	)
}

// UnpinTable makes the global slot tbl rebuildable again.
func UnpinTable() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			tbl:  old.tbl,
			bld:  old.bld,
			ptbl: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global slot state.
var st atomic.Pointer[state]

// state is the global slot state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global slot configuration.
	cfg apis.Config
	// tbl is the global slot tbl.
	tbl apis.Table
	// bld is the global slot bld.
	bld apis.Builder
	// ptbl indicates whether the tbl is pinned (immune to rebuilds).
	ptbl bool
}
