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

package table

import (
	"errors"
	"sync"

	"dirpx.dev/slot/apis"
	"dirpx.dev/slot/cell"
	"dirpx.dev/slot/config"
	"dirpx.dev/slot/utils/names"
)

var (
	// ErrNilHolder is returned when a nil Holder is adopted.
	ErrNilHolder = errors.New("slot(table): nil holder provided")
	// ErrTableFull is returned when declaring would exceed MaxSlots.
	ErrTableFull = errors.New("slot(table): slot limit reached")
	// ErrConflictingAdopt indicates an attempt to adopt a different
	// holder under an already-declared name.
	ErrConflictingAdopt = errors.New("slot(table): conflicting slot adoption")
)

// New constructs a Table that normalizes names according to cfg.
func New(cfg apis.Config) apis.Table {
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = config.DefaultMaxSlots
	}
	return &table{cfg: cfg}
}

// table is a simple Table implementation backed by sync.Map.
type table struct {
	// cfg is the configuration used for name normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps normalized name to apis.Holder.
	m sync.Map // map[string]apis.Holder
	// count tracks the number of declared slots.
	count int
}

// Declare returns the holder for name, creating an empty cell on first use.
// It is idempotent: the same name always yields the same holder.
func (t *table) Declare(name string) (apis.Holder, error) {
	n, err := names.Normalize(name, t.cfg)
	if err != nil {
		return nil, err
	}

	// Fast read path: already declared, no locking.
	if h, ok := t.m.Load(n); ok {
		return h.(apis.Holder), nil
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under lock in case another goroutine declared meanwhile.
	if h, ok := t.m.Load(n); ok {
		return h.(apis.Holder), nil
	}
	if t.count >= t.cfg.MaxSlots {
		return nil, ErrTableFull
	}

	h := apis.Holder(cell.New[any]())
	t.m.Store(n, h)
	t.count++
	return h, nil
}

// Adopt places an existing holder under name. Builders use it to carry slots
// (and their installed values) across table rebuilds.
// It is idempotent for the same (name, holder) pair.
func (t *table) Adopt(name string, h apis.Holder) error {
	if h == nil {
		return ErrNilHolder
	}
	n, err := names.Normalize(name, t.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := t.m.Load(n); ok {
		if old.(apis.Holder) == h {
			return nil // idempotent re-adoption
		}
		return ErrConflictingAdopt
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := t.m.Load(n); ok {
		if old.(apis.Holder) == h {
			return nil
		}
		return ErrConflictingAdopt
	}
	if t.count >= t.cfg.MaxSlots {
		return ErrTableFull
	}

	t.m.Store(n, h)
	t.count++
	return nil
}

// Lookup returns the holder for a name if declared.
func (t *table) Lookup(name string) (apis.Holder, bool) {
	n, err := names.Normalize(name, t.cfg)
	if err != nil {
		return nil, false
	}
	if h, ok := t.m.Load(n); ok {
		return h.(apis.Holder), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (t *table) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, t.Count())
	t.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Slot: value.(apis.Holder),
		})
		return true
	})
	return entries
}

// Count returns the number of declared slots.
func (t *table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Reset discards all declarations. Holders handed out earlier stay valid.
func (t *table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Delete in place: replacing the sync.Map would race with the
	// lock-free Load fast paths.
	t.m.Range(func(key, _ any) bool {
		t.m.Delete(key)
		return true
	})
	t.count = 0
}
