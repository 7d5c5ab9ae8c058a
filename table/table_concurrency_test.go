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

package table_test

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/slot/apis"
	"dirpx.dev/slot/cell"
	"dirpx.dev/slot/config"
	"dirpx.dev/slot/table"
)

// TestConcurrentDeclareAndLookup verifies that Declare/Lookup/Entries/Count
// are race-free and that concurrent declarations of the same name converge
// on a single holder.
func TestConcurrentDeclareAndLookup(t *testing.T) {
	tbl := table.New(config.DefaultConfig())

	slotNames := []string{
		"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9",
	}

	// Declare once (sequential) to establish baseline holders.
	baseline := make(map[string]apis.Holder, len(slotNames))
	for _, n := range slotNames {
		h, err := tbl.Declare(n)
		if err != nil {
			t.Fatalf("declare %s: %v", n, err)
		}
		baseline[n] = h
	}

	// Hammer with concurrent lookups and idempotent re-declarations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				n := slotNames[i%len(slotNames)]
				if h, ok := tbl.Lookup(n); !ok || h != baseline[n] {
					t.Errorf("lookup diverged for %s: ok=%v", n, ok)
					return
				}
				_ = tbl.Count()
				_ = tbl.Entries()
			}
		}()
	}

	// Writers (idempotent re-declare)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := slotNames[(i+id)%len(slotNames)]
				h, err := tbl.Declare(n) // must be safe & idempotent
				if err != nil || h != baseline[n] {
					t.Errorf("re-declare diverged for %s: %v", n, err)
					return
				}
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if tbl.Count() != len(slotNames) {
		t.Fatalf("count mismatch: got %d want %d", tbl.Count(), len(slotNames))
	}
}

// TestConcurrentInstallRace declares one slot and races many installers
// through it: exactly one must win, and afterwards every reader sees the
// winning value.
func TestConcurrentInstallRace(t *testing.T) {
	tbl := table.New(config.DefaultConfig())

	h, err := tbl.Declare("contended")
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wins atomic.Int32
	g := new(errgroup.Group)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			// Re-declare from each goroutine, like independent packages would.
			hh, err := tbl.Declare("contended")
			if err != nil {
				return err
			}
			if err := hh.Set(i); err != nil {
				if !errors.Is(err, cell.ErrOccupied) {
					return err
				}
				return nil
			}
			wins.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wins.Load() != 1 {
		t.Fatalf("winners = %d, want exactly 1", wins.Load())
	}

	want, ok := h.Lookup()
	if !ok {
		t.Fatalf("slot empty after winning install")
	}
	for i := 0; i < 100; i++ {
		got, ok := h.Lookup()
		if !ok || got != want {
			t.Fatalf("read diverged: ok=%v got=%v want=%v", ok, got, want)
		}
	}
}

// TestConcurrentDeclareDistinctNames checks MaxSlots accounting stays exact
// when distinct declarations race.
func TestConcurrentDeclareDistinctNames(t *testing.T) {
	const limit = 64
	tbl := table.New(config.NewConfig(config.WithMaxSlots(limit)))

	slotNames := make([]string, limit)
	for i := range slotNames {
		slotNames[i] = "slot-" + string(rune('a'+i%26)) + "-" + string(rune('a'+i/26))
	}

	var wg sync.WaitGroup
	wg.Add(len(slotNames))
	for _, n := range slotNames {
		go func(n string) {
			defer wg.Done()
			if _, err := tbl.Declare(n); err != nil {
				t.Errorf("declare %s: %v", n, err)
			}
		}(n)
	}
	wg.Wait()

	if tbl.Count() != limit {
		t.Fatalf("count = %d, want %d", tbl.Count(), limit)
	}
	if _, err := tbl.Declare("one-too-many"); !errors.Is(err, table.ErrTableFull) {
		t.Fatalf("expected ErrTableFull, got %v", err)
	}
}

// TestConcurrentResetAndDeclare races Reset against the lock-free read and
// declare paths. Reset must clear entries in place; swapping the underlying
// map out would race with concurrent Loads.
func TestConcurrentResetAndDeclare(t *testing.T) {
	tbl := table.New(config.DefaultConfig())

	stop := make(chan struct{})
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if _, err := tbl.Declare("churn"); err != nil {
					t.Errorf("declare: %v", err)
					return
				}
				_, _ = tbl.Lookup("churn")
				_ = tbl.Entries()
				_ = tbl.Count()
			}
		}()
	}

	for i := 0; i < 200; i++ {
		tbl.Reset()
	}
	close(stop)
	wg.Wait()

	// The table is still consistent: a fresh declaration lands and counts.
	tbl.Reset()
	if _, err := tbl.Declare("after"); err != nil {
		t.Fatalf("declare after reset: %v", err)
	}
	if tbl.Count() != 1 {
		t.Fatalf("count = %d, want 1", tbl.Count())
	}
}
