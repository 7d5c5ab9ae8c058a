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

package apis

// Table maps stable slot names to Holders. Keep it minimal so implementations
// can be lock-free or sync.Map-backed on the read path.
type Table interface {
	// Declare returns the Holder for name, creating an empty one on first
	// use. Declaring the same name again returns the same Holder.
	Declare(name string) (Holder, error)
	// Adopt places an existing Holder under name. Builders use it to carry
	// slots (and their installed values) across table rebuilds.
	// Implementations should be idempotent for the same (name, holder) pair;
	// conflicting re-adoptions return an error.
	Adopt(name string, h Holder) error
	// Lookup returns the Holder for name if it has been declared.
	Lookup(name string) (Holder, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of declared slots.
	Count() int
	// Reset discards all declarations. It does not (and cannot) reset an
	// individual Holder: callers still referencing a discarded Holder keep
	// a valid, possibly occupied slot.
	Reset()
}

// Entry is a single (name, slot) association in a Table snapshot.
type Entry struct {
	// Name is the normalized slot name.
	Name string
	// Slot is the declared Holder.
	Slot Holder
}
