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

// Holder is the untyped contract of a write-once slot as seen by a Table.
// Implementations must be safe for unsynchronized concurrent use: Set is a
// one-shot atomic install, Lookup and State never block and never take locks.
//
// The canonical implementation is cell.Cell[any]; typed access on top of a
// Holder is provided by the generic helpers in the root package.
type Holder interface {
	// Set installs v exactly once. A second call, from any goroutine,
	// returns an "already installed" error and leaves the slot unchanged.
	Set(v any) error
	// Lookup returns the installed value, or (nil, false) while Empty.
	Lookup() (any, bool)
	// State reports Empty or Occupied.
	State() State
}
