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

// Config carries read-only naming knobs that influence slot declaration.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// StrictNames controls whether declared names must match the canonical
	// form (leading letter; lowercase letters, digits and '.', '_', '-').
	// If false, any non-empty trimmed name is accepted.
	StrictNames bool

	// FoldCase controls whether names are lowercased before use, making
	// declarations case-insensitive.
	FoldCase bool

	// MaxSlots limits the number of distinct slots a table will hold.
	// Acts as a safety guard against unbounded growth from generated names.
	MaxSlots int
}
