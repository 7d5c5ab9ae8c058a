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

// State is the lifecycle state of a slot. A slot starts Empty and moves to
// Occupied on the first accepted install; it never moves back.
type State uint32

const (
	// StateEmpty means no value has been installed yet.
	StateEmpty State = iota
	// StateOccupied means a value has been installed and is permanent.
	StateOccupied
)

// String returns a short human-readable form of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateOccupied:
		return "occupied"
	default:
		return "invalid"
	}
}
