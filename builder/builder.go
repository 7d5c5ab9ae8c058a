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

package builder

import (
	"fmt"

	"dirpx.dev/slot/apis"
	"dirpx.dev/slot/table"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildTable builds and returns a new apis.Table based on the provided
// configuration and pre-existing table. If a pre-existing table is provided,
// its holders are adopted into the new table, so slots that were already
// occupied stay occupied: a value installed once is never dropped by a
// rebuild. A previous slot that the new configuration cannot hold (name no
// longer valid, slot limit too small, case-fold collision) fails the whole
// build instead of being dropped.
func (b *builder) BuildTable(cfg apis.Config, prev apis.Table) (apis.Table, error) {
	ntbl := table.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			if err := ntbl.Adopt(e.Name, e.Slot); err != nil {
				return nil, fmt.Errorf("slot(builder): adopt %q: %w", e.Name, err)
			}
		}
	}
	return ntbl, nil
}
