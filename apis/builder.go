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

// Builder composes a Table from a Config.
// Implementations must adopt the Holders of the previous table (prev) rather
// than create fresh ones, so that occupied slots survive a rebuild.
type Builder interface {
	// BuildTable constructs a Table for Config. prev may be nil.
	// If any slot of prev cannot be adopted under the new configuration
	// (a tightened naming rule, a smaller slot limit, a case-fold
	// collision), BuildTable returns an error instead of a table that
	// silently dropped declarations.
	BuildTable(cfg Config, prev Table) (Table, error)
}
