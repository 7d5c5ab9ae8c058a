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

package names

import (
	"errors"
	"strings"

	"dirpx.dev/slot/apis"
)

var (
	// ErrEmptyName is returned when a name is empty after trimming.
	ErrEmptyName = errors.New("names: empty slot name provided")
	// ErrBadName indicates a name that does not match the canonical form.
	ErrBadName = errors.New("names: slot name not in canonical form")
	// ErrNameTooLong indicates a name longer than MaxNameLen bytes.
	ErrNameTooLong = errors.New("names: slot name exceeds maximum length")
)

// MaxNameLen bounds normalized name length. Names are expected to be short,
// dot-separated identifiers like "log.sink" or "metrics.backend".
const MaxNameLen = 128

// Normalize canonicalizes a slot name according to cfg and validates it.
//
// Policy:
//   - surrounding whitespace is trimmed;
//   - empty names are rejected;
//   - if cfg.FoldCase, the name is lowercased (case-insensitive tables);
//   - names longer than MaxNameLen are rejected;
//   - if cfg.StrictNames, the name must start with a lowercase letter and
//     contain only lowercase letters, digits, '.', '_' or '-'.
func Normalize(name string, cfg apis.Config) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if cfg.FoldCase {
		name = strings.ToLower(name)
	}
	if len(name) > MaxNameLen {
		return "", ErrNameTooLong
	}
	if cfg.StrictNames && !isCanonical(name) {
		return "", ErrBadName
	}
	return name, nil
}

// isCanonical reports whether name matches the strict slot-name grammar.
// Plain byte loop: names are ASCII by contract, so no rune decoding needed.
func isCanonical(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			// always fine
		case c >= '0' && c <= '9', c == '.', c == '_', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
