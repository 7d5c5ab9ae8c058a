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

package config

import (
	"dirpx.dev/slot/apis"
)

const (
	// DefaultStrictNames represents the default for StrictNames.
	// When true, declared names must match the canonical slot-name grammar.
	DefaultStrictNames = true
	// DefaultFoldCase represents the default for FoldCase.
	// When true, slot names are case-insensitive.
	DefaultFoldCase = false
	// DefaultMaxSlots represents the default for MaxSlots.
	// A value of 1024 should be sufficient for all practical purposes.
	DefaultMaxSlots = 1024
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxSlots is valid.
	if cfg.MaxSlots < 0 {
		cfg.MaxSlots = DefaultMaxSlots
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictNames: DefaultStrictNames,
		FoldCase:    DefaultFoldCase,
		MaxSlots:    DefaultMaxSlots,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictNames sets the StrictNames option.
func WithStrictNames(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictNames = strict
	}
}

// WithFoldCase sets the FoldCase option.
func WithFoldCase(fold bool) Option {
	return func(c *apis.Config) {
		c.FoldCase = fold
	}
}

// WithMaxSlots sets the MaxSlots option.
// A negative value resets to the default.
func WithMaxSlots(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxSlots = DefaultMaxSlots
			return
		}
		c.MaxSlots = max
	}
}
