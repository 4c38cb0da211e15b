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
	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
)

const (
	// DefaultUnfiltered represents the default for Unfiltered.
	// When false, the standard noise set is subtracted at the top level.
	DefaultUnfiltered = false
	// DefaultIncludeUnexported represents the default for IncludeUnexported.
	// When false, only exported struct fields count as declared.
	DefaultIncludeUnexported = false
	// DefaultMaxDepth represents the default for MaxDepth.
	// Zero means unbounded; the visited set already guarantees termination.
	DefaultMaxDepth = 0
)

// DefaultIgnore returns a fresh copy of the standard noise set: the absence
// and ellipsis markers plus the union, list, tuple, and annotated origins.
// Each call returns a new Set so callers can extend it without affecting
// other configurations.
func DefaultIgnore() annotation.Set {
	return annotation.NewSet(
		annotation.None,
		annotation.Ellipsis,
		annotation.OriginUnion,
		annotation.OriginList,
		annotation.OriginTuple,
		annotation.OriginAnnotated,
	)
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxDepth is valid.
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Ignore:            DefaultIgnore(),
		Unfiltered:        DefaultUnfiltered,
		IncludeUnexported: DefaultIncludeUnexported,
		MaxDepth:          DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIgnore replaces the ignore set. A nil set resets to the default
// noise set; to disable filtering use WithUnfiltered instead.
func WithIgnore(ignore annotation.Set) Option {
	return func(c *apis.Config) {
		if ignore == nil {
			c.Ignore = DefaultIgnore()
			return
		}
		c.Ignore = ignore
	}
}

// WithExtraIgnore adds nodes to the current ignore set.
func WithExtraIgnore(nodes ...annotation.Node) Option {
	return func(c *apis.Config) {
		if c.Ignore == nil {
			c.Ignore = DefaultIgnore()
		}
		c.Ignore.Insert(nodes...)
	}
}

// WithUnfiltered sets the Unfiltered option.
func WithUnfiltered(unfiltered bool) Option {
	return func(c *apis.Config) {
		c.Unfiltered = unfiltered
	}
}

// WithIncludeUnexported sets the IncludeUnexported option.
func WithIncludeUnexported(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeUnexported = include
	}
}

// WithMaxDepth sets the MaxDepth option.
// A negative value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}
