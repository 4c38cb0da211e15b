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

package extractor

import (
	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
	"dirpx.dev/tcx/config"
)

// New constructs an apis.Extractor that dispatches nodes across the given
// shapes in order. Nil shapes are ignored. The returned extractor is safe
// for concurrent use provided shapes themselves are safe for concurrent
// TryExtract calls; every Extract call owns an independent visited set.
func New(shapes ...apis.Shape) apis.Extractor {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Shape, 0, len(shapes))
	for _, s := range shapes {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{shapes: out}
}

// chain is an immutable, order-preserving extractor over a set of shapes.
type chain struct {
	shapes []apis.Shape
}

// Extract runs the cycle-guarded walk from root and applies the top-level
// ignore subtraction. Recursive calls never filter; only the caller-facing
// result is reduced, so intermediate logic keeps seeing origin markers.
func (c chain) Extract(root annotation.Node, cfg apis.Config) annotation.Set {
	w := &walker{
		shapes: c.shapes,
		cfg:    cfg,
		seen:   make(map[annotation.Node]struct{}),
	}
	out := w.Walk(root)

	if cfg.Unfiltered {
		return out
	}
	ignore := cfg.Ignore
	if ignore == nil {
		ignore = config.DefaultIgnore()
	}
	return out.Difference(ignore)
}

// walker carries the per-traversal state: the shared visited set and the
// recursion depth. It is created fresh for every top-level Extract and
// discarded on return.
type walker struct {
	shapes []apis.Shape
	cfg    apis.Config
	seen   map[annotation.Node]struct{}
	depth  int
}

// Ensure walker implements apis.Walker.
var _ apis.Walker = (*walker)(nil)

// Walk extracts the closure of n within the current traversal.
func (w *walker) Walk(n annotation.Node) annotation.Set {
	if n == nil {
		return annotation.NewSet()
	}
	// Prune before touching the visited set: a node cut off at the depth
	// limit was never expanded, so it must stay eligible for a later,
	// shallower visit along another path.
	if w.cfg.MaxDepth > 0 && w.depth >= w.cfg.MaxDepth {
		return annotation.NewSet()
	}
	// Repeat visit: the earlier call that first entered this node already
	// contributed it, so a cycle or diamond yields the empty set here.
	if _, ok := w.seen[n]; ok {
		return annotation.NewSet()
	}
	w.seen[n] = struct{}{}
	w.depth++
	defer func() { w.depth-- }()

	for _, s := range w.shapes {
		if out, ok := s.TryExtract(n, w, w.cfg); ok {
			return out
		}
	}
	// Unrecognized node: contributes nothing.
	return annotation.NewSet()
}
