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

import "dirpx.dev/tcx/annotation"

// Walker is the recursion handle an Extractor threads through its shapes.
// Walk shares the traversal's visited set: a node already entered during
// the current traversal yields the empty set immediately.
type Walker interface {
	// Walk extracts the closure of n within the current traversal.
	Walk(n annotation.Node) annotation.Set
}

// Shape is a pluggable handler for one annotation shape. An Extractor
// dispatches a node across multiple shapes in precedence order (e.g.,
// Schemer -> Registry -> Struct -> Scalar -> Generic); the first shape
// that recognizes the node wins.
type Shape interface {
	// TryExtract attempts to handle n. It returns (result, true) if the
	// node matched this shape; otherwise (nil, false) to fall through.
	// Handlers recurse into child annotations via w.
	TryExtract(n annotation.Node, w Walker, cfg Config) (annotation.Set, bool)
}
