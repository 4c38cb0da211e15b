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

// Config carries read-only extraction knobs that influence shapes.
// It is passed by value and should be treated as immutable by
// implementations; the Ignore set in particular must not be mutated.
type Config struct {
	// Ignore holds the noise nodes subtracted from the final result at the
	// top level of a traversal. Recursive calls never filter, so container
	// and union origins stay visible to intermediate logic. A nil set
	// falls back to the standard noise set (config.DefaultIgnore).
	Ignore annotation.Set

	// Unfiltered disables top-level subtraction entirely and returns the
	// raw discovered set, including origin markers covered by Ignore.
	Unfiltered bool

	// IncludeUnexported controls whether unexported struct fields are
	// walked when a plain struct is expanded. If false, only exported
	// fields count as declared.
	IncludeUnexported bool

	// MaxDepth limits recursion depth as a safety guard against
	// pathological explicitly-built annotation trees. Zero means
	// unbounded; the visited set already guarantees termination on any
	// type graph.
	MaxDepth int
}
