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

package shape

import (
	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
	uref "dirpx.dev/tcx/utils/reflect"
)

// NewGenericShape creates an apis.Shape for parameterized nodes.
func NewGenericShape() apis.Shape {
	return &genericShape{}
}

// genericShape handles everything with an origin and arguments: explicit
// Container and Annotated nodes, plus composite Go types (pointer, slice,
// array, map, chan) decomposed on the fly. The origin itself always joins
// the result; top-level filtering decides whether callers see it.
type genericShape struct{}

// Ensure genericShape implements apis.Shape.
var _ apis.Shape = (*genericShape)(nil)

// TryExtract handles parameterized annotations.
func (*genericShape) TryExtract(n annotation.Node, w apis.Walker, _ apis.Config) (annotation.Set, bool) {
	switch n := n.(type) {
	case *annotation.Container:
		out := annotation.NewSet(n.Origin)
		walkArgs(out, n.Origin, n.Args, w)
		return out, true

	case *annotation.Annotated:
		out := annotation.NewSet(annotation.OriginAnnotated)
		if n.Elem != nil {
			// Only the wrapped annotation carries types; Meta payloads
			// never contribute.
			out.Merge(w.Walk(n.Elem))
		}
		return out, true

	case annotation.Class:
		origin, args, ok := uref.Decompose(n.Type)
		if !ok {
			return nil, false
		}
		out := annotation.NewSet(origin)
		walkArgs(out, origin, args, w)
		return out, true

	default:
		return nil, false
	}
}

// walkArgs merges the closures of args into out according to the origin:
// union branches skip the None alternative (recursing into it would add
// nothing but cost a cycle check), annotated wrappers expose only their
// first argument, ordinary containers expand every argument.
func walkArgs(out annotation.Set, origin annotation.Origin, args []annotation.Node, w apis.Walker) {
	switch origin {
	case annotation.OriginUnion:
		for _, a := range args {
			if a == nil || a == annotation.None {
				continue
			}
			out.Merge(w.Walk(a))
		}

	case annotation.OriginAnnotated:
		if len(args) > 0 && args[0] != nil {
			out.Merge(w.Walk(args[0]))
		}

	default:
		for _, a := range args {
			if a == nil {
				continue
			}
			out.Merge(w.Walk(a))
		}
	}
}
