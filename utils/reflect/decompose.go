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

package reflect

import (
	"reflect"

	"dirpx.dev/tcx/annotation"
)

// Decompose splits a composite reflect.Type into its container origin and
// argument nodes, the runtime equivalent of origin/argument introspection
// on a parameterized generic annotation.
//
// Decomposition policy:
//   - ptr        -> union[elem, None] (a pointer is optional-as-union;
//     the None alternative marks the nil case)
//   - slice      -> list[elem]
//   - array      -> tuple[elem]
//   - map[K]V    -> map[K, V]
//   - chan       -> chan[elem]
//   - default    -> not composite (ok=false)
//
// A nil type is not composite.
func Decompose(t reflect.Type) (origin annotation.Origin, args []annotation.Node, ok bool) {
	if t == nil {
		return annotation.OriginInvalid, nil, false
	}

	switch t.Kind() {
	case reflect.Pointer:
		return annotation.OriginUnion,
			[]annotation.Node{annotation.ClassOf(t.Elem()), annotation.None}, true

	case reflect.Slice:
		return annotation.OriginList,
			[]annotation.Node{annotation.ClassOf(t.Elem())}, true

	case reflect.Array:
		return annotation.OriginTuple,
			[]annotation.Node{annotation.ClassOf(t.Elem())}, true

	case reflect.Map:
		return annotation.OriginMap,
			[]annotation.Node{annotation.ClassOf(t.Key()), annotation.ClassOf(t.Elem())}, true

	case reflect.Chan:
		return annotation.OriginChan,
			[]annotation.Node{annotation.ClassOf(t.Elem())}, true

	default:
		return annotation.OriginInvalid, nil, false
	}
}

// IsComposite reports whether t decomposes into origin and arguments.
func IsComposite(t reflect.Type) bool {
	_, _, ok := Decompose(t)
	return ok
}
