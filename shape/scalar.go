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

// NewScalarShape creates an apis.Shape for non-parameterized nodes.
func NewScalarShape() apis.Shape {
	return &scalarShape{}
}

// scalarShape terminates the walk on leaves: markers contribute nothing,
// bare origins and concrete classes contribute themselves. Composite
// classes are declined so they reach the generic shape.
type scalarShape struct{}

// Ensure scalarShape implements apis.Shape.
var _ apis.Shape = (*scalarShape)(nil)

// TryExtract handles markers, bare origins, and non-composite classes.
func (*scalarShape) TryExtract(n annotation.Node, _ apis.Walker, _ apis.Config) (annotation.Set, bool) {
	switch n := n.(type) {
	case annotation.Origin:
		return annotation.NewSet(n), true

	case annotation.Class:
		if n.Type == nil {
			return annotation.NewSet(), true
		}
		if uref.IsComposite(n.Type) {
			return nil, false
		}
		return annotation.NewSet(n), true

	default:
		if n == annotation.None || n == annotation.Ellipsis {
			return annotation.NewSet(), true
		}
		return nil, false
	}
}
