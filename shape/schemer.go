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
	"reflect"

	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
	uref "dirpx.dev/tcx/utils/reflect"
)

// NewSchemerShape creates an apis.Shape that uses apis.Schemer.
func NewSchemerShape() apis.Shape {
	return &schemerShape{}
}

// schemerShape is a zero-registry fast path: if the class (or its pointer
// type) implements apis.Schemer, the declared fields win and no other
// shape sees the node.
type schemerShape struct{}

// Ensure schemerShape implements apis.Shape.
var _ apis.Shape = (*schemerShape)(nil)

// schemerType is the assertion target for the fast path.
var schemerType = reflect.TypeOf((*apis.Schemer)(nil)).Elem()

// TryExtract handles classes that declare their own field annotations.
func (*schemerShape) TryExtract(n annotation.Node, w apis.Walker, _ apis.Config) (annotation.Set, bool) {
	c, ok := n.(annotation.Class)
	if !ok || c.Type == nil || uref.IsComposite(c.Type) {
		return nil, false
	}
	s, ok := schemerOf(c.Type)
	if !ok {
		return nil, false
	}

	out := annotation.NewSet(c)
	for _, f := range s.TypeFields() {
		if f.Type == nil {
			continue
		}
		out.Merge(w.Walk(f.Type))
	}
	return out, true
}

// schemerOf instantiates a zero value of t (or *t) as apis.Schemer.
// TypeFields is a type-level contract, so a zero value is sufficient.
func schemerOf(t reflect.Type) (apis.Schemer, bool) {
	if t.Implements(schemerType) {
		return reflect.Zero(t).Interface().(apis.Schemer), true
	}
	if reflect.PointerTo(t).Implements(schemerType) {
		return reflect.New(t).Interface().(apis.Schemer), true
	}
	return nil, false
}
