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
)

// NewStructShape creates an apis.Shape for plain structured records.
func NewStructShape() apis.Shape {
	return &structShape{}
}

// structShape expands plain structs through reflection: the field list of
// the struct type is its declared schema. Runs after the schemer and
// registry shapes, so only unregistered, non-self-describing structs
// reach it.
type structShape struct{}

// Ensure structShape implements apis.Shape.
var _ apis.Shape = (*structShape)(nil)

// TryExtract handles plain struct classes.
func (*structShape) TryExtract(n annotation.Node, w apis.Walker, cfg apis.Config) (annotation.Set, bool) {
	c, ok := n.(annotation.Class)
	if !ok || c.Type == nil || c.Type.Kind() != reflect.Struct {
		return nil, false
	}

	out := annotation.NewSet(c)
	for i := 0; i < c.Type.NumField(); i++ {
		f := c.Type.Field(i)
		if !f.IsExported() && !cfg.IncludeUnexported {
			continue
		}
		if f.Tag.Get("tcx") == "-" {
			continue
		}
		out.Merge(w.Walk(annotation.ClassOf(f.Type)))
	}
	return out, true
}
