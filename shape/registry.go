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
)

// NewRegistryShape creates an apis.Shape backed by a tcx schema registry.
func NewRegistryShape(reg apis.Registry) apis.Shape {
	return &registryShape{reg: reg}
}

// registryShape handles validated-record classes whose schemas were
// registered at runtime rather than self-described.
type registryShape struct {
	reg apis.Registry
}

// Ensure registryShape implements apis.Shape.
var _ apis.Shape = (*registryShape)(nil)

// TryExtract handles classes with a registered schema.
func (s *registryShape) TryExtract(n annotation.Node, w apis.Walker, _ apis.Config) (annotation.Set, bool) {
	if s.reg == nil {
		return nil, false
	}
	c, ok := n.(annotation.Class)
	if !ok || c.Type == nil {
		return nil, false
	}
	fields, ok := s.reg.Lookup(c.Type)
	if !ok {
		return nil, false
	}

	out := annotation.NewSet(c)
	for _, f := range fields {
		if f.Type == nil {
			continue
		}
		out.Merge(w.Walk(f.Type))
	}
	return out, true
}
