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

package builder

import (
	"dirpx.dev/tcx/apis"
	"dirpx.dev/tcx/extractor"
	"dirpx.dev/tcx/registry"
	"dirpx.dev/tcx/shape"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its schemas are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Fields)
		}
	}
	return nreg
}

// BuildExtractor builds and returns a new apis.Extractor based on the provided
// configuration, registry, and pre-existing extractor. The shape chain preserves the
// dispatch precedence: validated-record probes first (schemer, then registry), the
// plain-struct record probe next, and scalar before generic so only parameterized
// nodes reach the generic shape.
func (b *builder) BuildExtractor(cfg apis.Config, reg apis.Registry, _ apis.Extractor, _ any) apis.Extractor {
	return extractor.New(
		shape.NewSchemerShape(),
		shape.NewRegistryShape(reg),
		shape.NewStructShape(),
		shape.NewScalarShape(),
		shape.NewGenericShape(),
	)
}
