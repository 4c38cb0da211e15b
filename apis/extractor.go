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

// Extractor computes the transitive type closure of an annotation.
// Typical chain: SchemerShape -> RegistryShape -> StructShape ->
// ScalarShape -> GenericShape.
type Extractor interface {
	// Extract returns every type and container origin reachable from
	// root, minus cfg.Ignore (unless cfg.Unfiltered). Each call owns an
	// independent visited set; the result for the None marker alone is
	// the empty set. Extract never fails.
	Extract(root annotation.Node, cfg Config) annotation.Set
}
