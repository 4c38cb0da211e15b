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

package annotation

// Field is a declared record field: a name together with its annotation.
// Validated-record schemas (registered or self-described) are expressed as
// ordered field lists.
type Field struct {
	// Name is the declared field name. Must match a struct field when the
	// schema is registered against a struct type.
	Name string
	// Type is the field's declared annotation. A nil Type marks a field
	// with no declared annotation; such fields contribute nothing.
	Type Node
}

// String renders the field as name:annotation.
func (f Field) String() string {
	if f.Type == nil {
		return f.Name + ":<none>"
	}
	return f.Name + ":" + f.Type.String()
}
