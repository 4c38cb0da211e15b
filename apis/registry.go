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

import (
	"reflect"

	"dirpx.dev/tcx/annotation"
)

// Registry associates struct types with declared field annotations,
// turning a plain struct into a validated-record schema. Keep it minimal
// so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register associates a struct type with its declared fields.
	// Implementations must validate the schema (struct type, known and
	// unique field names, non-nil annotations) and should be idempotent;
	// conflicting re-registrations return an error.
	Register(t reflect.Type, fields []annotation.Field) error
	// Lookup returns the declared fields for a type if present. The
	// returned slice is shared; callers must not mutate it.
	Lookup(t reflect.Type) (fields []annotation.Field, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered schemas.
	Count() int
	// Reset clears all registered schemas.
	Reset()
}

// Entry is a single (type, fields) association in a Registry snapshot.
type Entry struct {
	// Type is the registered struct type.
	Type reflect.Type
	// Fields are the declared field annotations.
	Fields []annotation.Field
}
