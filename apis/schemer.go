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

// Schemer is the zero-registry fast path for validated-record types: a
// type that declares its own field annotations. When a class implements
// Schemer (on the value or pointer receiver), extraction must prefer the
// declared fields and must not fall through to registry lookup or plain
// struct reflection for that class.
//
// TypeFields is a type-level contract: it must not depend on mutable
// instance state, must be safe for concurrent calls, and is invoked on a
// zero value of the type.
type Schemer interface {
	// TypeFields returns the declared fields, in declaration order.
	TypeFields() []annotation.Field
}

// Validator is an optional registration-time self-check for schema types.
// When a type registered through a Registry implements Validator, the
// registry invokes the hook on a zero value and rejects the registration
// if it returns a non-nil error.
type Validator interface {
	// ValidateSchema reports whether the type's declared schema is
	// internally consistent.
	ValidateSchema() error
}
