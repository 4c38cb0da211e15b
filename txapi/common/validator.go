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

package common

import "dirpx.dev/tcx/apis"

// ValidatorFunc adapts a plain function to the apis.Validator interface.
//
// # Overview
//
// apis.Validator is the registration-time self-check hook of the tcx
// schema registry: when a type registered through Registry.Register
// implements it, the registry invokes ValidateSchema on a zero value and
// rejects the registration if the hook returns a non-nil error.
//
// ValidatorFunc allows standalone functions with signature `func() error`
// to satisfy that contract, which is convenient when the check is
// naturally expressed as a function (for example, a package-level
// consistency check shared by several record types) rather than as a
// method on the record type itself.
//
// # Semantics
//
// The hook answers one question: "is this type's declared schema
// internally consistent?". Typical checks include:
//
//   - Required declared fields are present.
//   - Version markers and field declarations agree.
//   - Mutually exclusive fields are not declared together.
//
// The hook is type-level. It runs on a zero value, MUST NOT depend on
// instance state, and MUST NOT attempt to validate *instances* of the
// type; instance validation is explicitly outside the extraction
// subsystem's scope.
//
// # Contract
//
//   - ValidateSchema MUST be deterministic for a given type and schema
//     version.
//   - ValidateSchema MUST be safe for concurrent calls from multiple
//     goroutines.
//   - ValidateSchema MUST NOT perform blocking operations or I/O; it
//     runs inline on the registration path.
//   - A nil error means the schema is acceptable; any non-nil error
//     aborts the registration and is surfaced to the caller wrapped in
//     the registry's error context.
type ValidatorFunc func() error

// ValidateSchema implements apis.Validator for ValidatorFunc.
//
// Calling ValidateSchema on a ValidatorFunc is equivalent to invoking the
// underlying function value directly. All contractual requirements of
// apis.Validator apply to the wrapped function.
func (f ValidatorFunc) ValidateSchema() error {
	return f()
}

// Ensure ValidatorFunc satisfies apis.Validator.
var _ apis.Validator = (ValidatorFunc)(nil)
