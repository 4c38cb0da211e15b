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

import (
	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
)

// This file provides adapters and generic companions for apis.Schemer,
// the zero-registry fast path of the tcx extraction subsystem.
//
// # Overview
//
// apis.Schemer is the primary self-description contract: a type that
// implements it declares its own field annotations, and the extraction
// logic MUST prefer those declarations and MUST NOT attempt any further
// strategies (registry lookup, plain struct reflection) for that class.
//
// Semantically, TypeFields is a type-level contract: it describes the
// *schema* of the type, not any particular instance. The returned field
// list is expected to be independent of instance state and stable across
// program executions, as long as the underlying domain model does not
// change.
//
// # Performance
//
// Implementations are intended to be cheap:
//
//   - SHOULD return a precomputed or literal slice.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//   - MUST tolerate being invoked on a zero value of the type; the
//     extraction subsystem instantiates one to reach the method.
//
// # Usage
//
// Typical usage is to declare annotations that the Go field types alone
// cannot express, such as optionals and unions:
//
//	type User struct {
//	    ID   int
//	    Tags []string
//	}
//
//	func (User) TypeFields() []annotation.Field {
//	    return []annotation.Field{
//	        {Name: "ID", Type: annotation.Of[int]()},
//	        {Name: "Tags", Type: annotation.Optional(annotation.List(annotation.Of[string]()))},
//	    }
//	}
//
//	types := tcx.Extract(User{}) // Declared fields win over reflection.

// FieldsFunc adapts a plain function to the apis.Schemer interface.
//
// # Overview
//
// FieldsFunc is a convenience adapter that allows standalone functions
// with signature `func() []annotation.Field` to satisfy apis.Schemer.
// This is useful when the schema is naturally expressed as a function
// (for example, when it must be assembled once at package initialization,
// or when schema behavior is passed as a dependency) rather than as a
// method on the record type itself.
//
// Using FieldsFunc does not change the semantics of apis.Schemer: the
// function is still expected to return a stable, type-level field list
// that does not depend on mutable instance state.
//
// # Contract
//
//   - A FieldsFunc MUST return a deterministic field list.
//   - FieldsFunc implementations MUST be safe to call from multiple
//     goroutines concurrently.
//   - FieldsFunc SHOULD avoid rebuilding the slice on the hot path; if
//     assembly is expensive, it SHOULD be precomputed and captured.
//   - FieldsFunc MUST NOT perform blocking operations or I/O.
type FieldsFunc func() []annotation.Field

// TypeFields implements apis.Schemer for FieldsFunc.
//
// Calling TypeFields on a FieldsFunc is equivalent to invoking the
// underlying function value directly. All contractual requirements of
// apis.Schemer apply to the wrapped function.
func (f FieldsFunc) TypeFields() []annotation.Field {
	return f()
}

// Ensure FieldsFunc satisfies apis.Schemer.
var _ apis.Schemer = (FieldsFunc)(nil)

// TypeSchemer provides generic, type-aware schema declaration for values
// of type T.
//
// # Overview
//
// TypeSchemer is a generic, type-parametric schema interface. It allows
// schema strategies to be expressed in terms of a Go type parameter `T`,
// while still producing field lists consumable by the tcx extraction
// subsystem, registries, or documentation generators.
//
// Unlike apis.Schemer, which is implemented as a method on the record
// type itself, TypeSchemer[T] separates:
//
//   - The *subject* being described (a value of type T), and
//   - The *strategy* that decides how to derive its schema.
//
// This is useful when:
//
//   - The same schema derivation should be reused across multiple types.
//   - Schema derivation needs to be configured or injected (for example,
//     per module, per subsystem, or per environment).
//   - You want to experiment with different schema policies without
//     changing the record types.
//
// For use with the extraction subsystem, the result SHOULD be primarily
// type-level and stable for a given concrete type.
type TypeSchemer[T any] interface {
	// TypeFields returns the declared fields for a value of type T.
	//
	// # Contract
	//
	//   - The returned list MUST be a valid field declaration according
	//     to the conventions of the surrounding system (the same rules
	//     that apply to apis.Schemer and Registry.Register).
	//   - The returned list MUST be deterministic for a given input v;
	//     for canonical, type-level schemas it SHOULD depend only on the
	//     concrete type of v, not its mutable state.
	//   - Implementations MUST be safe for concurrent calls from
	//     multiple goroutines and MUST NOT perform blocking I/O.
	TypeFields(v T) []annotation.Field
}
