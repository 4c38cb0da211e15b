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

// Describer augments apis.Schemer with human-oriented metadata about a
// record type.
//
// # Overview
//
// Describer is a higher-level contract that extends apis.Schemer with
// additional, human-readable metadata about a validated-record type. While
// Schemer focuses on the machine-consumable field declarations (the input
// to closure extraction and schema registries), Describer provides context
// that is useful for:
//
//   - Documentation and schema browsers.
//   - Debugging and introspection tools.
//   - Administrative and developer-facing UIs.
//   - Schema evolution and compatibility checks.
//
// All methods on Describer are type-level: they describe the *kind* of
// record, not any particular instance. Implementations SHOULD return values
// that are stable for a given version of the type's schema and do not depend
// on mutable runtime state.
//
// # Usage
//
//	type User struct {
//	    ID   string
//	    Name string
//	}
//
//	func (User) TypeFields() []annotation.Field {
//	    return []annotation.Field{
//	        {Name: "ID", Type: annotation.Of[string]()},
//	        {Name: "Name", Type: annotation.Of[string]()},
//	    }
//	}
//
//	func (User) SchemaDescription() string { return "User account in the system" }
//	func (User) SchemaCategory() string    { return "identity" }
//	func (User) SchemaVersion() string     { return "v1" }
//
// This metadata can then be consumed by higher-level frameworks to generate
// documentation, drive navigation, or display human-friendly descriptions
// alongside the declared field schema.
//
// # Contract
//
//   - All methods MUST be safe for concurrent use by multiple goroutines.
//   - All methods SHOULD be inexpensive and ideally allocation-free on the
//     hot path (for example, returning string literals or precomputed values).
//   - Implementations MUST NOT perform blocking operations or I/O.
//   - Returned values SHOULD be deterministic for a given type and schema
//     version; changes SHOULD correspond to deliberate schema or behavior
//     changes rather than transient runtime conditions.
type Describer interface {
	apis.Schemer

	// SchemaDescription returns a human-readable description of the record type.
	//
	// # Semantics
	//
	// SchemaDescription is intended to be a concise, human-oriented summary
	// of what the record represents in the domain model. It is typically
	// used in:
	//
	//   - Documentation or schema browsers.
	//   - Admin consoles and configuration UIs.
	//   - Debugging tools and introspection views.
	//
	// Recommended properties:
	//
	//   - SHOULD be a short, single-sentence description.
	//   - SHOULD be stable for a given version of the record schema.
	//   - SHOULD be understandable by humans without requiring knowledge
	//     of internal naming conventions.
	//
	// Localization:
	//
	//   - Implementations MAY return a description in a default locale
	//     (for example, English) if the system is not localization-aware.
	//   - If multiple locales are supported, higher-level infrastructure
	//     SHOULD handle locale selection; this interface models only the
	//     default, locale-agnostic description.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if no description is available,
	//     but callers SHOULD handle that case gracefully (for example, by
	//     falling back to the type name).
	//   - The implementation MUST be safe for concurrent calls and MUST NOT
	//     perform blocking I/O or long-running computations.
	SchemaDescription() string

	// SchemaCategory returns a coarse-grained category or domain for the record type.
	//
	// # Semantics
	//
	// SchemaCategory provides a high-level grouping that can be used for
	// organizing record types in UIs, documentation, or metrics dashboards.
	// It is typically drawn from a small, controlled vocabulary such as:
	//
	//   - "identity"
	//   - "catalog"
	//   - "payment"
	//   - "analytics"
	//   - "messaging"
	//
	// Recommended properties:
	//
	//   - SHOULD be relatively short (for example, a single word or slug).
	//   - SHOULD be stable across versions of the same record type.
	//   - SHOULD come from an application-wide controlled set of categories
	//     to keep navigation and grouping consistent.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if the record does not belong
	//     to a well-defined category, but infrastructure SHOULD be prepared
	//     to handle that case (for example, by grouping under "uncategorized").
	//   - The implementation MUST be safe for concurrent calls and SHOULD
	//     avoid allocations on the hot path (for example, by returning a
	//     string literal or precomputed value).
	SchemaCategory() string

	// SchemaVersion returns a schema or contract version for the record type.
	//
	// # Semantics
	//
	// SchemaVersion is intended to convey changes in the record's declared
	// fields, invariants, or external contract. Typical representations
	// include:
	//
	//   - Simple labels: "v1", "v2".
	//   - Semantic versions: "v1.2.0".
	//   - Date-based versions: "2024-01-15".
	//
	// This value can be used by:
	//
	//   - Migration tools and schema registries.
	//   - Backwards-compatibility checks.
	//   - Client libraries that need to adapt to different record versions.
	//
	// Recommended properties:
	//
	//   - MUST change when the declared field schema or externally visible
	//     contract of the record changes in an incompatible way.
	//   - SHOULD remain constant across deployments of the same build.
	//   - SHOULD be machine-readable enough to allow simple equality or
	//     ordering checks, where applicable.
	//
	// # Contract
	//
	//   - The returned string MAY be empty if versioning is not relevant
	//     or not modeled, but callers SHOULD treat the empty string as
	//     "version unknown" rather than "no version".
	//   - The implementation MUST be safe for concurrent use and MUST NOT
	//     perform blocking I/O or heavyweight computations.
	//   - Implementations SHOULD prefer returning a constant or precomputed
	//     version string tied to the build or schema definition, rather than
	//     deriving it at runtime.
	SchemaVersion() string
}
