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

// Package tcx provides a global, process-wide type-closure extraction service.
//
// tcx is responsible for answering "which types are reachable from this
// type annotation?". Given a Go type, or an explicitly built annotation
// tree with unions, optionals, and metadata wrappers, it returns the set
// of every concrete type and container origin found by recursively
// unwrapping the annotation's structure. Consumers use that closure to
// enumerate a schema's transitive type surface: generating database
// migrations, filling serialization registries, building documentation.
//
// For example, the closure of
//
//	type Address struct{ Street string; Zip int }
//	type User struct{ ID int; Address Address; Tags []string }
//
// is {User, Address, int, string} under default filtering, and
// additionally contains the list origin when filtering is disabled.
//
// # Design
//
// The core of tcx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control traversal and filtering (the ignore set
//     subtracted at top level, whether unexported struct fields are
//     walked, an optional depth guard).
//
//   - Registry: a process-wide mapping from struct types to declared
//     field annotations. Registering a schema turns a plain struct into a
//     validated-record: the registry checks the declaration against the
//     struct at registration time, and extraction then follows the
//     declared annotations (which can express unions and optionals that
//     the Go field types alone cannot). The registry can be written to at
//     runtime (Register).
//
//   - Extractor: a read-only object that answers "what is the closure of
//     this annotation?". The extractor dispatches every node across a
//     chain of shapes, in priority order:
//     1. If the class implements apis.Schemer, use its declared fields.
//     2. If the class has a registered schema, use that.
//     3. If the class is a plain struct, expand its fields by reflection.
//     4. If the node is a leaf (marker, bare origin, concrete class),
//     terminate there.
//     5. Otherwise decompose the parameterized node (container, union,
//     metadata wrapper) and recurse on its arguments.
//     Each Extract call owns an independent visited set, so cyclic and
//     mutually-referential type graphs terminate and every type is
//     collected exactly once. Extractor is concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Extractor instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Extractor instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means tcx lookups are lock-free on the hot path:
//
//	types := tcx.Extract(obj)
//	types = tcx.ExtractType(reflect.TypeOf(obj))
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
//  1. Read helpers:
//
//     Extract(v any) annotation.Set
//     ExtractType(t reflect.Type) annotation.Set
//     ExtractNode(n annotation.Node) annotation.Set
//     Registry() apis.Registry
//     Extractor() apis.Extractor
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     RegisterSchema(t reflect.Type, fields []annotation.Field) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetExtractor(xtr apis.Extractor)
//     UnpinRegistry()
//     UnpinExtractor()
//     SetAll(...)
//
//     Each of these (except RegisterSchema, which writes through to the
//     current registry) acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Registry / Extractor as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how closures are computed (filtering and traversal
//     rules). Calling SetConfig() may trigger a rebuild of Registry
//     and/or Extractor, unless they are explicitly "pinned".
//
//     - Builder controls how Registry and Extractor are constructed.
//     Swapping the Builder lets you replace extraction logic
//     (different shapes, different dispatch order) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     tcx itself. It is simply passed down to the Builder so custom
//     builders (in other binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetExtractor() directly overwrite the current
//     Registry / Extractor in the snapshot and "pin" them. Once a
//     layer is pinned, tcx will stop rebuilding that layer
//     automatically until you call UnpinRegistry()/UnpinExtractor().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Extractor in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
//     These let callers examine the currently published snapshot for
//     debugging, metrics exposition, or documentation.
//
// # Concurrency model
//
// Reads (Extract, ExtractType, ExtractNode, Registry, Extractor) are
// wait-free: they load the current *state atomically and never take
// locks. The Extractor and Registry returned by that state must
// themselves be concurrency-safe for reads; the traversal state of one
// extraction (visited set, result set) lives entirely on that call's
// stack, so parallel extractions never share mutable state.
//
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetExtractor, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap. This gives the calling binary
// a predictable "last write wins" behavior without forcing per-lookup
// locking.
//
// # Pinning
//
// tcx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetExtractor(xtr), that Extractor is pinned and will
//     not be rebuilt automatically until UnpinExtractor().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Extractor with an extra shape for a proprietary
// schema system while still allowing Config values to change.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let tcx init with default builder/config.
//
//  2. Optionally register validated-record schemas up front:
//
//     tcx.RegisterSchema(reflect.TypeOf(User{}), []annotation.Field{
//     {Name: "ID", Type: annotation.Of[int]()},
//     {Name: "Tags", Type: annotation.Optional(annotation.List(annotation.Of[string]()))},
//     })
//
//  3. Use tcx.Extract(...) / tcx.ExtractType(...) wherever a transitive
//     type closure is needed (migration generators, codec registries).
//
//  4. In tests, call tcx.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// tcx is intentionally small. It discovers and collects type identities;
// it never validates or constructs instances of the discovered types.
// Everything else (codec generation, migration planning, documentation
// rendering) belongs to higher layers.
package tcx
