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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("tcx(registry): nil reflect.Type provided")
	// ErrNotStruct is returned when the registered type is not a struct.
	ErrNotStruct = errors.New("tcx(registry): schema type is not a struct")
	// ErrEmptyFieldName is returned when a declared field has no name.
	ErrEmptyFieldName = errors.New("tcx(registry): empty field name in schema")
	// ErrDuplicateField is returned when a field name is declared twice.
	ErrDuplicateField = errors.New("tcx(registry): duplicate field name in schema")
	// ErrUnknownField is returned when a declared field does not exist on
	// the struct type.
	ErrUnknownField = errors.New("tcx(registry): declared field not present on struct")
	// ErrNilAnnotation is returned when a declared field has no annotation.
	ErrNilAnnotation = errors.New("tcx(registry): nil annotation in schema")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different schema.
	ErrConflictingRegistration = errors.New("tcx(registry): conflicting schema registration")
)

// validatorType is the assertion target for the optional self-check hook.
var validatorType = reflect.TypeOf((*apis.Validator)(nil)).Elem()

// New constructs a Registry that validates schemas on registration.
func New(cfg apis.Config) apis.Registry {
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration the registry was built for.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to []annotation.Field.
	m sync.Map
	// count tracks the number of registered schemas.
	count int
}

// Register associates a struct type with its declared field annotations.
// It is idempotent for the same (type, fields) pair.
func (r *registry) Register(t reflect.Type, fields []annotation.Field) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if err := validate(t, fields); err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		if reflect.DeepEqual(old.([]annotation.Field), fields) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		if reflect.DeepEqual(old.([]annotation.Field), fields) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(t, fields)
	r.count++
	return nil
}

// Lookup returns the declared fields for a type if present.
func (r *registry) Lookup(t reflect.Type) ([]annotation.Field, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.([]annotation.Field), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:   key.(reflect.Type),
			Fields: value.([]annotation.Field),
		})
		return true
	})
	return entries
}

// Count returns the number of registered schemas.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered schemas. Entries are deleted in place
// rather than swapping the map, so concurrent lock-free readers never
// observe a torn sync.Map value.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}

// validate enforces the schema contract: struct type, non-empty unique
// field names that exist on the struct, non-nil annotations, and the
// type's own ValidateSchema hook when implemented.
func validate(t reflect.Type, fields []annotation.Field) error {
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return ErrEmptyFieldName
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}

		if _, ok := t.FieldByName(f.Name); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t, f.Name)
		}
		if f.Type == nil {
			return fmt.Errorf("%w: %q", ErrNilAnnotation, f.Name)
		}
	}

	// Let the type vet itself last, once the declared shape checks out.
	if v, ok := selfValidator(t); ok {
		if err := v.ValidateSchema(); err != nil {
			return fmt.Errorf("tcx(registry): schema rejected by %s: %w", t, err)
		}
	}
	return nil
}

// selfValidator instantiates a zero value of t (or *t) as apis.Validator.
func selfValidator(t reflect.Type) (apis.Validator, bool) {
	if t.Implements(validatorType) {
		return reflect.Zero(t).Interface().(apis.Validator), true
	}
	if reflect.PointerTo(t).Implements(validatorType) {
		return reflect.New(t).Interface().(apis.Validator), true
	}
	return nil, false
}
