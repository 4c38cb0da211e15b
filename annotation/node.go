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

// Package annotation defines the type-annotation node model used by tcx.
//
// Go has no runtime-inspectable generic parameters, unions, or metadata
// wrappers, so annotations are modeled as a closed set of node variants:
//
//   - Class: a concrete Go type (reflect.Type identity).
//   - Origin: a bare container/union kind marker (list, map, union, ...).
//   - *Container: a parameterized generic node (origin + argument nodes).
//   - *Annotated: a metadata wrapper around a single node.
//   - None / Ellipsis: the absence and ellipsis markers.
//
// Every variant is comparable (a value type or a pointer), so nodes can key
// visited sets and populate result sets directly.
package annotation

import (
	"fmt"
	"reflect"
	"strings"
)

// Node is any value usable as a type annotation. The set of implementations
// is closed; external packages construct nodes via the package constructors
// or the exported variant types.
type Node interface {
	// String returns a compact, human-readable spelling of the annotation.
	String() string

	// isNode seals the variant set.
	isNode()
}

// Class is a concrete Go type used as an annotation node. Two Class values
// are equal iff they wrap the same reflect.Type.
type Class struct {
	// Type is the underlying Go type. Never nil for nodes built through
	// package constructors.
	Type reflect.Type
}

func (Class) isNode() {}

// String returns the Go spelling of the wrapped type.
func (c Class) String() string {
	if c.Type == nil {
		return "<nil class>"
	}
	return c.Type.String()
}

// Of returns the Class node for the type parameter T.
func Of[T any]() Class {
	return Class{Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// ClassOf wraps a reflect.Type as an annotation node.
// A nil type yields the None marker.
func ClassOf(t reflect.Type) Node {
	if t == nil {
		return None
	}
	return Class{Type: t}
}

// Origin identifies the base container or union kind of a parameterized
// node. A bare Origin is itself a valid annotation node (the "bare
// container origin" spelling, e.g. an unparameterized list).
type Origin int

const (
	// OriginInvalid is the zero Origin; it never appears in well-formed nodes.
	OriginInvalid Origin = iota
	// OriginList is the homogeneous variable-length sequence kind.
	OriginList
	// OriginTuple is the fixed-length sequence kind.
	OriginTuple
	// OriginMap is the key-value mapping kind.
	OriginMap
	// OriginChan is the channel kind.
	OriginChan
	// OriginUnion is the union-of-alternatives kind.
	OriginUnion
	// OriginAnnotated is the metadata-annotation kind.
	OriginAnnotated
)

func (Origin) isNode() {}

// String returns the lower-case kind name, or "invalid(n)" for unknown values.
func (o Origin) String() string {
	switch o {
	case OriginList:
		return "list"
	case OriginTuple:
		return "tuple"
	case OriginMap:
		return "map"
	case OriginChan:
		return "chan"
	case OriginUnion:
		return "union"
	case OriginAnnotated:
		return "annotated"
	default:
		return fmt.Sprintf("invalid(%d)", int(o))
	}
}

// marker is the variant behind the None and Ellipsis singletons.
type marker int

const (
	markerNone marker = iota
	markerEllipsis
)

func (marker) isNode() {}

func (m marker) String() string {
	if m == markerNone {
		return "None"
	}
	return "..."
}

var (
	// None is the absence marker used inside optional and union
	// annotations. It contributes nothing to extraction results.
	None Node = markerNone

	// Ellipsis is the ellipsis marker used in variadic tuple positions.
	Ellipsis Node = markerEllipsis
)

// Container is a parameterized generic node: a container/union origin
// applied to argument nodes. Containers compare by pointer identity; the
// identities that matter for cycle detection (Class, Origin, markers) are
// value-comparable, so rebuilding an equivalent Container is harmless.
type Container struct {
	// Origin is the container kind.
	Origin Origin
	// Args are the argument annotations, in declaration order.
	Args []Node
}

func (*Container) isNode() {}

// String renders the node as origin[arg, ...].
func (c *Container) String() string {
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		if a == nil {
			args = append(args, "<nil>")
			continue
		}
		args = append(args, a.String())
	}
	return c.Origin.String() + "[" + strings.Join(args, ", ") + "]"
}

// List returns a homogeneous sequence annotation list[elem].
func List(elem Node) *Container {
	return &Container{Origin: OriginList, Args: []Node{elem}}
}

// Tuple returns a fixed-length sequence annotation tuple[args...].
// A variadic tuple is spelled Tuple(elem, Ellipsis).
func Tuple(args ...Node) *Container {
	return &Container{Origin: OriginTuple, Args: args}
}

// Map returns a key-value mapping annotation map[key, elem].
func Map(key, elem Node) *Container {
	return &Container{Origin: OriginMap, Args: []Node{key, elem}}
}

// Chan returns a channel annotation chan[elem].
func Chan(elem Node) *Container {
	return &Container{Origin: OriginChan, Args: []Node{elem}}
}

// Union returns a union-of-alternatives annotation union[args...].
func Union(args ...Node) *Container {
	return &Container{Origin: OriginUnion, Args: args}
}

// Optional returns union[elem, None], the optional spelling.
func Optional(elem Node) *Container {
	return Union(elem, None)
}

// Annotated attaches non-type metadata to a single wrapped annotation
// without changing its type identity. Only Elem contributes types during
// extraction; Meta payloads are carried verbatim and never traversed.
type Annotated struct {
	// Elem is the wrapped annotation.
	Elem Node
	// Meta holds arbitrary non-type metadata payloads.
	Meta []any
}

func (*Annotated) isNode() {}

// String renders the node as annotated[elem, +n meta].
func (a *Annotated) String() string {
	elem := "<nil>"
	if a.Elem != nil {
		elem = a.Elem.String()
	}
	return fmt.Sprintf("annotated[%s, +%d meta]", elem, len(a.Meta))
}

// Annotate wraps elem with metadata payloads.
func Annotate(elem Node, meta ...any) *Annotated {
	return &Annotated{Elem: elem, Meta: meta}
}
