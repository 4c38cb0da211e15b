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

package annotation_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tcx/annotation"
)

type sample struct {
	ID   int
	Name string
}

func TestOf_ClassIdentity(t *testing.T) {
	a := annotation.Of[sample]()
	b := annotation.Of[sample]()

	require.NotNil(t, a.Type)
	assert.Equal(t, reflect.TypeOf(sample{}), a.Type)

	// Class values wrapping the same reflect.Type compare equal, so they
	// collapse to one member in a set.
	assert.True(t, a == b)
	assert.Equal(t, 1, annotation.NewSet(a, b).Len())
}

func TestOf_InterfaceType(t *testing.T) {
	c := annotation.Of[error]()
	require.NotNil(t, c.Type)
	assert.Equal(t, reflect.Interface, c.Type.Kind())
}

func TestClassOf(t *testing.T) {
	n := annotation.ClassOf(reflect.TypeOf(42))
	c, ok := n.(annotation.Class)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(0), c.Type)

	// nil reflect.Type degrades to the absence marker.
	assert.Equal(t, annotation.None, annotation.ClassOf(nil))
}

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin annotation.Origin
		want   string
	}{
		{annotation.OriginList, "list"},
		{annotation.OriginTuple, "tuple"},
		{annotation.OriginMap, "map"},
		{annotation.OriginChan, "chan"},
		{annotation.OriginUnion, "union"},
		{annotation.OriginAnnotated, "annotated"},
		{annotation.OriginInvalid, "invalid(0)"},
		{annotation.Origin(99), "invalid(99)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.origin.String())
	}
}

func TestMarkers(t *testing.T) {
	assert.Equal(t, "None", annotation.None.String())
	assert.Equal(t, "...", annotation.Ellipsis.String())
	assert.NotEqual(t, annotation.None, annotation.Ellipsis)
}

func TestConstructors(t *testing.T) {
	intC := annotation.Of[int]()
	strC := annotation.Of[string]()

	l := annotation.List(intC)
	require.Equal(t, annotation.OriginList, l.Origin)
	require.Len(t, l.Args, 1)
	assert.Equal(t, annotation.Node(intC), l.Args[0])

	tu := annotation.Tuple(intC, annotation.Ellipsis)
	require.Equal(t, annotation.OriginTuple, tu.Origin)
	require.Len(t, tu.Args, 2)
	assert.Equal(t, annotation.Ellipsis, tu.Args[1])

	m := annotation.Map(strC, intC)
	require.Equal(t, annotation.OriginMap, m.Origin)
	require.Len(t, m.Args, 2)

	ch := annotation.Chan(intC)
	require.Equal(t, annotation.OriginChan, ch.Origin)
	require.Len(t, ch.Args, 1)

	u := annotation.Union(intC, strC)
	require.Equal(t, annotation.OriginUnion, u.Origin)
	require.Len(t, u.Args, 2)
}

func TestOptional_IsUnionWithNone(t *testing.T) {
	o := annotation.Optional(annotation.Of[int]())

	require.Equal(t, annotation.OriginUnion, o.Origin)
	require.Len(t, o.Args, 2)
	assert.Equal(t, annotation.Node(annotation.Of[int]()), o.Args[0])
	assert.Equal(t, annotation.None, o.Args[1])
}

func TestAnnotate(t *testing.T) {
	elem := annotation.List(annotation.Of[int]())
	a := annotation.Annotate(elem, "doc", 7)

	assert.Equal(t, annotation.Node(elem), a.Elem)
	require.Len(t, a.Meta, 2)
	assert.Equal(t, "doc", a.Meta[0])
	assert.Equal(t, 7, a.Meta[1])
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node annotation.Node
		want string
	}{
		{"class", annotation.Of[int](), "int"},
		{"list", annotation.List(annotation.Of[int]()), "list[int]"},
		{"map", annotation.Map(annotation.Of[string](), annotation.Of[int]()), "map[string, int]"},
		{"optional", annotation.Optional(annotation.Of[int]()), "union[int, None]"},
		{"variadic tuple", annotation.Tuple(annotation.Of[int](), annotation.Ellipsis), "tuple[int, ...]"},
		{"annotated", annotation.Annotate(annotation.Of[int](), "x"), "annotated[int, +1 meta]"},
		{"bare origin", annotation.OriginList, "list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestFieldString(t *testing.T) {
	f := annotation.Field{Name: "ID", Type: annotation.Of[int]()}
	assert.Equal(t, "ID:int", f.String())

	empty := annotation.Field{Name: "X"}
	assert.Equal(t, "X:<none>", empty.String())
}
