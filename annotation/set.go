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

import (
	"sort"
	"strings"
)

// Set is an unordered collection of annotation nodes with set semantics.
// Extraction results and visited sets are both Sets. Members are Class
// values, Origin markers, and the None/Ellipsis markers; explicitly built
// Container/Annotated nodes may appear in visited sets but are never
// emitted as results.
//
// A Set is not safe for concurrent mutation; each traversal owns its own.
type Set map[Node]struct{}

// NewSet returns a Set containing the given nodes. Nil nodes are dropped.
func NewSet(nodes ...Node) Set {
	s := make(Set, len(nodes))
	s.Insert(nodes...)
	return s
}

// Insert adds nodes to the set and returns it for chaining.
// Nil nodes are ignored.
func (s Set) Insert(nodes ...Node) Set {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether n is a member.
func (s Set) Has(n Node) bool {
	_, ok := s[n]
	return ok
}

// Delete removes n if present and returns the set for chaining.
func (s Set) Delete(n Node) Set {
	delete(s, n)
	return s
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Merge adds every member of other into s and returns s.
func (s Set) Merge(other Set) Set {
	for n := range other {
		s[n] = struct{}{}
	}
	return s
}

// Union returns a new set containing the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	out.Merge(s)
	out.Merge(other)
	return out
}

// Difference returns a new set with the members of s not present in other.
func (s Set) Difference(other Set) Set {
	out := make(Set, len(s))
	for n := range s {
		if !other.Has(n) {
			out[n] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets have exactly the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

// UnsortedList returns the members in unspecified order.
func (s Set) UnsortedList() []Node {
	out := make([]Node, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}

// String renders the members sorted by spelling, for stable diagnostics.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for n := range s {
		parts = append(parts, n.String())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
