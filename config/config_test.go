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

package config_test

import (
	"testing"

	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.Unfiltered != config.DefaultUnfiltered {
		t.Fatalf("Unfiltered = %v, want %v", got.Unfiltered, config.DefaultUnfiltered)
	}
	if got.IncludeUnexported != config.DefaultIncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want %v", got.IncludeUnexported, config.DefaultIncludeUnexported)
	}
	if got.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", got.MaxDepth, config.DefaultMaxDepth)
	}
	if !got.Ignore.Equal(config.DefaultIgnore()) {
		t.Fatalf("Ignore = %v, want %v", got.Ignore, config.DefaultIgnore())
	}
}

func TestDefaultIgnoreMembers(t *testing.T) {
	ignore := config.DefaultIgnore()

	members := []annotation.Node{
		annotation.None,
		annotation.Ellipsis,
		annotation.OriginUnion,
		annotation.OriginList,
		annotation.OriginTuple,
		annotation.OriginAnnotated,
	}
	for _, n := range members {
		if !ignore.Has(n) {
			t.Errorf("DefaultIgnore missing %v", n)
		}
	}
	if ignore.Len() != len(members) {
		t.Fatalf("DefaultIgnore len = %d, want %d", ignore.Len(), len(members))
	}

	// Origins not in the noise set stay extractable by default.
	if ignore.Has(annotation.OriginMap) {
		t.Fatalf("DefaultIgnore must not contain the map origin")
	}
	if ignore.Has(annotation.OriginChan) {
		t.Fatalf("DefaultIgnore must not contain the chan origin")
	}
}

func TestDefaultIgnore_FreshCopyPerCall(t *testing.T) {
	a := config.DefaultIgnore()
	b := config.DefaultIgnore()

	a.Insert(annotation.OriginMap)
	if b.Has(annotation.OriginMap) {
		t.Fatalf("mutating one DefaultIgnore copy leaked into another")
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()

	if got.Unfiltered != def.Unfiltered ||
		got.IncludeUnexported != def.IncludeUnexported ||
		got.MaxDepth != def.MaxDepth ||
		!got.Ignore.Equal(def.Ignore) {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
}

func TestWithIgnore(t *testing.T) {
	custom := annotation.NewSet(annotation.Of[int]())
	c := config.NewConfig(config.WithIgnore(custom))
	if !c.Ignore.Equal(custom) {
		t.Fatalf("Ignore = %v, want %v", c.Ignore, custom)
	}

	// nil resets to the default noise set.
	c2 := config.NewConfig(config.WithIgnore(custom), config.WithIgnore(nil))
	if !c2.Ignore.Equal(config.DefaultIgnore()) {
		t.Fatalf("Ignore after WithIgnore(nil) = %v, want default", c2.Ignore)
	}
}

func TestWithExtraIgnore(t *testing.T) {
	c := config.NewConfig(config.WithExtraIgnore(annotation.Of[string]()))

	want := config.DefaultIgnore().Insert(annotation.Of[string]())
	if !c.Ignore.Equal(want) {
		t.Fatalf("Ignore = %v, want %v", c.Ignore, want)
	}
}

func TestWithUnfiltered(t *testing.T) {
	c := config.NewConfig(config.WithUnfiltered(true))
	if !c.Unfiltered {
		t.Fatalf("Unfiltered = %v, want true", c.Unfiltered)
	}

	c2 := config.NewConfig(config.WithUnfiltered(false))
	if c2.Unfiltered {
		t.Fatalf("Unfiltered = %v, want false", c2.Unfiltered)
	}
}

func TestWithIncludeUnexported(t *testing.T) {
	c := config.NewConfig(config.WithIncludeUnexported(true))
	if !c.IncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want true", c.IncludeUnexported)
	}

	c2 := config.NewConfig(config.WithIncludeUnexported(false))
	if c2.IncludeUnexported {
		t.Fatalf("IncludeUnexported = %v, want false", c2.IncludeUnexported)
	}
}

func TestWithMaxDepth_Positive(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(3))
	if c.MaxDepth != 3 {
		t.Fatalf("MaxDepth = %d, want 3", c.MaxDepth)
	}
}

func TestWithMaxDepth_Negative_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithMaxDepth(-1))
	if c.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want default %d", c.MaxDepth, config.DefaultMaxDepth)
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithUnfiltered(true),
		config.WithUnfiltered(false),
		config.WithMaxDepth(2),
		config.WithMaxDepth(5),
		config.WithIncludeUnexported(false),
		config.WithIncludeUnexported(true),
	)

	if c.Unfiltered {
		t.Errorf("Unfiltered = %v, want false (last option wins)", c.Unfiltered)
	}
	if c.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d, want 5 (last option wins)", c.MaxDepth)
	}
	if !c.IncludeUnexported {
		t.Errorf("IncludeUnexported = %v, want true (last option wins)", c.IncludeUnexported)
	}
}

func TestNewConfig_Guardrails_MaxDepthZeroAllowed(t *testing.T) {
	// The constructor only resets negative values. Zero means unbounded.
	c := config.NewConfig(config.WithMaxDepth(0))
	if c.MaxDepth != 0 {
		t.Fatalf("MaxDepth = %d, want 0 (zero is allowed)", c.MaxDepth)
	}
}
