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

package tcx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/tcx/annotation"
	"dirpx.dev/tcx/apis"
	"dirpx.dev/tcx/builder"
	"dirpx.dev/tcx/config"
)

// init initializes the global xtr state.
func init() {
	// Initialize state with default cfg, reg, and xtr.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.xtr = b.BuildExtractor(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("tcx: builder returned nil registry")
	// ErrNilExtractor is returned when a builder returns a nil extractor.
	ErrNilExtractor = errors.New("tcx: builder returned nil extractor")
)

// Extract returns the transitive type closure of v's type using the global
// tcx extractor. It uses the global tcx configuration and reg.
// This is a convenience wrapper around the global xtr.
func Extract(v any) annotation.Set {
	s := st.Load()
	return s.xtr.Extract(annotation.ClassOf(reflect.TypeOf(v)), s.cfg)
}

// ExtractType returns the transitive type closure of the reflect.Type t
// using the global tcx extractor. It uses the global tcx configuration and reg.
// This is a convenience wrapper around the global xtr.
func ExtractType(t reflect.Type) annotation.Set {
	s := st.Load()
	return s.xtr.Extract(annotation.ClassOf(t), s.cfg)
}

// ExtractNode returns the transitive type closure of an explicitly built
// annotation node using the global tcx extractor.
// This is a convenience wrapper around the global xtr.
func ExtractNode(n annotation.Node) annotation.Set {
	s := st.Load()
	return s.xtr.Extract(n, s.cfg)
}

// RegisterSchema adds a validated-record schema to the global tcx reg.
// This is a convenience wrapper around the global reg.
func RegisterSchema(t reflect.Type, fields []annotation.Field) error {
	return st.Load().reg.Register(t, fields)
}

// SetAll explicitly sets all global tcx state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, xtr apis.Extractor, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Extractor
	nxtr := xtr
	npxtr := false
	if nxtr == nil {
		nxtr = nbld.BuildExtractor(ncfg, nreg, old.xtr, next)
	} else {
		npxtr = true
	}

	// Ensure non-nil reg and xtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			xtr:  nxtr,
			bld:  nbld,
			preg: npreg,
			pxtr: npxtr,
		},
	)
}

// Config returns the global tcx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global tcx configuration to cfg.
// It rebuilds the global reg and xtr using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new nreg and xtr based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(cfg, nreg, old.xtr, old.ext)
	}

	// Ensure non-nil nreg and xtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			xtr:  nxtr,
			bld:  b,
			preg: old.preg,
			pxtr: old.pxtr,
		},
	)
}

// Registry returns the global tcx reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global tcx reg to reg.
// It uses the global tcx configuration to rebuild the global xtr.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new xtr based on the old cfg and new reg.
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(old.cfg, reg, old.xtr, old.ext)
	}

	// Ensure non-nil xtr.
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			xtr:  nxtr,
			bld:  b,
			preg: true,
			pxtr: old.pxtr,
		},
	)
}

// Extractor returns the global tcx xtr.
func Extractor() apis.Extractor {
	return st.Load().xtr
}

// SetExtractor sets the global tcx xtr to xtr.
// It uses the global tcx configuration and reg.
// This is a convenience wrapper around the global state.
func SetExtractor(xtr apis.Extractor) {
	if xtr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			xtr:  xtr,
			bld:  old.bld,
			preg: old.preg,
			pxtr: true,
		},
	)
}

// Builder returns the global tcx bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global tcx bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and xtr based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(old.cfg, nreg, old.xtr, old.ext)
	}

	// Ensure non-nil reg and xtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			xtr:  nxtr,
			bld:  b,
			preg: old.preg,
			pxtr: old.pxtr,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and xtr based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	nxtr := old.xtr
	if !old.pxtr {
		nxtr = b.BuildExtractor(old.cfg, nreg, old.xtr, ext)
	}

	// Ensure non-nil reg and xtr.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if nxtr == nil {
		panic(ErrNilExtractor)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			xtr:  nxtr,
			bld:  b,
			preg: old.preg,
			pxtr: old.pxtr,
		},
	)
}

// ExtAs returns the global tcx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global tcx reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global tcx reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			xtr:  old.xtr,
			bld:  old.bld,
			preg: true,
			pxtr: old.pxtr,
		},
	)
}

// UnpinRegistry makes the global tcx reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			xtr:  old.xtr,
			bld:  old.bld,
			preg: false,
			pxtr: old.pxtr,
		},
	)
}

// IsExtractorPinned returns whether the global tcx xtr is pinned (immutable).
func IsExtractorPinned() bool {
	return st.Load().pxtr
}

// PinExtractor makes the global tcx xtr immutable.
func PinExtractor() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			xtr:  old.xtr,
			bld:  old.bld,
			preg: old.preg,
			pxtr: true,
		},
	)
}

// UnpinExtractor makes the global tcx xtr mutable again.
func UnpinExtractor() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			xtr:  old.xtr,
			bld:  old.bld,
			preg: old.preg,
			pxtr: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global tcx state.
var st atomic.Pointer[state]

// state is the global tcx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global tcx configuration.
	cfg apis.Config
	// ext is the global tcx extension configuration.
	ext any
	// reg is the global tcx reg.
	reg apis.Registry
	// xtr is the global tcx xtr.
	xtr apis.Extractor
	// bld is the global tcx bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pxtr indicates whether the xtr is pinned (immutable).
	pxtr bool
}
