// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package module holds per-compilation-unit state.
//
// A Unit owns everything mutable that a compilation pass needs: the name
// generator for synthesized identifiers and the lazily computed line
// index. Units are never shared: compiling modules in parallel means one
// Unit (and one arena set) per module.
package module

import (
	"github.com/pkg/errors"
	gomodule "golang.org/x/mod/module"

	"github.com/lukewilliamboswell/roc/base/uname"
	"github.com/lukewilliamboswell/roc/build/source"
)

// Unit is one compilation unit: a module path and its source text.
type Unit struct {
	path  string
	src   string
	names *uname.Unique

	lineInfo *source.LineInfo
}

// New returns a unit for the module at path with the given source text.
// The path tags debug-trace labels and diagnostics.
func New(path, src string) (*Unit, error) {
	if err := gomodule.CheckFilePath(path); err != nil {
		return nil, errors.Wrapf(err, "invalid module path %q", path)
	}
	return &Unit{path: path, src: src, names: uname.New()}, nil
}

// Path returns the logical module path.
func (u *Unit) Path() string { return u.path }

// Src returns the source text of the unit.
func (u *Unit) Src() string { return u.src }

// Names returns the unit's generator for synthesized identifiers.
func (u *Unit) Names() *uname.Unique { return u.names }

// LineInfo returns the unit's line index, scanning the source on first
// use. The index is computed at most once per unit.
func (u *Unit) LineInfo() *source.LineInfo {
	if u.lineInfo == nil {
		u.lineInfo = source.NewLineInfo(u.src)
	}
	return u.lineInfo
}

// PeekLineInfo returns the line index only if it has been computed.
func (u *Unit) PeekLineInfo() *source.LineInfo { return u.lineInfo }
