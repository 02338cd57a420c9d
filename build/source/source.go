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

// Package source locates tree nodes in source code.
//
// A Pos is a byte offset into the source of one compilation unit. A Region
// is a half-open [start, end) span of the source. Line and column numbers
// are computed on demand by a LineInfo, which is built at most once per
// unit.
package source

import "fmt"

// Pos is a byte offset into the source text of a compilation unit.
type Pos uint32

// Region is a half-open span of source text.
type Region struct {
	start Pos
	end   Pos
}

// NewRegion returns the region spanning [start, end).
func NewRegion(start, end Pos) Region {
	return Region{start: start, end: end}
}

// Start returns the first position of the region.
func (r Region) Start() Pos { return r.start }

// End returns the position one past the last byte of the region.
func (r Region) End() Pos { return r.end }

// IsEmpty returns true if the region covers no source text.
func (r Region) IsEmpty() bool { return r.start == r.end }

// Span returns the smallest region covering both r and other.
func (r Region) Span(other Region) Region {
	s := r.start
	if other.start < s {
		s = other.start
	}
	e := r.end
	if other.end > e {
		e = other.end
	}
	return Region{start: s, end: e}
}

func (r Region) String() string {
	return fmt.Sprintf("[%d-%d]", r.start, r.end)
}

// Loc attaches a region to a value.
type Loc[T any] struct {
	Region Region
	Value  T
}

// At returns v located at region.
func At[T any](region Region, v T) Loc[T] {
	return Loc[T]{Region: region, Value: v}
}
