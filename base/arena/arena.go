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

// Package arena provides bump allocators scoped to one compilation unit.
//
// An arena batches allocations of one node type into blocks so that a tree
// built during a compilation pass has good locality and can be released as
// a whole. Allocation never fails. Arenas are not safe for concurrent use:
// each compilation unit owns its own arenas.
package arena

const minBlockLen = 64

// Arena is a bump allocator for values of type T.
//
// The zero value is ready to use. A block is never reallocated in place,
// so pointers returned by New and slices returned by Make stay valid for
// the lifetime of the arena.
type Arena[T any] struct {
	block  []T
	filled [][]T
}

func (a *Arena[T]) grow(n int) {
	if a.block != nil {
		a.filled = append(a.filled, a.block)
	}
	size := 2 * cap(a.block)
	if size < minBlockLen {
		size = minBlockLen
	}
	for size < n {
		size *= 2
	}
	a.block = make([]T, 0, size)
}

// New copies v into the arena and returns a pointer to the copy.
func (a *Arena[T]) New(v T) *T {
	if len(a.block) == cap(a.block) {
		a.grow(1)
	}
	a.block = append(a.block, v)
	return &a.block[len(a.block)-1]
}

// Make carves a slice of length n out of the arena.
func (a *Arena[T]) Make(n int) []T {
	if n == 0 {
		return nil
	}
	if cap(a.block)-len(a.block) < n {
		a.grow(n)
	}
	start := len(a.block)
	a.block = a.block[:start+n]
	return a.block[start : start+n : start+n]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	n := len(a.block)
	for _, b := range a.filled {
		n += len(b)
	}
	return n
}

// Strings is a bump allocator for string storage.
//
// The zero value is ready to use.
type Strings struct {
	block []byte
}

// New copies s into the arena storage and returns the copy.
func (a *Strings) New(s string) string {
	if cap(a.block)-len(a.block) < len(s) {
		size := 2 * cap(a.block)
		if size < minBlockLen {
			size = minBlockLen
		}
		for size < len(s) {
			size *= 2
		}
		a.block = make([]byte, 0, size)
	}
	start := len(a.block)
	a.block = append(a.block, s...)
	return string(a.block[start:])
}
