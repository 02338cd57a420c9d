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

package arena_test

import (
	"testing"

	"github.com/lukewilliamboswell/roc/base/arena"
)

func TestNewKeepsPointersStable(t *testing.T) {
	var a arena.Arena[int]
	const n = 1000
	ptrs := make([]*int, n)
	for i := 0; i < n; i++ {
		ptrs[i] = a.New(i)
	}
	for i, p := range ptrs {
		if *p != i {
			t.Fatalf("value %d moved or was overwritten: got %d", i, *p)
		}
	}
	if got := a.Len(); got != n {
		t.Errorf("arena allocated %d values but want %d", got, n)
	}
}

func TestMake(t *testing.T) {
	var a arena.Arena[string]
	s1 := a.Make(3)
	copy(s1, []string{"a", "b", "c"})
	s2 := a.Make(200)
	s2[0] = "d"
	if s1[0] != "a" || s1[2] != "c" {
		t.Errorf("first slice was clobbered by a later allocation: %v", s1)
	}
	if got := len(s2); got != 200 {
		t.Errorf("slice has length %d but want 200", got)
	}
	// Appending to a carved slice must not spill into the arena block.
	s3 := a.Make(1)
	s3[0] = "e"
	_ = append(s1, "x")
	if s3[0] != "e" {
		t.Errorf("append to a carved slice spilled into the next allocation")
	}
	if a.Make(0) != nil {
		t.Errorf("Make(0) must return nil")
	}
}

func TestStrings(t *testing.T) {
	var a arena.Strings
	s1 := a.New("hello")
	s2 := a.New("world")
	if s1 != "hello" || s2 != "world" {
		t.Errorf("got %q, %q", s1, s2)
	}
}
