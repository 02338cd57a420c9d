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

package source_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lukewilliamboswell/roc/build/source"
)

func TestSpan(t *testing.T) {
	a := source.NewRegion(2, 5)
	b := source.NewRegion(4, 9)
	got := a.Span(b)
	want := source.NewRegion(2, 9)
	if got != want {
		t.Errorf("span is %s but want %s", got, want)
	}
	if got := b.Span(a); got != want {
		t.Errorf("span is not symmetric: %s but want %s", got, want)
	}
}

func TestLineInfo(t *testing.T) {
	const src = "first\nsecond\n\nlast"
	li := source.NewLineInfo(src)
	if got := li.NumLines(); got != 4 {
		t.Fatalf("source has %d lines but want 4", got)
	}
	tests := []struct {
		pos  source.Pos
		want source.LineColumn
	}{
		{pos: 0, want: source.LineColumn{Line: 0, Column: 0}},
		{pos: 4, want: source.LineColumn{Line: 0, Column: 4}},
		{pos: 5, want: source.LineColumn{Line: 0, Column: 5}},
		{pos: 6, want: source.LineColumn{Line: 1, Column: 0}},
		{pos: 13, want: source.LineColumn{Line: 2, Column: 0}},
		{pos: 14, want: source.LineColumn{Line: 3, Column: 0}},
		{pos: 17, want: source.LineColumn{Line: 3, Column: 3}},
	}
	for _, test := range tests {
		got := li.Convert(test.pos)
		if !cmp.Equal(got, test.want) {
			t.Errorf("position %d converts to %v but want %v", test.pos, got, test.want)
		}
	}
	if got := li.Convert(6).String(); got != "2:1" {
		t.Errorf("human-readable position is %s but want 2:1", got)
	}
}
