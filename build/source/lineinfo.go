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

package source

import (
	"fmt"
	"sort"
	"strings"
)

// LineColumn is a 0-based line and column. Column counts bytes, not runes.
type LineColumn struct {
	Line   uint32
	Column uint32
}

// String renders the position 1-based for humans.
func (lc LineColumn) String() string {
	return fmt.Sprintf("%d:%d", lc.Line+1, lc.Column+1)
}

// LineInfo translates byte offsets into line and column numbers.
//
// Building it scans the whole source, so callers keep a nil slot and fill
// it on first use.
type LineInfo struct {
	// lineStarts[i] is the offset of the first byte of line i.
	lineStarts []Pos
}

// NewLineInfo scans src and returns its line index.
func NewLineInfo(src string) *LineInfo {
	starts := []Pos{0}
	for off := 0; ; {
		i := strings.IndexByte(src[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		starts = append(starts, Pos(off))
	}
	return &LineInfo{lineStarts: starts}
}

// Convert returns the line and column of pos.
func (li *LineInfo) Convert(pos Pos) LineColumn {
	line := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > pos
	}) - 1
	return LineColumn{
		Line:   uint32(line),
		Column: uint32(pos - li.lineStarts[line]),
	}
}

// NumLines returns the number of lines in the source.
func (li *LineInfo) NumLines() int {
	return len(li.lineStarts)
}
