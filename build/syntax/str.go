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

package syntax

// ----------------------------------------------------------------------------
// String literal bodies.
type (
	// PlainLine is a single-line string with no interpolation.
	PlainLine struct {
		Text string
	}

	// Line is a single-line string made of segments.
	Line struct {
		Segments []StrSegment
	}

	// Block is a multi-line string, one segment list per line.
	Block struct {
		Lines [][]StrSegment
	}
)

// ----------------------------------------------------------------------------
// Segments of a string line.
type (
	// Plaintext is literal text.
	Plaintext struct {
		Text string
	}

	// Unicode is a \u(...) escape.
	Unicode struct {
		Digits string
	}

	// EscapedChar is a single escaped character, e.g. \n.
	EscapedChar struct {
		Char byte
	}

	// Interpolated is an interpolated sub-expression.
	Interpolated struct {
		Expr *ExprLoc
	}
)

func (*PlainLine) node() {}
func (*Line) node()      {}
func (*Block) node()     {}

func (*PlainLine) strLiteralNode() {}
func (*Line) strLiteralNode()      {}
func (*Block) strLiteralNode()     {}

func (*Plaintext) node()    {}
func (*Unicode) node()      {}
func (*EscapedChar) node()  {}
func (*Interpolated) node() {}

func (*Plaintext) strSegmentNode()    {}
func (*Unicode) strSegmentNode()      {}
func (*EscapedChar) strSegmentNode()  {}
func (*Interpolated) strSegmentNode() {}
