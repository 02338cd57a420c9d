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

import "fmt"

// Builtin module names referenced by desugared code.
const (
	ModuleNum     = "Num"
	ModuleBool    = "Bool"
	ModuleInspect = "Inspect"
)

// BinOp is a binary operator.
type BinOp uint8

// The full closed set of binary operators. The last four are structural:
// they shape definitions rather than expressions and never appear inside a
// BinOps chain.
const (
	Caret BinOp = iota // ^
	Star               // *
	Slash              // /
	DoubleSlash        // //
	Percent            // %
	Plus               // +
	Minus              // -
	Equals             // ==
	NotEquals          // !=
	LessThan           // <
	GreaterThan        // >
	LessThanOrEq       // <=
	GreaterThanOrEq    // >=
	And                // &&
	Or                 // ||
	Pizza              // |>
	Assignment         // =
	IsAliasType        // :
	IsOpaqueType       // :=
	Backpass           // <-
)

// Associativity of a binary operator.
type Associativity uint8

const (
	// LeftAssociative: a - b - c parses as (a - b) - c.
	LeftAssociative Associativity = iota
	// RightAssociative: a && b && c parses as a && (b && c).
	RightAssociative
	// NonAssociative: a == b == c must be disambiguated with parens.
	NonAssociative
)

// Precedence of the operator. Higher binds tighter. No two operators share
// a precedence while differing in associativity.
func (op BinOp) Precedence() uint8 {
	switch op {
	case Caret:
		return 8
	case Star, Slash, DoubleSlash, Percent:
		return 7
	case Plus, Minus:
		return 6
	case Pizza:
		return 5
	case Equals, NotEquals, LessThan, GreaterThan, LessThanOrEq, GreaterThanOrEq:
		return 4
	case And:
		return 3
	case Or:
		return 2
	case Assignment, IsAliasType, IsOpaqueType, Backpass:
		return 1
	}
	panic(fmt.Sprintf("unknown binary operator %d", uint8(op)))
}

// Associativity of the operator.
func (op BinOp) Associativity() Associativity {
	switch op {
	case Caret, And, Or:
		return RightAssociative
	case Star, Slash, DoubleSlash, Percent, Plus, Minus, Pizza:
		return LeftAssociative
	case Equals, NotEquals, LessThan, GreaterThan, LessThanOrEq, GreaterThanOrEq,
		Assignment, IsAliasType, IsOpaqueType, Backpass:
		return NonAssociative
	}
	panic(fmt.Sprintf("unknown binary operator %d", uint8(op)))
}

// IsStructural returns true for the operators that shape definitions
// (assignment, type alias, opaque type, backpassing). Structural operators
// must never reach operator-to-function translation.
func (op BinOp) IsStructural() bool {
	switch op {
	case Assignment, IsAliasType, IsOpaqueType, Backpass:
		return true
	}
	return false
}

var binOpNames = [...]string{
	Caret:           "^",
	Star:            "*",
	Slash:           "/",
	DoubleSlash:     "//",
	Percent:         "%",
	Plus:            "+",
	Minus:           "-",
	Equals:          "==",
	NotEquals:       "!=",
	LessThan:        "<",
	GreaterThan:     ">",
	LessThanOrEq:    "<=",
	GreaterThanOrEq: ">=",
	And:             "&&",
	Or:              "||",
	Pizza:           "|>",
	Assignment:      "=",
	IsAliasType:     ":",
	IsOpaqueType:    ":=",
	Backpass:        "<-",
}

func (op BinOp) String() string {
	if int(op) < len(binOpNames) {
		return binOpNames[op]
	}
	return fmt.Sprintf("BinOp(%d)", uint8(op))
}

// Unary is a unary operator.
type Unary uint8

const (
	// Negate is numeric negation, -x.
	Negate Unary = iota
	// Not is boolean complement, !x.
	Not
)

func (op Unary) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "!"
	}
	return fmt.Sprintf("Unary(%d)", uint8(op))
}

// CalledViaKind says what surface syntax produced an Apply node.
type CalledViaKind uint8

const (
	// CalledSpace: an ordinary call written with whitespace.
	CalledSpace CalledViaKind = iota
	// CalledBinOp: desugared from a binary operator.
	CalledBinOp
	// CalledUnaryOp: desugared from a unary operator.
	CalledUnaryOp
	// CalledRecordBuilder: desugared from a record builder.
	CalledRecordBuilder
)

// CalledVia is the call provenance attached to Apply nodes, used for
// error messages only.
type CalledVia struct {
	Kind  CalledViaKind
	BinOp BinOp // valid when Kind is CalledBinOp
	Unary Unary // valid when Kind is CalledUnaryOp
}

// ViaSpace is an ordinary call.
func ViaSpace() CalledVia { return CalledVia{Kind: CalledSpace} }

// ViaBinOp is a call desugared from op.
func ViaBinOp(op BinOp) CalledVia { return CalledVia{Kind: CalledBinOp, BinOp: op} }

// ViaUnaryOp is a call desugared from op.
func ViaUnaryOp(op Unary) CalledVia { return CalledVia{Kind: CalledUnaryOp, Unary: op} }

// ViaRecordBuilder is a call desugared from a record-builder field.
func ViaRecordBuilder() CalledVia { return CalledVia{Kind: CalledRecordBuilder} }
