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

import "github.com/lukewilliamboswell/roc/build/source"

// ----------------------------------------------------------------------------
// Literals and references. Already canonical: desugaring returns them as-is.
type (
	// Num is a base-10 number literal.
	Num struct {
		Text string
	}

	// Float is a fractional number literal.
	Float struct {
		Text string
	}

	// NonBase10Int is a binary, octal or hexadecimal integer literal.
	NonBase10Int struct {
		Text       string
		Base       int
		IsNegative bool
	}

	// SingleQuote is a character literal.
	SingleQuote struct {
		Text string
	}

	// Str is a string literal.
	Str struct {
		Literal StrLiteral
	}

	// Var is a reference to a value, optionally qualified by a module
	// name. Suffixed counts the effectful bang suffixes at the call site.
	Var struct {
		ModuleName string
		Ident      string
		Suffixed   int
	}

	// Underscore is a hole, optionally named.
	Underscore struct {
		Name string
	}

	// Tag is a tag literal.
	Tag struct {
		Name string
	}

	// OpaqueRef is a reference to an opaque type wrapper, e.g. @Age.
	OpaqueRef struct {
		Name string
	}

	// AccessorFunction is a field accessor in function position, e.g. .name.
	AccessorFunction struct {
		Field string
	}

	// IngestedFile is a file ingested at build time.
	IngestedFile struct {
		Path string
	}

	// Crash is the crash keyword.
	Crash struct{}

	// MalformedIdent is an identifier the parser could not accept.
	MalformedIdent struct {
		Text string
	}

	// MalformedClosure is a closure the parser could not accept.
	MalformedClosure struct{}
)

// ----------------------------------------------------------------------------
// Structures.
type (
	// RecordAccess is a field access, e.g. rec.field. Chains nest.
	RecordAccess struct {
		Value Expr
		Field string
	}

	// TupleAccess is an index access, e.g. tup.0. Chains nest.
	TupleAccess struct {
		Value Expr
		Index string
	}

	// List is a list literal.
	List struct {
		Items []*ExprLoc
	}

	// Record is a record literal.
	Record struct {
		Fields []source.Loc[AssignedField]
	}

	// Tuple is a tuple literal.
	Tuple struct {
		Items []*ExprLoc
	}

	// RecordUpdate copies a record with some fields replaced.
	RecordUpdate struct {
		Update *ExprLoc
		Fields []source.Loc[AssignedField]
	}

	// RecordBuilder is the applicative record-builder sugar. Eliminated
	// by desugaring.
	RecordBuilder struct {
		Fields []source.Loc[BuilderField]
	}
)

// ----------------------------------------------------------------------------
// Calls and control flow.
type (
	// Apply is a function application.
	Apply struct {
		Fn   *ExprLoc
		Args []*ExprLoc
		Via  CalledVia
	}

	// Closure is an anonymous function.
	Closure struct {
		Params []PatternLoc
		Body   *ExprLoc
	}

	// Backpassing is the `pattern <- call` sugar followed by a
	// continuation. Eliminated by desugaring.
	Backpassing struct {
		Params       []PatternLoc
		Call         *ExprLoc
		Continuation *ExprLoc
	}

	// BinOpArg is one operand followed by one operator in a chain.
	BinOpArg struct {
		Operand ExprLoc
		Op      source.Loc[BinOp]
	}

	// BinOps is a flat binary-operator chain: pairs of operand and
	// operator followed by the trailing operand. Eliminated by
	// desugaring.
	BinOps struct {
		Lefts []BinOpArg
		Right *ExprLoc
	}

	// UnaryOp is a unary operator application. Eliminated by desugaring.
	UnaryOp struct {
		Expr *ExprLoc
		Op   source.Loc[Unary]
	}

	// IfBranch is one condition and its branch body.
	IfBranch struct {
		Cond ExprLoc
		Body ExprLoc
	}

	// If is a conditional chain with a final else.
	If struct {
		Branches  []IfBranch
		FinalElse *ExprLoc
	}

	// WhenBranch is one branch of a pattern match.
	WhenBranch struct {
		Patterns []PatternLoc
		Value    ExprLoc
		Guard    *ExprLoc
	}

	// When is a pattern match. Branches are tried in order.
	When struct {
		Cond     *ExprLoc
		Branches []*WhenBranch
	}

	// Defs is a block of local definitions with a trailing result.
	Defs struct {
		Values []ValueDef
		Ret    *ExprLoc
	}

	// Expect is an inline assertion.
	Expect struct {
		Condition    *ExprLoc
		Continuation *ExprLoc
	}

	// Dbg is a debug-trace statement. Eliminated by desugaring in
	// favor of LowLevelDbg.
	Dbg struct {
		Condition    *ExprLoc
		Continuation *ExprLoc
	}

	// LowLevelDbg is the desugared form of Dbg. Label is the
	// "module:line" tag and Source the original text of the traced
	// expression. Only exists after desugaring.
	LowLevelDbg struct {
		Label        string
		Source       string
		Message      *ExprLoc
		Continuation *ExprLoc
	}
)

// ----------------------------------------------------------------------------
// Trivia wrappers, kept by parsing for formatting fidelity.
type (
	// ParensAround marks an explicitly parenthesized expression.
	ParensAround struct {
		Expr Expr
	}

	// SpaceBefore wraps an expression preceded by blank lines or
	// comments. Dropped by desugaring.
	SpaceBefore struct {
		Expr Expr
	}

	// SpaceAfter wraps an expression followed by blank lines or
	// comments. Dropped by desugaring.
	SpaceAfter struct {
		Expr Expr
	}
)

// ----------------------------------------------------------------------------
// Markers embedded by desugaring for user-facing failures. They are data:
// sibling subtrees keep desugaring normally and a later reporting pass
// turns markers into diagnostics.
type (
	// PrecedenceConflict marks a chain of two non-associative operators
	// of equal precedence, e.g. `a == b == c`.
	PrecedenceConflict struct {
		Whole    source.Region
		FirstOp  source.Loc[BinOp]
		SecondOp source.Loc[BinOp]
		Expr     *ExprLoc
	}

	// MultipleRecordBuilders marks a call carrying more than one
	// record-builder argument.
	MultipleRecordBuilders struct {
		Expr *ExprLoc
	}

	// UnappliedRecordBuilder marks a record builder outside argument
	// position.
	UnappliedRecordBuilder struct {
		Expr *ExprLoc
	}
)

func (*Num) node()                    {}
func (*Float) node()                  {}
func (*NonBase10Int) node()           {}
func (*SingleQuote) node()            {}
func (*Str) node()                    {}
func (*Var) node()                    {}
func (*Underscore) node()             {}
func (*Tag) node()                    {}
func (*OpaqueRef) node()              {}
func (*AccessorFunction) node()       {}
func (*IngestedFile) node()           {}
func (*Crash) node()                  {}
func (*MalformedIdent) node()         {}
func (*MalformedClosure) node()       {}
func (*RecordAccess) node()           {}
func (*TupleAccess) node()            {}
func (*List) node()                   {}
func (*Record) node()                 {}
func (*Tuple) node()                  {}
func (*RecordUpdate) node()           {}
func (*RecordBuilder) node()          {}
func (*Apply) node()                  {}
func (*Closure) node()                {}
func (*Backpassing) node()            {}
func (*BinOps) node()                 {}
func (*UnaryOp) node()                {}
func (*If) node()                     {}
func (*When) node()                   {}
func (*Defs) node()                   {}
func (*Expect) node()                 {}
func (*Dbg) node()                    {}
func (*LowLevelDbg) node()            {}
func (*ParensAround) node()           {}
func (*SpaceBefore) node()            {}
func (*SpaceAfter) node()             {}
func (*PrecedenceConflict) node()     {}
func (*MultipleRecordBuilders) node() {}
func (*UnappliedRecordBuilder) node() {}

func (*Num) exprNode()                    {}
func (*Float) exprNode()                  {}
func (*NonBase10Int) exprNode()           {}
func (*SingleQuote) exprNode()            {}
func (*Str) exprNode()                    {}
func (*Var) exprNode()                    {}
func (*Underscore) exprNode()             {}
func (*Tag) exprNode()                    {}
func (*OpaqueRef) exprNode()              {}
func (*AccessorFunction) exprNode()       {}
func (*IngestedFile) exprNode()           {}
func (*Crash) exprNode()                  {}
func (*MalformedIdent) exprNode()         {}
func (*MalformedClosure) exprNode()       {}
func (*RecordAccess) exprNode()           {}
func (*TupleAccess) exprNode()            {}
func (*List) exprNode()                   {}
func (*Record) exprNode()                 {}
func (*Tuple) exprNode()                  {}
func (*RecordUpdate) exprNode()           {}
func (*RecordBuilder) exprNode()          {}
func (*Apply) exprNode()                  {}
func (*Closure) exprNode()                {}
func (*Backpassing) exprNode()            {}
func (*BinOps) exprNode()                 {}
func (*UnaryOp) exprNode()                {}
func (*If) exprNode()                     {}
func (*When) exprNode()                   {}
func (*Defs) exprNode()                   {}
func (*Expect) exprNode()                 {}
func (*Dbg) exprNode()                    {}
func (*LowLevelDbg) exprNode()            {}
func (*ParensAround) exprNode()           {}
func (*SpaceBefore) exprNode()            {}
func (*SpaceAfter) exprNode()             {}
func (*PrecedenceConflict) exprNode()     {}
func (*MultipleRecordBuilders) exprNode() {}
func (*UnappliedRecordBuilder) exprNode() {}
