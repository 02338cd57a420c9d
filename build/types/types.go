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

// Package types defines the structural type terms of the inference model.
//
// A term is a tree of Type nodes. Leaves are type variables, opaque
// handles into the unification table. A variable has one of four roles,
// fixed when it is declared: flexible (unification may instantiate it),
// rigid (named by the user, never instantiated), lambda set (tracks the
// closures flowing through a function type), or recursion (ties the knot
// of a recursive tag union). The role is not encoded in the variable
// itself; constraint validation checks that each occurrence is consistent
// with the declaration.
package types

import "fmt"

// Variable is an opaque handle to a unification variable.
type Variable uint32

// String returns the variable id for diagnostics.
func (v Variable) String() string {
	return fmt.Sprintf("%d", uint32(v))
}

// Type is a structural type term.
type Type interface {
	typeNode()
}

type (
	// TypeVariable is a variable used as a term.
	TypeVariable struct {
		Var Variable
	}

	// Apply applies a nominal type symbol to arguments, e.g. List Str.
	Apply struct {
		Symbol string
		Args   []Type
	}

	// Function is an arrow type. LambdaSet carries the set of closures
	// that can flow into the arrow, almost always a TypeVariable.
	Function struct {
		Args      []Type
		LambdaSet Type
		Ret       Type
	}

	// Record is a record type with an extension row. A nil Ext means
	// the record is closed.
	Record struct {
		Fields []RecordField
		Ext    Type
	}

	// TagUnion is a sum type with an extension row. A nil Ext means the
	// union is closed.
	TagUnion struct {
		Tags []Tag
		Ext  Type
	}

	// RecursiveTagUnion is a tag union whose payloads refer back to the
	// union through RecVar.
	RecursiveTagUnion struct {
		RecVar Variable
		Tags   []Tag
		Ext    Type
	}

	// Alias names a term without changing its structure. LambdaSets are
	// the lambda set variables the alias abstracts over.
	Alias struct {
		Symbol     string
		Args       []Type
		LambdaSets []Variable
		Actual     Type
	}

	// RangedNumber is a number literal restricted to a range of
	// concrete number types.
	RangedNumber struct {
		Range []Type
	}

	// EmptyRecord is the closed record with no fields.
	EmptyRecord struct{}

	// EmptyTagUnion is the closed union with no tags.
	EmptyTagUnion struct{}

	// Erroneous marks a term that already produced a type error.
	// Constraints mentioning it validate but never unify.
	Erroneous struct{}
)

// RecordFieldKind distinguishes how a record field may be accessed.
type RecordFieldKind int

const (
	// RequiredField must be present when the record is built.
	RequiredField RecordFieldKind = iota
	// OptionalField may be omitted when the record is built.
	OptionalField
	// DemandedField is required by a destructuring pattern.
	DemandedField
)

// RecordField is one labeled field of a record type.
type RecordField struct {
	Label string
	Kind  RecordFieldKind
	Type  Type
}

// Tag is one alternative of a tag union.
type Tag struct {
	Name string
	Args []Type
}

func (*TypeVariable) typeNode()      {}
func (*Apply) typeNode()             {}
func (*Function) typeNode()          {}
func (*Record) typeNode()            {}
func (*TagUnion) typeNode()          {}
func (*RecursiveTagUnion) typeNode() {}
func (*Alias) typeNode()             {}
func (*RangedNumber) typeNode()      {}
func (*EmptyRecord) typeNode()       {}
func (*EmptyTagUnion) typeNode()     {}
func (*Erroneous) typeNode()         {}
