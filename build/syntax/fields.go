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
// Fields of record literals and record updates.
type (
	// RequiredValue is a `label: expr` field.
	RequiredValue struct {
		Label source.Loc[string]
		Value *ExprLoc
	}

	// OptionalValue is a `label ? expr` field with a default.
	OptionalValue struct {
		Label source.Loc[string]
		Value *ExprLoc
	}

	// LabelOnly is the `{ x }` shorthand for `{ x: x }`.
	LabelOnly struct {
		Label source.Loc[string]
	}

	// FieldSpaceBefore wraps a field preceded by trivia.
	FieldSpaceBefore struct {
		Field AssignedField
	}

	// FieldSpaceAfter wraps a field followed by trivia.
	FieldSpaceAfter struct {
		Field AssignedField
	}

	// MalformedField is a field the parser could not accept.
	MalformedField struct {
		Text string
	}
)

// ----------------------------------------------------------------------------
// Fields of record builders.
type (
	// BuilderValue is a plain `label: expr` builder field.
	BuilderValue struct {
		Label source.Loc[string]
		Value *ExprLoc
	}

	// BuilderApply is an applicative `label <- expr` builder field.
	BuilderApply struct {
		Label source.Loc[string]
		Value *ExprLoc
	}

	// BuilderLabelOnly is the label shorthand inside a builder.
	BuilderLabelOnly struct {
		Label source.Loc[string]
	}

	// BuilderSpaceBefore wraps a builder field preceded by trivia.
	BuilderSpaceBefore struct {
		Field BuilderField
	}

	// BuilderSpaceAfter wraps a builder field followed by trivia.
	BuilderSpaceAfter struct {
		Field BuilderField
	}

	// BuilderMalformed is a builder field the parser could not accept.
	BuilderMalformed struct {
		Text string
	}
)

func (*RequiredValue) node()    {}
func (*OptionalValue) node()    {}
func (*LabelOnly) node()        {}
func (*FieldSpaceBefore) node() {}
func (*FieldSpaceAfter) node()  {}
func (*MalformedField) node()   {}

func (*RequiredValue) assignedFieldNode()    {}
func (*OptionalValue) assignedFieldNode()    {}
func (*LabelOnly) assignedFieldNode()        {}
func (*FieldSpaceBefore) assignedFieldNode() {}
func (*FieldSpaceAfter) assignedFieldNode()  {}
func (*MalformedField) assignedFieldNode()   {}

func (*BuilderValue) node()       {}
func (*BuilderApply) node()       {}
func (*BuilderLabelOnly) node()   {}
func (*BuilderSpaceBefore) node() {}
func (*BuilderSpaceAfter) node()  {}
func (*BuilderMalformed) node()   {}

func (*BuilderValue) builderFieldNode()       {}
func (*BuilderApply) builderFieldNode()       {}
func (*BuilderLabelOnly) builderFieldNode()   {}
func (*BuilderSpaceBefore) builderFieldNode() {}
func (*BuilderSpaceAfter) builderFieldNode()  {}
func (*BuilderMalformed) builderFieldNode()   {}
