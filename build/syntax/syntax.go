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

// Package syntax is the surface expression tree produced by parsing.
//
// The tree is a closed set of tagged variants. The desugaring pass
// [github.com/lukewilliamboswell/roc/build/desugar] rewrites it into its
// canonical subset: after desugaring, no BinOps, Backpassing,
// RecordBuilder, UnaryOp, SpaceBefore/SpaceAfter or statement-only
// definitions remain.
//
// Every node is exclusively owned by its parent. Nodes are allocated from
// arenas scoped to one compilation unit and are never shared or cyclic.
package syntax

import "github.com/lukewilliamboswell/roc/build/source"

// ----------------------------------------------------------------------------
// Types of node in the tree.
type (
	// Node in the tree.
	Node interface {
		// node marks a structure as a node structure.
		// It prevents external implementations of the interface.
		node()
	}

	// Expr is an expression node.
	Expr interface {
		Node
		exprNode()
	}

	// Pattern is a pattern node, used in closure parameters, when
	// branches and definition left-hand sides.
	Pattern interface {
		Node
		patternNode()
	}

	// StrLiteral is the body of a string literal.
	StrLiteral interface {
		Node
		strLiteralNode()
	}

	// StrSegment is one segment of an interpolated string line.
	StrSegment interface {
		Node
		strSegmentNode()
	}

	// AssignedField is a field of a record literal or record update.
	AssignedField interface {
		Node
		assignedFieldNode()
	}

	// BuilderField is a field of a record-builder literal.
	BuilderField interface {
		Node
		builderFieldNode()
	}

	// ValueDef is one definition inside a Defs block.
	ValueDef interface {
		Node
		valueDefNode()
	}

	// TypeAnnotation is a surface type annotation. Desugaring keeps
	// annotations untouched.
	TypeAnnotation interface {
		Node
		typeAnnNode()
	}
)

// ExprLoc is an expression with its source region.
type ExprLoc = source.Loc[Expr]

// PatternLoc is a pattern with its source region.
type PatternLoc = source.Loc[Pattern]
