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
// Value definitions. Ordering within a Defs block is significant.
type (
	// Body is `pattern = expr`.
	Body struct {
		Pattern *PatternLoc
		Expr    *ExprLoc
	}

	// Annotation is a standalone type annotation, `pattern : type`.
	Annotation struct {
		Pattern *PatternLoc
		Ann     source.Loc[TypeAnnotation]
	}

	// AnnotatedBody is an annotation directly followed by its body.
	AnnotatedBody struct {
		AnnPattern  *PatternLoc
		AnnType     source.Loc[TypeAnnotation]
		BodyPattern *PatternLoc
		BodyExpr    *ExprLoc
	}

	// DbgDef is a `dbg expr` definition.
	DbgDef struct {
		Condition *ExprLoc
	}

	// ExpectDef is an `expect expr` definition.
	ExpectDef struct {
		Condition *ExprLoc
	}

	// ExpectFxDef is an `expect-fx expr` definition.
	ExpectFxDef struct {
		Condition *ExprLoc
	}

	// StmtDef is a bare statement expression. Desugared into
	// `Body({} = expr)`.
	StmtDef struct {
		Expr *ExprLoc
	}
)

func (*Body) node()          {}
func (*Annotation) node()    {}
func (*AnnotatedBody) node() {}
func (*DbgDef) node()        {}
func (*ExpectDef) node()     {}
func (*ExpectFxDef) node()   {}
func (*StmtDef) node()       {}

func (*Body) valueDefNode()          {}
func (*Annotation) valueDefNode()    {}
func (*AnnotatedBody) valueDefNode() {}
func (*DbgDef) valueDefNode()        {}
func (*ExpectDef) valueDefNode()     {}
func (*ExpectFxDef) valueDefNode()   {}
func (*StmtDef) valueDefNode()       {}

// ----------------------------------------------------------------------------
// Surface type annotations. Opaque to desugaring.
type (
	// TypeApply is a named type applied to arguments.
	TypeApply struct {
		Module string
		Name   string
		Args   []source.Loc[TypeAnnotation]
	}

	// TypeVar is a type variable.
	TypeVar struct {
		Name string
	}

	// TypeWildcard is the `*` annotation.
	TypeWildcard struct{}

	// TypeFunction is a function annotation.
	TypeFunction struct {
		Args []source.Loc[TypeAnnotation]
		Ret  *source.Loc[TypeAnnotation]
	}
)

func (*TypeApply) node()    {}
func (*TypeVar) node()      {}
func (*TypeWildcard) node() {}
func (*TypeFunction) node() {}

func (*TypeApply) typeAnnNode()    {}
func (*TypeVar) typeAnnNode()      {}
func (*TypeWildcard) typeAnnNode() {}
func (*TypeFunction) typeAnnNode() {}
