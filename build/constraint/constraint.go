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

// Package constraint models the constraints handed to type inference.
//
// Constraint generation walks the canonical tree and emits a single
// Constraint per definition; the solver consumes it afterwards. Every
// variable a constraint references must be declared by an enclosing Let,
// in the role its occurrences demand. Validate checks that property
// before the tree reaches the solver.
package constraint

import (
	"github.com/lukewilliamboswell/roc/base/ordered"
	"github.com/lukewilliamboswell/roc/build/source"
	"github.com/lukewilliamboswell/roc/build/types"
)

// Constraint is one node of a constraint tree.
type Constraint interface {
	constraintNode()
}

type (
	// Eq constrains a type to match an expectation.
	Eq struct {
		Type     types.Type
		Expected Expected
		Category Category
		Region   source.Region
	}

	// Store unifies a type into a fresh variable without reporting
	// errors. File and Line record where the constraint was built, for
	// debugging the generator itself.
	Store struct {
		Type types.Type
		Var  types.Variable
		File string
		Line int
	}

	// Lookup constrains the type of a symbol from scope.
	Lookup struct {
		Symbol   string
		Expected Expected
		Region   source.Region
	}

	// Pattern constrains a pattern to match an expectation.
	Pattern struct {
		Region   source.Region
		Category PatternCategory
		Type     types.Type
		Expected PExpected
	}

	// True always unifies. Used for blanks and runtime errors.
	True struct{}

	// SaveTheEnvironment snapshots the scope for the REPL and docs.
	SaveTheEnvironment struct{}

	// Let declares variables and def types for its two sub-constraints.
	// Defs constrains the definitions themselves, Ret the body that can
	// see them.
	Let struct {
		RigidVars []types.Variable
		FlexVars  []types.Variable
		DefTypes  *ordered.Map[string, source.Loc[types.Type]]
		Defs      Constraint
		Ret       Constraint
	}

	// And groups constraints that must all hold.
	And struct {
		Constraints []Constraint
	}
)

func (*Eq) constraintNode()                 {}
func (*Store) constraintNode()              {}
func (*Lookup) constraintNode()             {}
func (*Pattern) constraintNode()            {}
func (*True) constraintNode()               {}
func (*SaveTheEnvironment) constraintNode() {}
func (*Let) constraintNode()                {}
func (*And) constraintNode()                {}
