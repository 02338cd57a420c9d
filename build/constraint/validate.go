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

package constraint

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lukewilliamboswell/roc/base/iter"
	"github.com/lukewilliamboswell/roc/build/fmterr"
	"github.com/lukewilliamboswell/roc/build/types"
)

// varHasher hashes Variable keys for immutable sets. The library default
// hasher only covers built-in key types.
type varHasher struct{}

func (varHasher) Hash(v types.Variable) uint32   { return uint32(v) }
func (varHasher) Equal(a, b types.Variable) bool { return a == b }

// declared tracks the variables in scope during validation. The sets are
// persistent: Let extends a branch scope without copying the parent.
type declared struct {
	rigid immutable.Set[types.Variable]
	flex  immutable.Set[types.Variable]
}

func addAll(set immutable.Set[types.Variable], vars ...[]types.Variable) immutable.Set[types.Variable] {
	for v := range iter.All(vars...) {
		set = set.Add(v)
	}
	return set
}

type varSet map[types.Variable]struct{}

func (s varSet) sorted() []types.Variable {
	vars := maps.Keys(s)
	slices.Sort(vars)
	return vars
}

// unbound accumulates variables referenced but never declared, bucketed
// by the role their occurrence demands.
type unbound struct {
	typeVars      varSet
	lambdaSetVars varSet
	recursionVars varSet
}

// Validate checks that every variable the constraint references is
// declared by an enclosing Let, in a role consistent with its
// occurrences. It panics on any violation and returns true otherwise,
// so it can sit inside an assertion. Failures are defects in the
// constraint generator, never user errors.
func Validate(c Constraint) bool {
	scope := declared{
		rigid: immutable.NewSet[types.Variable](varHasher{}),
		flex:  immutable.NewSet[types.Variable](varHasher{}),
	}
	accum := unbound{
		typeVars:      varSet{},
		lambdaSetVars: varSet{},
		recursionVars: varSet{},
	}
	validate(c, scope, &accum)
	if len(accum.typeVars) > 0 {
		panic(fmterr.Internalf("found unbound type variables %v", accum.typeVars.sorted()))
	}
	if len(accum.lambdaSetVars) > 0 {
		panic(fmterr.Internalf("found unbound lambda set variables %v", accum.lambdaSetVars.sorted()))
	}
	if len(accum.recursionVars) > 0 {
		panic(fmterr.Internalf("found unbound recursion variables %v", accum.recursionVars.sorted()))
	}
	return true
}

func validate(c Constraint, scope declared, accum *unbound) {
	switch cT := c.(type) {
	case *True, *SaveTheEnvironment, *Lookup:
	case *Eq:
		subtract(scope, types.VariablesDetail(cT.Type), accum)
		subtract(scope, types.VariablesDetail(cT.Expected.Type), accum)
	case *Store:
		subtract(scope, types.VariablesDetail(cT.Type), accum)
		// The stored-into variable is always freshly introduced, so it
		// must be declared flexible.
		if !scope.flex.Has(cT.Var) {
			accum.typeVars[cT.Var] = struct{}{}
		}
	case *Pattern:
		subtract(scope, types.VariablesDetail(cT.Type), accum)
		subtract(scope, types.VariablesDetail(cT.Expected.Type), accum)
	case *Let:
		inner := declared{
			rigid: addAll(scope.rigid, cT.RigidVars),
			flex:  addAll(scope.flex, cT.FlexVars),
		}
		validate(cT.Defs, inner, accum)
		validate(cT.Ret, inner, accum)
	case *And:
		for _, sub := range cT.Constraints {
			validate(sub, scope, accum)
		}
	default:
		panic(fmterr.Internalf("constraint %T not supported", c))
	}
}

func subtract(scope declared, detail types.VariableDetail, accum *unbound) {
	for _, v := range detail.TypeVariables {
		if !scope.rigid.Has(v) && !scope.flex.Has(v) {
			accum.typeVars[v] = struct{}{}
		}
	}
	// Lambda set variables are always flex.
	for _, v := range detail.LambdaSetVariables {
		if scope.rigid.Has(v) {
			panic(fmterr.Internalf("lambda set variable %s is declared as rigid", v))
		}
		if !scope.flex.Has(v) {
			accum.lambdaSetVars[v] = struct{}{}
		}
	}
	// Recursion variables are always rigid.
	for _, v := range detail.RecursionVariables {
		if scope.flex.Has(v) {
			panic(fmterr.Internalf("recursion variable %s is declared as flex", v))
		}
		if !scope.rigid.Has(v) {
			accum.recursionVars[v] = struct{}{}
		}
	}
}
