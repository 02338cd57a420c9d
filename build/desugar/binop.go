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

package desugar

import (
	"github.com/lukewilliamboswell/roc/build/fmterr"
	"github.com/lukewilliamboswell/roc/build/source"
	"github.com/lukewilliamboswell/roc/build/syntax"
)

// binOps reorders a flat operator chain by precedence and associativity
// with an operand stack and an operator stack, then rewrites every
// operator into a call.
//
// On a precedence conflict the chain is abandoned: the marker replaces
// the whole chain and the caller keeps desugaring the rest of the tree.
func (d *Desugarer) binOps(whole source.Region, chain *syntax.BinOps) *syntax.ExprLoc {
	argStack := make([]*syntax.ExprLoc, 0, len(chain.Lefts)+1)
	opStack := make([]source.Loc[syntax.BinOp], 0, len(chain.Lefts))

	for _, left := range chain.Lefts {
		operand := left.Operand
		argStack = append(argStack, d.Expr(&operand))
		if problem := d.binopStep(whole, &argStack, &opStack, left.Op); problem != nil {
			return problem
		}
	}

	expr := d.Expr(chain.Right)
	// Both stacks hold the deferred higher-precedence prefix: reduce it
	// right to left.
	for i := len(opStack) - 1; i >= 0; i-- {
		expr = d.newOpCall(argStack[i], opStack[i], expr)
	}
	return expr
}

// binopStep integrates the next operator of the chain into the stacks.
// It returns a non-nil precedence-conflict marker if the chain is
// ambiguous.
func (d *Desugarer) binopStep(whole source.Region, argStack *[]*syntax.ExprLoc, opStack *[]source.Loc[syntax.BinOp], nextOp source.Loc[syntax.BinOp]) *syntax.ExprLoc {
	for {
		if len(*opStack) == 0 {
			*opStack = append(*opStack, nextOp)
			return nil
		}
		stackOp := (*opStack)[len(*opStack)-1]
		*opStack = (*opStack)[:len(*opStack)-1]

		nextPrec := nextOp.Value.Precedence()
		stackPrec := stackOp.Value.Precedence()
		switch {
		case nextPrec < stackPrec:
			// The stacked operator binds tighter: combine the top two
			// operands and retry with the same incoming operator.
			d.combineTop(argStack, stackOp)
			continue
		case nextPrec > stackPrec:
			// The incoming operator binds tighter: defer both.
			*opStack = append(*opStack, stackOp, nextOp)
			return nil
		}

		nextAssoc := nextOp.Value.Associativity()
		stackAssoc := stackOp.Value.Associativity()
		switch {
		case nextAssoc == syntax.LeftAssociative && stackAssoc == syntax.LeftAssociative:
			d.combineTop(argStack, stackOp)
			continue
		case nextAssoc == syntax.RightAssociative && stackAssoc == syntax.RightAssociative:
			*opStack = append(*opStack, stackOp, nextOp)
			return nil
		case nextAssoc == syntax.NonAssociative && stackAssoc == syntax.NonAssociative:
			// e.g. True == False == False. The author must disambiguate
			// with parens.
			right := (*argStack)[len(*argStack)-1]
			left := (*argStack)[len(*argStack)-2]
			*argStack = (*argStack)[:len(*argStack)-2]
			broken := d.newOpCall(left, stackOp, right)
			return d.alloc(broken.Region, &syntax.PrecedenceConflict{
				Whole:    whole,
				FirstOp:  stackOp,
				SecondOp: nextOp,
				Expr:     broken,
			})
		}
		// No two operators share a precedence while differing in
		// associativity, so this cannot be reached from the operator
		// table.
		panic(fmterr.Internalf(
			"operators %s and %s have equal precedence but different associativity",
			stackOp.Value, nextOp.Value))
	}
}

func (d *Desugarer) combineTop(argStack *[]*syntax.ExprLoc, op source.Loc[syntax.BinOp]) {
	right := (*argStack)[len(*argStack)-1]
	left := (*argStack)[len(*argStack)-2]
	(*argStack)[len(*argStack)-2] = d.newOpCall(left, op, right)
	*argStack = (*argStack)[:len(*argStack)-1]
}

// newOpCall builds the call for one binary operator application. Both
// operands are already desugared.
func (d *Desugarer) newOpCall(left *syntax.ExprLoc, locOp source.Loc[syntax.BinOp], right *syntax.ExprLoc) *syntax.ExprLoc {
	region := left.Region.Span(right.Region)

	if locOp.Value == syntax.Pizza {
		// Rewrite the pipe operator into an Apply, splicing the left
		// operand in as the first argument.
		if applyT, ok := right.Value.(*syntax.Apply); ok {
			args := d.refs.Make(1 + len(applyT.Args))
			args[0] = left
			copy(args[1:], applyT.Args)
			return d.alloc(region, &syntax.Apply{
				Fn:   applyT.Fn,
				Args: args,
				Via:  syntax.ViaBinOp(syntax.Pizza),
			})
		}
		// e.g. `1 |> (if b then f else g)`
		args := d.refs.Make(1)
		args[0] = left
		return d.alloc(region, &syntax.Apply{
			Fn:   right,
			Args: args,
			Via:  syntax.ViaBinOp(syntax.Pizza),
		})
	}

	moduleName, ident := binopToFunction(locOp.Value)
	fn := d.alloc(locOp.Region, &syntax.Var{ModuleName: moduleName, Ident: ident})
	args := d.refs.Make(2)
	args[0], args[1] = left, right
	return d.alloc(region, &syntax.Apply{
		Fn:   fn,
		Args: args,
		Via:  syntax.ViaBinOp(locOp.Value),
	})
}

func binopToFunction(op syntax.BinOp) (moduleName, ident string) {
	switch op {
	case syntax.Caret:
		return syntax.ModuleNum, "pow"
	case syntax.Star:
		return syntax.ModuleNum, "mul"
	case syntax.Slash:
		return syntax.ModuleNum, "div"
	case syntax.DoubleSlash:
		return syntax.ModuleNum, "divTrunc"
	case syntax.Percent:
		return syntax.ModuleNum, "rem"
	case syntax.Plus:
		return syntax.ModuleNum, "add"
	case syntax.Minus:
		return syntax.ModuleNum, "sub"
	case syntax.Equals:
		return syntax.ModuleBool, "isEq"
	case syntax.NotEquals:
		return syntax.ModuleBool, "isNotEq"
	case syntax.LessThan:
		return syntax.ModuleNum, "isLt"
	case syntax.GreaterThan:
		return syntax.ModuleNum, "isGt"
	case syntax.LessThanOrEq:
		return syntax.ModuleNum, "isLte"
	case syntax.GreaterThanOrEq:
		return syntax.ModuleNum, "isGte"
	case syntax.And:
		return syntax.ModuleBool, "and"
	case syntax.Or:
		return syntax.ModuleBool, "or"
	}
	panic(fmterr.Internalf("cannot desugar the %s operator into a call", op))
}
