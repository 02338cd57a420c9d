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

// Package desugar rewrites the surface tree into its canonical subset.
//
// The pass reorders binary-operator chains by precedence and
// associativity, replaces operators with calls to their builtin
// functions, eliminates backpassing, record builders, unary operators and
// statement definitions, rewrites dbg into its low-level form and drops
// formatting trivia. Regions are preserved: a rewritten node keeps the
// region of the source it came from.
//
// User-facing failures never stop the pass. They become marker nodes in
// the output tree and sibling subtrees keep desugaring, so one run
// surfaces every problem. Problems turns the markers of a desugared tree
// into diagnostics.
package desugar

import (
	"fmt"

	"github.com/lukewilliamboswell/roc/base/arena"
	"github.com/lukewilliamboswell/roc/build/fmterr"
	"github.com/lukewilliamboswell/roc/build/module"
	"github.com/lukewilliamboswell/roc/build/source"
	"github.com/lukewilliamboswell/roc/build/syntax"
)

// Desugarer desugars the trees of one compilation unit. All nodes the
// pass creates come from its arenas, so the output lives exactly as long
// as the Desugarer. Not safe for concurrent use.
type Desugarer struct {
	unit *module.Unit

	exprs arena.Arena[syntax.ExprLoc]
	refs  arena.Arena[*syntax.ExprLoc]
	pats  arena.Arena[syntax.PatternLoc]
	strs  arena.Strings
}

// New returns a desugarer for the given unit.
func New(unit *module.Unit) *Desugarer {
	return &Desugarer{unit: unit}
}

func (d *Desugarer) alloc(region source.Region, value syntax.Expr) *syntax.ExprLoc {
	return d.exprs.New(syntax.ExprLoc{Region: region, Value: value})
}

// DefValues desugars the value definitions of a top-level block in
// place. Annotations are kept untouched.
func (d *Desugarer) DefValues(defs *syntax.Defs) {
	for i, def := range defs.Values {
		defs.Values[i] = d.valueDef(def)
	}
}

func (d *Desugarer) valueDef(def syntax.ValueDef) syntax.ValueDef {
	switch defT := def.(type) {
	case *syntax.Body:
		return &syntax.Body{
			Pattern: d.locPattern(defT.Pattern),
			Expr:    d.Expr(defT.Expr),
		}
	case *syntax.Annotation:
		return defT
	case *syntax.AnnotatedBody:
		return &syntax.AnnotatedBody{
			AnnPattern:  defT.AnnPattern,
			AnnType:     defT.AnnType,
			BodyPattern: defT.BodyPattern,
			BodyExpr:    d.Expr(defT.BodyExpr),
		}
	case *syntax.DbgDef:
		return &syntax.DbgDef{Condition: d.Expr(defT.Condition)}
	case *syntax.ExpectDef:
		return &syntax.ExpectDef{Condition: d.Expr(defT.Condition)}
	case *syntax.ExpectFxDef:
		return &syntax.ExpectFxDef{Condition: d.Expr(defT.Condition)}
	case *syntax.StmtDef:
		// A bare statement is a body binding the empty record pattern.
		pattern := d.pats.New(syntax.PatternLoc{
			Region: defT.Expr.Region,
			Value:  &syntax.RecordDestructure{},
		})
		return &syntax.Body{Pattern: pattern, Expr: d.Expr(defT.Expr)}
	}
	panic(fmterr.Internalf("value definition %T not supported", def))
}

// Expr desugars an expression. The result is a fresh node unless the
// expression was already canonical, in which case it is returned as-is.
func (d *Desugarer) Expr(loc *syntax.ExprLoc) *syntax.ExprLoc {
	switch exprT := loc.Value.(type) {
	case *syntax.Num, *syntax.Float, *syntax.NonBase10Int, *syntax.SingleQuote,
		*syntax.AccessorFunction, *syntax.Var, *syntax.Underscore,
		*syntax.Tag, *syntax.OpaqueRef, *syntax.IngestedFile, *syntax.Crash,
		*syntax.MalformedIdent, *syntax.MalformedClosure,
		*syntax.PrecedenceConflict, *syntax.MultipleRecordBuilders,
		*syntax.UnappliedRecordBuilder:
		return loc
	case *syntax.Str:
		return d.strLiteral(loc, exprT)
	case *syntax.RecordAccess:
		sub := d.Expr(d.alloc(loc.Region, exprT.Value))
		return d.alloc(loc.Region, &syntax.RecordAccess{
			Value: sub.Value,
			Field: exprT.Field,
		})
	case *syntax.TupleAccess:
		sub := d.Expr(d.alloc(loc.Region, exprT.Value))
		return d.alloc(loc.Region, &syntax.TupleAccess{
			Value: sub.Value,
			Index: exprT.Index,
		})
	case *syntax.List:
		items := d.refs.Make(len(exprT.Items))
		for i, item := range exprT.Items {
			items[i] = d.Expr(item)
		}
		return d.alloc(loc.Region, &syntax.List{Items: items})
	case *syntax.Record:
		return d.alloc(loc.Region, &syntax.Record{
			Fields: d.fields(exprT.Fields),
		})
	case *syntax.Tuple:
		items := d.refs.Make(len(exprT.Items))
		for i, item := range exprT.Items {
			items[i] = d.Expr(item)
		}
		return d.alloc(loc.Region, &syntax.Tuple{Items: items})
	case *syntax.RecordUpdate:
		// The update target is always a Var: desugaring it only strips
		// trivia around it.
		return d.alloc(loc.Region, &syntax.RecordUpdate{
			Update: d.Expr(exprT.Update),
			Fields: d.fields(exprT.Fields),
		})
	case *syntax.RecordBuilder:
		return d.alloc(loc.Region, &syntax.UnappliedRecordBuilder{Expr: loc})
	case *syntax.Closure:
		return d.alloc(loc.Region, &syntax.Closure{
			Params: d.locPatterns(exprT.Params),
			Body:   d.Expr(exprT.Body),
		})
	case *syntax.Backpassing:
		return d.backpassing(loc, exprT)
	case *syntax.BinOps:
		return d.binOps(loc.Region, exprT)
	case *syntax.UnaryOp:
		return d.unaryOp(loc, exprT)
	case *syntax.Apply:
		return d.apply(loc, exprT)
	case *syntax.If:
		// If is not rewritten into when: keeping it separate gives
		// better error messages during type checking.
		branches := make([]syntax.IfBranch, len(exprT.Branches))
		for i, branch := range exprT.Branches {
			branches[i] = syntax.IfBranch{
				Cond: *d.Expr(&branch.Cond),
				Body: *d.Expr(&branch.Body),
			}
		}
		return d.alloc(loc.Region, &syntax.If{
			Branches:  branches,
			FinalElse: d.Expr(exprT.FinalElse),
		})
	case *syntax.When:
		return d.when(loc, exprT)
	case *syntax.Defs:
		values := make([]syntax.ValueDef, len(exprT.Values))
		for i, def := range exprT.Values {
			values[i] = d.valueDef(def)
		}
		return d.alloc(loc.Region, &syntax.Defs{
			Values: values,
			Ret:    d.Expr(exprT.Ret),
		})
	case *syntax.Expect:
		return d.alloc(loc.Region, &syntax.Expect{
			Condition:    d.Expr(exprT.Condition),
			Continuation: d.Expr(exprT.Continuation),
		})
	case *syntax.Dbg:
		return d.dbg(loc, exprT)
	case *syntax.SpaceBefore:
		// Trivia is dropped. The inner expression keeps the outer
		// region so diagnostics still cover the whole of the source.
		return d.Expr(d.alloc(loc.Region, exprT.Expr))
	case *syntax.SpaceAfter:
		return d.Expr(d.alloc(loc.Region, exprT.Expr))
	case *syntax.ParensAround:
		sub := d.Expr(d.alloc(loc.Region, exprT.Expr))
		return d.alloc(loc.Region, &syntax.ParensAround{Expr: sub.Value})
	case *syntax.LowLevelDbg:
		panic(fmterr.Internalf("low-level dbg only exists after desugaring"))
	}
	panic(fmterr.Internalf("expression %T not supported", loc.Value))
}

// apply desugars a function application, lowering at most one record
// builder among its arguments.
func (d *Desugarer) apply(loc *syntax.ExprLoc, app *syntax.Apply) *syntax.ExprLoc {
	args := d.refs.Make(len(app.Args))
	var builderApplies []*syntax.ExprLoc
	seenBuilder := false
	for i, locArg := range app.Args {
		arg := locArg
		current := locArg.Value
	unwrap:
		for {
			switch sub := current.(type) {
			case *syntax.RecordBuilder:
				if seenBuilder {
					return d.alloc(loc.Region, &syntax.MultipleRecordBuilders{Expr: loc})
				}
				seenBuilder = true
				builderArg := d.recordBuilderArg(locArg.Region, sub.Fields)
				builderApplies = builderArg.applies
				arg = builderArg.closure
				break unwrap
			case *syntax.SpaceBefore:
				current = sub.Expr
			case *syntax.SpaceAfter:
				current = sub.Expr
			default:
				break unwrap
			}
		}
		args[i] = d.Expr(arg)
	}

	apply := d.alloc(loc.Region, &syntax.Apply{
		Fn:   d.Expr(app.Fn),
		Args: args,
		Via:  app.Via,
	})

	// Builder fields written `label <- expr` wrap the call, the last
	// field ending up outermost.
	for _, applyExpr := range builderApplies {
		wrapArgs := d.refs.Make(1)
		wrapArgs[0] = apply
		apply = d.alloc(loc.Region, &syntax.Apply{
			Fn:   d.Expr(applyExpr),
			Args: wrapArgs,
			Via:  syntax.ViaRecordBuilder(),
		})
	}
	return apply
}

// backpassing rewrites `patterns <- call` followed by a continuation
// into a call taking the continuation as a trailing closure.
func (d *Desugarer) backpassing(loc *syntax.ExprLoc, bp *syntax.Backpassing) *syntax.ExprLoc {
	// Desugar the call first: it may contain |>.
	call := d.Expr(bp.Call)
	closure := d.alloc(loc.Region, &syntax.Closure{
		Params: d.locPatterns(bp.Params),
		Body:   d.Expr(bp.Continuation),
	})

	if applyT, ok := call.Value.(*syntax.Apply); ok {
		args := d.refs.Make(len(applyT.Args) + 1)
		copy(args, applyT.Args)
		args[len(args)-1] = closure
		return d.alloc(loc.Region, &syntax.Apply{
			Fn:   applyT.Fn,
			Args: args,
			Via:  applyT.Via,
		})
	}
	// e.g. `x <- (if b then f else g)`
	args := d.refs.Make(1)
	args[0] = closure
	return d.alloc(loc.Region, &syntax.Apply{
		Fn:   call,
		Args: args,
		Via:  syntax.ViaSpace(),
	})
}

func (d *Desugarer) unaryOp(loc *syntax.ExprLoc, unary *syntax.UnaryOp) *syntax.ExprLoc {
	var fn *syntax.Var
	switch unary.Op.Value {
	case syntax.Negate:
		fn = &syntax.Var{ModuleName: syntax.ModuleNum, Ident: "neg"}
	case syntax.Not:
		fn = &syntax.Var{ModuleName: syntax.ModuleBool, Ident: "not"}
	default:
		panic(fmterr.Internalf("unary operator %s not supported", unary.Op.Value))
	}
	args := d.refs.Make(1)
	args[0] = d.Expr(unary.Expr)
	return d.alloc(loc.Region, &syntax.Apply{
		Fn:   d.alloc(unary.Op.Region, fn),
		Args: args,
		Via:  syntax.ViaUnaryOp(unary.Op.Value),
	})
}

func (d *Desugarer) when(loc *syntax.ExprLoc, when *syntax.When) *syntax.ExprLoc {
	branches := make([]*syntax.WhenBranch, len(when.Branches))
	for i, branch := range when.Branches {
		desugared := &syntax.WhenBranch{
			Patterns: d.locPatterns(branch.Patterns),
			Value:    *d.Expr(&branch.Value),
		}
		if branch.Guard != nil {
			desugared.Guard = d.Expr(branch.Guard)
		}
		branches[i] = desugared
	}
	return d.alloc(loc.Region, &syntax.When{
		Cond:     d.Expr(when.Cond),
		Branches: branches,
	})
}

// dbg rewrites `dbg x` into `Inspect.toStr x` handed to the low-level
// trace primitive, labeled with the unit path and 1-based source line.
func (d *Desugarer) dbg(loc *syntax.ExprLoc, dbg *syntax.Dbg) *syntax.ExprLoc {
	continuation := d.Expr(dbg.Continuation)

	region := dbg.Condition.Region
	inspectFn := d.alloc(region, &syntax.Var{
		ModuleName: syntax.ModuleInspect,
		Ident:      "toStr",
	})
	inspectArgs := d.refs.Make(1)
	inspectArgs[0] = d.Expr(dbg.Condition)
	message := d.alloc(region, &syntax.Apply{
		Fn:   inspectFn,
		Args: inspectArgs,
		Via:  syntax.ViaSpace(),
	})

	lineCol := d.unit.LineInfo().Convert(region.Start())
	label := d.strs.New(fmt.Sprintf("%s:%d", d.unit.Path(), lineCol.Line+1))
	traced := d.strs.New(d.unit.Src()[region.Start():region.End()])

	return d.alloc(loc.Region, &syntax.LowLevelDbg{
		Label:        label,
		Source:       traced,
		Message:      message,
		Continuation: continuation,
	})
}

func (d *Desugarer) strLiteral(loc *syntax.ExprLoc, str *syntax.Str) *syntax.ExprLoc {
	switch lit := str.Literal.(type) {
	case *syntax.PlainLine:
		return loc
	case *syntax.Line:
		return d.alloc(loc.Region, &syntax.Str{
			Literal: &syntax.Line{Segments: d.strSegments(lit.Segments)},
		})
	case *syntax.Block:
		lines := make([][]syntax.StrSegment, len(lit.Lines))
		for i, segments := range lit.Lines {
			lines[i] = d.strSegments(segments)
		}
		return d.alloc(loc.Region, &syntax.Str{
			Literal: &syntax.Block{Lines: lines},
		})
	}
	panic(fmterr.Internalf("string literal %T not supported", str.Literal))
}

func (d *Desugarer) strSegments(segments []syntax.StrSegment) []syntax.StrSegment {
	out := make([]syntax.StrSegment, len(segments))
	for i, segment := range segments {
		if segT, ok := segment.(*syntax.Interpolated); ok {
			out[i] = &syntax.Interpolated{Expr: d.Expr(segT.Expr)}
			continue
		}
		out[i] = segment
	}
	return out
}

func (d *Desugarer) fields(fields []source.Loc[syntax.AssignedField]) []source.Loc[syntax.AssignedField] {
	out := make([]source.Loc[syntax.AssignedField], len(fields))
	for i, field := range fields {
		out[i] = source.At(field.Region, d.field(field.Value))
	}
	return out
}

func (d *Desugarer) field(field syntax.AssignedField) syntax.AssignedField {
	switch fieldT := field.(type) {
	case *syntax.RequiredValue:
		return &syntax.RequiredValue{
			Label: fieldT.Label,
			Value: d.Expr(fieldT.Value),
		}
	case *syntax.OptionalValue:
		return &syntax.OptionalValue{
			Label: fieldT.Label,
			Value: d.Expr(fieldT.Value),
		}
	case *syntax.LabelOnly:
		// Desugar { x } into { x: x }.
		value := d.alloc(fieldT.Label.Region, &syntax.Var{Ident: fieldT.Label.Value})
		return &syntax.RequiredValue{
			Label: fieldT.Label,
			Value: d.Expr(value),
		}
	case *syntax.FieldSpaceBefore:
		return d.field(fieldT.Field)
	case *syntax.FieldSpaceAfter:
		return d.field(fieldT.Field)
	case *syntax.MalformedField:
		return fieldT
	}
	panic(fmterr.Internalf("record field %T not supported", field))
}

func (d *Desugarer) locPatterns(patterns []syntax.PatternLoc) []syntax.PatternLoc {
	out := d.pats.Make(len(patterns))
	for i, pattern := range patterns {
		out[i] = syntax.PatternLoc{
			Region: pattern.Region,
			Value:  d.pattern(pattern.Value),
		}
	}
	return out
}

func (d *Desugarer) locPattern(pattern *syntax.PatternLoc) *syntax.PatternLoc {
	return d.pats.New(syntax.PatternLoc{
		Region: pattern.Region,
		Value:  d.pattern(pattern.Value),
	})
}

func (d *Desugarer) pattern(pattern syntax.Pattern) syntax.Pattern {
	switch patT := pattern.(type) {
	case *syntax.IdentPattern, *syntax.QualifiedIdentPattern,
		*syntax.TagPattern, *syntax.OpaqueRefPattern, *syntax.NumPattern,
		*syntax.NonBase10Pattern, *syntax.FloatPattern, *syntax.StrPattern,
		*syntax.SingleQuotePattern, *syntax.UnderscorePattern,
		*syntax.ListRestPattern, *syntax.MalformedPattern:
		return pattern
	case *syntax.ApplyPattern:
		// The tag is not desugared: it is either a tag or an opaque ref.
		return &syntax.ApplyPattern{
			Tag:  patT.Tag,
			Args: d.locPatterns(patT.Args),
		}
	case *syntax.RecordDestructure:
		return &syntax.RecordDestructure{Fields: d.locPatterns(patT.Fields)}
	case *syntax.RequiredFieldPattern:
		return &syntax.RequiredFieldPattern{
			Name:    patT.Name,
			Pattern: d.locPattern(patT.Pattern),
		}
	case *syntax.OptionalFieldPattern:
		return &syntax.OptionalFieldPattern{
			Name:    patT.Name,
			Default: d.Expr(patT.Default),
		}
	case *syntax.TuplePattern:
		return &syntax.TuplePattern{Items: d.locPatterns(patT.Items)}
	case *syntax.ListPattern:
		return &syntax.ListPattern{Items: d.locPatterns(patT.Items)}
	case *syntax.AsPattern:
		return &syntax.AsPattern{
			Pattern: d.locPattern(patT.Pattern),
			Name:    patT.Name,
		}
	case *syntax.PatternSpaceBefore:
		return d.pattern(patT.Pattern)
	case *syntax.PatternSpaceAfter:
		return d.pattern(patT.Pattern)
	}
	panic(fmterr.Internalf("pattern %T not supported", pattern))
}
