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

package desugar_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lukewilliamboswell/roc/build/desugar"
	"github.com/lukewilliamboswell/roc/build/module"
	"github.com/lukewilliamboswell/roc/build/source"
	"github.com/lukewilliamboswell/roc/build/syntax"
)

func newDesugarer(t *testing.T, src string) *desugar.Desugarer {
	t.Helper()
	unit, err := module.New("Main.roc", src)
	if err != nil {
		t.Fatal(err)
	}
	return desugar.New(unit)
}

func at(e syntax.Expr) *syntax.ExprLoc {
	return &syntax.ExprLoc{Value: e}
}

func va(name string) *syntax.ExprLoc {
	return at(&syntax.Var{Ident: name})
}

func call(fn *syntax.ExprLoc, args ...*syntax.ExprLoc) *syntax.ExprLoc {
	return at(&syntax.Apply{Fn: fn, Args: args, Via: syntax.ViaSpace()})
}

func op(o syntax.BinOp) source.Loc[syntax.BinOp] {
	return source.At(source.Region{}, o)
}

// binops builds the flat chain operand op operand op ... operand.
func binops(operands []*syntax.ExprLoc, ops []syntax.BinOp) *syntax.ExprLoc {
	lefts := make([]syntax.BinOpArg, len(ops))
	for i, o := range ops {
		lefts[i] = syntax.BinOpArg{Operand: *operands[i], Op: op(o)}
	}
	return at(&syntax.BinOps{Lefts: lefts, Right: operands[len(operands)-1]})
}

func TestBinOps(t *testing.T) {
	abc := func(ops ...syntax.BinOp) *syntax.ExprLoc {
		return binops([]*syntax.ExprLoc{va("a"), va("b"), va("c")}, ops)
	}
	tests := []struct {
		desc string
		expr *syntax.ExprLoc
		want string
	}{
		{
			desc: "higher precedence on the right",
			expr: abc(syntax.Plus, syntax.Star),
			want: "(Num.add a (Num.mul b c))",
		},
		{
			desc: "higher precedence on the left",
			expr: abc(syntax.Star, syntax.Plus),
			want: "(Num.add (Num.mul a b) c)",
		},
		{
			desc: "left associative",
			expr: abc(syntax.Minus, syntax.Minus),
			want: "(Num.sub (Num.sub a b) c)",
		},
		{
			desc: "right associative",
			expr: abc(syntax.Caret, syntax.Caret),
			want: "(Num.pow a (Num.pow b c))",
		},
		{
			desc: "and binds tighter than or",
			expr: abc(syntax.And, syntax.Or),
			want: "(Bool.or (Bool.and a b) c)",
		},
		{
			desc: "comparison of a sum",
			expr: abc(syntax.Equals, syntax.Plus),
			want: "(Bool.isEq a (Num.add b c))",
		},
		{
			desc: "single operator",
			expr: binops([]*syntax.ExprLoc{va("a"), va("b")}, []syntax.BinOp{syntax.DoubleSlash}),
			want: "(Num.divTrunc a b)",
		},
		{
			desc: "operands are desugared",
			expr: binops(
				[]*syntax.ExprLoc{
					at(&syntax.SpaceBefore{Expr: &syntax.Var{Ident: "a"}}),
					at(&syntax.UnaryOp{Expr: va("b"), Op: source.At(source.Region{}, syntax.Negate)}),
				},
				[]syntax.BinOp{syntax.Percent},
			),
			want: "(Num.rem a (Num.neg b))",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			d := newDesugarer(t, "")
			got := syntax.Sprint(d.Expr(test.expr).Value)
			if got != test.want {
				t.Errorf("incorrect desugaring:\n%s", cmp.Diff(test.want, got))
			}
		})
	}
}

func TestBinOpsPrecedenceConflict(t *testing.T) {
	whole := source.NewRegion(0, 11)
	expr := &syntax.ExprLoc{
		Region: whole,
		Value: &syntax.BinOps{
			Lefts: []syntax.BinOpArg{
				{Operand: *va("a"), Op: source.At(source.NewRegion(2, 4), syntax.Equals)},
				{Operand: *va("b"), Op: source.At(source.NewRegion(7, 9), syntax.Equals)},
			},
			Right: va("c"),
		},
	}
	d := newDesugarer(t, "")
	got := d.Expr(expr)
	marker, ok := got.Value.(*syntax.PrecedenceConflict)
	if !ok {
		t.Fatalf("desugared to %s, want a precedence conflict", syntax.Sprint(got.Value))
	}
	if marker.Whole != whole {
		t.Errorf("conflict covers %s, want %s", marker.Whole, whole)
	}
	if marker.FirstOp.Value != syntax.Equals || marker.SecondOp.Value != syntax.Equals {
		t.Errorf("conflict between %s and %s, want == and ==", marker.FirstOp.Value, marker.SecondOp.Value)
	}
	if got := syntax.Sprint(marker.Expr.Value); got != "(Bool.isEq a b)" {
		t.Errorf("partially combined expression is %s", got)
	}
}

func TestPizza(t *testing.T) {
	tests := []struct {
		desc string
		expr *syntax.ExprLoc
		want string
	}{
		{
			desc: "pipe into a call",
			expr: binops(
				[]*syntax.ExprLoc{va("x"), call(va("f"), va("y"))},
				[]syntax.BinOp{syntax.Pizza},
			),
			want: "(f x y)",
		},
		{
			desc: "pipe into a bare function",
			expr: binops(
				[]*syntax.ExprLoc{va("x"), va("f")},
				[]syntax.BinOp{syntax.Pizza},
			),
			want: "(f x)",
		},
		{
			desc: "pipe chain is left associative",
			expr: binops(
				[]*syntax.ExprLoc{va("x"), va("f"), va("g")},
				[]syntax.BinOp{syntax.Pizza, syntax.Pizza},
			),
			want: "(g (f x))",
		},
		{
			desc: "pipe into a conditional",
			expr: binops(
				[]*syntax.ExprLoc{
					at(&syntax.Num{Text: "1"}),
					at(&syntax.ParensAround{Expr: &syntax.If{
						Branches:  []syntax.IfBranch{{Cond: *va("b"), Body: *va("f")}},
						FinalElse: va("g"),
					}}),
				},
				[]syntax.BinOp{syntax.Pizza},
			),
			want: "((paren (if b then f else g)) 1)",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			d := newDesugarer(t, "")
			got := syntax.Sprint(d.Expr(test.expr).Value)
			if got != test.want {
				t.Errorf("incorrect desugaring:\n%s", cmp.Diff(test.want, got))
			}
		})
	}
}

func ident(name string) syntax.PatternLoc {
	return syntax.PatternLoc{Value: &syntax.IdentPattern{Ident: name}}
}

func TestBackpassing(t *testing.T) {
	tests := []struct {
		desc string
		expr *syntax.ExprLoc
		want string
	}{
		{
			desc: "call body",
			expr: at(&syntax.Backpassing{
				Params:       []syntax.PatternLoc{ident("x")},
				Call:         call(va("f"), va("a")),
				Continuation: call(va("g"), va("x")),
			}),
			want: "(f a (\\x -> (g x)))",
		},
		{
			desc: "bare function body",
			expr: at(&syntax.Backpassing{
				Params:       []syntax.PatternLoc{ident("x")},
				Call:         va("m"),
				Continuation: va("x"),
			}),
			want: "(m (\\x -> x))",
		},
		{
			desc: "pipe in the call",
			expr: at(&syntax.Backpassing{
				Params: []syntax.PatternLoc{ident("x")},
				Call: binops(
					[]*syntax.ExprLoc{va("a"), call(va("f"), va("b"))},
					[]syntax.BinOp{syntax.Pizza},
				),
				Continuation: va("x"),
			}),
			want: "(f a b (\\x -> x))",
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			d := newDesugarer(t, "")
			got := syntax.Sprint(d.Expr(test.expr).Value)
			if got != test.want {
				t.Errorf("incorrect desugaring:\n%s", cmp.Diff(test.want, got))
			}
		})
	}
}

func label(name string) source.Loc[string] {
	return source.At(source.Region{}, name)
}

func TestRecordBuilder(t *testing.T) {
	builder := &syntax.RecordBuilder{Fields: []source.Loc[syntax.BuilderField]{
		source.At(source.Region{}, syntax.BuilderField(&syntax.BuilderApply{
			Label: label("x"),
			Value: call(va("parse"), va("a")),
		})),
		source.At(source.Region{}, syntax.BuilderField(&syntax.BuilderValue{
			Label: label("y"),
			Value: at(&syntax.Num{Text: "3"}),
		})),
		source.At(source.Region{}, syntax.BuilderField(&syntax.BuilderApply{
			Label: label("z"),
			Value: call(va("parse"), va("b")),
		})),
	}}
	expr := call(va("succeed"), at(builder))

	d := newDesugarer(t, "")
	got := syntax.Sprint(d.Expr(expr).Value)
	want := "((parse b) ((parse a) (succeed (\\#x -> (\\#z -> { x: #x, y: 3, z: #z })))))"
	if got != want {
		t.Errorf("incorrect desugaring:\n%s", cmp.Diff(want, got))
	}
}

func TestRecordBuilderMarkers(t *testing.T) {
	builder := func() *syntax.ExprLoc {
		return at(&syntax.RecordBuilder{Fields: []source.Loc[syntax.BuilderField]{
			source.At(source.Region{}, syntax.BuilderField(&syntax.BuilderApply{
				Label: label("x"),
				Value: va("parse"),
			})),
		}})
	}

	d := newDesugarer(t, "")
	two := call(va("succeed"), builder(), builder())
	if got := syntax.Sprint(d.Expr(two).Value); got != "<multiple record builders>" {
		t.Errorf("two builder arguments desugared to %s", got)
	}
	if got := syntax.Sprint(d.Expr(builder()).Value); got != "<unapplied record builder>" {
		t.Errorf("bare builder desugared to %s", got)
	}
}

func TestUnaryOp(t *testing.T) {
	d := newDesugarer(t, "")
	neg := at(&syntax.UnaryOp{Expr: va("x"), Op: source.At(source.Region{}, syntax.Negate)})
	if got := syntax.Sprint(d.Expr(neg).Value); got != "(Num.neg x)" {
		t.Errorf("negation desugared to %s", got)
	}
	not := at(&syntax.UnaryOp{Expr: va("x"), Op: source.At(source.Region{}, syntax.Not)})
	if got := syntax.Sprint(d.Expr(not).Value); got != "(Bool.not x)" {
		t.Errorf("complement desugared to %s", got)
	}
}

func TestDefs(t *testing.T) {
	expr := at(&syntax.Defs{
		Values: []syntax.ValueDef{
			&syntax.StmtDef{Expr: call(va("f"), va("x"))},
			&syntax.Body{
				Pattern: &syntax.PatternLoc{Value: &syntax.PatternSpaceBefore{
					Pattern: &syntax.IdentPattern{Ident: "y"},
				}},
				Expr: at(&syntax.Record{Fields: []source.Loc[syntax.AssignedField]{
					source.At(source.Region{}, syntax.AssignedField(&syntax.LabelOnly{Label: label("x")})),
				}}),
			},
		},
		Ret: va("y"),
	})
	d := newDesugarer(t, "")
	got := syntax.Sprint(d.Expr(expr).Value)
	want := "(defs [{} = (f x)] [y = { x: x }] y)"
	if got != want {
		t.Errorf("incorrect desugaring:\n%s", cmp.Diff(want, got))
	}
}

func TestDefValues(t *testing.T) {
	defs := &syntax.Defs{
		Values: []syntax.ValueDef{
			&syntax.StmtDef{Expr: va("sideEffect")},
			&syntax.Annotation{
				Pattern: &syntax.PatternLoc{Value: &syntax.IdentPattern{Ident: "n"}},
			},
		},
	}
	d := newDesugarer(t, "")
	d.DefValues(defs)
	if _, ok := defs.Values[0].(*syntax.Body); !ok {
		t.Errorf("statement stayed a %T, want a body", defs.Values[0])
	}
	if _, ok := defs.Values[1].(*syntax.Annotation); !ok {
		t.Errorf("annotation became a %T", defs.Values[1])
	}
}

func TestDbg(t *testing.T) {
	src := "one\ndbg two\nrest"
	condition := &syntax.ExprLoc{
		Region: source.NewRegion(8, 11),
		Value:  &syntax.Var{Ident: "two"},
	}
	expr := &syntax.ExprLoc{
		Region: source.NewRegion(4, 16),
		Value: &syntax.Dbg{
			Condition:    condition,
			Continuation: va("rest"),
		},
	}
	d := newDesugarer(t, src)
	got := d.Expr(expr)
	want := `(lowleveldbg "Main.roc:2" (Inspect.toStr two); rest)`
	if s := syntax.Sprint(got.Value); s != want {
		t.Errorf("incorrect desugaring:\n%s", cmp.Diff(want, s))
	}
	dbg, ok := got.Value.(*syntax.LowLevelDbg)
	if !ok {
		t.Fatalf("desugared to %T", got.Value)
	}
	if dbg.Source != "two" {
		t.Errorf("traced source is %q, want %q", dbg.Source, "two")
	}
}

func TestTrivia(t *testing.T) {
	region := source.NewRegion(3, 9)
	expr := &syntax.ExprLoc{
		Region: region,
		Value: &syntax.SpaceBefore{Expr: &syntax.SpaceAfter{
			Expr: &syntax.ParensAround{Expr: &syntax.UnaryOp{
				Expr: va("x"),
				Op:   source.At(source.Region{}, syntax.Negate),
			}},
		}},
	}
	d := newDesugarer(t, "")
	got := d.Expr(expr)
	if s := syntax.Sprint(got.Value); s != "(paren (Num.neg x))" {
		t.Errorf("trivia desugared to %s", s)
	}
	if got.Region != region {
		t.Errorf("desugared region is %s, want %s", got.Region, region)
	}
}

func TestIdempotence(t *testing.T) {
	expr := at(&syntax.Defs{
		Values: []syntax.ValueDef{
			&syntax.StmtDef{Expr: binops(
				[]*syntax.ExprLoc{va("a"), va("b"), va("c")},
				[]syntax.BinOp{syntax.Plus, syntax.Star},
			)},
		},
		Ret: at(&syntax.Backpassing{
			Params:       []syntax.PatternLoc{ident("x")},
			Call:         call(va("f"), va("a")),
			Continuation: va("x"),
		}),
	})
	d := newDesugarer(t, "")
	once := d.Expr(expr)
	twice := d.Expr(once)
	if g, w := syntax.Sprint(twice.Value), syntax.Sprint(once.Value); g != w {
		t.Errorf("desugaring is not idempotent:\n%s", cmp.Diff(w, g))
	}
}

func TestMarkerKeepsSiblings(t *testing.T) {
	expr := at(&syntax.Defs{
		Values: []syntax.ValueDef{
			&syntax.StmtDef{Expr: binops(
				[]*syntax.ExprLoc{va("a"), va("b"), va("c")},
				[]syntax.BinOp{syntax.Equals, syntax.Equals},
			)},
		},
		Ret: binops(
			[]*syntax.ExprLoc{va("x"), va("f")},
			[]syntax.BinOp{syntax.Pizza},
		),
	})
	d := newDesugarer(t, "")
	got := syntax.Sprint(d.Expr(expr).Value)
	want := "(defs [{} = <precedence conflict == ==>] (f x))"
	if got != want {
		t.Errorf("incorrect desugaring:\n%s", cmp.Diff(want, got))
	}
}

func TestProblems(t *testing.T) {
	unit, err := module.New("Main.roc", "a == b == c")
	if err != nil {
		t.Fatal(err)
	}
	d := desugar.New(unit)

	clean := d.Expr(binops(
		[]*syntax.ExprLoc{va("a"), va("b")},
		[]syntax.BinOp{syntax.Plus},
	))
	if errs := desugar.Problems(unit, clean); errs != nil {
		t.Errorf("clean tree reported problems: %v", errs)
	}

	conflicted := &syntax.ExprLoc{
		Region: source.NewRegion(0, 11),
		Value: &syntax.BinOps{
			Lefts: []syntax.BinOpArg{
				{Operand: *va("a"), Op: source.At(source.NewRegion(2, 4), syntax.Equals)},
				{Operand: *va("b"), Op: source.At(source.NewRegion(7, 9), syntax.Equals)},
			},
			Right: va("c"),
		},
	}
	tree := d.Expr(at(&syntax.Defs{
		Values: []syntax.ValueDef{&syntax.StmtDef{Expr: conflicted}},
		Ret:    va("c"),
	}))
	errs := desugar.Problems(unit, tree)
	if len(errs) != 1 {
		t.Fatalf("tree reported %d problems, want 1: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "non-associative") {
		t.Errorf("problem is %q", errs[0])
	}
	if !strings.Contains(errs[0].Error(), "Main.roc:1:1") {
		t.Errorf("problem is not positioned at the chain start: %q", errs[0])
	}
}
