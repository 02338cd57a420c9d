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
	"github.com/lukewilliamboswell/roc/build/module"
	"github.com/lukewilliamboswell/roc/build/syntax"
)

// Problems reports the marker nodes of a desugared tree as positioned
// diagnostics, in tree order. It returns nil if the tree has no markers.
func Problems(unit *module.Unit, loc *syntax.ExprLoc) []error {
	var markers []*syntax.ExprLoc
	collectMarkers(loc, &markers)
	if len(markers) == 0 {
		return nil
	}
	app := fmterr.NewAppender(unit.Path(), unit.LineInfo())
	for _, marker := range markers {
		switch markerT := marker.Value.(type) {
		case *syntax.PrecedenceConflict:
			app.Appendf(markerT.Whole,
				"the %s and %s operators are non-associative: add parentheses to disambiguate",
				markerT.FirstOp.Value, markerT.SecondOp.Value)
		case *syntax.MultipleRecordBuilders:
			app.Appendf(marker.Region,
				"this call has more than one record builder argument")
		case *syntax.UnappliedRecordBuilder:
			app.Appendf(marker.Region,
				"a record builder must be passed as an argument to a function")
		}
	}
	return app.Errors()
}

func collectMarkers(loc *syntax.ExprLoc, markers *[]*syntax.ExprLoc) {
	if loc == nil {
		return
	}
	switch exprT := loc.Value.(type) {
	case *syntax.PrecedenceConflict, *syntax.MultipleRecordBuilders,
		*syntax.UnappliedRecordBuilder:
		*markers = append(*markers, loc)
	case *syntax.Str:
		collectStrMarkers(exprT.Literal, markers)
	case *syntax.RecordAccess:
		collectMarkers(&syntax.ExprLoc{Region: loc.Region, Value: exprT.Value}, markers)
	case *syntax.TupleAccess:
		collectMarkers(&syntax.ExprLoc{Region: loc.Region, Value: exprT.Value}, markers)
	case *syntax.List:
		for _, item := range exprT.Items {
			collectMarkers(item, markers)
		}
	case *syntax.Record:
		for _, field := range exprT.Fields {
			collectFieldMarkers(field.Value, markers)
		}
	case *syntax.Tuple:
		for _, item := range exprT.Items {
			collectMarkers(item, markers)
		}
	case *syntax.RecordUpdate:
		collectMarkers(exprT.Update, markers)
		for _, field := range exprT.Fields {
			collectFieldMarkers(field.Value, markers)
		}
	case *syntax.Apply:
		collectMarkers(exprT.Fn, markers)
		for _, arg := range exprT.Args {
			collectMarkers(arg, markers)
		}
	case *syntax.Closure:
		collectPatternsMarkers(exprT.Params, markers)
		collectMarkers(exprT.Body, markers)
	case *syntax.If:
		for _, branch := range exprT.Branches {
			cond, body := branch.Cond, branch.Body
			collectMarkers(&cond, markers)
			collectMarkers(&body, markers)
		}
		collectMarkers(exprT.FinalElse, markers)
	case *syntax.When:
		collectMarkers(exprT.Cond, markers)
		for _, branch := range exprT.Branches {
			collectPatternsMarkers(branch.Patterns, markers)
			value := branch.Value
			collectMarkers(&value, markers)
			collectMarkers(branch.Guard, markers)
		}
	case *syntax.Defs:
		for _, def := range exprT.Values {
			collectDefMarkers(def, markers)
		}
		collectMarkers(exprT.Ret, markers)
	case *syntax.Expect:
		collectMarkers(exprT.Condition, markers)
		collectMarkers(exprT.Continuation, markers)
	case *syntax.LowLevelDbg:
		collectMarkers(exprT.Message, markers)
		collectMarkers(exprT.Continuation, markers)
	case *syntax.ParensAround:
		collectMarkers(&syntax.ExprLoc{Region: loc.Region, Value: exprT.Expr}, markers)
	}
}

func collectStrMarkers(literal syntax.StrLiteral, markers *[]*syntax.ExprLoc) {
	collect := func(segments []syntax.StrSegment) {
		for _, segment := range segments {
			if segT, ok := segment.(*syntax.Interpolated); ok {
				collectMarkers(segT.Expr, markers)
			}
		}
	}
	switch litT := literal.(type) {
	case *syntax.Line:
		collect(litT.Segments)
	case *syntax.Block:
		for _, line := range litT.Lines {
			collect(line)
		}
	}
}

func collectFieldMarkers(field syntax.AssignedField, markers *[]*syntax.ExprLoc) {
	switch fieldT := field.(type) {
	case *syntax.RequiredValue:
		collectMarkers(fieldT.Value, markers)
	case *syntax.OptionalValue:
		collectMarkers(fieldT.Value, markers)
	}
}

func collectDefMarkers(def syntax.ValueDef, markers *[]*syntax.ExprLoc) {
	switch defT := def.(type) {
	case *syntax.Body:
		collectPatternMarkers(defT.Pattern.Value, markers)
		collectMarkers(defT.Expr, markers)
	case *syntax.AnnotatedBody:
		collectMarkers(defT.BodyExpr, markers)
	case *syntax.DbgDef:
		collectMarkers(defT.Condition, markers)
	case *syntax.ExpectDef:
		collectMarkers(defT.Condition, markers)
	case *syntax.ExpectFxDef:
		collectMarkers(defT.Condition, markers)
	case *syntax.StmtDef:
		collectMarkers(defT.Expr, markers)
	}
}

func collectPatternsMarkers(patterns []syntax.PatternLoc, markers *[]*syntax.ExprLoc) {
	for _, pattern := range patterns {
		collectPatternMarkers(pattern.Value, markers)
	}
}

func collectPatternMarkers(pattern syntax.Pattern, markers *[]*syntax.ExprLoc) {
	switch patT := pattern.(type) {
	case *syntax.ApplyPattern:
		collectPatternsMarkers(patT.Args, markers)
	case *syntax.RecordDestructure:
		collectPatternsMarkers(patT.Fields, markers)
	case *syntax.RequiredFieldPattern:
		collectPatternMarkers(patT.Pattern.Value, markers)
	case *syntax.OptionalFieldPattern:
		collectMarkers(patT.Default, markers)
	case *syntax.TuplePattern:
		collectPatternsMarkers(patT.Items, markers)
	case *syntax.ListPattern:
		collectPatternsMarkers(patT.Items, markers)
	case *syntax.AsPattern:
		collectPatternMarkers(patT.Pattern.Value, markers)
	}
}
