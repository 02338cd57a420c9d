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

import (
	"fmt"
	"strings"

	"github.com/lukewilliamboswell/roc/build/source"
)

// Sprint renders an expression as a compact one-line form for debugging
// and tests. Regions and trivia are not rendered, so two trees that differ
// only in formatting print the same.
func Sprint(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// SprintPattern renders a pattern the way Sprint renders expressions.
func SprintPattern(p Pattern) string {
	var b strings.Builder
	writePattern(&b, p)
	return b.String()
}

func writeExprs(b *strings.Builder, sep string, exprs []*ExprLoc) {
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(sep)
		}
		writeExpr(b, e.Value)
	}
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Num:
		b.WriteString(e.Text)
	case *Float:
		b.WriteString(e.Text)
	case *NonBase10Int:
		if e.IsNegative {
			b.WriteByte('-')
		}
		fmt.Fprintf(b, "%s#%d", e.Text, e.Base)
	case *SingleQuote:
		fmt.Fprintf(b, "'%s'", e.Text)
	case *Str:
		writeStrLiteral(b, e.Literal)
	case *Var:
		if e.ModuleName != "" {
			b.WriteString(e.ModuleName)
			b.WriteByte('.')
		}
		b.WriteString(e.Ident)
		b.WriteString(strings.Repeat("!", e.Suffixed))
	case *Underscore:
		b.WriteByte('_')
		b.WriteString(e.Name)
	case *Tag:
		b.WriteString(e.Name)
	case *OpaqueRef:
		b.WriteByte('@')
		b.WriteString(e.Name)
	case *AccessorFunction:
		b.WriteByte('.')
		b.WriteString(e.Field)
	case *IngestedFile:
		fmt.Fprintf(b, "<ingested %s>", e.Path)
	case *Crash:
		b.WriteString("crash")
	case *MalformedIdent:
		fmt.Fprintf(b, "<malformed %s>", e.Text)
	case *MalformedClosure:
		b.WriteString("<malformed closure>")
	case *RecordAccess:
		writeExpr(b, e.Value)
		b.WriteByte('.')
		b.WriteString(e.Field)
	case *TupleAccess:
		writeExpr(b, e.Value)
		b.WriteByte('.')
		b.WriteString(e.Index)
	case *List:
		b.WriteByte('[')
		writeExprs(b, ", ", e.Items)
		b.WriteByte(']')
	case *Record:
		writeFields(b, e.Fields)
	case *Tuple:
		b.WriteByte('(')
		writeExprs(b, ", ", e.Items)
		b.WriteByte(')')
	case *RecordUpdate:
		b.WriteString("{ ")
		writeExpr(b, e.Update.Value)
		b.WriteString(" & ")
		for i, f := range e.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			writeField(b, f.Value)
		}
		b.WriteString(" }")
	case *RecordBuilder:
		b.WriteString("<record builder>")
	case *Apply:
		b.WriteByte('(')
		writeExpr(b, e.Fn.Value)
		for _, arg := range e.Args {
			b.WriteByte(' ')
			writeExpr(b, arg.Value)
		}
		b.WriteByte(')')
	case *Closure:
		b.WriteString("(\\")
		writePatterns(b, e.Params)
		b.WriteString(" -> ")
		writeExpr(b, e.Body.Value)
		b.WriteByte(')')
	case *Backpassing:
		writePatterns(b, e.Params)
		b.WriteString(" <- ")
		writeExpr(b, e.Call.Value)
		b.WriteString("; ")
		writeExpr(b, e.Continuation.Value)
	case *BinOps:
		b.WriteString("(binops")
		for _, left := range e.Lefts {
			b.WriteByte(' ')
			writeExpr(b, left.Operand.Value)
			b.WriteByte(' ')
			b.WriteString(left.Op.Value.String())
		}
		b.WriteByte(' ')
		writeExpr(b, e.Right.Value)
		b.WriteByte(')')
	case *UnaryOp:
		b.WriteByte('(')
		b.WriteString(e.Op.Value.String())
		writeExpr(b, e.Expr.Value)
		b.WriteByte(')')
	case *If:
		b.WriteString("(if")
		for _, br := range e.Branches {
			b.WriteByte(' ')
			writeExpr(b, br.Cond.Value)
			b.WriteString(" then ")
			writeExpr(b, br.Body.Value)
		}
		b.WriteString(" else ")
		writeExpr(b, e.FinalElse.Value)
		b.WriteByte(')')
	case *When:
		b.WriteString("(when ")
		writeExpr(b, e.Cond.Value)
		b.WriteString(" is")
		for _, br := range e.Branches {
			b.WriteString(" [")
			writePatterns(b, br.Patterns)
			if br.Guard != nil {
				b.WriteString(" if ")
				writeExpr(b, br.Guard.Value)
			}
			b.WriteString(" -> ")
			writeExpr(b, br.Value.Value)
			b.WriteByte(']')
		}
		b.WriteByte(')')
	case *Defs:
		b.WriteString("(defs")
		for _, def := range e.Values {
			b.WriteString(" [")
			writeValueDef(b, def)
			b.WriteByte(']')
		}
		b.WriteByte(' ')
		writeExpr(b, e.Ret.Value)
		b.WriteByte(')')
	case *Expect:
		b.WriteString("(expect ")
		writeExpr(b, e.Condition.Value)
		b.WriteString("; ")
		writeExpr(b, e.Continuation.Value)
		b.WriteByte(')')
	case *Dbg:
		b.WriteString("(dbg ")
		writeExpr(b, e.Condition.Value)
		b.WriteString("; ")
		writeExpr(b, e.Continuation.Value)
		b.WriteByte(')')
	case *LowLevelDbg:
		fmt.Fprintf(b, "(lowleveldbg %q ", e.Label)
		writeExpr(b, e.Message.Value)
		b.WriteString("; ")
		writeExpr(b, e.Continuation.Value)
		b.WriteByte(')')
	case *ParensAround:
		b.WriteString("(paren ")
		writeExpr(b, e.Expr)
		b.WriteByte(')')
	case *SpaceBefore:
		writeExpr(b, e.Expr)
	case *SpaceAfter:
		writeExpr(b, e.Expr)
	case *PrecedenceConflict:
		fmt.Fprintf(b, "<precedence conflict %s %s>", e.FirstOp.Value, e.SecondOp.Value)
	case *MultipleRecordBuilders:
		b.WriteString("<multiple record builders>")
	case *UnappliedRecordBuilder:
		b.WriteString("<unapplied record builder>")
	default:
		fmt.Fprintf(b, "<unknown %T>", e)
	}
}

func writeStrLiteral(b *strings.Builder, lit StrLiteral) {
	switch lit := lit.(type) {
	case *PlainLine:
		fmt.Fprintf(b, "%q", lit.Text)
	case *Line:
		b.WriteByte('"')
		writeSegments(b, lit.Segments)
		b.WriteByte('"')
	case *Block:
		b.WriteString(`"""`)
		for i, line := range lit.Lines {
			if i > 0 {
				b.WriteString("\\n")
			}
			writeSegments(b, line)
		}
		b.WriteString(`"""`)
	}
}

func writeSegments(b *strings.Builder, segments []StrSegment) {
	for _, seg := range segments {
		switch seg := seg.(type) {
		case *Plaintext:
			b.WriteString(seg.Text)
		case *Unicode:
			fmt.Fprintf(b, "\\u(%s)", seg.Digits)
		case *EscapedChar:
			fmt.Fprintf(b, "\\%c", seg.Char)
		case *Interpolated:
			b.WriteString("$(")
			writeExpr(b, seg.Expr.Value)
			b.WriteByte(')')
		}
	}
}

func writeFields(b *strings.Builder, fields []source.Loc[AssignedField]) {
	b.WriteString("{ ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		writeField(b, f.Value)
	}
	b.WriteString(" }")
}

func writeField(b *strings.Builder, f AssignedField) {
	switch f := f.(type) {
	case *RequiredValue:
		b.WriteString(f.Label.Value)
		b.WriteString(": ")
		writeExpr(b, f.Value.Value)
	case *OptionalValue:
		b.WriteString(f.Label.Value)
		b.WriteString(" ? ")
		writeExpr(b, f.Value.Value)
	case *LabelOnly:
		b.WriteString(f.Label.Value)
	case *FieldSpaceBefore:
		writeField(b, f.Field)
	case *FieldSpaceAfter:
		writeField(b, f.Field)
	case *MalformedField:
		fmt.Fprintf(b, "<malformed %s>", f.Text)
	}
}

func writeValueDef(b *strings.Builder, def ValueDef) {
	switch def := def.(type) {
	case *Body:
		writePattern(b, def.Pattern.Value)
		b.WriteString(" = ")
		writeExpr(b, def.Expr.Value)
	case *Annotation:
		writePattern(b, def.Pattern.Value)
		b.WriteString(" : <ann>")
	case *AnnotatedBody:
		writePattern(b, def.BodyPattern.Value)
		b.WriteString(" : <ann> = ")
		writeExpr(b, def.BodyExpr.Value)
	case *DbgDef:
		b.WriteString("dbg ")
		writeExpr(b, def.Condition.Value)
	case *ExpectDef:
		b.WriteString("expect ")
		writeExpr(b, def.Condition.Value)
	case *ExpectFxDef:
		b.WriteString("expect-fx ")
		writeExpr(b, def.Condition.Value)
	case *StmtDef:
		writeExpr(b, def.Expr.Value)
	}
}

func writePatterns(b *strings.Builder, patterns []PatternLoc) {
	for i, p := range patterns {
		if i > 0 {
			b.WriteByte(' ')
		}
		writePattern(b, p.Value)
	}
}

func writePattern(b *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *IdentPattern:
		b.WriteString(p.Ident)
		b.WriteString(strings.Repeat("!", p.Suffixed))
	case *QualifiedIdentPattern:
		b.WriteString(p.Module)
		b.WriteByte('.')
		b.WriteString(p.Ident)
	case *TagPattern:
		b.WriteString(p.Name)
	case *OpaqueRefPattern:
		b.WriteByte('@')
		b.WriteString(p.Name)
	case *NumPattern:
		b.WriteString(p.Text)
	case *NonBase10Pattern:
		if p.IsNegative {
			b.WriteByte('-')
		}
		fmt.Fprintf(b, "%s#%d", p.Text, p.Base)
	case *FloatPattern:
		b.WriteString(p.Text)
	case *StrPattern:
		fmt.Fprintf(b, "%q", p.Text)
	case *SingleQuotePattern:
		fmt.Fprintf(b, "'%s'", p.Text)
	case *UnderscorePattern:
		b.WriteByte('_')
		b.WriteString(p.Name)
	case *ListRestPattern:
		b.WriteString("..")
		b.WriteString(p.Name)
	case *MalformedPattern:
		fmt.Fprintf(b, "<malformed %s>", p.Text)
	case *ApplyPattern:
		b.WriteByte('(')
		writePattern(b, p.Tag.Value)
		for _, arg := range p.Args {
			b.WriteByte(' ')
			writePattern(b, arg.Value)
		}
		b.WriteByte(')')
	case *RecordDestructure:
		b.WriteByte('{')
		for i, f := range p.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			writePattern(b, f.Value)
		}
		b.WriteByte('}')
	case *RequiredFieldPattern:
		b.WriteString(p.Name)
		b.WriteString(": ")
		writePattern(b, p.Pattern.Value)
	case *OptionalFieldPattern:
		b.WriteString(p.Name)
		b.WriteString(" ? ")
		writeExpr(b, p.Default.Value)
	case *TuplePattern:
		b.WriteByte('(')
		for i, it := range p.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writePattern(b, it.Value)
		}
		b.WriteByte(')')
	case *ListPattern:
		b.WriteByte('[')
		for i, it := range p.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writePattern(b, it.Value)
		}
		b.WriteByte(']')
	case *AsPattern:
		writePattern(b, p.Pattern.Value)
		b.WriteString(" as ")
		b.WriteString(p.Name.Value)
	case *PatternSpaceBefore:
		writePattern(b, p.Pattern)
	case *PatternSpaceAfter:
		writePattern(b, p.Pattern)
	default:
		fmt.Fprintf(b, "<unknown %T>", p)
	}
}
