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

package types

import (
	"iter"
	"slices"
	"strings"

	"github.com/lukewilliamboswell/roc/base/stringseq"
	"github.com/lukewilliamboswell/roc/build/fmterr"
)

// Sprint renders a type term on one line, for diagnostics and tests.
// Variables print as t<id>, functions carry their lambda set between
// the arrow brackets, and an open row prints its extension directly
// after the closing brace or bracket.
func Sprint(typ Type) string {
	var b strings.Builder
	writeType(&b, typ)
	return b.String()
}

// String renders the tag with its payload types, e.g. Cons t1 t2.
func (t Tag) String() string {
	var b strings.Builder
	writeApply(&b, t.Name, t.Args)
	return b.String()
}

func writeType(b *strings.Builder, typ Type) {
	switch typT := typ.(type) {
	case *TypeVariable:
		b.WriteByte('t')
		b.WriteString(typT.Var.String())
	case *Apply:
		writeApply(b, typT.Symbol, typT.Args)
	case *Function:
		b.WriteByte('(')
		stringseq.Append(b, typeStrings(typT.Args), ", ")
		b.WriteString(" -[")
		writeType(b, typT.LambdaSet)
		b.WriteString("]-> ")
		writeType(b, typT.Ret)
		b.WriteByte(')')
	case *Record:
		if len(typT.Fields) == 0 {
			b.WriteString("{}")
			writeExt(b, typT.Ext)
			return
		}
		b.WriteString("{ ")
		for i, field := range typT.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(field.Label)
			if field.Kind == OptionalField {
				b.WriteString(" ? ")
			} else {
				b.WriteString(" : ")
			}
			writeType(b, field.Type)
		}
		b.WriteString(" }")
		writeExt(b, typT.Ext)
	case *TagUnion:
		writeTags(b, typT.Tags, typT.Ext)
	case *RecursiveTagUnion:
		writeTags(b, typT.Tags, typT.Ext)
		b.WriteString(" as t")
		b.WriteString(typT.RecVar.String())
	case *Alias:
		writeApply(b, typT.Symbol, typT.Args)
	case *RangedNumber:
		b.WriteByte('(')
		stringseq.Append(b, typeStrings(typT.Range), " | ")
		b.WriteByte(')')
	case *EmptyRecord:
		b.WriteString("{}")
	case *EmptyTagUnion:
		b.WriteString("[]")
	case *Erroneous:
		b.WriteString("<error>")
	default:
		panic(fmterr.Internalf("type %T not supported", typ))
	}
}

func writeApply(b *strings.Builder, symbol string, args []Type) {
	b.WriteString(symbol)
	for _, arg := range args {
		b.WriteByte(' ')
		if applyNeedsParens(arg) {
			b.WriteByte('(')
			writeType(b, arg)
			b.WriteByte(')')
		} else {
			writeType(b, arg)
		}
	}
}

// applyNeedsParens reports if a term in argument position is ambiguous
// without parentheses. Functions and ranges parenthesize themselves.
func applyNeedsParens(typ Type) bool {
	switch typT := typ.(type) {
	case *Apply:
		return len(typT.Args) > 0
	case *Alias:
		return len(typT.Args) > 0
	}
	return false
}

func writeTags(b *strings.Builder, tags []Tag, ext Type) {
	b.WriteByte('[')
	stringseq.AppendStringer(b, slices.Values(tags), ", ")
	b.WriteByte(']')
	writeExt(b, ext)
}

func writeExt(b *strings.Builder, ext Type) {
	if ext == nil {
		return
	}
	writeType(b, ext)
}

func typeStrings(types []Type) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, typ := range types {
			if !yield(Sprint(typ)) {
				return
			}
		}
	}
}
