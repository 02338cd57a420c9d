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

// builderArg is the lowered form of a record-builder argument: a curried
// closure returning the record, and the `label <- expr` expressions that
// will wrap the call, in field order.
type builderArg struct {
	closure *syntax.ExprLoc
	applies []*syntax.ExprLoc
}

// recordBuilderArg lowers the fields of a record builder in argument
// position.
//
// Each `label <- expr` field becomes a hidden variable in the record and
// one parameter of the closure:
//
//	{ x: #x, y: #y, z: 3 }
//	\#y -> { x: #x, y: #y, z: 3 }
//	\#x -> \#y -> { x: #x, y: #y, z: 3 }
//
// The hidden names come from the unit's name generator, so two builders
// in one unit can never collide.
func (d *Desugarer) recordBuilderArg(region source.Region, fields []source.Loc[syntax.BuilderField]) builderArg {
	recordFields := make([]source.Loc[syntax.AssignedField], 0, len(fields))
	applies := make([]*syntax.ExprLoc, 0, len(fields))
	hiddenNames := make([]source.Loc[string], 0, len(fields))

	// Build the record the closure will return and gather the apply
	// expressions.
	for _, field := range fields {
		current := field.Value
		var newField syntax.AssignedField
	unwrap:
		for {
			switch fieldT := current.(type) {
			case *syntax.BuilderValue:
				newField = &syntax.RequiredValue{
					Label: fieldT.Label,
					Value: fieldT.Value,
				}
				break unwrap
			case *syntax.BuilderApply:
				name := d.strs.New(d.unit.Names().Name("#" + fieldT.Label.Value))
				hiddenNames = append(hiddenNames, source.At(fieldT.Label.Region, name))
				applies = append(applies, fieldT.Value)
				newField = &syntax.RequiredValue{
					Label: fieldT.Label,
					Value: d.alloc(fieldT.Label.Region, &syntax.Var{Ident: name}),
				}
				break unwrap
			case *syntax.BuilderLabelOnly:
				newField = &syntax.LabelOnly{Label: fieldT.Label}
				break unwrap
			case *syntax.BuilderSpaceBefore:
				current = fieldT.Field
			case *syntax.BuilderSpaceAfter:
				current = fieldT.Field
			case *syntax.BuilderMalformed:
				newField = &syntax.MalformedField{Text: fieldT.Text}
				break unwrap
			default:
				panic(fmterr.Internalf("builder field %T not supported", current))
			}
		}
		recordFields = append(recordFields, source.At(field.Region, newField))
	}

	body := d.alloc(region, &syntax.Record{Fields: recordFields})

	// Wrap the record in one single-parameter closure per hidden name,
	// innermost last.
	for i := len(hiddenNames) - 1; i >= 0; i-- {
		name := hiddenNames[i]
		params := d.pats.Make(1)
		params[0] = syntax.PatternLoc{
			Region: name.Region,
			Value:  &syntax.IdentPattern{Ident: name.Value},
		}
		body = d.alloc(region, &syntax.Closure{Params: params, Body: body})
	}

	return builderArg{closure: body, applies: applies}
}
