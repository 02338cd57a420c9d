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

import "github.com/lukewilliamboswell/roc/build/fmterr"

// VariableDetail buckets the free variables of a term by role.
// A variable may appear in more than one bucket: the recursion variable
// of a recursive union is also a type variable wherever a payload
// references it.
type VariableDetail struct {
	TypeVariables      []Variable
	LambdaSetVariables []Variable
	RecursionVariables []Variable
}

// IsEmpty returns true if all three buckets are empty.
func (d *VariableDetail) IsEmpty() bool {
	return len(d.TypeVariables) == 0 &&
		len(d.LambdaSetVariables) == 0 &&
		len(d.RecursionVariables) == 0
}

// VariablesDetail extracts the free variables of a term, bucketed by the
// role the term's structure assigns to each occurrence.
func VariablesDetail(typ Type) VariableDetail {
	detail := VariableDetail{}
	variablesDetail(typ, &detail)
	return detail
}

func variablesDetail(typ Type, detail *VariableDetail) {
	switch typT := typ.(type) {
	case *TypeVariable:
		detail.TypeVariables = append(detail.TypeVariables, typT.Var)
	case *Apply:
		for _, arg := range typT.Args {
			variablesDetail(arg, detail)
		}
	case *Function:
		for _, arg := range typT.Args {
			variablesDetail(arg, detail)
		}
		switch closure := typT.LambdaSet.(type) {
		case *TypeVariable:
			detail.LambdaSetVariables = append(detail.LambdaSetVariables, closure.Var)
		default:
			variablesDetail(typT.LambdaSet, detail)
		}
		variablesDetail(typT.Ret, detail)
	case *Record:
		for _, field := range typT.Fields {
			variablesDetail(field.Type, detail)
		}
		if typT.Ext != nil {
			variablesDetail(typT.Ext, detail)
		}
	case *TagUnion:
		variablesDetailTags(typT.Tags, typT.Ext, detail)
	case *RecursiveTagUnion:
		detail.RecursionVariables = append(detail.RecursionVariables, typT.RecVar)
		variablesDetailTags(typT.Tags, typT.Ext, detail)
	case *Alias:
		for _, arg := range typT.Args {
			variablesDetail(arg, detail)
		}
		detail.LambdaSetVariables = append(detail.LambdaSetVariables, typT.LambdaSets...)
		variablesDetail(typT.Actual, detail)
	case *RangedNumber:
		for _, rng := range typT.Range {
			variablesDetail(rng, detail)
		}
	case *EmptyRecord, *EmptyTagUnion, *Erroneous:
	default:
		panic(fmterr.Internalf("type %T not supported", typ))
	}
}

func variablesDetailTags(tags []Tag, ext Type, detail *VariableDetail) {
	for _, tag := range tags {
		for _, arg := range tag.Args {
			variablesDetail(arg, detail)
		}
	}
	if ext != nil {
		variablesDetail(ext, detail)
	}
}
