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
	"github.com/lukewilliamboswell/roc/build/source"
	"github.com/lukewilliamboswell/roc/build/types"
)

// ExpectedKind tags why a type is expected, driving the wording of the
// eventual type error.
type ExpectedKind int

const (
	// NoExpectation carries no story: report a plain mismatch.
	NoExpectation ExpectedKind = iota
	// ForReason points at a construct that imposed the expectation,
	// e.g. an if condition must be a Bool.
	ForReason
	// FromAnnotation comes from a user-written type annotation.
	FromAnnotation
)

// Expected is a type an expression is expected to have, with the story
// of where the expectation comes from.
type Expected struct {
	Kind   ExpectedKind
	Type   types.Type
	Reason string
	Region source.Region
}

// NoExpected expects a type with no error story.
func NoExpected(typ types.Type) Expected {
	return Expected{Kind: NoExpectation, Type: typ}
}

// ForReasonExpected expects a type because of a named construct.
func ForReasonExpected(reason string, typ types.Type, region source.Region) Expected {
	return Expected{Kind: ForReason, Type: typ, Reason: reason, Region: region}
}

// FromAnnotationExpected expects a type from a user annotation.
func FromAnnotationExpected(typ types.Type, region source.Region) Expected {
	return Expected{Kind: FromAnnotation, Type: typ, Region: region}
}

// PExpected is the pattern counterpart of Expected. Patterns never carry
// annotations, so only the first two kinds apply.
type PExpected struct {
	Kind   ExpectedKind
	Type   types.Type
	Reason string
	Region source.Region
}

// NoPExpected expects a pattern type with no error story.
func NoPExpected(typ types.Type) PExpected {
	return PExpected{Kind: NoExpectation, Type: typ}
}

// ForReasonPExpected expects a pattern type because of a named construct.
func ForReasonPExpected(reason string, typ types.Type, region source.Region) PExpected {
	return PExpected{Kind: ForReason, Type: typ, Reason: reason, Region: region}
}

// Category tags what kind of expression a constraint was generated for.
type Category int

const (
	CategoryLookup Category = iota
	CategoryCallResult
	CategoryLambda
	CategoryNum
	CategoryInt
	CategoryFloat
	CategoryStr
	CategoryList
	CategoryRecord
	CategoryAccess
	CategoryIf
	CategoryWhen
	CategoryStorage
)

var categoryNames = [...]string{
	CategoryLookup:     "lookup",
	CategoryCallResult: "call result",
	CategoryLambda:     "lambda",
	CategoryNum:        "number",
	CategoryInt:        "integer",
	CategoryFloat:      "float",
	CategoryStr:        "string",
	CategoryList:       "list",
	CategoryRecord:     "record",
	CategoryAccess:     "field access",
	CategoryIf:         "if",
	CategoryWhen:       "when",
	CategoryStorage:    "storage",
}

// String returns the category name used in diagnostics.
func (c Category) String() string { return categoryNames[c] }

// PatternCategory tags what kind of pattern a constraint was generated
// for.
type PatternCategory int

const (
	PatternCtor PatternCategory = iota
	PatternRecord
	PatternEmptyRecord
	PatternList
	PatternGuard
	PatternStr
	PatternNum
	PatternInt
	PatternFloat
	PatternUnderscore
)

var patternCategoryNames = [...]string{
	PatternCtor:        "tag",
	PatternRecord:      "record",
	PatternEmptyRecord: "empty record",
	PatternList:        "list",
	PatternGuard:       "pattern guard",
	PatternStr:         "string",
	PatternNum:         "number",
	PatternInt:         "integer",
	PatternFloat:       "float",
	PatternUnderscore:  "underscore",
}

// String returns the pattern category name used in diagnostics.
func (c PatternCategory) String() string { return patternCategoryNames[c] }
