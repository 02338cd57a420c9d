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

import "github.com/lukewilliamboswell/roc/build/source"

// ----------------------------------------------------------------------------
// Patterns that are already canonical.
type (
	// IdentPattern binds a name.
	IdentPattern struct {
		Ident    string
		Suffixed int
	}

	// QualifiedIdentPattern is a module-qualified identifier in pattern
	// position. Always a parse error, reported later.
	QualifiedIdentPattern struct {
		Module string
		Ident  string
	}

	// TagPattern matches a tag.
	TagPattern struct {
		Name string
	}

	// OpaqueRefPattern matches an opaque wrapper, e.g. @Age.
	OpaqueRefPattern struct {
		Name string
	}

	// NumPattern matches a base-10 number literal.
	NumPattern struct {
		Text string
	}

	// NonBase10Pattern matches a binary, octal or hexadecimal literal.
	NonBase10Pattern struct {
		Text       string
		Base       int
		IsNegative bool
	}

	// FloatPattern matches a fractional literal.
	FloatPattern struct {
		Text string
	}

	// StrPattern matches a string literal.
	StrPattern struct {
		Text string
	}

	// SingleQuotePattern matches a character literal.
	SingleQuotePattern struct {
		Text string
	}

	// UnderscorePattern matches anything, optionally named.
	UnderscorePattern struct {
		Name string
	}

	// ListRestPattern is the `..` rest inside a list pattern.
	ListRestPattern struct {
		Name string
	}

	// MalformedPattern is a pattern the parser could not accept.
	MalformedPattern struct {
		Text string
	}
)

// ----------------------------------------------------------------------------
// Patterns with children.
type (
	// ApplyPattern matches a tag with payload arguments. The tag is not
	// desugared: it is either a TagPattern or an OpaqueRefPattern.
	ApplyPattern struct {
		Tag  *PatternLoc
		Args []PatternLoc
	}

	// RecordDestructure matches a record, binding its fields. An empty
	// destructure `{}` is the canonical pattern for statements.
	RecordDestructure struct {
		Fields []PatternLoc
	}

	// RequiredFieldPattern matches a record field against a sub-pattern.
	RequiredFieldPattern struct {
		Name    string
		Pattern *PatternLoc
	}

	// OptionalFieldPattern matches a record field with a default.
	OptionalFieldPattern struct {
		Name    string
		Default *ExprLoc
	}

	// TuplePattern matches a tuple.
	TuplePattern struct {
		Items []PatternLoc
	}

	// ListPattern matches a list.
	ListPattern struct {
		Items []PatternLoc
	}

	// AsPattern binds a name to a whole sub-pattern.
	AsPattern struct {
		Pattern *PatternLoc
		Name    source.Loc[string]
	}

	// PatternSpaceBefore wraps a pattern preceded by trivia.
	PatternSpaceBefore struct {
		Pattern Pattern
	}

	// PatternSpaceAfter wraps a pattern followed by trivia.
	PatternSpaceAfter struct {
		Pattern Pattern
	}
)

func (*IdentPattern) node()          {}
func (*QualifiedIdentPattern) node() {}
func (*TagPattern) node()            {}
func (*OpaqueRefPattern) node()      {}
func (*NumPattern) node()            {}
func (*NonBase10Pattern) node()      {}
func (*FloatPattern) node()          {}
func (*StrPattern) node()            {}
func (*SingleQuotePattern) node()    {}
func (*UnderscorePattern) node()     {}
func (*ListRestPattern) node()       {}
func (*MalformedPattern) node()      {}
func (*ApplyPattern) node()          {}
func (*RecordDestructure) node()     {}
func (*RequiredFieldPattern) node()  {}
func (*OptionalFieldPattern) node()  {}
func (*TuplePattern) node()          {}
func (*ListPattern) node()           {}
func (*AsPattern) node()             {}
func (*PatternSpaceBefore) node()    {}
func (*PatternSpaceAfter) node()     {}

func (*IdentPattern) patternNode()          {}
func (*QualifiedIdentPattern) patternNode() {}
func (*TagPattern) patternNode()            {}
func (*OpaqueRefPattern) patternNode()      {}
func (*NumPattern) patternNode()            {}
func (*NonBase10Pattern) patternNode()      {}
func (*FloatPattern) patternNode()          {}
func (*StrPattern) patternNode()            {}
func (*SingleQuotePattern) patternNode()    {}
func (*UnderscorePattern) patternNode()     {}
func (*ListRestPattern) patternNode()       {}
func (*MalformedPattern) patternNode()      {}
func (*ApplyPattern) patternNode()          {}
func (*RecordDestructure) patternNode()     {}
func (*RequiredFieldPattern) patternNode()  {}
func (*OptionalFieldPattern) patternNode()  {}
func (*TuplePattern) patternNode()          {}
func (*ListPattern) patternNode()           {}
func (*AsPattern) patternNode()             {}
func (*PatternSpaceBefore) patternNode()    {}
func (*PatternSpaceAfter) patternNode()     {}
