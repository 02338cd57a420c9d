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

// Package fmterr formats and accumulates compiler errors.
//
// Errors come in two tiers. User-facing diagnostics carry a source region
// and are accumulated so one pass can report many of them. Internal errors
// signal a defect in the compiler itself: they are wrapped by Internal and
// always panic at the failure site, never converted into diagnostics.
package fmterr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lukewilliamboswell/roc/build/source"
)

// ErrorAt is an error attached to a region of source code.
type ErrorAt interface {
	error
	Region() source.Region
	Err() error
}

type errorAt struct {
	path   string
	li     *source.LineInfo
	region source.Region
	err    error
}

// Position attaches a source region to an error. The line index may be
// nil, in which case the message falls back to byte offsets.
func Position(path string, li *source.LineInfo, region source.Region, err error) ErrorAt {
	return errorAt{path: path, li: li, region: region, err: err}
}

// Errorf returns a formatted compiler error for the user.
func Errorf(path string, li *source.LineInfo, region source.Region, format string, a ...any) error {
	return Position(path, li, region, errors.Errorf(format, a...))
}

// Error returns the error message prefixed with its source position.
func (err errorAt) Error() string {
	if err.li == nil {
		return fmt.Sprintf("%s:%s: %s", err.path, err.region, err.err.Error())
	}
	lc := err.li.Convert(err.region.Start())
	return fmt.Sprintf("%s:%s: %s", err.path, lc, err.err.Error())
}

// Unwrap the error.
func (err errorAt) Unwrap() error {
	return err.err
}

// Region returns the source region the error is attached to.
func (err errorAt) Region() source.Region {
	return err.region
}

// Err returns the underlying error.
func (err errorAt) Err() error {
	return err.err
}

// Internal marks an error as internal, adding report instructions.
// Internal errors are compiler defects: callers panic with them.
func Internal(err error) error {
	return fmt.Errorf("roc internal error. This is a bug in the compiler. Please report it. Error:\n%+v", err)
}

// Internalf builds an internal error from a format string.
func Internalf(format string, a ...any) error {
	return Internal(errors.Errorf(format, a...))
}
