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

package fmterr

import (
	"go.uber.org/multierr"

	"github.com/lukewilliamboswell/roc/build/source"
)

// Appender accumulates positioned errors for one compilation unit.
// Appending never stops a pass: a single source file surfaces all of its
// independent errors in one run.
type Appender struct {
	path string
	li   *source.LineInfo
	errs error
}

// NewAppender returns an appender for the unit at path. The line index
// may be nil.
func NewAppender(path string, li *source.LineInfo) *Appender {
	return &Appender{path: path, li: li}
}

// Append an error to the set.
func (app *Appender) Append(err error) {
	app.errs = multierr.Append(app.errs, err)
}

// AppendAt appends an error attached to a region.
func (app *Appender) AppendAt(region source.Region, err error) {
	app.Append(Position(app.path, app.li, region, err))
}

// Appendf appends a formatted error attached to a region.
func (app *Appender) Appendf(region source.Region, format string, a ...any) {
	app.Append(Errorf(app.path, app.li, region, format, a...))
}

// Empty returns true if no error has been appended.
func (app *Appender) Empty() bool {
	return app.errs == nil
}

// Errors returns the accumulated errors.
func (app *Appender) Errors() []error {
	return multierr.Errors(app.errs)
}

// Err returns the accumulated errors as a single error, or nil.
func (app *Appender) Err() error {
	return app.errs
}
