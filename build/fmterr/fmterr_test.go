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

package fmterr_test

import (
	"strings"
	"testing"

	"github.com/lukewilliamboswell/roc/build/fmterr"
	"github.com/lukewilliamboswell/roc/build/source"
)

func TestErrorf(t *testing.T) {
	li := source.NewLineInfo("a\nbcd\n")
	err := fmterr.Errorf("main.roc", li, source.NewRegion(4, 5), "unexpected %s", "thing")
	want := "main.roc:2:3: unexpected thing"
	if got := err.Error(); got != want {
		t.Errorf("error message is %q but want %q", got, want)
	}
}

func TestErrorfNoLineInfo(t *testing.T) {
	err := fmterr.Errorf("main.roc", nil, source.NewRegion(4, 5), "unexpected thing")
	want := "main.roc:[4-5]: unexpected thing"
	if got := err.Error(); got != want {
		t.Errorf("error message is %q but want %q", got, want)
	}
}

func TestAppender(t *testing.T) {
	app := fmterr.NewAppender("main.roc", nil)
	if !app.Empty() {
		t.Fatal("new appender is not empty")
	}
	if app.Err() != nil {
		t.Fatal("new appender has a non-nil error")
	}
	app.Appendf(source.NewRegion(0, 1), "first")
	app.Appendf(source.NewRegion(2, 3), "second")
	if app.Empty() {
		t.Fatal("appender with two errors reports empty")
	}
	errs := app.Errors()
	if len(errs) != 2 {
		t.Fatalf("appender has %d errors but want 2", len(errs))
	}
	if !strings.Contains(errs[1].Error(), "second") {
		t.Errorf("second error is %q", errs[1])
	}
}

func TestInternal(t *testing.T) {
	err := fmterr.Internalf("variable %d out of scope", 42)
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("internal error does not identify itself: %q", err)
	}
	if !strings.Contains(err.Error(), "variable 42 out of scope") {
		t.Errorf("internal error lost its cause: %q", err)
	}
}
