// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrLengthOne, false, false, true, false, false},
		{ErrLengthTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrEndIterator, false, true, false, false, false},
		{fault.ErrTooFewStudents, false, false, true, false, false},
		{fault.ErrNoSolution, false, false, false, false, true},
		{fmt.Errorf("line 3: %w", fault.ErrInvalidCount), false, true, false, false, false},
		{fmt.Errorf("read: %w", fault.ErrMissingInputFile), false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("nothing", nil)

	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("expected panic")
		}
		expected := "check failed with error: key not found"
		if expected != r {
			t.Errorf("panic: %q  expected: %q", r, expected)
		}
	}()
	fault.PanicIfError("check", fault.ErrKeyNotFound)
}

func TestPanic(t *testing.T) {
	defer func() {
		r := recover()
		if "abort" != r {
			t.Errorf("panic: %v  expected: %q", r, "abort")
		}
	}()
	fault.Panic("abort")
}
