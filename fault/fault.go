// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEndIterator          = InvalidError("dereference of end iterator")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidSlots         = InvalidError("time slot count is invalid")
	ErrInvalidStrategy      = InvalidError("tree strategy is invalid")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingHeader        = InvalidError("missing class/student/slot header")
	ErrMissingInputFile     = NotFoundError("input file is not found")
	ErrNoSolution           = ProcessError("no valid solution")
	ErrTooFewStudents       = LengthError("fewer student lines than declared")
	ErrTooManyCourses       = LengthError("more distinct courses than declared")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
