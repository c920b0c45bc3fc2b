// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time for the logger to write out the final message
const flushDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Panic - log the message with the caller's location, then panic
func Panic(message string) {
	critical(message)
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	critical(s)
	panic(s)
}

func critical(message string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
	time.Sleep(flushDelay)
}
