// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/logger"
)

// the channel for a final log line before a panic
var log *logger.L

// allow the log output to be written before the panic unwinds
const panicDelay = 100 * time.Millisecond

// Initialise - open the PANIC log channel
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return AlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return InvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panic - log the message then panic
func Panic(message string) {
	critical(message)
	panic(message)
}

// Panicf - Panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	Panic(fmt.Sprintf(format, arguments...))
}

// PanicIfError - panic if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panicf("%s failed with error: %s", message, err)
}

// without a log channel the message goes to stderr
func critical(message string) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
	time.Sleep(panicDelay)
}
