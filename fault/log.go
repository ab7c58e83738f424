// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var (
	logLock sync.Mutex
	log     *logger.L
)

// Initialise - setup a log channel for last attempt to log something
// logger.Initialise must have been called first
func Initialise() error {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Critical - log a simple string with the caller's location
func Critical(message string) {
	criticalf(2, "%s", message)
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...any) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted message then panic
func Panicf(format string, arguments ...any) {
	criticalf(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicWithError - final panic with the error that caused it
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// prefix the message with the file and line 'skip' frames up
func criticalf(skip int, format string, arguments ...any) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]any, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...any) {
	logLock.Lock()
	defer logLock.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
