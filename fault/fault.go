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
type NotFoundError GenericError
type ProcessError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = ProcessError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("node count does not match tree")
	ErrIncorrectHeight       = InvalidError("cached height is incorrect")
	ErrInconsistentParent    = InvalidError("parent link is inconsistent")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorOutOfRange    = RangeError("iterator out of range")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrKeyOrder              = InvalidError("keys are not in strictly ascending order")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrUnbalancedNode        = InvalidError("node is not balanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRange(e error) bool    { var t RangeError; return errors.As(e, &t) }
