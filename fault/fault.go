// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrBlockTimeOutOfRange    = ConfigurationError("block time is out of range")
	ErrCannotDecodeAccount    = InvalidError("cannot decode account")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrFrameSizeOutOfRange    = ConfigurationError("frame size is out of range")
	ErrInvalidDatabaseVersion = ProcessError("invalid database version")
	ErrInvalidReceiver        = InvalidError("receiver account is invalid")
	ErrInvalidSender          = InvalidError("sender account is invalid")
	ErrKeyNotFound            = NotFoundError("key is not present")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrSlotCountOutOfRange    = ConfigurationError("slots per era is out of range")
)

// InsufficientBalanceError - balance verification failure carrying
// the numeric context needed for diagnostics
type InsufficientBalanceError struct {
	Available uint64
	Requested uint64
}

// InsufficientAllowanceError - allowance verification failure carrying
// the numeric context needed for diagnostics
type InsufficientAllowanceError struct {
	Available uint64
	Requested uint64
}

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available: %d  requested: %d", e.Available, e.Requested)
}

func (e InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: available: %d  requested: %d", e.Available, e.Requested)
}

// determine the class of an error
func IsErrConfiguration(e error) bool { _, ok := e.(ConfigurationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }

// determine the data-carrying error kinds
func IsErrInsufficientBalance(e error) bool {
	_, ok := e.(InsufficientBalanceError)
	return ok
}

func IsErrInsufficientAllowance(e error) bool {
	_, ok := e.(InsufficientAllowanceError)
	return ok
}
