// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spidev

import "errors"

// ErrClosed indicates an operation on a bus that is not open, either
// because it was never opened or because it has been closed.
var ErrClosed = errors.New("bus not open")

// Op identifies the bus operation, or parameter negotiation step, that
// failed.
type Op string

// The operations that may fail.
const (
	OpOpen           Op = "open"
	OpSetMode        Op = "set mode"
	OpGetMode        Op = "get mode"
	OpGetLSBFirst    Op = "get lsb first"
	OpSetBitsPerWord Op = "set bits per word"
	OpGetBitsPerWord Op = "get bits per word"
	OpSetMaxSpeed    Op = "set max speed"
	OpGetMaxSpeed    Op = "get max speed"
	OpRead           Op = "read"
	OpWrite          Op = "write"
	OpExchange       Op = "exchange"
)

// Error indicates a failure of a bus operation.
type Error struct {
	// Op is the operation that failed.
	Op Op

	// Path identifies the device on which the operation failed.
	Path string

	// Err is the underlying error, typically a syscall errno.
	Err error
}

func (e *Error) Error() string {
	return "spidev " + string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
