// go-crci2c
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-crci2c.
//
// go-crci2c is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-crci2c is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-crci2c; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package crci2c

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/go-crci2c/crc8"
)

// Buffer errors
var (
	// ErrBufferTooSmall is returned when an append does not fit into the
	// remaining capacity of a Buffer. The buffer is left unchanged.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidBufferSize is returned when a byte run with an odd length is
	// appended. Every two bytes become one checksummed triplet.
	ErrInvalidBufferSize = errors.New("invalid input size: byte run must have an even length")
)

// Bus errors
var (
	ErrBusRead  = errors.New("bus read failed")
	ErrBusWrite = errors.New("bus write failed")

	// ErrChecksumMismatch is returned when received data fails CRC validation.
	// It is the same value as crc8.ErrWrongCRC.
	ErrChecksumMismatch = crc8.ErrWrongCRC
)

// Bus operations reported in BusError.Op
const (
	OpRead  = "read"
	OpWrite = "write"
)

// ErrorType classifies errors so callers can decide whether to repeat a
// whole transaction. This package never retries on its own.
type ErrorType int

const (
	// ErrorTypePermanent indicates the same call will fail again.
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient indicates bus noise or a busy device.
	ErrorTypeTransient
	// ErrorTypeTimeout indicates a deadline expired before the bus answered.
	ErrorTypeTimeout
)

// String returns the name of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypePermanent:
		return "permanent"
	case ErrorTypeTransient:
		return "transient"
	case ErrorTypeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// BusError wraps an error reported by a Bus. Err is the transport's own error
// and is passed through unmodified; use errors.As to recover it.
// errors.Is(err, ErrBusRead) or errors.Is(err, ErrBusWrite) tells the two
// directions apart.
type BusError struct {
	Err  error
	Op   string
	Addr uint16
	Type ErrorType
}

// NewBusError creates a BusError and classifies err.
func NewBusError(op string, addr uint16, err error) *BusError {
	errType := ErrorTypeTransient
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		errType = ErrorTypeTimeout
	case errors.Is(err, context.Canceled):
		errType = ErrorTypePermanent
	}
	return &BusError{
		Err:  err,
		Op:   op,
		Addr: addr,
		Type: errType,
	}
}

func (e *BusError) Error() string {
	return fmt.Sprintf("%v (%s 0x%02X): %v", e.kind(), e.Op, e.Addr, e.Err)
}

// Unwrap exposes both the direction sentinel and the transport error.
func (e *BusError) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *BusError) kind() error {
	if e.Op == OpWrite {
		return ErrBusWrite
	}
	return ErrBusRead
}

// IsRetryable returns true if repeating the whole transaction may succeed
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return GetErrorType(err) != ErrorTypePermanent
}

// GetErrorType returns the classification of err
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}

	var busErr *BusError
	if errors.As(err, &busErr) {
		return busErr.Type
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeTimeout
	case errors.Is(err, ErrChecksumMismatch),
		errors.Is(err, ErrBusRead),
		errors.Is(err, ErrBusWrite):
		return ErrorTypeTransient
	default:
		return ErrorTypePermanent
	}
}
