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
	"fmt"

	"github.com/ZaparooProject/go-crci2c/crc8"
	"github.com/ZaparooProject/go-crci2c/internal/frame"
)

// WriteCommand writes a 16-bit command to the bus.
//
// Deprecated: use WriteCommandU16.
func WriteCommand(bus Bus, addr, command uint16) error {
	return WriteCommandU16(bus, addr, command)
}

// WriteCommandU8 writes an 8-bit command to the bus. Commands carry no
// checksum.
func WriteCommandU8(bus Bus, addr uint16, command uint8) error {
	return WriteCommandU8Context(context.Background(), AsBusContext(bus), addr, command)
}

// WriteCommandU16 writes a 16-bit command in big-endian order. Commands carry
// no checksum.
func WriteCommandU16(bus Bus, addr, command uint16) error {
	return WriteCommandU16Context(context.Background(), AsBusContext(bus), addr, command)
}

// WriteCommandU8Context is the cancellable form of WriteCommandU8
func WriteCommandU8Context(ctx context.Context, bus BusContext, addr uint16, command uint8) error {
	cmd := [1]byte{command}
	return writeCommand(ctx, bus, addr, cmd[:])
}

// WriteCommandU16Context is the cancellable form of WriteCommandU16
func WriteCommandU16Context(ctx context.Context, bus BusContext, addr, command uint16) error {
	cmd := [2]byte{byte(command >> 8), byte(command)}
	return writeCommand(ctx, bus, addr, cmd[:])
}

func writeCommand(ctx context.Context, bus BusContext, addr uint16, cmd []byte) error {
	Debug("write command", AddrAttr(addr), HexAttr("cmd", cmd))
	if err := bus.WriteContext(ctx, addr, cmd); err != nil {
		return NewBusError(OpWrite, addr, err)
	}
	return nil
}

// ReadWordsWithCRC reads len(data) bytes from addr into data and validates
// the checksum of every triplet. On a checksum mismatch data still holds
// the received bytes.
//
// The returned error matches ErrBusRead if the bus failed and
// ErrChecksumMismatch if the data was corrupt.
//
// It panics if len(data) is not a multiple of 3.
func ReadWordsWithCRC(bus Bus, addr uint16, data []byte) error {
	return ReadWordsWithCRCContext(context.Background(), AsBusContext(bus), addr, data)
}

// ReadWordsWithCRCContext is the cancellable form of ReadWordsWithCRC
func ReadWordsWithCRCContext(ctx context.Context, bus BusContext, addr uint16, data []byte) error {
	if !frame.IsAligned(len(data)) {
		panic("crci2c: buffer must hold a multiple of 3 bytes")
	}

	if err := bus.ReadContext(ctx, addr, data); err != nil {
		return NewBusError(OpRead, addr, err)
	}

	if err := crc8.Validate(data); err != nil {
		Debug("read words rejected", AddrAttr(addr), HexAttr("data", data))
		return fmt.Errorf("read words from 0x%02X: %w", addr, err)
	}

	Debug("read words", AddrAttr(addr), HexAttr("data", data))
	return nil
}
