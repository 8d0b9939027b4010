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

/*
Package crci2c provides a checksummed data buffer and bus helpers for
two-wire (I2C) sensors that protect every 16-bit word with a CRC-8 byte.

On the wire every two payload bytes are followed by their checksum:

	[d0, d1, crc(d0, d1), d2, d3, crc(d2, d3), ...]

Multi-byte values are big-endian and split into consecutive triplets two
bytes at a time, so a uint32 or float32 occupies six wire bytes.

Basic Usage:

	import (
	    "github.com/ZaparooProject/go-crci2c"
	    "github.com/ZaparooProject/go-crci2c/transport/i2c"
	)

	bus, err := i2c.New("/dev/i2c-1")
	if err != nil {
	    log.Fatal(err)
	}
	defer bus.Close()

	// Send a command with two arguments
	buf := crci2c.NewBuffer(9)
	_ = buf.AppendUint16(0x2106)
	_ = buf.AppendUint32(0x00010002)
	if err := buf.Write(bus, 0x62); err != nil {
	    log.Fatal(err)
	}

	// Read three words back
	resp := crci2c.NewBuffer(9)
	if err := resp.ReadAndValidate(bus, 0x62); err != nil {
	    log.Fatal(err)
	}
	words := resp.Words(nil)

Buffers:

A Buffer has a fixed capacity that must be a multiple of 3 and never grows.
Appends are atomic: if a value does not fit, ErrBufferTooSmall is returned
and the buffer is byte-for-byte unchanged. NewBufferFrom wraps caller-owned
storage so no allocation happens after construction.

ReadAndValidate always fills the whole capacity. If the bus fails or a
checksum does not match, the buffer is left empty.

Blocking and Cancellable Calls:

Every bus operation has a blocking form taking a Bus and a cancellable form
taking a context.Context and a BusContext. AsBusContext adapts any Bus.
A cancelled read never leaves unvalidated data in a Buffer.

Error Handling:

	if errors.Is(err, crci2c.ErrChecksumMismatch) {
	    // Data was corrupted on the wire
	}
	var busErr *crci2c.BusError
	if errors.As(err, &busErr) {
	    // busErr.Err is the transport's own error
	}

Nothing is retried internally. IsRetryable tells whether repeating the whole
transaction may help.

Thread Safety:

Buffers are not thread-safe. A bus carries one transaction at a time; sharing
a bus between goroutines requires synchronization by the caller unless the
transport provides it, as transport/i2c does.
*/
package crci2c
