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
	"encoding/binary"
	"fmt"

	"github.com/ZaparooProject/go-crci2c/crc8"
	"github.com/ZaparooProject/go-crci2c/internal/frame"
)

// Buffer holds data to be sent to or received from a sensor. Every third byte
// is the CRC-8 checksum of the two bytes before it.
//
// A Buffer has a fixed capacity chosen at construction and never grows.
// The first Len() bytes always hold committed triplets; bytes past Len() are
// never exposed. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	used int
}

// NewBuffer creates an empty Buffer with the given capacity in bytes.
//
// It panics if capacity is negative or not a multiple of 3.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		panic("crci2c: negative buffer capacity")
	}
	return NewBufferFrom(make([]byte, capacity))
}

// NewBufferFrom creates an empty Buffer backed by storage. The Buffer takes
// ownership of storage; the caller must not modify it afterwards.
//
// It panics if len(storage) is not a multiple of 3.
func NewBufferFrom(storage []byte) *Buffer {
	if !frame.IsAligned(len(storage)) {
		panic("crci2c: buffer length not a multiple of 3")
	}
	return &Buffer{data: storage}
}

// Len returns the number of committed bytes, checksums included
func (b *Buffer) Len() int {
	return b.used
}

// Cap returns the fixed capacity of the buffer in bytes
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Remaining returns the number of bytes that can still be appended
func (b *Buffer) Remaining() int {
	return len(b.data) - b.used
}

// Reset empties the buffer without releasing its storage
func (b *Buffer) Reset() {
	b.used = 0
}

// Bytes returns the committed bytes. The slice aliases the buffer and is
// only valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.used]
}

// Get returns the byte at index, or false if index is outside the committed
// region.
func (b *Buffer) Get(index int) (byte, bool) {
	if index < 0 || index >= b.used {
		return 0, false
	}
	return b.data[index], true
}

// Word returns the i-th 16-bit payload word, skipping checksum bytes.
func (b *Buffer) Word(i int) (uint16, bool) {
	off := i * frame.TripletSize
	if i < 0 || off+frame.TripletSize > b.used {
		return 0, false
	}
	return binary.BigEndian.Uint16(b.data[off:]), true
}

// Words appends all committed payload words to dst and returns the result.
func (b *Buffer) Words(dst []uint16) []uint16 {
	for off := 0; off < b.used; off += frame.TripletSize {
		dst = append(dst, binary.BigEndian.Uint16(b.data[off:]))
	}
	return dst
}

// Validate checks the checksum of every committed triplet.
func (b *Buffer) Validate() error {
	return crc8.Validate(b.data[:b.used])
}

// Write sends the committed bytes to addr in one bus transaction.
func (b *Buffer) Write(bus Bus, addr uint16) error {
	return b.WriteContext(context.Background(), AsBusContext(bus), addr)
}

// WriteContext is the cancellable form of Write.
func (b *Buffer) WriteContext(ctx context.Context, bus BusContext, addr uint16) error {
	Debug("buffer write", AddrAttr(addr), "len", b.used, HexAttr("data", b.data[:b.used]))
	if err := bus.WriteContext(ctx, addr, b.data[:b.used]); err != nil {
		return NewBusError(OpWrite, addr, err)
	}
	return nil
}

// ReadAndValidate fills the whole capacity of the buffer from addr and
// validates every triplet. Previous content is discarded.
//
// On a bus error or a checksum mismatch the buffer is left empty, even though
// raw bytes may have been written into its storage. On success Len() == Cap().
func (b *Buffer) ReadAndValidate(bus Bus, addr uint16) error {
	return b.ReadAndValidateContext(context.Background(), AsBusContext(bus), addr)
}

// ReadAndValidateContext is the cancellable form of ReadAndValidate. A
// cancelled read leaves the buffer empty.
func (b *Buffer) ReadAndValidateContext(ctx context.Context, bus BusContext, addr uint16) error {
	if err := bus.ReadContext(ctx, addr, b.data); err != nil {
		b.used = 0
		Debug("buffer read failed", AddrAttr(addr), "err", err)
		return NewBusError(OpRead, addr, err)
	}

	b.used = len(b.data)
	if err := b.Validate(); err != nil {
		b.used = 0
		Debug("buffer read rejected", AddrAttr(addr), HexAttr("data", b.data))
		return fmt.Errorf("read from 0x%02X: %w", addr, err)
	}

	Debug("buffer read", AddrAttr(addr), "len", b.used, HexAttr("data", b.data))
	return nil
}
