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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ZaparooProject/go-crci2c/internal/frame"
)

// Appendable is the closed set of value shapes a Buffer accepts.
type Appendable interface {
	[2]byte | uint16 | uint32 | float32 | []uint16 | []byte
}

// Append appends v to b using the method matching its type. Like every
// append, it either commits all of v or leaves b unchanged.
func Append[T Appendable](b *Buffer, v T) error {
	switch v := any(v).(type) {
	case [2]byte:
		return b.AppendPair(v)
	case uint16:
		return b.AppendUint16(v)
	case uint32:
		return b.AppendUint32(v)
	case float32:
		return b.AppendFloat32(v)
	case []uint16:
		return b.AppendUint16s(v)
	case []byte:
		return b.AppendBytes(v)
	default:
		panic(fmt.Sprintf("crci2c: unsupported append type %T", v))
	}
}

// AppendPair appends two payload bytes and their checksum.
func (b *Buffer) AppendPair(v [2]byte) error {
	if b.Remaining() < frame.TripletSize {
		return ErrBufferTooSmall
	}
	b.put(v[0], v[1])
	return nil
}

// AppendUint16 appends v in big-endian order as one triplet.
func (b *Buffer) AppendUint16(v uint16) error {
	return b.AppendPair([2]byte{byte(v >> 8), byte(v)})
}

// AppendUint32 appends v in big-endian order as two triplets. Nothing is
// written unless both fit.
func (b *Buffer) AppendUint32(v uint32) error {
	if b.Remaining() < 2*frame.TripletSize {
		return ErrBufferTooSmall
	}
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], v)
	b.put(word[0], word[1])
	b.put(word[2], word[3])
	return nil
}

// AppendFloat32 appends the IEEE 754 bits of v like AppendUint32.
func (b *Buffer) AppendFloat32(v float32) error {
	return b.AppendUint32(math.Float32bits(v))
}

// AppendUint16s appends each element as one triplet. Nothing is written
// unless all elements fit.
func (b *Buffer) AppendUint16s(v []uint16) error {
	if b.Remaining() < len(v)*frame.TripletSize {
		return ErrBufferTooSmall
	}
	for _, w := range v {
		b.put(byte(w>>8), byte(w))
	}
	return nil
}

// AppendBytes appends each pair of bytes as one triplet. len(v) must be
// even. Nothing is written unless all pairs fit.
func (b *Buffer) AppendBytes(v []byte) error {
	if len(v)%frame.WordSize != 0 {
		return ErrInvalidBufferSize
	}
	if b.Remaining() < frame.TripletBytes(len(v)) {
		return ErrBufferTooSmall
	}
	for i := 0; i < len(v); i += frame.WordSize {
		b.put(v[i], v[i+1])
	}
	return nil
}

// put commits one triplet; the caller has checked capacity.
func (b *Buffer) put(hi, lo byte) {
	frame.Put(b.data[b.used:], hi, lo)
	b.used += frame.TripletSize
}
