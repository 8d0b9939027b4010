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

// Package testing provides wire fixtures for tests: valid and corrupt
// checksummed frames as a sensor would send them.
package testing

import (
	"github.com/ZaparooProject/go-crci2c/internal/frame"
)

// TestAddress is the device address used throughout the tests
const TestAddress = 0x58

// BuildTriplet returns [hi, lo, crc(hi, lo)]
func BuildTriplet(hi, lo byte) []byte {
	triplet := make([]byte, frame.TripletSize)
	frame.Put(triplet, hi, lo)
	return triplet
}

// BuildFrame encodes words big-endian with a checksum after each
func BuildFrame(words ...uint16) []byte {
	out := make([]byte, 0, len(words)*frame.TripletSize)
	for _, w := range words {
		out = append(out, BuildTriplet(byte(w>>8), byte(w))...)
	}
	return out
}

// CorruptFrame returns a copy of f with the checksum of the given triplet
// inverted
func CorruptFrame(f []byte, triplet int) []byte {
	out := append([]byte(nil), f...)
	idx := triplet*frame.TripletSize + frame.WordSize
	out[idx] = ^out[idx]
	return out
}
