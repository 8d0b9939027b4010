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

// Package frame provides the wire layout shared by buffers, transports and
// test fixtures: 16-bit words sent as [hi, lo, crc] triplets.
package frame

import "github.com/ZaparooProject/go-crci2c/crc8"

// Wire layout sizes
const (
	WordSize    = 2 // Payload bytes per triplet
	TripletSize = 3 // Payload bytes plus checksum byte
)

// Put writes hi, lo and their checksum into dst[0:3].
// dst must be at least TripletSize bytes long.
func Put(dst []byte, hi, lo byte) {
	dst[0] = hi
	dst[1] = lo
	dst[2] = crc8.Calculate(dst[:WordSize])
}

// TripletBytes returns the wire size needed for n payload bytes.
// n must be even.
func TripletBytes(n int) int {
	return n / WordSize * TripletSize
}

// IsAligned reports whether n is a whole number of triplets.
func IsAligned(n int) bool {
	return n%TripletSize == 0
}
