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

// Package crc8 implements the 8-bit checksum used by two-wire sensors that
// protect every 16-bit word with a trailing CRC byte.
//
// The algorithm is CRC-8 with polynomial x^8+x^5+x^4+1 (0x31), initial value
// 0xFF, no final XOR and no input or output reflection.
package crc8

import "errors"

const (
	// Polynomial is the generator polynomial without the implicit x^8 term.
	Polynomial = 0x31
	// Init is the initial value of the CRC accumulator.
	Init = 0xFF
)

var (
	// ErrWrongCRC is returned when a checksum byte does not match its word.
	ErrWrongCRC = errors.New("crc8: checksum mismatch")
	// ErrWrongBufferSize is returned when a buffer cannot be split into
	// [d0, d1, crc] triplets.
	ErrWrongBufferSize = errors.New("crc8: buffer size not a multiple of 3")
)

// Calculate returns the CRC-8 checksum of data.
func Calculate(data []byte) byte {
	crc := byte(Init)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ Polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Validate checks a buffer of the form [d0, d1, crc01, d2, d3, crc23, ...]
// where every third byte is the checksum of the two bytes before it.
//
// It returns ErrWrongBufferSize if len(buf) is not a multiple of 3 and
// ErrWrongCRC on the first triplet whose checksum does not match. An empty
// buffer is valid.
func Validate(buf []byte) error {
	if len(buf)%3 != 0 {
		return ErrWrongBufferSize
	}
	for i := 0; i < len(buf); i += 3 {
		if Calculate(buf[i:i+2]) != buf[i+2] {
			return ErrWrongCRC
		}
	}
	return nil
}
