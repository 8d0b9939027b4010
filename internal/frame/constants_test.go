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

package frame

import (
	"testing"

	"github.com/ZaparooProject/go-crci2c/crc8"
)

func TestPut(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want []byte
		hi   byte
		lo   byte
	}{
		{name: "datasheet word", hi: 0xBE, lo: 0xEF, want: []byte{0xBE, 0xEF, 0x92}},
		{name: "zero word", hi: 0x00, lo: 0x00, want: []byte{0x00, 0x00, 0x81}},
		{name: "small value", hi: 0x00, lo: 0x0F, want: []byte{0x00, 0x0F, 0xAF}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dst := make([]byte, TripletSize)
			Put(dst, tt.hi, tt.lo)
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("Put() = %#v, want %#v", dst, tt.want)
					break
				}
			}
		})
	}
}

// TestPutProperty verifies that every triplet written by Put validates.
func TestPutProperty(t *testing.T) {
	t.Parallel()
	dst := make([]byte, TripletSize)
	for i := 0; i < 1<<16; i += 257 {
		Put(dst, byte(i>>8), byte(i))
		if err := crc8.Validate(dst); err != nil {
			t.Fatalf("Put(%#x, %#x) produced invalid triplet %#v: %v", byte(i>>8), byte(i), dst, err)
		}
	}
}

func TestTripletBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{2, 3},
		{4, 6},
		{20, 30},
	}
	for _, tt := range tests {
		if got := TripletBytes(tt.n); got != tt.want {
			t.Errorf("TripletBytes(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsAligned(t *testing.T) {
	t.Parallel()
	for n := 0; n < 40; n++ {
		if got, want := IsAligned(n), n%3 == 0; got != want {
			t.Errorf("IsAligned(%d) = %v, want %v", n, got, want)
		}
	}
}
