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
	"errors"
	"testing"

	testutil "github.com/ZaparooProject/go-crci2c/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		write func(Bus) error
		name  string
		want  []byte
	}{
		{
			name:  "u8",
			write: func(b Bus) error { return WriteCommandU8(b, testutil.TestAddress, 0xAB) },
			want:  []byte{0xAB},
		},
		{
			name:  "u16",
			write: func(b Bus) error { return WriteCommandU16(b, testutil.TestAddress, 0xABCD) },
			want:  []byte{0xAB, 0xCD},
		},
		{
			name: "deprecated alias",
			//nolint:staticcheck // exercising the deprecated alias on purpose
			write: func(b Bus) error { return WriteCommand(b, testutil.TestAddress, 0xABCD) },
			want:  []byte{0xAB, 0xCD},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bus := NewMockBus()
			require.NoError(t, tt.write(bus))

			writes := bus.Writes()
			require.Len(t, writes, 1)
			assert.Equal(t, uint16(testutil.TestAddress), writes[0].Addr)
			assert.Equal(t, tt.want, writes[0].Data, "commands carry no checksum")
		})
	}
}

func TestWriteCommand_Error(t *testing.T) {
	t.Parallel()
	transportErr := errors.New("address nack")
	bus := NewMockBus()
	bus.SetWriteError(transportErr)

	err := WriteCommandU16(bus, testutil.TestAddress, 0x3682)
	require.ErrorIs(t, err, ErrBusWrite)
	require.ErrorIs(t, err, transportErr)
}

func TestReadWordsWithCRC(t *testing.T) {
	t.Parallel()

	t.Run("valid crc", func(t *testing.T) {
		t.Parallel()
		bus := NewMockBusWithReadData([]byte{0xBE, 0xEF, 0x92})
		buf := make([]byte, 3)
		require.NoError(t, ReadWordsWithCRC(bus, testutil.TestAddress, buf))
		assert.Equal(t, []byte{0xBE, 0xEF, 0x92}, buf)
	})

	t.Run("invalid crc keeps data", func(t *testing.T) {
		t.Parallel()
		bus := NewMockBusWithReadData([]byte{0xBE, 0xEF, 0x00})
		buf := make([]byte, 3)
		err := ReadWordsWithCRC(bus, testutil.TestAddress, buf)
		require.ErrorIs(t, err, ErrChecksumMismatch)
		assert.NotErrorIs(t, err, ErrBusRead)
		assert.Equal(t, []byte{0xBE, 0xEF, 0x00}, buf)
	})

	t.Run("bus failure", func(t *testing.T) {
		t.Parallel()
		transportErr := errors.New("timeout")
		bus := NewMockBus()
		bus.SetReadError(transportErr)
		err := ReadWordsWithCRC(bus, testutil.TestAddress, make([]byte, 6))
		require.ErrorIs(t, err, ErrBusRead)
		require.ErrorIs(t, err, transportErr)
		assert.NotErrorIs(t, err, ErrChecksumMismatch)

		var busErr *BusError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, uint16(testutil.TestAddress), busErr.Addr)
	})

	t.Run("empty destination", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, ReadWordsWithCRC(NewMockBus(), testutil.TestAddress, nil))
	})
}

func TestReadWordsWithCRC_UnalignedPanics(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 2, 4, 5} {
		assert.PanicsWithValue(t, "crci2c: buffer must hold a multiple of 3 bytes", func() {
			_ = ReadWordsWithCRC(NewMockBus(), testutil.TestAddress, make([]byte, n))
		}, "length %d", n)
	}
}
