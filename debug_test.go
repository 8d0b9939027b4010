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
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDebugOutput mutates package-level logging state, so it does not run in
// parallel with other tests.
//
//nolint:paralleltest // global debug state
func TestDebugOutput(t *testing.T) {
	var out bytes.Buffer
	SetDebugOutput(&out)
	t.Cleanup(func() {
		SetDebugEnabled(false)
		SetDebugOutput(os.Stderr)
	})

	Debug("hidden", "n", 1)
	assert.Empty(t, out.String())

	SetDebugEnabled(true)
	assert.True(t, IsDebugEnabled())

	buf := NewBuffer(3)
	require.NoError(t, buf.AppendUint16(0xBEEF))
	require.NoError(t, buf.Write(NewMockBus(), 0x44))
	assert.Contains(t, out.String(), "buffer write")
	assert.Contains(t, out.String(), "0x44")
	assert.Contains(t, out.String(), "BE EF")
}

func TestDebugAttrs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		attr slog.Attr
		name string
		key  string
		want string
	}{
		{name: "seven bit address", attr: AddrAttr(0x44), key: "addr", want: "0x44"},
		{name: "ten bit address", attr: AddrAttr(0x3A5), key: "addr", want: "0x3A5"},
		{name: "frame bytes", attr: HexAttr("data", []byte{0xBE, 0xEF, 0x92}), key: "data", want: "BE EF 92"},
		{name: "empty frame", attr: HexAttr("w", nil), key: "w", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}
