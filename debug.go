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
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	console "github.com/phsym/console-slog"
)

var (
	debugEnabled atomic.Bool
	debugLogger  atomic.Pointer[slog.Logger]
)

func init() {
	SetDebugOutput(os.Stderr)
}

// SetDebugEnabled turns debug logging of bus transactions on or off
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

// IsDebugEnabled reports whether debug logging is on
func IsDebugEnabled() bool {
	return debugEnabled.Load()
}

// SetDebugOutput redirects debug output to w
func SetDebugOutput(w io.Writer) {
	handler := console.NewHandler(w, &console.HandlerOptions{
		Level: slog.LevelDebug,
	})
	debugLogger.Store(slog.New(handler))
}

// Debug logs msg with structured attributes when debug logging is enabled.
// Arguments follow the slog key-value convention.
func Debug(msg string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	debugLogger.Load().Debug(msg, args...)
}

// AddrAttr formats a bus address as a hex attribute
func AddrAttr(addr uint16) slog.Attr {
	return slog.String("addr", fmt.Sprintf("0x%02X", addr))
}

// HexAttr formats raw bus bytes as space separated hex
func HexAttr(key string, p []byte) slog.Attr {
	return slog.String(key, fmt.Sprintf("% X", p))
}
