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

package i2c

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Option is a functional option for configuring a Transport
type Option func(*Transport) error

// WithClockFreq sets the bus clock instead of DefaultClockFreq. Unlike the
// default, a speed the adapter rejects is an error.
func WithClockFreq(f physic.Frequency) Option {
	return func(t *Transport) error {
		if f <= 0 {
			return fmt.Errorf("invalid I2C clock frequency: %s", f)
		}
		return t.SetSpeed(f)
	}
}

// applyOptions applies opts in order, stopping at the first error
func (t *Transport) applyOptions(opts []Option) error {
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return err
		}
	}
	return nil
}
