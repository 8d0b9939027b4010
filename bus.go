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
	"fmt"
)

// Bus is the blocking two-wire capability consumed by this package.
// Implementations must not retain p after returning. A Bus is assumed to be
// used by one caller at a time.
type Bus interface {
	// Write sends p to the device at addr in a single transaction
	Write(addr uint16, p []byte) error

	// Read fills p from the device at addr in a single transaction
	Read(addr uint16, p []byte) error
}

// BusContext is the cancellable form of Bus. The calling goroutine waits on
// the transaction but gives up when ctx is done.
type BusContext interface {
	// WriteContext sends p to the device at addr
	WriteContext(ctx context.Context, addr uint16, p []byte) error

	// ReadContext fills p from the device at addr. On error, including
	// cancellation, the contents of p are unspecified but no write to p may
	// happen after ReadContext returns.
	ReadContext(ctx context.Context, addr uint16, p []byte) error
}

// busContextAdapter wraps a Bus to provide context support
type busContextAdapter struct {
	bus Bus
}

// WriteContext implements BusContext
func (a *busContextAdapter) WriteContext(ctx context.Context, addr uint16, p []byte) error {
	if ctx.Done() == nil {
		return a.bus.Write(addr, p)
	}

	// Check if context is already cancelled
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled before bus write: %w", ctx.Err())
	default:
	}

	// The abandoned transaction must not read caller memory after return
	tx := append([]byte(nil), p...)
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.bus.Write(addr, tx)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for bus write: %w", ctx.Err())
	case err := <-errChan:
		return err
	}
}

// ReadContext implements BusContext
func (a *busContextAdapter) ReadContext(ctx context.Context, addr uint16, p []byte) error {
	if ctx.Done() == nil {
		return a.bus.Read(addr, p)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled before bus read: %w", ctx.Err())
	default:
	}

	// Read into scratch space so a late completion cannot touch p
	rx := make([]byte, len(p))
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.bus.Read(addr, rx)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for bus read: %w", ctx.Err())
	case err := <-errChan:
		if err != nil {
			return err
		}
		copy(p, rx)
		return nil
	}
}

// AsBusContext converts a Bus to BusContext. If b already implements
// BusContext it is returned as is. Otherwise the blocking calls run on a
// separate goroutine while the caller waits on ctx. A cancelled call is
// abandoned, not interrupted: the bus finishes the transaction on its own.
func AsBusContext(b Bus) BusContext {
	if bc, ok := b.(BusContext); ok {
		return bc
	}
	return &busContextAdapter{bus: b}
}
