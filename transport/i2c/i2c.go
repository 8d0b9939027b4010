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

// Package i2c provides a periph.io backed bus for crci2c
package i2c

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	crci2c "github.com/ZaparooProject/go-crci2c"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// DefaultClockFreq is the standard-mode clock most sensors accept.
const DefaultClockFreq = 100 * physic.KiloHertz

// ErrClosed is returned by operations on a closed Transport
var ErrClosed = errors.New("i2c transport closed")

// Transport implements crci2c.Bus and crci2c.BusContext on top of a periph.io
// I2C bus. Transactions on one Transport are serialized.
type Transport struct {
	bus     i2c.Bus
	closer  io.Closer
	busName string
	mu      sync.Mutex
}

// New opens the named I2C bus, e.g. "/dev/i2c-1" or "1". An empty name
// opens the first available bus.
func New(busName string, opts ...Option) (*Transport, error) {
	// Initialize host drivers
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", busName, err)
	}

	// Not every adapter supports changing speed
	if err := bus.SetSpeed(DefaultClockFreq); err != nil {
		crci2c.Debug("i2c: keeping default speed", "bus", busName, "err", err)
	}

	transport := &Transport{
		bus:     bus,
		closer:  bus,
		busName: busName,
	}
	if err := transport.applyOptions(opts); err != nil {
		_ = transport.Close()
		return nil, err
	}
	return transport, nil
}

// NewFromBus wraps an already opened periph.io bus. The caller keeps
// ownership: Close does not close bus.
func NewFromBus(bus i2c.Bus, name string, opts ...Option) (*Transport, error) {
	transport := &Transport{
		bus:     bus,
		busName: name,
	}
	if err := transport.applyOptions(opts); err != nil {
		return nil, err
	}
	return transport, nil
}

// Write sends p to addr in one transaction. An empty p is a no-op.
func (t *Transport) Write(addr uint16, p []byte) error {
	return t.tx(addr, p, nil)
}

// Read fills p from addr in one transaction
func (t *Transport) Read(addr uint16, p []byte) error {
	return t.tx(addr, nil, p)
}

// WriteContext sends p to addr unless ctx is already done. A started
// transaction always runs to completion.
func (t *Transport) WriteContext(ctx context.Context, addr uint16, p []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before I2C write: %w", err)
	}
	return t.tx(addr, p, nil)
}

// ReadContext fills p from addr unless ctx is already done
func (t *Transport) ReadContext(ctx context.Context, addr uint16, p []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before I2C read: %w", err)
	}
	return t.tx(addr, nil, p)
}

// SetSpeed changes the bus clock
func (t *Transport) SetSpeed(f physic.Frequency) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bus == nil {
		return ErrClosed
	}
	if err := t.bus.SetSpeed(f); err != nil {
		return fmt.Errorf("failed to set I2C speed on %s: %w", t.busName, err)
	}
	return nil
}

// Close releases the bus if this Transport opened it
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bus = nil
	if t.closer == nil {
		return nil
	}
	closer := t.closer
	t.closer = nil
	if err := closer.Close(); err != nil {
		return fmt.Errorf("failed to close I2C bus %s: %w", t.busName, err)
	}
	return nil
}

// IsConnected returns true until Close is called
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bus != nil
}

// String returns the bus name
func (t *Transport) String() string {
	return t.busName
}

// tx runs one combined transaction. Empty transactions never reach the bus.
func (t *Transport) tx(addr uint16, w, r []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bus == nil {
		return ErrClosed
	}
	if len(w) == 0 && len(r) == 0 {
		return nil
	}

	crci2c.Debug("i2c tx", "bus", t.busName, crci2c.AddrAttr(addr), crci2c.HexAttr("w", w), "r", len(r))
	if err := t.bus.Tx(addr, w, r); err != nil {
		return fmt.Errorf("I2C transaction with 0x%02X on %s failed: %w", addr, t.busName, err)
	}
	return nil
}

// Ensure Transport implements both bus styles
var (
	_ crci2c.Bus        = (*Transport)(nil)
	_ crci2c.BusContext = (*Transport)(nil)
)
