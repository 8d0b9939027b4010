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
	"sync"
	"time"
)

var (
	// ErrMockClosed is returned by a MockBus after Close
	ErrMockClosed = errors.New("mock bus closed")
	// ErrMockTimeout is returned when a blocked MockBus call is never released
	ErrMockTimeout = errors.New("mock bus: blocked call timed out")
)

// MockWrite records one write transaction seen by a MockBus
type MockWrite struct {
	Data []byte
	Addr uint16
}

// MockBus is a scripted Bus for tests. Reads copy ReadData into the caller's
// slice; writes are recorded. When blocking is enabled, every call waits for
// Unblock, Close or the timeout.
// Calls are serialized like transactions on a real bus.
type MockBus struct {
	blockChan chan struct{}
	ReadFunc  func(addr uint16, p []byte) error
	ReadErr   error
	WriteErr  error
	ReadData  []byte
	writes    []MockWrite
	reads     int
	timeout   time.Duration
	mu        sync.Mutex
	txMu      sync.Mutex
	blocking  bool
	closed    bool
}

// NewMockBus creates a new mock bus
func NewMockBus() *MockBus {
	return &MockBus{
		blockChan: make(chan struct{}),
		timeout:   5 * time.Second, // Default timeout
	}
}

// NewMockBusWithReadData creates a mock bus that answers every read with data
func NewMockBusWithReadData(data []byte) *MockBus {
	mock := NewMockBus()
	mock.SetReadData(data)
	return mock
}

// Write records p unless a write error is configured
func (m *MockBus) Write(addr uint16, p []byte) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	if err := m.wait(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.writes = append(m.writes, MockWrite{Addr: addr, Data: append([]byte(nil), p...)})
	return nil
}

// Read fills p from the configured response
func (m *MockBus) Read(addr uint16, p []byte) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	if err := m.wait(); err != nil {
		return err
	}

	m.mu.Lock()
	m.reads++
	readFunc := m.ReadFunc
	readErr := m.ReadErr
	data := m.ReadData
	m.mu.Unlock()

	if readFunc != nil {
		return readFunc(addr, p)
	}
	// A failing transport may still have clocked bytes in before the error
	copy(p, data)
	return readErr
}

// wait blocks until the call may proceed
func (m *MockBus) wait() error {
	m.mu.Lock()
	blockChan := m.blockChan
	blocking := m.blocking
	closed := m.closed
	timeout := m.timeout
	m.mu.Unlock()

	if closed {
		return ErrMockClosed
	}
	if !blocking {
		return nil
	}

	select {
	case <-blockChan:
	case <-time.After(timeout):
		return ErrMockTimeout
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMockClosed
	}
	return nil
}

// SetBlocking makes subsequent calls wait for Unblock
func (m *MockBus) SetBlocking(blocking bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocking = blocking
}

// Unblock releases all calls currently waiting
func (m *MockBus) Unblock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		close(m.blockChan)
		m.blockChan = make(chan struct{})
	}
}

// Close unblocks all calls and fails every later one
func (m *MockBus) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.blockChan)
	}
	return nil
}

// SetReadData configures the bytes returned by reads
func (m *MockBus) SetReadData(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadData = append([]byte(nil), data...)
	m.ReadFunc = nil
}

// SetReadFunc configures a dynamic read handler
func (m *MockBus) SetReadFunc(fn func(addr uint16, p []byte) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadFunc = fn
}

// SetReadError makes reads fail with err after copying ReadData
func (m *MockBus) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadErr = err
}

// SetWriteError makes writes fail with err
func (m *MockBus) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteErr = err
}

// SetTimeout configures how long a blocked call waits
func (m *MockBus) SetTimeout(timeout time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = timeout
}

// Writes returns a copy of all recorded writes
func (m *MockBus) Writes() []MockWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockWrite(nil), m.writes...)
}

// ReadCount returns the number of reads that reached the response stage
func (m *MockBus) ReadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

var _ Bus = (*MockBus)(nil)
