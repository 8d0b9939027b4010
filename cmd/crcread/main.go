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

// Command crcread sends a command to an I2C sensor and reads back
// CRC-protected 16-bit words.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	crci2c "github.com/ZaparooProject/go-crci2c"
	"github.com/ZaparooProject/go-crci2c/transport/i2c"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	// Enable debug output if --debug flag is set
	crci2c.SetDebugEnabled(cfg.Debug)

	transport, err := i2c.New(cfg.Bus)
	if err != nil {
		return fmt.Errorf("failed to create I2C transport: %w", err)
	}
	defer func() { _ = transport.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sample(ctx, transport, cfg, os.Stdout)
}

// sample takes cfg.Count readings, or runs until ctx is done when Count is 0.
// A failed reading is reported and skipped.
func sample(ctx context.Context, bus crci2c.BusContext, cfg config, out io.Writer) error {
	buf := crci2c.NewBuffer(cfg.Words * 3)
	words := make([]uint16, 0, cfg.Words)

	for i := 0; cfg.Count == 0 || i < cfg.Count; i++ {
		if i > 0 && !sleep(ctx, cfg.Interval) {
			return nil
		}

		if err := readOnce(ctx, bus, cfg, buf); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			_, _ = fmt.Fprintf(out, "sample %d: error: %v (retryable: %v)\n", i, err, crci2c.IsRetryable(err))
			continue
		}

		words = buf.Words(words[:0])
		_, _ = fmt.Fprintf(out, "sample %d: %s\n", i, formatWords(words))
	}
	return nil
}

func readOnce(ctx context.Context, bus crci2c.BusContext, cfg config, buf *crci2c.Buffer) error {
	var err error
	if cfg.CommandWidth == 8 {
		err = crci2c.WriteCommandU8Context(ctx, bus, cfg.Address, uint8(cfg.Command))
	} else {
		err = crci2c.WriteCommandU16Context(ctx, bus, cfg.Address, cfg.Command)
	}
	if err != nil {
		return err
	}

	if !sleep(ctx, cfg.Delay) {
		return ctx.Err()
	}
	return buf.ReadAndValidateContext(ctx, bus, cfg.Address)
}

// sleep waits for d and returns false if ctx ends first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func formatWords(words []uint16) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("0x%04X", w)
	}
	return strings.Join(parts, " ")
}
