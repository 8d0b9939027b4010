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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type config struct {
	Bus          string
	Address      uint16
	Command      uint16
	CommandWidth int
	Words        int
	Delay        time.Duration
	Interval     time.Duration
	Count        int
	Debug        bool
}

func defaultConfig() config {
	return config{
		CommandWidth: 16,
		Words:        1,
		Delay:        10 * time.Millisecond,
		Interval:     time.Second,
		Count:        1,
	}
}

type fileConfig struct {
	Bus          string `toml:"bus"`
	Delay        string `toml:"delay"`
	Interval     string `toml:"interval"`
	Address      int64  `toml:"address"`
	Command      int64  `toml:"command"`
	CommandWidth int    `toml:"command_width"`
	Words        int    `toml:"words"`
	Count        int    `toml:"count"`
	Debug        bool   `toml:"debug"`
}

// loadFileConfig overlays the keys present in the TOML file at path onto cfg
func loadFileConfig(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("bus") {
		cfg.Bus = strings.TrimSpace(raw.Bus)
	}
	if meta.IsDefined("address") {
		if raw.Address < 0 || raw.Address > 0x3FF {
			return fmt.Errorf("address out of range: %#x", raw.Address)
		}
		cfg.Address = uint16(raw.Address)
	}
	if meta.IsDefined("command") {
		if raw.Command < 0 || raw.Command > 0xFFFF {
			return fmt.Errorf("command out of range: %#x", raw.Command)
		}
		cfg.Command = uint16(raw.Command)
	}
	if meta.IsDefined("command_width") {
		cfg.CommandWidth = raw.CommandWidth
	}
	if meta.IsDefined("words") {
		cfg.Words = raw.Words
	}
	if meta.IsDefined("delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Delay))
		if err != nil {
			return fmt.Errorf("parse delay: %w", err)
		}
		cfg.Delay = d
	}
	if meta.IsDefined("interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Interval))
		if err != nil {
			return fmt.Errorf("parse interval: %w", err)
		}
		cfg.Interval = d
	}
	if meta.IsDefined("count") {
		cfg.Count = raw.Count
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	return nil
}

// parseConfig builds the configuration from defaults, an optional config
// file and command line flags, in increasing order of precedence.
func parseConfig(args []string, output io.Writer) (config, error) {
	fs := flag.NewFlagSet("crcread", flag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.String("config", "", "TOML config file")
	busName := fs.String("bus", "", "I2C bus name (e.g., /dev/i2c-1 or 1)")
	addr := fs.Uint("addr", 0, "Device address (e.g., 0x44)")
	command := fs.Uint("cmd", 0, "Command sent before reading (e.g., 0x2400)")
	width := fs.Int("cmd-width", 16, "Command width in bits: 8 or 16")
	words := fs.Int("words", 1, "Number of 16-bit words to read")
	delay := fs.Duration("delay", 10*time.Millisecond, "Wait between command and read")
	interval := fs.Duration("interval", time.Second, "Wait between samples")
	count := fs.Int("count", 1, "Number of samples, 0 for unlimited")
	debug := fs.Bool("debug", false, "Enable debug output")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadFileConfig(*configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			cfg.Bus = *busName
		case "addr":
			if *addr > 0x3FF {
				flagErr = fmt.Errorf("address out of range: %#x", *addr)
				return
			}
			cfg.Address = uint16(*addr)
		case "cmd":
			if *command > 0xFFFF {
				flagErr = fmt.Errorf("command out of range: %#x", *command)
				return
			}
			cfg.Command = uint16(*command)
		case "cmd-width":
			cfg.CommandWidth = *width
		case "words":
			cfg.Words = *words
		case "delay":
			cfg.Delay = *delay
		case "interval":
			cfg.Interval = *interval
		case "count":
			cfg.Count = *count
		case "debug":
			cfg.Debug = *debug
		}
	})
	if flagErr != nil {
		return config{}, flagErr
	}

	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.Bus == "":
		return errors.New("no I2C bus given")
	case c.Address == 0:
		return errors.New("no device address given")
	case c.CommandWidth != 8 && c.CommandWidth != 16:
		return fmt.Errorf("unsupported command width: %d", c.CommandWidth)
	case c.CommandWidth == 8 && c.Command > 0xFF:
		return fmt.Errorf("command %#x does not fit in 8 bits", c.Command)
	case c.Words <= 0:
		return fmt.Errorf("invalid word count: %d", c.Words)
	case c.Count < 0:
		return fmt.Errorf("invalid sample count: %d", c.Count)
	case c.Delay < 0 || c.Interval < 0:
		return errors.New("delay and interval must not be negative")
	}
	return nil
}
