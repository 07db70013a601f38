// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adg72x

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Variant represents the chip model.
type Variant string

const (
	ADG728 Variant = "ADG728"
	ADG729 Variant = "ADG729"

	// ADG728DefaultAddr is the address of an ADG728 with A0 and A1 low.
	ADG728DefaultAddr uint16 = 0x4C
	// ADG729DefaultAddr is the address of an ADG729 with A0 and A1 low.
	ADG729DefaultAddr uint16 = 0x44
	// DefaultAddress is used when no address is given.
	DefaultAddress = ADG728DefaultAddr

	// Channels is the width of the control byte.
	Channels = 8
)

var (
	// ErrInvalidChannel is returned by Select for a channel outside 0-7.
	ErrInvalidChannel = errors.New("adg72x: invalid channel")

	errInvalidAddress = errors.New("adg72x: address must fit in 7 bits")
	errInvalidVariant = errors.New("adg72x: invalid variant")
)

var defaultAddrs = map[Variant]uint16{
	ADG728: ADG728DefaultAddr,
	ADG729: ADG729DefaultAddr,
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the I²C address. When 0, the default address of Variant is
	// used.
	Addr uint16
	// Variant is the chip model. When empty, ADG728 is assumed.
	Variant Variant
}

// DefaultOpts is an ADG728 at its default address.
var DefaultOpts = Opts{
	Addr:    ADG728DefaultAddr,
	Variant: ADG728,
}

// IOError is returned when the bus fails to deliver a control byte. Err is
// the error returned by the bus.
//
// When a write fails the state of the switches must be considered unknown.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("adg72x: failed to select channels: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Dev is a handle to an ADG728 or ADG729.
//
// The bus is not owned by Dev and is never closed by it. Dev does no locking
// of its own; concurrent use relies on the bus serializing transactions, as
// the periph.io host buses do.
type Dev struct {
	d       *i2c.Dev
	variant Variant
}

// New returns a handle to the switch on bus. If opts is nil, DefaultOpts is
// used.
//
// No I/O is done on the bus.
func New(bus i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	variant := opts.Variant
	if variant == "" {
		variant = ADG728
	}
	addr, ok := defaultAddrs[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errInvalidVariant, string(variant))
	}
	if opts.Addr != 0 {
		addr = opts.Addr
	}
	if addr > 0x7f {
		return nil, fmt.Errorf("%w: 0x%x", errInvalidAddress, addr)
	}
	return &Dev{d: &i2c.Dev{Bus: bus, Addr: addr}, variant: variant}, nil
}

// SetChannels writes bits to the device. Bit i closes channel i+1; a clear
// bit opens it. Each call is one independent bus transaction: the previous
// value is not merged in.
//
// On failure an *IOError wrapping the bus error is returned. There is no
// retry.
func (d *Dev) SetChannels(bits byte) error {
	if err := d.d.Tx([]byte{bits}, nil); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// Select closes channel, numbered from 0, and opens all the others.
func (d *Dev) Select(channel int) error {
	if channel < 0 || channel >= Channels {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, channel)
	}
	return d.SetChannels(1 << channel)
}

// Halt opens every switch. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetChannels(0)
}

// Addr returns the I²C address of the device.
func (d *Dev) Addr() uint16 {
	return d.d.Addr
}

// Variant returns the chip model.
func (d *Dev) Variant() Variant {
	return d.variant
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s_%x", d.variant, d.d.Addr)
}

var _ conn.Resource = &Dev{}
