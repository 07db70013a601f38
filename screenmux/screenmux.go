// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screenmux implements an i2c.Bus that emulates ADG72x style analog
// switches and prints the state of their channels to the terminal using ANSI
// color codes.
//
// Useful while you are waiting for your breakout board to come by mail.
package screenmux

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

var (
	// ErrNoAck is returned for a transaction to an address with no emulated
	// device.
	ErrNoAck = errors.New("screenmux: no ack from device")
	// ErrUnsupported is returned for anything but a single byte write.
	ErrUnsupported = errors.New("screenmux: only single byte writes are supported")
)

var (
	onColor  = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	offColor = color.NRGBA{0x20, 0x20, 0x20, 0xff}
)

// Opts represents the options available for the emulated bus.
type Opts struct {
	// Addrs lists the addresses of the emulated switches. If empty, every
	// address acknowledges.
	Addrs   []uint16
	Palette *ansi256.Palette

	_ struct{}
}

// Bus is an I²C bus populated with emulated switches.
type Bus struct {
	mu      sync.Mutex
	w       io.Writer
	palette ansi256.Palette
	addrs   map[uint16]struct{}
	state   map[uint16]byte
	buf     bytes.Buffer
}

// New returns a Bus that displays at the console.
func New(opts *Opts) *Bus {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Bus that renders to w.
func NewWriter(w io.Writer, opts *Opts) *Bus {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	b := &Bus{
		w:       w,
		palette: *p,
		state:   map[uint16]byte{},
	}
	if len(opts.Addrs) != 0 {
		b.addrs = make(map[uint16]struct{}, len(opts.Addrs))
		for _, a := range opts.Addrs {
			b.addrs[a] = struct{}{}
		}
	}
	return b
}

func (b *Bus) String() string {
	return "ScreenMux"
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.addrs != nil {
		if _, ok := b.addrs[addr]; !ok {
			return fmt.Errorf("%w: 0x%02x", ErrNoAck, addr)
		}
	}
	if len(w) != 1 || len(r) != 0 {
		return ErrUnsupported
	}
	b.state[addr] = w[0]
	return b.refresh()
}

// SetSpeed implements i2c.Bus. The emulated devices work at any speed.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
//
// It resets the terminal colors so the console is not corrupted.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := b.w.Write([]byte("\n\033[0m"))
	return err
}

// State returns the last byte written to addr. ok is false if nothing was
// written yet.
func (b *Bus) State(addr uint16) (bits byte, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	bits, ok = b.state[addr]
	return bits, ok
}

// refresh redraws every emulated switch on a single line, sorted by address.
func (b *Bus) refresh() error {
	addrs := make([]uint16, 0, len(b.state))
	for a := range b.state {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	b.buf.Reset()
	_, _ = b.buf.WriteString("\r\033[0m")
	for _, a := range addrs {
		bits := b.state[a]
		_, _ = fmt.Fprintf(&b.buf, "0x%02x ", a)
		for i := range 8 {
			c := offColor
			if bits&(1<<i) != 0 {
				c = onColor
			}
			_, _ = io.WriteString(&b.buf, b.palette.Block(c))
		}
		_, _ = b.buf.WriteString("\033[0m ")
	}
	_, err := b.buf.WriteTo(b.w)
	return err
}

var _ i2c.BusCloser = &Bus{}
var _ fmt.Stringer = &Bus{}
