// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screenmux

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
	"periph.io/x/conn/v3/physic"
)

func TestTx(t *testing.T) {
	var out bytes.Buffer
	b := NewWriter(&out, &Opts{Addrs: []uint16{0x4c}})
	if _, ok := b.State(0x4c); ok {
		t.Fatal("state before any write")
	}
	if err := b.Tx(0x4c, []byte{0x81}, nil); err != nil {
		t.Fatal(err)
	}
	bits, ok := b.State(0x4c)
	if !ok || bits != 0x81 {
		t.Errorf("State()=0x%x,%t expected 0x81,true", bits, ok)
	}

	s := out.String()
	if !strings.HasPrefix(s, "\r\033[0m0x4c ") {
		t.Errorf("unexpected line start %q", s)
	}
	on := ansi256.Default.Block(onColor)
	off := ansi256.Default.Block(offColor)
	want := on + strings.Repeat(off, 6) + on
	if !strings.Contains(s, want) {
		t.Errorf("line %q doesn't contain channel blocks %q", s, want)
	}
}

func TestTxErrors(t *testing.T) {
	var out bytes.Buffer
	b := NewWriter(&out, &Opts{Addrs: []uint16{0x44}})
	tests := []struct {
		name string
		addr uint16
		w    []byte
		r    []byte
		err  error
	}{
		{name: "absent device", addr: 0x4c, w: []byte{1}, err: ErrNoAck},
		{name: "read", addr: 0x44, r: make([]byte, 1), err: ErrUnsupported},
		{name: "write then read", addr: 0x44, w: []byte{1}, r: make([]byte, 1), err: ErrUnsupported},
		{name: "two bytes", addr: 0x44, w: []byte{1, 2}, err: ErrUnsupported},
		{name: "empty", addr: 0x44, err: ErrUnsupported},
	}
	for _, test := range tests {
		if err := b.Tx(test.addr, test.w, test.r); !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, found %v", test.name, test.err, err)
		}
	}
	if out.Len() != 0 {
		t.Errorf("failed transactions were rendered: %q", out.String())
	}
	if _, ok := b.State(0x44); ok {
		t.Error("failed transactions changed state")
	}
}

func TestAnyAddress(t *testing.T) {
	var out bytes.Buffer
	b := NewWriter(&out, nil)
	for _, addr := range []uint16{0x4d, 0x44} {
		if err := b.Tx(addr, []byte{byte(addr)}, nil); err != nil {
			t.Fatal(err)
		}
	}
	// The last refresh draws both devices sorted by address.
	s := out.String()
	last := s[strings.LastIndex(s, "\r"):]
	i44 := strings.Index(last, "0x44 ")
	i4d := strings.Index(last, "0x4d ")
	if i44 < 0 || i4d < 0 || i44 > i4d {
		t.Errorf("unexpected line %q", last)
	}
}

func TestBus(t *testing.T) {
	var out bytes.Buffer
	b := NewWriter(&out, nil)
	if s := b.String(); s != "ScreenMux" {
		t.Errorf("String()=%q", s)
	}
	if err := b.SetSpeed(400 * physic.KiloHertz); err != nil {
		t.Error(err)
	}
	if err := b.Close(); err != nil {
		t.Error(err)
	}
	if out.String() != "\n\033[0m" {
		t.Errorf("Close() wrote %q", out.String())
	}
}
