// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adg72x provides a driver for the Analog Devices ADG728 and ADG729
// I²C controlled CMOS analog matrix switches.
//
// The ADG728 is a 1-to-8 switch. The ADG729 is a dual 1-to-4 switch; bits 0-3
// of the control byte drive bank A and bits 4-7 drive bank B.
//
// The chips have no registers. A single byte is written to the device, and
// each set bit closes the matching switch. Any number of switches can be
// closed at once. The driver never reads the device back.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/ADG728_729.pdf
//
// Adafruit sells breakout boards for both parts:
//
// https://www.adafruit.com/product/5899
//
// https://www.adafruit.com/product/5932
package adg72x
