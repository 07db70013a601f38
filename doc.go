// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package analogswitch is a container for drivers of I²C controlled analog
// switches and multiplexers, built on periph.io.
//
// See adg72x for the ADG728 and ADG729, and screenmux to run them against a
// terminal instead of real hardware.
package analogswitch
