// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package lpd8806 drives a strip of LPD8806 LED modules over a serial bus.
//
// An LPD8806 module consumes three bytes, in (Green, Red, Blue) order. The
// most significant bit of each byte tells the module whether to hold the
// byte (1) or shift it onward to the next module in the chain (0). A strip
// update therefore writes a reset frame of zero bytes, one triple per pixel,
// which puts every module into pass-through mode, followed by the color
// frame itself. Valid color bytes range from 0x80 (off) to 0xFF (fully on).
//
// Strip holds the frame buffer and performs this protocol. Strip is not safe
// for concurrent use; it expects to be the sole owner of its Bus.
//
// Optional Prometheus monitoring can be enabled by registering on startup
// (generally init()) via RegisterMonitoring.
package lpd8806
