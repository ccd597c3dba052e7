// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package capture records the byte stream written to a strip's bus into a
// file, and reads it back.
//
// A capture file begins with an uncompressed file header, followed by a
// (possibly compressed) stream of records. Each record holds the time offset
// of a single bus write from the start of the capture, and the bytes written.
//
// A capture Writer can stand in for a real bus, which allows strip logic to run
// on a host with no SPI hardware.
package capture

import (
	"time"
)

const (
	// fileMagic identifies a capture file ("LPDC").
	fileMagic = 0x4C504443
	// fileVersion is the current capture file version.
	fileVersion = 1
)

// fileHeader is the uncompressed header at the start of a capture file.
type fileHeader struct {
	Magic       uint32 `struc:"uint32,little"`
	Version     uint8
	Compression uint8
}

// recordHeader precedes each record's data.
type recordHeader struct {
	Offset int64  `struc:"int64,little"`
	Size   uint32 `struc:"uint32,little"`
}

// Record is a single captured bus write.
type Record struct {
	// Offset is the time of the write, relative to the start of the capture.
	Offset time.Duration
	// Data is the bytes that were written.
	Data []byte
}

// Config is a configuration for the generation of capture files.
type Config struct {
	// Compression is the compression to apply to the record stream.
	Compression Compression

	// NowFunc, if not nil, is the function to use to get the current time. If
	// nil, time.Now will be used.
	NowFunc func() time.Time
}

func (cfg *Config) now() time.Time {
	if cfg.NowFunc != nil {
		return cfg.NowFunc()
	}
	return time.Now()
}
