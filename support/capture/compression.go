// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package capture

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Compression is a record stream compression scheme.
type Compression uint8

const (
	// CompressionNone writes records uncompressed.
	CompressionNone Compression = iota
	// CompressionSnappy writes records in the snappy framing format.
	CompressionSnappy
)

var compressionNames = map[Compression]string{
	CompressionNone:   "none",
	CompressionSnappy: "snappy",
}

func (c Compression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// CompressionFlag is a pflag.Value implementation that stores a compression
// value.
type CompressionFlag Compression

var _ pflag.Value = (*CompressionFlag)(nil)

func (cf *CompressionFlag) String() string { return Compression(*cf).String() }

// Set implements pflag.Value.
func (cf *CompressionFlag) Set(v string) error {
	for c, name := range compressionNames {
		if name == v {
			*cf = CompressionFlag(c)
			return nil
		}
	}
	return errors.Errorf("unknown compression type: %q", v)
}

// Type implements pflag.Value.
func (cf *CompressionFlag) Type() string { return "capture.Compression" }

// Value returns the compression value held by this flag.
func (cf CompressionFlag) Value() Compression { return Compression(cf) }

// CompressionFlagValues returns the list of possible values for a
// CompressionFlag.
func CompressionFlagValues() string {
	values := make([]Compression, 0, len(compressionNames))
	for c := range compressionNames {
		values = append(values, c)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	opts := make([]string, len(values))
	for i, c := range values {
		opts[i] = c.String()
	}
	return strings.Join(opts, ", ")
}
