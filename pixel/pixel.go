// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"fmt"
)

const (
	// Off is the value of an unlit channel.
	//
	// Its most significant bit is set, which tells an LPD8806 module to latch
	// the byte rather than shift it onward.
	Off uint8 = 0x80
	// Full is the value of a fully lit channel.
	Full uint8 = 0xFF

	// Size is the number of wire bytes occupied by a single pixel.
	Size = 3

	// maxDelta is the smallest adjustment that saturates any channel value.
	maxDelta = int(Full) + 1
)

// Clamp saturates v into the valid channel range [Off, Full].
func Clamp(v int) uint8 {
	switch {
	case v < int(Off):
		return Off
	case v > int(Full):
		return Full
	default:
		return uint8(v)
	}
}

// ClampDelta bounds an adjustment amount to a range that cannot overflow when
// added to a channel value, but that still saturates any channel it is applied
// to.
func ClampDelta(amount int) int {
	switch {
	case amount > maxDelta:
		return maxDelta
	case amount < -maxDelta:
		return -maxDelta
	default:
		return amount
	}
}

// Channels is a bitmask selecting one or more of a pixel's channels.
type Channels uint8

const (
	// GreenChannel selects the green channel.
	GreenChannel Channels = 1 << iota
	// RedChannel selects the red channel.
	RedChannel
	// BlueChannel selects the blue channel.
	BlueChannel

	// AllChannels selects every channel.
	AllChannels = GreenChannel | RedChannel | BlueChannel
)

// P is the color state of a single LPD8806 module.
//
// Fields are ordered as they appear on the wire.
type P struct {
	Green uint8
	Red   uint8
	Blue  uint8
}

// Color returns a P with each channel clamped into [Off, Full].
func Color(green, red, blue int) P {
	return P{
		Green: Clamp(green),
		Red:   Clamp(red),
		Blue:  Clamp(blue),
	}
}

// Dark is the pixel value with every channel unlit.
var Dark = P{Green: Off, Red: Off, Blue: Off}

func (p P) String() string {
	return fmt.Sprintf("(G 0x%02X, R 0x%02X, B 0x%02X)", p.Green, p.Red, p.Blue)
}

// Valid returns true if every channel of p is within [Off, Full].
func (p P) Valid() bool {
	return p.Green >= Off && p.Red >= Off && p.Blue >= Off
}

// Clamped returns a copy of p with each channel clamped into [Off, Full].
func (p P) Clamped() P { return Color(int(p.Green), int(p.Red), int(p.Blue)) }

// Adjust returns a copy of p with amount added to each selected channel.
//
// The result saturates at Off and Full, regardless of the sign of amount.
// Channels that are not selected are returned unchanged.
func (p P) Adjust(ch Channels, amount int) P {
	amount = ClampDelta(amount)
	if ch&GreenChannel != 0 {
		p.Green = Clamp(int(p.Green) + amount)
	}
	if ch&RedChannel != 0 {
		p.Red = Clamp(int(p.Red) + amount)
	}
	if ch&BlueChannel != 0 {
		p.Blue = Clamp(int(p.Blue) + amount)
	}
	return p
}
