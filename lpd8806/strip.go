// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package lpd8806

import (
	"fmt"
	"time"

	"github.com/danjacques/golpd8806/pixel"
	"github.com/danjacques/golpd8806/support/fmtutil"
	"github.com/danjacques/golpd8806/support/logging"

	"github.com/pkg/errors"
)

// Strip is the frame buffer for a single LPD8806 strip, and the logic used to
// transmit it.
//
// Mutations are applied to the frame buffer only; nothing is sent until
// Transmit is called (directly, or by ClearAll or one of the bulk
// adjustments).
//
// Strip's exported fields must not be changed after Setup is called.
type Strip struct {
	// ID identifies this strip in logs and metrics. If empty, "default" is
	// used.
	ID string

	// Logger, if not nil, is the logger to use to log events.
	Logger logging.L

	// SleepFunc, if not nil, is the function used to pause after each pixel.
	// If nil, time.Sleep will be used.
	SleepFunc func(time.Duration)

	bus    Bus
	pixels pixel.Buffer
	reset  []byte
	frame  []byte
	debug  bool
}

// New creates a zero-length Strip that writes to bus. Setup must be called
// before pixels can be set.
func New(bus Bus) *Strip {
	return &Strip{bus: bus}
}

func (s *Strip) String() string { return fmt.Sprintf("Strip{%s, %d pixel(s)}", s.id(), s.Len()) }

// Setup allocates length pixels, discarding any previous state.
//
// Each pixel starts out as all zero bytes. Those are below the valid channel
// range, and are clamped up to pixel.Off by the first mutation that touches
// them.
//
// If debug is true, the strip logs its initialization and every frame that it
// transmits.
func (s *Strip) Setup(length int, debug bool) {
	if length < 0 {
		length = 0
	}

	s.debug = debug
	if debug {
		s.logger().Infof("Initializing LED strip %q with %d pixel(s).", s.id(), length)
	}

	s.pixels.Reset(length)
	s.reset = make([]byte, length*pixel.Size)
	s.frame = make([]byte, 0, length*pixel.Size)
	stripPixelCountGauge.WithLabelValues(s.id()).Set(float64(length))
}

// Len returns the number of pixels in the strip.
func (s *Strip) Len() int { return s.pixels.Len() }

// Pixel returns the buffered value of the pixel at index i.
//
// If i is out of bounds, Pixel will return a zero value.
func (s *Strip) Pixel(i int) pixel.P { return s.pixels.Pixel(i) }

// Bytes returns the strip's color frame, as it would be written to the bus.
// Pixels that have not been set since Setup encode as dark.
func (s *Strip) Bytes() []byte { return s.pixels.Encode(nil) }

// SetPixelColor sets the pixel at index i to the supplied channel values. Each
// value is clamped into [pixel.Off, pixel.Full].
//
// If i is out of bounds, SetPixelColor does nothing.
func (s *Strip) SetPixelColor(i, green, red, blue int) {
	s.pixels.SetPixelColor(i, green, red, blue)
}

// SetPixel sets the pixel at index i to p, clamping each channel.
//
// If i is out of bounds, SetPixel does nothing.
func (s *Strip) SetPixel(i int, p pixel.P) { s.pixels.SetPixel(i, p) }

// Transmit sends the strip's frame buffer to the bus.
//
// A reset frame is written first, followed by each pixel's color bytes in
// index order. If delay is positive, Transmit pauses for delay after each
// pixel, sweeping the update along the strip; otherwise the color
// frame is written at full speed. A negative delay is treated as zero.
//
// If a bus write fails, Transmit stops and returns the error. The physical
// strip may be left partially updated.
func (s *Strip) Transmit(delay time.Duration) error {
	if err := s.writeReset(); err != nil {
		return err
	}
	return s.writeColors(delay)
}

// ClearAll turns every pixel off and transmits the result at full speed.
//
// The bus sees exactly what Transmit(0) would send for a dark strip.
func (s *Strip) ClearAll() error {
	if err := s.writeReset(); err != nil {
		return err
	}
	s.pixels.Fill(pixel.Dark)
	return s.writeColors(0)
}

// Warm adds amount to the red channel of every pixel, then transmits with
// delay between pixels.
func (s *Strip) Warm(amount int, delay time.Duration) error {
	return s.adjust(pixel.RedChannel, amount, delay)
}

// Cool adds amount to the blue channel of every pixel, then transmits with
// delay between pixels.
func (s *Strip) Cool(amount int, delay time.Duration) error {
	return s.adjust(pixel.BlueChannel, amount, delay)
}

// TintGreen adds amount to the green channel of every pixel, then transmits
// with delay between pixels.
func (s *Strip) TintGreen(amount int, delay time.Duration) error {
	return s.adjust(pixel.GreenChannel, amount, delay)
}

// Brighten adds amount to every channel of every pixel, then transmits with
// delay between pixels.
func (s *Strip) Brighten(amount int, delay time.Duration) error {
	return s.adjust(pixel.AllChannels, amount, delay)
}

// Dim subtracts amount from every channel of every pixel, then transmits with
// delay between pixels.
func (s *Strip) Dim(amount int, delay time.Duration) error {
	return s.adjust(pixel.AllChannels, -pixel.ClampDelta(amount), delay)
}

// adjust applies amount to the selected channels and transmits. All channel
// arithmetic saturates at pixel.Off and pixel.Full.
func (s *Strip) adjust(ch pixel.Channels, amount int, delay time.Duration) error {
	s.pixels.Adjust(ch, amount)
	return s.Transmit(delay)
}

func (s *Strip) writeReset() error {
	if len(s.reset) == 0 {
		return nil
	}
	if err := s.write(s.reset); err != nil {
		return errors.Wrap(err, "writing reset frame")
	}
	return nil
}

func (s *Strip) writeColors(delay time.Duration) error {
	s.frame = s.pixels.Encode(s.frame[:0])
	if len(s.frame) == 0 {
		return nil
	}
	if s.debug {
		s.logger().Debugf("Writing color frame to %q (delay %s): %s", s.id(), delay, fmtutil.HexSlice(s.frame))
	}

	if delay <= 0 {
		if err := s.write(s.frame); err != nil {
			return errors.Wrap(err, "writing color frame")
		}
	} else {
		for i := 0; i < len(s.frame); i += pixel.Size {
			if err := s.write(s.frame[i : i+pixel.Size]); err != nil {
				return errors.Wrapf(err, "writing pixel #%d", i/pixel.Size)
			}
			s.sleep(delay)
		}
	}

	stripFrames.WithLabelValues(s.id()).Inc()
	return nil
}

func (s *Strip) write(b []byte) error {
	if s.bus == nil {
		return errors.New("strip has no bus")
	}
	return s.bus.WriteBytes(b)
}

func (s *Strip) sleep(d time.Duration) {
	if s.SleepFunc != nil {
		s.SleepFunc(d)
		return
	}
	time.Sleep(d)
}

func (s *Strip) logger() logging.L { return logging.Must(s.Logger) }

func (s *Strip) id() string {
	if s.ID == "" {
		return "default"
	}
	return s.ID
}
