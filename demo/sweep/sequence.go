// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package sweep

import (
	"context"
	"time"

	"github.com/danjacques/golpd8806/lpd8806"
	"github.com/danjacques/golpd8806/pixel"

	"github.com/pkg/errors"
)

// NumPixels returns the number of pixels on a strip of the given number of
// meters. Each meter segment carries one extra pixel at its joint.
func NumPixels(pixelsPerMeter, meters int) int { return (pixelsPerMeter + 1) * meters }

// Step is a single step of the demo sequence.
type Step struct {
	// Name is a short description of the step, used in logs.
	Name string
	// Apply mutates and transmits the strip.
	Apply func(s *lpd8806.Strip) error
	// Hold is how long the result is shown before the next step.
	Hold time.Duration
}

func fill(p pixel.P, delay time.Duration) func(*lpd8806.Strip) error {
	return func(s *lpd8806.Strip) error {
		for i := 0; i < s.Len(); i++ {
			s.SetPixel(i, p)
		}
		return s.Transmit(delay)
	}
}

// Sequence is the demo sequence. Colors are (Green, Red, Blue).
var Sequence = []Step{
	{"clear", (*lpd8806.Strip).ClearAll, 0},
	{"sweep green", fill(pixel.P{Green: 0xFF, Red: 0x80, Blue: 0x80}, time.Millisecond), 500 * time.Millisecond},
	{"sweep red", fill(pixel.P{Green: 0x80, Red: 0xFF, Blue: 0x80}, 10*time.Millisecond), 500 * time.Millisecond},
	{"purple", fill(pixel.P{Green: 0x80, Red: 0x8F, Blue: 0x8F}, 0), time.Second},
	{"gold", fill(pixel.P{Green: 0xE6, Red: 0xFA, Blue: 0x20}, 0), time.Second},
	{"soft white", fill(pixel.P{Green: 0xF0, Red: 0xF0, Blue: 0xF0}, 0), time.Second},
	{"dim", func(s *lpd8806.Strip) error { return s.Dim(50, 0) }, time.Second},
	{"warm", func(s *lpd8806.Strip) error { return s.Warm(30, 0) }, time.Second},
	{"clear", (*lpd8806.Strip).ClearAll, 0},
}

// Run plays steps on s. After each step, hold is called with the step's hold
// duration.
//
// Run stops early if ctx is cancelled, or if a step fails.
func Run(ctx context.Context, s *lpd8806.Strip, steps []Step, hold func(context.Context, time.Duration)) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.Apply(s); err != nil {
			return errors.Wrapf(err, "step #%d (%s)", i, step.Name)
		}
		if step.Hold > 0 {
			hold(ctx, step.Hold)
		}
	}
	return nil
}

// Sleep pauses for d, or until ctx is cancelled.
func Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
