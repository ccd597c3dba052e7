// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package spibus

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
)

// AddFlags registers cfg's fields on fs, using cfg's current values as
// defaults.
func (cfg *Config) AddFlags(fs *pflag.FlagSet) {
	if cfg.Speed <= 0 {
		cfg.Speed = DefaultSpeed
	}

	fs.IntVar(&cfg.Bus, "spi-bus", cfg.Bus, "SPI bus index.")
	fs.IntVar(&cfg.Device, "spi-device", cfg.Device, "SPI device (chip select) index.")
	fs.Var((*SpeedFlag)(&cfg.Speed), "spi-speed", "SPI clock rate (e.g. 10MHz, 500kHz, 8000000).")
	fs.Var((*ModeFlag)(&cfg.Mode), "spi-mode", "SPI mode (0-3).")
	fs.BoolVar(&cfg.NoCS, "spi-no-cs", cfg.NoCS, "Do not assert chip select.")
}

// ModeFlag is a pflag.Value implementation that stores an SPI mode.
type ModeFlag spi.Mode

var _ pflag.Value = (*ModeFlag)(nil)

func (mf *ModeFlag) String() string { return strconv.Itoa(int(*mf)) }

// Set implements pflag.Value.
func (mf *ModeFlag) Set(v string) error {
	m, err := strconv.Atoi(v)
	if err != nil || m < 0 || m > 3 {
		return errors.Errorf("invalid SPI mode %q (want 0-3)", v)
	}
	*mf = ModeFlag(m)
	return nil
}

// Type implements pflag.Value.
func (mf *ModeFlag) Type() string { return "spi.Mode" }

// SpeedFlag is a pflag.Value implementation that stores a clock rate.
//
// It accepts a plain number of hertz, or a number with a Hz, kHz, MHz, or GHz
// suffix.
type SpeedFlag physic.Frequency

var _ pflag.Value = (*SpeedFlag)(nil)

func (sf *SpeedFlag) String() string { return physic.Frequency(*sf).String() }

// Set implements pflag.Value.
func (sf *SpeedFlag) Set(v string) error {
	units := []struct {
		suffix string
		unit   physic.Frequency
	}{
		{"ghz", physic.GigaHertz},
		{"mhz", physic.MegaHertz},
		{"khz", physic.KiloHertz},
		{"hz", physic.Hertz},
	}

	s := strings.ToLower(strings.TrimSpace(v))
	unit := physic.Hertz
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			s, unit = strings.TrimSpace(strings.TrimSuffix(s, u.suffix)), u.unit
			break
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n <= 0 {
		return errors.Errorf("invalid SPI speed %q", v)
	}

	// physic.Frequency is an int64 of its base unit. The negated comparison
	// also rejects NaN.
	f := n * float64(unit)
	if !(f >= 1 && f < math.MaxInt64) {
		return errors.Errorf("SPI speed %q is out of range", v)
	}
	*sf = SpeedFlag(physic.Frequency(f))
	return nil
}

// Type implements pflag.Value.
func (sf *SpeedFlag) Type() string { return "physic.Frequency" }
