// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package spibus connects to an SPI port through periph.io and exposes the
// write-only byte stream that an LPD8806 strip needs.
//
// An LPD8806 uses only the data (MOSI) and clock lines. It has no device
// address and responds to every byte on the bus, so it cannot share the bus
// with other devices.
package spibus

import (
	"fmt"
	"io"
	"time"

	"github.com/danjacques/golpd8806/support/logging"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

const (
	// DefaultSpeed is the default SPI clock rate.
	DefaultSpeed = 10 * physic.MegaHertz

	// BitsPerWord is the SPI word size. It is not configurable.
	BitsPerWord = 8
)

// SettleDelay is how long Open waits after configuring the port before
// returning it.
var SettleDelay = 50 * time.Millisecond

// Config describes how to open and configure an SPI port.
type Config struct {
	// Bus is the SPI bus index.
	Bus int
	// Device is the chip select index on Bus.
	Device int

	// Speed is the SPI clock rate. If zero, DefaultSpeed is used.
	Speed physic.Frequency
	// Mode is the SPI clock polarity and phase. Data is always sent most
	// significant bit first.
	Mode spi.Mode
	// NoCS, if true, asks the driver not to assert chip select.
	NoCS bool

	// Logger, if not nil, is the logger to use to log events.
	Logger logging.L
}

// PortName returns the periph.io port name for cfg's bus and device.
func (cfg *Config) PortName() string { return fmt.Sprintf("SPI%d.%d", cfg.Bus, cfg.Device) }

func (cfg *Config) speed() physic.Frequency {
	if cfg.Speed <= 0 {
		return DefaultSpeed
	}
	return cfg.Speed
}

func (cfg *Config) mode() spi.Mode {
	m := cfg.Mode &^ spi.LSBFirst
	if cfg.NoCS {
		m |= spi.NoCS
	}
	return m
}

// Conn is a configured, write-only SPI connection.
//
// Conn is not safe for concurrent use.
type Conn struct {
	conn   spi.Conn
	closer io.Closer
	maxTx  int
	name   string
}

// Open initializes the host drivers, opens the SPI port described by cfg, and
// configures it.
//
// On failure, no port is left open.
func Open(cfg Config) (*Conn, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing host drivers")
	}

	name := cfg.PortName()
	port, err := spireg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening SPI port %q", name)
	}

	c, err := Connect(port, cfg)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	c.closer = port

	time.Sleep(SettleDelay)
	return c, nil
}

// Connect configures an already-open port.
//
// The returned Conn does not own port; closing it will not close port.
func Connect(port spi.Port, cfg Config) (*Conn, error) {
	speed, mode := cfg.speed(), cfg.mode()
	sc, err := port.Connect(speed, mode, BitsPerWord)
	if err != nil {
		return nil, errors.Wrapf(err, "configuring SPI port %s (%s, %s)", port, speed, mode)
	}

	c := Conn{
		conn: sc,
		name: port.String(),
	}
	if l, ok := sc.(conn.Limits); ok {
		c.maxTx = l.MaxTxSize()
	}

	logging.Must(cfg.Logger).Infof("Connected to SPI port %s at %s (%s, max transaction %d).",
		c.name, speed, mode, c.maxTx)
	return &c, nil
}

func (c *Conn) String() string { return fmt.Sprintf("spibus.Conn{%s}", c.name) }

// WriteBytes writes b to the bus. It blocks until every byte is clocked out.
//
// If b is larger than the driver's maximum transaction size, it is split into
// consecutive transactions.
func (c *Conn) WriteBytes(b []byte) error {
	for len(b) > 0 {
		chunk := b
		if c.maxTx > 0 && len(chunk) > c.maxTx {
			chunk = chunk[:c.maxTx]
		}
		if err := c.conn.Tx(chunk, nil); err != nil {
			return errors.Wrapf(err, "writing %d byte(s) to %s", len(chunk), c.name)
		}
		b = b[len(chunk):]
	}
	return nil
}

// Close closes the underlying port, if this Conn owns it.
func (c *Conn) Close() error {
	if c.closer == nil {
		return nil
	}
	closer := c.closer
	c.closer = nil
	return closer.Close()
}
