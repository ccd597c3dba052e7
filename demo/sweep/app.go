// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package sweep defines the logic for the "sweep" demo app.
//
// This app drives an LPD8806 strip through a fixed color sequence: a green
// sweep, a red sweep, several instantaneous full-strip colors, a dim and a
// warm adjustment, and finally clears the strip.
//
// With --capture, bus writes are recorded to a file rather than sent to SPI
// hardware.
package sweep

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/danjacques/golpd8806/lpd8806"
	"github.com/danjacques/golpd8806/support/capture"
	"github.com/danjacques/golpd8806/support/logging"
	"github.com/danjacques/golpd8806/support/spibus"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

var (
	pixelsPerMeter = pflag.Int("pixels-per-meter", 48, "Pixels per meter of strip (usually 32 or 48).")
	meters         = pflag.Int("meters", 5, "Length of the strip, in meters.")
	stripID        = pflag.String("id", "default", "Strip ID used in logs and metrics.")
	holdScale      = pflag.Float64("hold-scale", 1, "Multiplier applied to the pause after each step.")
	capturePath    = pflag.String("capture", "", "If set, record bus writes to this file instead of using SPI.")
	metricsAddr    = pflag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address.")
	verbose        = pflag.BoolP("verbose", "v", false, "Enable verbose logging.")
	debug          = pflag.Bool("debug", false, "Log every transmitted frame.")

	captureCompression = capture.CompressionFlag(capture.CompressionSnappy)
	spiConfig          spibus.Config
)

func init() {
	pflag.Var(&captureCompression, "capture-compression",
		"Capture file compression. Options: "+capture.CompressionFlagValues())
	spiConfig.AddFlags(pflag.CommandLine)
}

// Main is the main entry point.
func Main() {
	pflag.Parse()

	logger, sync, err := logging.NewZap(*verbose)
	if err != nil {
		log.Fatalf("Couldn't create logger: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, os.Interrupt)
	go func() {
		<-signalC
		logger.Infof("Interrupted; stopping.")
		cancel()
	}()

	err = run(ctx, logger)
	cancel()
	if err != nil && errors.Cause(err) != context.Canceled {
		logger.Errorf("Demo failed: %s", err)
		sync()
		os.Exit(1)
	}
	sync()
}

func run(ctx context.Context, logger logging.L) error {
	bus, closer, err := openBus(logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warnf("Failed to close bus: %s", err)
		}
	}()

	if *metricsAddr != "" {
		lpd8806.RegisterMonitoring(prometheus.DefaultRegisterer)
		bus = lpd8806.MonitorBus(*stripID, bus)
		go serveMetrics(logger, *metricsAddr)
	}

	s := lpd8806.New(bus)
	s.ID = *stripID
	s.Logger = logger
	s.Setup(NumPixels(*pixelsPerMeter, *meters), *debug)

	hold := func(ctx context.Context, d time.Duration) {
		Sleep(ctx, time.Duration(float64(d) * *holdScale))
	}
	err = Run(ctx, s, Sequence, hold)
	if err != nil && errors.Cause(err) == context.Canceled {
		// Leave the strip dark on interrupt.
		if clearErr := s.ClearAll(); clearErr != nil {
			logger.Warnf("Failed to clear strip: %s", clearErr)
		}
	}
	return err
}

func openBus(logger logging.L) (lpd8806.Bus, io.Closer, error) {
	if *capturePath != "" {
		w, err := capture.Create(*capturePath, capture.Config{
			Compression: captureCompression.Value(),
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("Recording bus writes to %q.", *capturePath)
		return w, w, nil
	}

	cfg := spiConfig
	cfg.Logger = logger
	c, err := spibus.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

func serveMetrics(logger logging.L, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Infof("Serving metrics on %s.", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warnf("Metrics server failed: %s", err)
	}
}
