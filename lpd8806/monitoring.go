// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package lpd8806

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	stripPixelCountGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "strip_pixel_count",
		Help: "Number of pixels allocated for a given strip.",
	},
		[]string{"id"})

	stripFrames = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_frames",
		Help: "Count of color frames transmitted to a strip.",
	},
		[]string{"id"})

	busWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_bus_writes",
		Help: "Count of write calls made to a strip's bus.",
	},
		[]string{"id"})

	busWriteBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_bus_write_bytes",
		Help: "Count of bytes written to a strip's bus.",
	},
		[]string{"id"})

	busWriteErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strip_bus_write_errors",
		Help: "Count of errors encountered writing to a strip's bus.",
	},
		[]string{"id"})
)

// RegisterMonitoring registers all of this package's monitoring metrics.
func RegisterMonitoring(reg prometheus.Registerer) {
	reg.MustRegister(
		stripPixelCountGauge,
		stripFrames,
		busWrites,
		busWriteBytes,
		busWriteErrors,
	)
}

// MonitorBus wraps b in a monitoring shim that counts writes, bytes, and
// errors under the strip ID id.
func MonitorBus(id string, b Bus) Bus {
	return &monitoredBus{
		Bus:    b,
		labels: prometheus.Labels{"id": id},
	}
}

type monitoredBus struct {
	Bus
	labels prometheus.Labels
}

func (mb *monitoredBus) WriteBytes(b []byte) error {
	if err := mb.Bus.WriteBytes(b); err != nil {
		busWriteErrors.With(mb.labels).Inc()
		return err
	}

	busWrites.With(mb.labels).Inc()
	busWriteBytes.With(mb.labels).Add(float64(len(b)))
	return nil
}
