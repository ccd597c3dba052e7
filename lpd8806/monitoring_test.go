// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package lpd8806

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Monitoring", func() {
	It("registers its collectors", func() {
		reg := prometheus.NewRegistry()
		Expect(func() { RegisterMonitoring(reg) }).ToNot(Panic())
	})

	It("counts bus writes, bytes, and errors", func() {
		const id = "monitoring-test"
		labels := prometheus.Labels{"id": id}

		var fail error
		mb := MonitorBus(id, BusFunc(func(b []byte) error { return fail }))

		Expect(mb.WriteBytes([]byte{0x00, 0x00, 0x00})).To(Succeed())
		Expect(mb.WriteBytes([]byte{0x80, 0x80, 0x80, 0xFF, 0xFF, 0xFF})).To(Succeed())
		fail = errors.New("boom")
		Expect(mb.WriteBytes([]byte{0x80})).ToNot(Succeed())

		Expect(testutil.ToFloat64(busWrites.With(labels))).To(Equal(2.0))
		Expect(testutil.ToFloat64(busWriteBytes.With(labels))).To(Equal(9.0))
		Expect(testutil.ToFloat64(busWriteErrors.With(labels))).To(Equal(1.0))
	})

	It("tracks strip size and frames", func() {
		s := New(BusFunc(func([]byte) error { return nil }))
		s.ID = "monitoring-strip"
		labels := prometheus.Labels{"id": s.ID}

		s.Setup(4, false)
		Expect(testutil.ToFloat64(stripPixelCountGauge.With(labels))).To(Equal(4.0))

		Expect(s.Transmit(0)).To(Succeed())
		Expect(s.ClearAll()).To(Succeed())
		Expect(testutil.ToFloat64(stripFrames.With(labels))).To(Equal(2.0))
	})
})
