// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package spibus

import (
	"github.com/spf13/pflag"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flags", func() {
	table.DescribeTable("parses SPI speeds",
		func(v string, expected physic.Frequency) {
			var sf SpeedFlag
			Expect(sf.Set(v)).To(Succeed())
			Expect(physic.Frequency(sf)).To(Equal(expected))
		},
		table.Entry("plain hertz", "8000000", 8*physic.MegaHertz),
		table.Entry("megahertz", "10MHz", 10*physic.MegaHertz),
		table.Entry("fractional megahertz", "1.5MHz", 1500*physic.KiloHertz),
		table.Entry("kilohertz", "500 kHz", 500*physic.KiloHertz),
	)

	It("rejects invalid speeds and modes", func() {
		var sf SpeedFlag
		Expect(sf.Set("fast")).ToNot(Succeed())
		Expect(sf.Set("-1MHz")).ToNot(Succeed())
		Expect(sf.Set("NaN")).ToNot(Succeed())

		var mf ModeFlag
		Expect(mf.Set("4")).ToNot(Succeed())
		Expect(mf.Set("x")).ToNot(Succeed())
	})

	It("rejects speeds that do not fit in a frequency", func() {
		sf := SpeedFlag(DefaultSpeed)
		Expect(sf.Set("1e30GHz")).To(MatchError(ContainSubstring("out of range")))
		Expect(sf.Set("+Inf")).ToNot(Succeed())
		Expect(physic.Frequency(sf)).To(Equal(DefaultSpeed))
	})

	It("registers and parses configuration flags", func() {
		var cfg Config
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.AddFlags(fs)
		Expect(cfg.Speed).To(Equal(DefaultSpeed))

		Expect(fs.Parse([]string{
			"--spi-bus", "1",
			"--spi-device", "1",
			"--spi-speed", "4MHz",
			"--spi-mode", "2",
			"--spi-no-cs",
		})).To(Succeed())

		Expect(cfg.Bus).To(Equal(1))
		Expect(cfg.Device).To(Equal(1))
		Expect(cfg.Speed).To(Equal(4 * physic.MegaHertz))
		Expect(cfg.Mode).To(Equal(spi.Mode2))
		Expect(cfg.NoCS).To(BeTrue())
	})
})
