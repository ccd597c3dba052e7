// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixel

import (
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pixel Buffer", func() {
	// Two GRB pixels: (0x90, 0xA0, 0xB0), (0xFF, 0x80, 0x80)
	raw := []byte{0x90, 0xA0, 0xB0, 0xFF, 0x80, 0x80}

	var pb *Buffer
	BeforeEach(func() {
		pb = &Buffer{}
	})

	It("has length 0", func() {
		Expect(pb.Len()).To(Equal(0))
		Expect(pb.Bytes()).To(HaveLen(0))
	})

	It("will grow a zeroed buffer when reset", func() {
		pb.Reset(5)
		Expect(pb.Len()).To(Equal(5))
		Expect(pb.Bytes()).To(Equal(make([]byte, 15)))
	})

	It("will zero a reused buffer when reset", func() {
		pb.Reset(3)
		pb.Fill(Dark)
		pb.Reset(2)
		Expect(pb.Bytes()).To(Equal(make([]byte, 6)))
	})

	It("can load the data using UseBytes", func() {
		pb.UseBytes(raw)

		Expect(pb.Len()).To(Equal(2))
		Expect(pb.Pixel(0)).To(Equal(P{Green: 0x90, Red: 0xA0, Blue: 0xB0}))
		Expect(pb.Pixel(1)).To(Equal(P{Green: 0xFF, Red: 0x80, Blue: 0x80}))
	})

	It("drops a trailing partial pixel in UseBytes", func() {
		pb.UseBytes([]byte{0x80, 0x81, 0x82, 0x83})
		Expect(pb.Len()).To(Equal(1))
		Expect(pb.Bytes()).To(HaveLen(3))
	})

	It("encodes unset pixels as dark", func() {
		pb.Reset(2)
		pb.SetPixelColor(1, 0xFF, 0xA0, 0x90)

		dst := []byte{0x01}
		Expect(pb.Encode(dst)).To(Equal([]byte{0x01, 0x80, 0x80, 0x80, 0xFF, 0xA0, 0x90}))
		Expect(pb.Bytes()[:3]).To(Equal([]byte{0, 0, 0}))
	})

	Context("manipulating pixels", func() {
		BeforeEach(func() {
			pb.Reset(3)
		})

		It("will ignore out-of-bounds pixels", func() {
			pb.SetPixelColor(3, 0xFF, 0xFF, 0xFF)
			pb.SetPixelColor(-1, 0xFF, 0xFF, 0xFF)
			pb.SetPixel(1337, P{})
			Expect(pb.Bytes()).To(Equal(make([]byte, 9)))
			Expect(pb.Pixel(3)).To(Equal(P{}))
			Expect(pb.Pixel(-1)).To(Equal(P{}))
			Expect(pb.PixelBytes(-1)).To(BeNil())
		})

		It("will ignore indices whose byte offset overflows int", func() {
			huge := math.MaxInt/Size + 1
			Expect(func() {
				pb.SetPixelColor(huge, 0xFF, 0xFF, 0xFF)
				pb.SetPixel(math.MaxInt, Dark)
			}).ToNot(Panic())
			Expect(pb.PixelBytes(huge)).To(BeNil())
			Expect(pb.Pixel(huge)).To(Equal(P{}))
			Expect(pb.Bytes()).To(Equal(make([]byte, 9)))
		})

		It("clamps channels when setting", func() {
			pb.SetPixelColor(0, 0x100, 0x7F, 0xC0)
			pb.SetPixel(1, P{Green: 0x10})

			Expect(pb.Pixel(0)).To(Equal(P{Green: 0xFF, Red: 0x80, Blue: 0xC0}))
			Expect(pb.Pixel(1)).To(Equal(Dark))
			Expect(pb.Bytes()).To(Equal([]byte{0xFF, 0x80, 0xC0, 0x80, 0x80, 0x80, 0, 0, 0}))
		})

		It("clamps unset pixels up to the floor on first adjustment", func() {
			pb.Adjust(RedChannel, 10)
			for i := 0; i < pb.Len(); i++ {
				Expect(pb.Pixel(i)).To(Equal(P{Green: 0x80, Red: 0x80, Blue: 0x80}))
			}
		})

		It("adjusts every pixel", func() {
			pb.Fill(P{Green: 0x90, Red: 0x90, Blue: 0x90})
			pb.SetPixelColor(2, 0xFA, 0xFA, 0xFA)
			pb.Adjust(AllChannels, 10)

			Expect(pb.Pixel(0)).To(Equal(P{Green: 0x9A, Red: 0x9A, Blue: 0x9A}))
			Expect(pb.Pixel(1)).To(Equal(P{Green: 0x9A, Red: 0x9A, Blue: 0x9A}))
			Expect(pb.Pixel(2)).To(Equal(P{Green: 0xFF, Red: 0xFF, Blue: 0xFF}))

			pb.Adjust(AllChannels, -10)
			Expect(pb.Pixel(0)).To(Equal(P{Green: 0x90, Red: 0x90, Blue: 0x90}))
			Expect(pb.Pixel(2)).To(Equal(P{Green: 0xF5, Red: 0xF5, Blue: 0xF5}))
		})
	})
})
