// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package fmtutil

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Formatting", func() {
	It("renders a hex slice", func() {
		Expect(fmt.Sprint(HexSlice{0x00, 0x80, 0xFF})).To(Equal("[3]byte{0x00, 0x80, 0xFF}"))
		Expect(HexSlice(nil).String()).To(Equal("[0]byte{}"))
	})

	It("renders a hex dump", func() {
		Expect(Hex{0x80, 0x81}.String()).To(HavePrefix("00000000  80 81"))
	})
})

func TestFmtUtil(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Test fmtutil")
}
