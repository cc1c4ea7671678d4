package ebds_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/ebds"
)

var _ = Describe("seven-bit packing", func() {
	It("packs uint16 into nibble bytes", func() {
		Expect(PackSeven16(0x1234)).To(Equal([4]byte{1, 2, 3, 4}))
		Expect(PackSeven16(0xffff)).To(Equal([4]byte{0xf, 0xf, 0xf, 0xf}))
		Expect(PackSeven16(0)).To(Equal([4]byte{0, 0, 0, 0}))
	})

	It("packs bytes into nibble pairs", func() {
		Expect(PackSeven8(0xa5)).To(Equal([2]byte{0xa, 0x5}))
		Expect(PackSeven8(0x0f)).To(Equal([2]byte{0, 0xf}))
	})

	It("inverts for every uint16", func() {
		for n := 0; n <= 0xffff; n++ {
			p := PackSeven16(uint16(n))
			Expect(UnpackSeven16(p[:])).To(Equal(uint16(n)),
				strconv.Itoa(n))
		}
	})

	It("inverts for every byte", func() {
		for n := 0; n <= 0xff; n++ {
			p := PackSeven8(byte(n))
			Expect(UnpackSeven8(p[:])).To(Equal(byte(n)),
				strconv.Itoa(n))
		}
	})

	It("ignores high nibbles on unpack", func() {
		Expect(UnpackSeven16([]byte{0xf1, 0xf2, 0xf3, 0xf4})).
			To(Equal(uint16(0x1234)))
	})
})
