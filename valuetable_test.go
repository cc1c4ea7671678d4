package ebds_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/ebds"
)

var _ = Describe("QueryValueTableCommand", func() {
	It("is a bare query", func() {
		cmd := NewQueryValueTableCommand()
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x09, 0x70, 0x06, 0x00, 0x00, 0x00, 0x03, 0x7f,
		}))
		Expect(cmd.ExtendedType()).To(Equal(QueryValueTableExt))
		Expect(cmd.String()).To(Equal(
			"QueryValueTableCommand{AckNak: false, " +
				"DeviceType: BillAcceptor}"))
	})
})

var _ = Describe("QueryValueTableReply", func() {
	var r *QueryValueTableReply
	BeforeEach(func() {
		r = NewQueryValueTableReply()
	})

	// $1 in slot 1, $5 in slot 2, the rest unassigned.
	good := []byte{
		0x02, 0x52, 0x70, 0x06, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
		0x01, 0x55, 0x53, 0x44, 0x30, 0x30, 0x31, 0x2b, 0x30, 0x30,
		0x02, 0x55, 0x53, 0x44, 0x30, 0x30, 0x35, 0x2b, 0x30, 0x30,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x03, 0x53,
	}

	It("decodes the populated rows", func() {
		Expect(r.FromBuf(good)).To(Succeed())

		d := r.Denom(1)
		Expect(d.NoteIndex).To(Equal(1))
		Expect(d.ISOCode.String()).To(Equal("USD"))
		Expect(d.Value()).To(Equal(1.0))

		d = r.Denom(2)
		Expect(d.NoteIndex).To(Equal(2))
		Expect(d.Value()).To(Equal(5.0))

		Expect(r.Denom(3).NoteIndex).To(Equal(0))
		Expect(r.DeviceState().Idling()).To(BeTrue())
	})

	It("returns all seven rows", func() {
		Expect(r.FromBuf(good)).To(Succeed())
		t := r.Denoms()
		Expect(t[0].NoteIndex).To(Equal(1))
		Expect(t[1].NoteIndex).To(Equal(2))
		for i := 2; i < 7; i++ {
			Expect(t[i].NoteIndex).To(Equal(0))
		}
	})

	It("round-trips through SetDenom", func() {
		r.SetDeviceState(0x01)
		r.SetDeviceStatus(0x10)
		r.SetModelNumber(0x41)
		r.SetCodeRevision(0x20)
		r.SetDenom(1, BaseDenomination{
			NoteIndex: 1,
			ISOCode:   ParseISOCode([]byte("USD")),
			BaseValue: 1,
			Sign:      Positive,
			Exponent:  0,
		})
		r.SetDenom(2, BaseDenomination{
			NoteIndex: 2,
			ISOCode:   ParseISOCode([]byte("USD")),
			BaseValue: 5,
			Sign:      Positive,
			Exponent:  0,
		})
		Expect(r.Bytes()[:30]).To(Equal(good[:30]))
		Expect(r.Denom(1).Value()).To(Equal(1.0))
		Expect(r.ValidateChecksum()).To(Succeed())
	})

	It("panics outside 1-7", func() {
		Expect(func() { r.Denom(0) }).
			Should(PanicWith("invalid denomination: 0"))
		Expect(func() { r.Denom(8) }).
			Should(PanicWith("invalid denomination: 8"))
		Expect(func() { r.SetDenom(0, BaseDenomination{}) }).
			Should(PanicWith("invalid denomination: 0"))
	})

	It("has String", func() {
		Expect(r.FromBuf(good)).To(Succeed())
		Expect(r.String()).To(Equal(
			"QueryValueTableReply{AckNak: false, " +
				"DeviceType: BillAcceptor, " +
				"1: {note_index: 1, iso_code: USD, base_value: 1, " +
				"sign: +, exponent: 0}, " +
				"2: {note_index: 2, iso_code: USD, base_value: 5, " +
				"sign: +, exponent: 0}}"))
	})
})
