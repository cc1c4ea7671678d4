package ebds_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/ebds"
)

var _ = Describe("Control", func() {
	It("masks bit 7", func() {
		Expect(byte(NewControl(0xff))).To(Equal(byte(0x7f)))
		Expect(byte(NewControl(0x80))).To(Equal(byte(0)))
	})

	DescribeTable("packs the fields",
		func(ack bool, dev DeviceType, typ MessageType, x byte) {
			c := NewControl(0)
			c.SetAckNak(ack)
			c.SetDeviceType(dev)
			c.SetMessageType(typ)
			Expect(byte(c)).To(Equal(x))
			Expect(c.AckNak()).To(Equal(ack))
			Expect(c.DeviceType()).To(Equal(dev))
			Expect(c.MessageType()).To(Equal(typ))
		},
		Entry(nil, false, BillAcceptor, OmnibusCommandMsg, byte(0x10)),
		Entry(nil, true, BillAcceptor, OmnibusCommandMsg, byte(0x11)),
		Entry(nil, false, BillAcceptor, OmnibusReplyMsg, byte(0x20)),
		Entry(nil, false, BillAcceptor, OmnibusBookmarkMsg, byte(0x30)),
		Entry(nil, false, BillAcceptor, CalibrateMsg, byte(0x40)),
		Entry(nil, false, BillAcceptor, FirmwareDownloadMsg, byte(0x50)),
		Entry(nil, false, BillAcceptor, AuxCommandMsg, byte(0x60)),
		Entry(nil, false, BillAcceptor, ExtendedMsg, byte(0x70)),
		Entry(nil, false, BillRecycler, OmnibusCommandMsg, byte(0x12)),
		Entry(nil, true, BillRecycler, ExtendedMsg, byte(0x73)),
	)

	It("changes one field at a time", func() {
		c := NewControl(0x73)
		c.SetAckNak(false)
		Expect(byte(c)).To(Equal(byte(0x72)))
		c.SetDeviceType(BillAcceptor)
		Expect(byte(c)).To(Equal(byte(0x70)))
		c.SetMessageType(OmnibusReplyMsg)
		Expect(byte(c)).To(Equal(byte(0x20)))
	})
})

var _ = Describe("MessageType", func() {
	DescribeTable("valid",
		func(t MessageType, s string) {
			Expect(t.IsValid()).To(BeTrue())
			Expect(t.String()).To(Equal(s))

			j := `"` + s + `"`
			Expect(json.Marshal(t)).To(Equal([]byte(j)))

			var n MessageType
			Expect(json.Unmarshal([]byte(j), &n)).To(Succeed())
			Expect(n).To(Equal(t))
		},
		Entry(nil, OmnibusCommandMsg, "OmnibusCommand"),
		Entry(nil, OmnibusReplyMsg, "OmnibusReply"),
		Entry(nil, OmnibusBookmarkMsg, "OmnibusBookmark"),
		Entry(nil, CalibrateMsg, "Calibrate"),
		Entry(nil, FirmwareDownloadMsg, "FirmwareDownload"),
		Entry(nil, AuxCommandMsg, "AuxCommand"),
		Entry(nil, ExtendedMsg, "Extended"),
	)

	Context("invalid", func() {
		t := ReservedMsg

		It("is invalid", func() {
			Expect(t.IsValid()).To(BeFalse())
		})
		It("has Reserved string", func() {
			Expect(t.String()).To(Equal("Reserved"))
		})
		It("can't be marshal-ed", func() {
			_, err := t.MarshalText()
			Expect(err).To(MatchError("Invalid MessageType: 0"))
		})
		It("can't be unmarshal-ed", func() {
			var n MessageType
			Expect(n.UnmarshalText([]byte("Reserved"))).
				To(MatchError(`Invalid MessageType from "Reserved"`))
		})
	})
})

var _ = Describe("DeviceType", func() {
	DescribeTable("valid",
		func(t DeviceType, s string) {
			Expect(t.IsValid()).To(BeTrue())
			Expect(t.String()).To(Equal(s))

			j := `"` + s + `"`
			Expect(json.Marshal(t)).To(Equal([]byte(j)))

			var n DeviceType
			Expect(json.Unmarshal([]byte(j), &n)).To(Succeed())
			Expect(n).To(Equal(t))
		},
		Entry(nil, BillAcceptor, "BillAcceptor"),
		Entry(nil, BillRecycler, "BillRecycler"),
	)

	Context("invalid", func() {
		t := ReservedDevice

		It("is invalid", func() {
			Expect(t.IsValid()).To(BeFalse())
		})
		It("has Reserved string", func() {
			Expect(t.String()).To(Equal("Reserved"))
		})
		It("can't be marshal-ed", func() {
			_, err := t.MarshalText()
			Expect(err).To(MatchError("Invalid DeviceType: 7"))
		})
		It("can't be unmarshal-ed", func() {
			var n DeviceType
			Expect(n.UnmarshalText([]byte("Reserved"))).
				To(MatchError(`Invalid DeviceType from "Reserved"`))
		})
	})
})

var _ = Describe("ExtendedType", func() {
	DescribeTable("valid",
		func(t ExtendedType, s string) {
			Expect(t.IsValid()).To(BeTrue())
			Expect(t.String()).To(Equal(s))

			j := `"` + s + `"`
			Expect(json.Marshal(t)).To(Equal([]byte(j)))

			var n ExtendedType
			Expect(json.Unmarshal([]byte(j), &n)).To(Succeed())
			Expect(n).To(Equal(t))
		},
		Entry(nil, BarcodeReplyExt, "ExtendedBarcodeReply"),
		Entry(nil, NoteSpecificationExt, "ExtendedNoteSpecification"),
		Entry(nil, SetNoteInhibitsExt, "SetExtendedNoteInhibits"),
		Entry(nil, SetEscrowTimeoutExt, "SetEscrowTimeout"),
		Entry(nil, QueryValueTableExt, "QueryValueTable"),
		Entry(nil, NoteRetrievedExt, "NoteRetrieved"),
		Entry(nil, AdvancedBookmarkExt, "AdvancedBookmark"),
		Entry(nil, ClearAuditDataExt, "ClearAuditDataRequest"),
	)

	Context("invalid", func() {
		t := ReservedExt

		It("is invalid", func() {
			Expect(t.IsValid()).To(BeFalse())
		})
		It("has Reserved string", func() {
			Expect(t.String()).To(Equal("Reserved"))
		})
		It("can't be marshal-ed", func() {
			_, err := t.MarshalText()
			Expect(err).To(MatchError("Invalid ExtendedType: 0x00"))
		})
		It("can't be unmarshal-ed", func() {
			var n ExtendedType
			Expect(n.UnmarshalText([]byte("Reserved"))).
				To(MatchError(`Invalid ExtendedType from "Reserved"`))
		})
	})
})

var _ = Describe("AuxType", func() {
	DescribeTable("valid",
		func(t AuxType, s string) {
			Expect(t.IsValid()).To(BeTrue())
			Expect(t.String()).To(Equal(s))

			j := `"` + s + `"`
			Expect(json.Marshal(t)).To(Equal([]byte(j)))

			var n AuxType
			Expect(json.Unmarshal([]byte(j), &n)).To(Succeed())
			Expect(n).To(Equal(t))
		},
		Entry(nil, QuerySoftwareCrc, "QuerySoftwareCrc"),
		Entry(nil, QueryBootPartNumber, "QueryBootPartNumber"),
		Entry(nil, QueryApplicationPartNumber, "QueryApplicationPartNumber"),
		Entry(nil, QueryVariantName, "QueryVariantName"),
		Entry(nil, QueryVariantPartNumber, "QueryVariantPartNumber"),
		Entry(nil, QueryDeviceCapabilities, "QueryDeviceCapabilities"),
		Entry(nil, QueryApplicationId, "QueryApplicationId"),
		Entry(nil, QueryVariantId, "QueryVariantId"),
		Entry(nil, SoftResetCmd, "SoftReset"),
	)

	Context("invalid", func() {
		t := ReservedAux

		It("is invalid", func() {
			Expect(t.IsValid()).To(BeFalse())
		})
		It("has Reserved string", func() {
			Expect(t.String()).To(Equal("Reserved"))
		})
		It("can't be marshal-ed", func() {
			_, err := t.MarshalText()
			Expect(err).To(MatchError("Invalid AuxType: 0xff"))
		})
		It("can't be unmarshal-ed", func() {
			var n AuxType
			Expect(n.UnmarshalText([]byte("Reserved"))).
				To(MatchError(`Invalid AuxType from "Reserved"`))
		})
	})
})

var _ = Describe("BaudRate", func() {
	DescribeTable("speeds",
		func(b BaudRate, speed int, s string) {
			Expect(b.IsValid()).To(BeTrue())
			Expect(b.Speed()).To(Equal(speed))
			Expect(b.String()).To(Equal(s))
			Expect(BaudRateFromSpeed(speed)).To(Equal(b))
		},
		Entry(nil, Baud9600, 9600, "9600"),
		Entry(nil, Baud19200, 19200, "19200"),
		Entry(nil, Baud38400, 38400, "38400"),
		Entry(nil, Baud115200, 115200, "115200"),
	)

	It("falls back to 9600", func() {
		Expect(ReservedBaudRate.IsValid()).To(BeFalse())
		Expect(ReservedBaudRate.Speed()).To(Equal(9600))
		Expect(ReservedBaudRate.String()).To(Equal("Reserved"))
		Expect(BaudRateFromSpeed(300)).To(Equal(Baud9600))
	})
})
