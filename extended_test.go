package ebds_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/ebds"
)

var _ = Describe("SetEscrowTimeoutCommand", func() {
	var cmd *SetEscrowTimeoutCommand
	BeforeEach(func() {
		cmd = NewSetEscrowTimeoutCommand()
	})

	It("carries both timeouts", func() {
		cmd.SetNotesTimeout(1)
		cmd.SetBarcodesTimeout(2)
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x0b, 0x70, 0x04, 0x00, 0x00, 0x00, 0x01, 0x02,
			0x03, 0x7c,
		}))
		Expect(cmd.NotesTimeout()).To(Equal(uint8(1)))
		Expect(cmd.BarcodesTimeout()).To(Equal(uint8(2)))
		Expect(cmd.ExtendedType()).To(Equal(SetEscrowTimeoutExt))
	})

	It("masks bit 7", func() {
		cmd.SetNotesTimeout(0xff)
		Expect(cmd.NotesTimeout()).To(Equal(uint8(0x7f)))
	})

	It("has String", func() {
		cmd.SetNotesTimeout(20)
		Expect(cmd.String()).To(Equal(
			"SetEscrowTimeoutCommand{AckNak: false, " +
				"DeviceType: BillAcceptor, NotesTimeout: 20, " +
				"BarcodesTimeout: 0}"))
	})
})

var _ = Describe("SetEscrowTimeoutReply", func() {
	It("decodes the status bytes", func() {
		r := NewSetEscrowTimeoutReply()
		Expect(r.FromBuf([]byte{
			0x02, 0x0c, 0x70, 0x04, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x03, 0x08,
		})).To(Succeed())
		Expect(r.DeviceState().Idling()).To(BeTrue())
		Expect(r.DeviceStatus().CassetteAttached()).To(BeTrue())
		Expect(r.ModelNumber()).To(Equal(ModelNumber(0x41)))
	})
})

var _ = Describe("AdvancedBookmarkModeCommand", func() {
	It("toggles the mode", func() {
		cmd := NewAdvancedBookmarkModeCommand()
		Expect(cmd.Enabled()).To(BeFalse())

		cmd.SetEnabled(true)
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x0a, 0x70, 0x0d, 0x00, 0x00, 0x00, 0x01, 0x03, 0x76,
		}))
		Expect(cmd.Enabled()).To(BeTrue())

		cmd.SetEnabled(false)
		Expect(cmd.Enabled()).To(BeFalse())
		Expect(cmd.ValidateChecksum()).To(Succeed())
	})
})

var _ = Describe("AdvancedBookmarkModeReply", func() {
	It("decodes the acknowledgement", func() {
		r := NewAdvancedBookmarkModeReply()
		Expect(r.FromBuf([]byte{
			0x02, 0x0d, 0x70, 0x0d, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x01, 0x03, 0x01,
		})).To(Succeed())
		Expect(r.Accepted()).To(BeTrue())
		Expect(r.DeviceState().Idling()).To(BeTrue())

		r.SetAccepted(false)
		Expect(r.Accepted()).To(BeFalse())
		Expect(r.ValidateChecksum()).To(Succeed())
	})
})

var _ = Describe("NoteRetrievedCommand", func() {
	It("toggles event reporting", func() {
		cmd := NewNoteRetrievedCommand()
		Expect(cmd.Enabled()).To(BeFalse())

		cmd.SetEnabled(true)
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x0a, 0x70, 0x0b, 0x00, 0x00, 0x00, 0x01, 0x03, 0x70,
		}))
		Expect(cmd.Enabled()).To(BeTrue())
	})
})

var _ = Describe("NoteRetrievedReply", func() {
	It("decodes the acknowledgement", func() {
		r := NewNoteRetrievedReply()
		Expect(r.FromBuf([]byte{
			0x02, 0x0d, 0x70, 0x0b, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x01, 0x03, 0x07,
		})).To(Succeed())
		Expect(r.Accepted()).To(BeTrue())

		r.SetAccepted(false)
		Expect(r.Accepted()).To(BeFalse())
	})
})

var _ = Describe("NoteRetrievedEvent", func() {
	It("always carries the event marker", func() {
		r := NewNoteRetrievedEvent()
		Expect(r.Event()).To(Equal(byte(0x7f)))
		Expect(r.FromBuf([]byte{
			0x02, 0x0d, 0x70, 0x0b, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x7f, 0x03, 0x79,
		})).To(Succeed())
		Expect(r.Event()).To(Equal(byte(0x7f)))
		Expect(r.DeviceState().Idling()).To(BeTrue())
	})
})

var _ = Describe("ClearAuditDataRequest", func() {
	It("is a bare request", func() {
		cmd := NewClearAuditDataRequest()
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x09, 0x70, 0x1d, 0x00, 0x00, 0x00, 0x03, 0x64,
		}))
		Expect(cmd.ExtendedType()).To(Equal(ClearAuditDataExt))
	})
})

var _ = Describe("ClearAuditDataRequestAck", func() {
	It("decodes acceptance", func() {
		r := NewClearAuditDataRequestAck()
		Expect(r.FromBuf([]byte{
			0x02, 0x0d, 0x70, 0x1d, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x01, 0x03, 0x11,
		})).To(Succeed())
		Expect(r.Accepted()).To(BeTrue())

		r.SetAccepted(false)
		Expect(r.Accepted()).To(BeFalse())
		Expect(r.ValidateChecksum()).To(Succeed())
	})
})

var _ = Describe("ClearAuditDataRequestResults", func() {
	It("decodes the erase result", func() {
		r := NewClearAuditDataRequestResults()
		Expect(r.Passed()).To(BeFalse())
		Expect(r.FromBuf([]byte{
			0x02, 0x0d, 0x70, 0x1d, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
			0x11, 0x03, 0x01,
		})).To(Succeed())
		Expect(r.Passed()).To(BeTrue())

		r.SetPassed(false)
		Expect(r.Passed()).To(BeFalse())
		Expect(r.ValidateChecksum()).To(Succeed())
	})
})
