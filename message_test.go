package ebds_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/ebds"
)

var _ = Describe("OmnibusCommand", func() {
	var cmd *OmnibusCommand
	BeforeEach(func() {
		cmd = NewOmnibusCommand()
	})

	It("starts out valid and empty", func() {
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x08, 0x10, 0x00, 0x00, 0x00, 0x03, 0x18,
		}))
		Expect(cmd.Len()).To(Equal(8))
		Expect(cmd.MessageType()).To(Equal(OmnibusCommandMsg))
		Expect(cmd.DeviceType()).To(Equal(BillAcceptor))
		Expect(cmd.AckNak()).To(BeFalse())
		Expect(cmd.ValidateChecksum()).To(Succeed())
	})

	It("restamps the checksum on every set", func() {
		var m OperationalMode
		m.SetEscrowMode(true)
		cmd.SetDenomination(AllDenominations)
		cmd.SetOperationalMode(m)
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x08, 0x10, 0x7f, 0x10, 0x00, 0x03, 0x77,
		}))
		Expect(cmd.Checksum()).To(Equal(byte(0x77)))
		Expect(cmd.ValidateChecksum()).To(Succeed())

		cmd.SetAckNak(true)
		Expect(cmd.Bytes()).To(Equal([]byte{
			0x02, 0x08, 0x11, 0x7f, 0x10, 0x00, 0x03, 0x76,
		}))
	})

	It("reads back its fields", func() {
		var m OperationalMode
		m.SetEscrowMode(true)
		m.SetOrientationControl(FourWay)
		var c Configuration
		c.SetExtendedNote(true)
		cmd.SetDenomination(AllDenominations)
		cmd.SetOperationalMode(m)
		cmd.SetConfiguration(c)
		Expect(cmd.Denomination()).To(Equal(AllDenominations))
		Expect(cmd.OperationalMode()).To(Equal(m))
		Expect(cmd.Configuration()).To(Equal(c))
	})

	It("has String", func() {
		Expect(cmd.String()).To(Equal(
			"OmnibusCommand{AckNak: false, DeviceType: BillAcceptor, " +
				"Denomination: 0000000, OperationalMode: 0000000, " +
				"Configuration: 000000}"))
	})
})

var _ = Describe("OmnibusReply", func() {
	var reply *OmnibusReply
	BeforeEach(func() {
		reply = NewOmnibusReply()
	})

	good := []byte{
		0x02, 0x0b, 0x20, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20, 0x03, 0x5b,
	}

	Context("FromBuf", func() {
		It("decodes a valid frame", func() {
			Expect(reply.FromBuf(good)).To(Succeed())
			Expect(reply.Bytes()).To(Equal(good))
			Expect(reply.DeviceState().Idling()).To(BeTrue())
			Expect(reply.DeviceState().Escrowed()).To(BeFalse())
			Expect(reply.DeviceStatus().CassetteAttached()).To(BeTrue())
			Expect(reply.ExceptionStatus()).To(Equal(ExceptionStatus(0)))
			Expect(reply.MiscDeviceState()).To(Equal(MiscDeviceState(0)))
			Expect(reply.ModelNumber()).To(Equal(ModelNumber(0x41)))
			Expect(reply.CodeRevision()).To(Equal(CodeRevision(0x20)))
		})

		It("decodes the ACK variant", func() {
			b := []byte{
				0x02, 0x0b, 0x21, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
				0x03, 0x5a,
			}
			Expect(reply.FromBuf(b)).To(Succeed())
			Expect(reply.AckNak()).To(BeTrue())
		})

		It("consumes only its own length", func() {
			b := append(append([]byte{}, good...), 0xde, 0xad)
			Expect(reply.FromBuf(b)).To(Succeed())
			Expect(reply.Bytes()).To(Equal(good))
		})

		It("rejects a short buffer", func() {
			Expect(reply.FromBuf(good[:10])).To(MatchError(
				"invalid reply length: 10, expected: 11"))
		})

		It("rejects a bad STX", func() {
			b := append([]byte{}, good...)
			b[0] = 0x55
			Expect(reply.FromBuf(b)).To(MatchError(
				"invalid STX: 0x55, expected: 0x02"))
		})

		It("rejects a LEN byte mismatch", func() {
			b := append([]byte{}, good...)
			b[1] = 0x0c
			Expect(reply.FromBuf(b)).To(MatchError(
				"invalid reply length: 12, expected: 11"))
		})

		It("rejects a bad ETX", func() {
			b := append([]byte{}, good...)
			b[9] = 0x55
			Expect(reply.FromBuf(b)).To(MatchError(
				"invalid ETX: 0x55, expected: 0x03"))
		})

		It("rejects a bad checksum", func() {
			b := append([]byte{}, good...)
			b[10] = 0x5c
			Expect(reply.FromBuf(b)).To(MatchError(
				"invalid checksum: 0x5c, expected: 0x5b"))
		})

		It("rejects a foreign message type", func() {
			b := []byte{
				0x02, 0x0b, 0x70, 0x01, 0x10, 0x00, 0x00, 0x41, 0x20,
				0x03, 0x0b,
			}
			Expect(reply.FromBuf(b)).To(MatchError(
				"invalid message type: Extended, expected: OmnibusReply"))
		})

		It("leaves the message untouched on failure", func() {
			before := append([]byte{}, reply.Bytes()...)
			b := append([]byte{}, good...)
			b[10] = 0x5c
			Expect(reply.FromBuf(b)).NotTo(Succeed())
			Expect(reply.Bytes()).To(Equal(before))
		})
	})

	It("round-trips through its setters", func() {
		reply.SetDeviceState(0x01)
		reply.SetDeviceStatus(0x10)
		reply.SetModelNumber(0x41)
		reply.SetCodeRevision(0x20)
		Expect(reply.Bytes()).To(Equal(good))
	})

	It("has String", func() {
		Expect(reply.FromBuf(good)).To(Succeed())
		Expect(reply.String()).To(Equal(
			"OmnibusReply{AckNak: false, DeviceType: BillAcceptor, " +
				"DeviceState: 0000001, DeviceStatus: 0010000, " +
				"ExceptionStatus: 0000000, MiscDeviceState: 0000000, " +
				"ModelNumber: 65, CodeRevision: 32}"))
	})
})
