package ebds

import "fmt"

// Capability bytes reported by QueryDeviceCapabilitiesReply. Cap4 and
// Cap5 are reserved.

type Cap0 byte

func (c Cap0) ExtendedPupMode() bool         { return c&0x01 != 0 }
func (c Cap0) ExtendedOrientation() bool     { return c&0x02 != 0 }
func (c Cap0) ApplicationAndVariantId() bool { return c&0x04 != 0 }
func (c Cap0) BnfStatus() bool               { return c&0x08 != 0 }
func (c Cap0) TestDocuments() bool           { return c&0x10 != 0 }
func (c Cap0) Bezel() bool                   { return c&0x20 != 0 }
func (c Cap0) Easitrax() bool                { return c&0x40 != 0 }

type Cap1 byte

func (c Cap1) NoteRetrieved() bool      { return c&0x01 != 0 }
func (c Cap1) AdvancedBookmark() bool   { return c&0x02 != 0 }
func (c Cap1) AbdsDownload() bool       { return c&0x04 != 0 }
func (c Cap1) ClearAudit() bool         { return c&0x08 != 0 }
func (c Cap1) MultiNoteEscrow() bool    { return c&0x10 != 0 }
func (c Cap1) UnixTimestamp32bit() bool { return c&0x20 != 0 }

type Cap2 byte

func (c Cap2) OneDenomRecycling() bool   { return c&0x01 != 0 }
func (c Cap2) TwoDenomRecycling() bool   { return c&0x02 != 0 }
func (c Cap2) ThreeDenomRecycling() bool { return c&0x04 != 0 }
func (c Cap2) FourDenomRecycling() bool  { return c&0x08 != 0 }

func (c Cap2) ImproperlySeatedHeadDetection() bool { return c&0x10 != 0 }
func (c Cap2) MixedDenomRecycling() bool           { return c&0x40 != 0 }

type Cap3 byte

func (c Cap3) CustomerConfig() bool         { return c&0x01 != 0 }
func (c Cap3) BanknoteClassification() bool { return c&0x02 != 0 }

const capIndex = 3

// QueryDeviceCapabilitiesReply reports which optional protocol features
// the device implements, one capability byte per group.
type QueryDeviceCapabilitiesReply struct {
	nopReply
}

func NewQueryDeviceCapabilitiesReply() *QueryDeviceCapabilitiesReply {
	return &QueryDeviceCapabilitiesReply{
		nopReply{newMessage(queryDeviceCapabilitiesReplyLen, AuxCommandMsg)},
	}
}

func (r *QueryDeviceCapabilitiesReply) Cap0() Cap0 {
	return Cap0(r.buf[capIndex] & 0x7f)
}

func (r *QueryDeviceCapabilitiesReply) SetCap0(c Cap0) {
	r.put(capIndex, byte(c&0x7f))
}

func (r *QueryDeviceCapabilitiesReply) Cap1() Cap1 {
	return Cap1(r.buf[capIndex+1] & 0x3f)
}

func (r *QueryDeviceCapabilitiesReply) SetCap1(c Cap1) {
	r.put(capIndex+1, byte(c&0x3f))
}

func (r *QueryDeviceCapabilitiesReply) Cap2() Cap2 {
	return Cap2(r.buf[capIndex+2] & 0b101_1111)
}

func (r *QueryDeviceCapabilitiesReply) SetCap2(c Cap2) {
	r.put(capIndex+2, byte(c)&0b101_1111)
}

func (r *QueryDeviceCapabilitiesReply) Cap3() Cap3 {
	return Cap3(r.buf[capIndex+3] & 0x03)
}

func (r *QueryDeviceCapabilitiesReply) SetCap3(c Cap3) {
	r.put(capIndex+3, byte(c&0x03))
}

func (r *QueryDeviceCapabilitiesReply) String() string {
	return fmt.Sprintf(
		"QueryDeviceCapabilitiesReply{AckNak: %t, DeviceType: %s, "+
			"Cap0: %07b, Cap1: %06b, Cap2: %07b, Cap3: %02b}",
		r.AckNak(), r.DeviceType(), r.Cap0(), r.Cap1(), r.Cap2(), r.Cap3())
}
