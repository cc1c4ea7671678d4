package ebds

import "fmt"

// Device status bitfields carried by Omnibus and Extended replies. Each is
// one data byte; bit 7 is never set on the wire.

type DeviceState byte

func (s DeviceState) Idling() bool    { return s&0x01 != 0 }
func (s DeviceState) Accepting() bool { return s&0x02 != 0 }
func (s DeviceState) Escrowed() bool  { return s&0x04 != 0 }
func (s DeviceState) Stacking() bool  { return s&0x08 != 0 }
func (s DeviceState) Stacked() bool   { return s&0x10 != 0 }
func (s DeviceState) Returning() bool { return s&0x20 != 0 }
func (s DeviceState) Returned() bool  { return s&0x40 != 0 }

type DeviceStatus byte

func (s DeviceStatus) Cheated() bool          { return s&0x01 != 0 }
func (s DeviceStatus) Rejected() bool         { return s&0x02 != 0 }
func (s DeviceStatus) Jammed() bool           { return s&0x04 != 0 }
func (s DeviceStatus) StackerFull() bool      { return s&0x08 != 0 }
func (s DeviceStatus) CassetteAttached() bool { return s&0x10 != 0 }
func (s DeviceStatus) Paused() bool           { return s&0x20 != 0 }
func (s DeviceStatus) Calibration() bool      { return s&0x40 != 0 }

type ExceptionStatus byte

func (s ExceptionStatus) PowerUp() bool        { return s&0x01 != 0 }
func (s ExceptionStatus) InvalidCommand() bool { return s&0x02 != 0 }
func (s ExceptionStatus) Failure() bool        { return s&0x04 != 0 }

// NoteValue reports the credit field, bits 3-5. Zero means no note; 1-7
// select a standard denomination.
func (s ExceptionStatus) NoteValue() byte     { return byte(s>>3) & 0b111 }
func (s ExceptionStatus) TransportOpen() bool { return s&0x40 != 0 }

type MiscDeviceState byte

func (s MiscDeviceState) Stalled() bool            { return s&0x01 != 0 }
func (s MiscDeviceState) FlashDownload() bool      { return s&0x02 != 0 }
func (s MiscDeviceState) PreStack() bool           { return s&0x04 != 0 }
func (s MiscDeviceState) RawBarcode() bool         { return s&0x08 != 0 }
func (s MiscDeviceState) DeviceCapabilities() bool { return s&0x10 != 0 }
func (s MiscDeviceState) Disabled() bool           { return s&0x20 != 0 }

type ModelNumber byte

type CodeRevision byte

// Command-side bitfields: the three Omnibus Command data bytes.

// StandardDenomination enables notes 1 through 7 while in base note mode.
type StandardDenomination byte

const AllDenominations StandardDenomination = 0b111_1111

// Note reports whether note i (1-7) is enabled.
func (d StandardDenomination) Note(i int) bool {
	if i < 1 || i > 7 {
		panic(badNote(i))
	}
	return d&(1<<(i-1)) != 0
}

func (d *StandardDenomination) SetNote(i int, v bool) {
	if i < 1 || i > 7 {
		panic(badNote(i))
	}
	if v {
		*d |= 1 << (i - 1)
	} else {
		*d &^= 1 << (i - 1)
	}
}

// FromNoteValue converts the ExceptionStatus credit field into the single
// matching denomination bit.
func FromNoteValue(v byte) StandardDenomination {
	if v == 0 || v > 7 {
		return 0
	}
	return 1 << (v - 1)
}

func badNote(i int) string {
	return fmt.Sprintf("invalid note: %d", i)
}

type OrientationControl byte

const (
	OneWay  OrientationControl = 0b00
	TwoWay  OrientationControl = 0b01
	FourWay OrientationControl = 0b10
)

// OperationalMode is Omnibus Command data byte 1. Bits 0-1 are deprecated
// (special interrupt and high security modes) and left untouched.
type OperationalMode byte

func (m OperationalMode) OrientationControl() OrientationControl {
	return OrientationControl(m>>2) & 0b11
}

func (m *OperationalMode) SetOrientationControl(o OrientationControl) {
	*m = (*m &^ 0b1100) | OperationalMode(o&0b11)<<2
}

func (m OperationalMode) EscrowMode() bool     { return m&0x10 != 0 }
func (m OperationalMode) DocumentStack() bool  { return m&0x20 != 0 }
func (m OperationalMode) DocumentReturn() bool { return m&0x40 != 0 }

func (m *OperationalMode) SetEscrowMode(v bool)     { m.setBit(0x10, v) }
func (m *OperationalMode) SetDocumentStack(v bool)  { m.setBit(0x20, v) }
func (m *OperationalMode) SetDocumentReturn(v bool) { m.setBit(0x40, v) }

func (m *OperationalMode) setBit(mask OperationalMode, v bool) {
	if v {
		*m |= mask
	} else {
		*m &^= mask
	}
}

type PowerUpPolicy byte

const (
	PowerUpA PowerUpPolicy = 0b00
	PowerUpB PowerUpPolicy = 0b01
	PowerUpC PowerUpPolicy = 0b10
)

// Configuration is Omnibus Command data byte 2.
type Configuration byte

func (c Configuration) NoPush() bool  { return c&0x01 != 0 }
func (c Configuration) Barcode() bool { return c&0x02 != 0 }
func (c Configuration) PowerUp() PowerUpPolicy {
	return PowerUpPolicy(c>>2) & 0b11
}
func (c Configuration) ExtendedNote() bool   { return c&0x10 != 0 }
func (c Configuration) ExtendedCoupon() bool { return c&0x20 != 0 }

func (c *Configuration) SetNoPush(v bool)  { c.setBit(0x01, v) }
func (c *Configuration) SetBarcode(v bool) { c.setBit(0x02, v) }

func (c *Configuration) SetPowerUp(p PowerUpPolicy) {
	*c = (*c &^ 0b1100) | Configuration(p&0b11)<<2
}

func (c *Configuration) SetExtendedNote(v bool)   { c.setBit(0x10, v) }
func (c *Configuration) SetExtendedCoupon(v bool) { c.setBit(0x20, v) }

func (c *Configuration) setBit(mask Configuration, v bool) {
	if v {
		*c |= mask
	} else {
		*c &^= mask
	}
}
