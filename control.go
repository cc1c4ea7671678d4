package ebds

import "fmt"

type MessageType byte

const (
	ReservedMsg         MessageType = 0
	OmnibusCommandMsg   MessageType = 1
	OmnibusReplyMsg     MessageType = 2
	OmnibusBookmarkMsg  MessageType = 3
	CalibrateMsg        MessageType = 4
	FirmwareDownloadMsg MessageType = 5
	AuxCommandMsg       MessageType = 6
	ExtendedMsg         MessageType = 7
)

func (t MessageType) IsValid() bool {
	switch t {
	case OmnibusCommandMsg, OmnibusReplyMsg, OmnibusBookmarkMsg,
		CalibrateMsg, FirmwareDownloadMsg, AuxCommandMsg, ExtendedMsg:
		return true
	default:
		return false
	}
}

func (t MessageType) String() string {
	switch t {
	case OmnibusCommandMsg:
		return "OmnibusCommand"
	case OmnibusReplyMsg:
		return "OmnibusReply"
	case OmnibusBookmarkMsg:
		return "OmnibusBookmark"
	case CalibrateMsg:
		return "Calibrate"
	case FirmwareDownloadMsg:
		return "FirmwareDownload"
	case AuxCommandMsg:
		return "AuxCommand"
	case ExtendedMsg:
		return "Extended"
	default:
		return "Reserved"
	}
}

func (t MessageType) MarshalText() ([]byte, error) {
	if t.IsValid() {
		return []byte(t.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid MessageType: %d", t)
	}
}

func (t *MessageType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "OmnibusCommand":
		*t = OmnibusCommandMsg
	case "OmnibusReply":
		*t = OmnibusReplyMsg
	case "OmnibusBookmark":
		*t = OmnibusBookmarkMsg
	case "Calibrate":
		*t = CalibrateMsg
	case "FirmwareDownload":
		*t = FirmwareDownloadMsg
	case "AuxCommand":
		*t = AuxCommandMsg
	case "Extended":
		*t = ExtendedMsg
	default:
		return fmt.Errorf("Invalid MessageType from %q", b)
	}
	return nil
}

type DeviceType byte

const (
	BillAcceptor   DeviceType = 0
	BillRecycler   DeviceType = 1
	ReservedDevice DeviceType = 7
)

func (t DeviceType) IsValid() bool {
	switch t {
	case BillAcceptor, BillRecycler:
		return true
	default:
		return false
	}
}

func (t DeviceType) String() string {
	switch t {
	case BillAcceptor:
		return "BillAcceptor"
	case BillRecycler:
		return "BillRecycler"
	default:
		return "Reserved"
	}
}

func (t DeviceType) MarshalText() ([]byte, error) {
	if t.IsValid() {
		return []byte(t.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid DeviceType: %d", t)
	}
}

func (t *DeviceType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "BillAcceptor":
		*t = BillAcceptor
	case "BillRecycler":
		*t = BillRecycler
	default:
		return fmt.Errorf("Invalid DeviceType from %q", b)
	}
	return nil
}

// Control is the byte at offset 2 of every message: bit 0 ACK/NAK,
// bits 1-3 device type, bits 4-6 message type. Bit 7 is unused on the
// wire and masked off at construction.
type Control byte

const (
	acknakBit   = 0b0000_0001
	deviceMask  = 0b0000_1110
	msgTypeMask = 0b0111_0000
)

func NewControl(b byte) Control {
	return Control(b &^ 0x80)
}

func (c Control) AckNak() bool {
	return c&acknakBit != 0
}

func (c *Control) SetAckNak(v bool) {
	if v {
		*c |= acknakBit
	} else {
		*c &^= acknakBit
	}
}

func (c Control) DeviceType() DeviceType {
	return DeviceType(c&deviceMask) >> 1
}

func (c *Control) SetDeviceType(t DeviceType) {
	*c = (*c &^ deviceMask) | (Control(t)<<1)&deviceMask
}

func (c Control) MessageType() MessageType {
	return MessageType(c&msgTypeMask) >> 4
}

func (c *Control) SetMessageType(t MessageType) {
	*c = (*c &^ msgTypeMask) | (Control(t)<<4)&msgTypeMask
}
