package ebds

import "fmt"

// Message is the contract every concrete EBDS message implements. A message
// owns a fixed-size buffer carrying the full envelope:
//
//	| STX | LEN | CTRL | data ... | ETX | CHK |
//
// LEN is the total buffer length, not the data length. The checksum byte is
// kept current by every setter, so a freshly constructed message is always
// valid on the wire.
type Message interface {
	Bytes() []byte
	Len() int
	AckNak() bool
	SetAckNak(bool)
	DeviceType() DeviceType
	SetDeviceType(DeviceType)
	MessageType() MessageType
	Checksum() byte
	SetChecksum()
	ValidateChecksum() error
	FromBuf([]byte) error

	String() string
}

const (
	lenIndex  = 1
	ctrlIndex = 2
	dataIndex = 3
)

type message struct {
	buf []byte
}

func newMessage(n int, typ MessageType) message {
	if n < MIN_MESSAGE || n > MAX_MESSAGE {
		panic(fmt.Sprintf("invalid message length: %d", n))
	}

	buf := make([]byte, n)
	buf[0] = STX
	buf[lenIndex] = byte(n)
	buf[n-2] = ETX

	c := NewControl(0)
	c.SetMessageType(typ)
	buf[ctrlIndex] = byte(c)

	SetChecksum(buf)
	return message{buf}
}

func (m *message) Bytes() []byte {
	return m.buf
}

func (m *message) Len() int {
	return len(m.buf)
}

func (m *message) control() Control {
	return NewControl(m.buf[ctrlIndex])
}

func (m *message) setControl(c Control) {
	m.put(ctrlIndex, byte(c))
}

// put writes one byte and restamps the checksum.
func (m *message) put(i int, b byte) {
	m.buf[i] = b
	SetChecksum(m.buf)
}

func (m *message) AckNak() bool {
	return m.control().AckNak()
}

func (m *message) SetAckNak(v bool) {
	c := m.control()
	c.SetAckNak(v)
	m.setControl(c)
}

func (m *message) DeviceType() DeviceType {
	return m.control().DeviceType()
}

func (m *message) SetDeviceType(t DeviceType) {
	c := m.control()
	c.SetDeviceType(t)
	m.setControl(c)
}

func (m *message) MessageType() MessageType {
	return m.control().MessageType()
}

func (m *message) Checksum() byte {
	return m.buf[len(m.buf)-1]
}

func (m *message) SetChecksum() {
	SetChecksum(m.buf)
}

func (m *message) ValidateChecksum() error {
	return validateChecksum(m.buf)
}

func (m *message) etxIndex() int {
	return len(m.buf) - 2
}

// FromBuf replaces the message contents with b after validating the
// envelope. The checks run cheapest first: length, STX, LEN byte, ETX,
// checksum, then the message-type class. b may be longer than the message;
// only the message's own length is consumed.
func (m *message) FromBuf(b []byte) error {
	n := len(m.buf)
	if len(b) < n {
		return LengthErr{Got: len(b), Want: n}
	}
	if b[0] != STX {
		return StxErr(b[0])
	}
	if int(b[lenIndex]) != n {
		return LengthErr{Got: int(b[lenIndex]), Want: n}
	}
	if b[n-2] != ETX {
		return EtxErr(b[n-2])
	}
	if err := validateChecksum(b[:n]); err != nil {
		return err
	}
	want := m.MessageType()
	if got := NewControl(b[ctrlIndex]).MessageType(); got != want {
		return TypeErr{Got: got, Want: want}
	}
	copy(m.buf, b)
	return nil
}

func (m *message) String() string {
	return fmt.Sprintf("% X", m.buf)
}
