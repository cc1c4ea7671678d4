package ebds

import (
	"errors"
	"fmt"
)

var ErrTimeout = errors.New("reply timeout")

// LengthErr reports a buffer whose length (or LEN byte) cannot satisfy the
// target message. Want is zero when the buffer falls outside the global
// MIN_MESSAGE..MAX_MESSAGE bounds.
type LengthErr struct {
	Got  int
	Want int
}

func (e LengthErr) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("invalid reply length: %d, expected: %d",
			e.Got, e.Want)
	}
	return fmt.Sprintf("invalid message length: %d", e.Got)
}

type StxErr byte

func (e StxErr) Error() string {
	return fmt.Sprintf("invalid STX: 0x%02x, expected: 0x%02x", byte(e), STX)
}

type EtxErr byte

func (e EtxErr) Error() string {
	return fmt.Sprintf("invalid ETX: 0x%02x, expected: 0x%02x", byte(e), ETX)
}

type ChecksumErr struct {
	Got  byte
	Want byte
}

func (e ChecksumErr) Error() string {
	return fmt.Sprintf("invalid checksum: 0x%02x, expected: 0x%02x",
		e.Got, e.Want)
}

type TypeErr struct {
	Got  MessageType
	Want MessageType
}

func (e TypeErr) Error() string {
	return fmt.Sprintf("invalid message type: %s, expected: %s",
		e.Got, e.Want)
}

type SubtypeErr byte

func (e SubtypeErr) Error() string {
	return fmt.Sprintf("unsupported extended message type: %s, raw: 0x%02x",
		ExtendedType(e), byte(e))
}

// ReplyClassErr reports a message-type class the reply resolver never
// decodes.
type ReplyClassErr MessageType

func (e ReplyClassErr) Error() string {
	return "expected Omnibus or Extended reply types, received: " +
		MessageType(e).String()
}

type CommandClassErr MessageType

func (e CommandClassErr) Error() string {
	return "invalid command message type: " + MessageType(e).String()
}

// FirmwareLenErr reports a FirmwareDownload reply whose length matches no
// known reply shape.
type FirmwareLenErr int

func (e FirmwareLenErr) Error() string {
	return fmt.Sprintf("unsupported FirmwareDownload reply message length: %d",
		int(e))
}

// AuditReplyErr reports a ClearAuditDataRequest reply whose byte 10 is
// neither an ack (0x00/0x01) nor a results (0x10/0x11) marker.
type AuditReplyErr byte

func (e AuditReplyErr) Error() string {
	return fmt.Sprintf("invalid ClearAuditDataRequest reply type: 0x%02x",
		byte(e))
}

// AuxCommandErr reports an aux command byte with no matching decoder.
type AuxCommandErr AuxType

func (e AuxCommandErr) Error() string {
	return fmt.Sprintf("invalid AuxCommand message type: %s, raw: 0x%02x",
		AuxType(e), byte(e))
}

// AuxReplyErr reports an AuxCommand hint with no matching reply decoder.
type AuxReplyErr AuxType

func (e AuxReplyErr) Error() string {
	return "invalid AuxCommand reply type: " + AuxType(e).String()
}

// AckNakErr reports a NoteRetrieved reply whose ACK/NAK-or-event byte is
// neither 0x00/0x01 nor 0x7f.
type AckNakErr byte

func (e AckNakErr) Error() string {
	return fmt.Sprintf("invalid AckNak/Event value: 0x%02x", byte(e))
}

// BadRxErr wraps raw reply bytes that failed validation on the serial link.
type BadRxErr []byte

func (e BadRxErr) Error() string {
	return fmt.Sprintf("bad reply: % X", []byte(e))
}
