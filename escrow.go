package ebds

import "fmt"

const (
	notesTimeoutIndex    = 7
	barcodesTimeoutIndex = 8

	timeoutMask = 0x7f
)

// SetEscrowTimeoutCommand sets how many seconds a note or barcode may
// sit in escrow before the device acts on its own. Zero keeps the
// document in escrow indefinitely.
type SetEscrowTimeoutCommand struct {
	extCommand
}

func NewSetEscrowTimeoutCommand() *SetEscrowTimeoutCommand {
	return &SetEscrowTimeoutCommand{newExtCommand(
		setEscrowTimeoutCommandLen, SetEscrowTimeoutExt)}
}

func (c *SetEscrowTimeoutCommand) NotesTimeout() uint8 {
	return c.buf[notesTimeoutIndex] & timeoutMask
}

func (c *SetEscrowTimeoutCommand) SetNotesTimeout(secs uint8) {
	c.put(notesTimeoutIndex, secs&timeoutMask)
}

func (c *SetEscrowTimeoutCommand) BarcodesTimeout() uint8 {
	return c.buf[barcodesTimeoutIndex] & timeoutMask
}

func (c *SetEscrowTimeoutCommand) SetBarcodesTimeout(secs uint8) {
	c.put(barcodesTimeoutIndex, secs&timeoutMask)
}

func (c *SetEscrowTimeoutCommand) String() string {
	return fmt.Sprintf(
		"SetEscrowTimeoutCommand{AckNak: %t, DeviceType: %s, "+
			"NotesTimeout: %d, BarcodesTimeout: %d}",
		c.AckNak(), c.DeviceType(), c.NotesTimeout(), c.BarcodesTimeout())
}

// SetEscrowTimeoutReply acknowledges a SetEscrowTimeoutCommand.
type SetEscrowTimeoutReply struct {
	extReply
}

func NewSetEscrowTimeoutReply() *SetEscrowTimeoutReply {
	return &SetEscrowTimeoutReply{newExtReply(
		setEscrowTimeoutReplyLen, SetEscrowTimeoutExt)}
}

func (r *SetEscrowTimeoutReply) String() string {
	return fmt.Sprintf(
		"SetEscrowTimeoutReply{AckNak: %t, DeviceType: %s, "+
			"DeviceState: %07b, DeviceStatus: %07b}",
		r.AckNak(), r.DeviceType(), r.DeviceState(), r.DeviceStatus())
}
