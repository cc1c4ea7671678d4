package ebds

import "fmt"

// OmnibusCommand is the primary host-to-device poll. Its three data bytes
// carry the enabled denominations, the operational mode, and the device
// configuration.
type OmnibusCommand struct {
	commandBase
}

func NewOmnibusCommand() *OmnibusCommand {
	return &OmnibusCommand{commandBase{
		newMessage(omnibusCommandLen, OmnibusCommandMsg), dataIndex,
	}}
}

func (c *OmnibusCommand) String() string {
	return fmt.Sprintf(
		"OmnibusCommand{AckNak: %t, DeviceType: %s, Denomination: %07b, "+
			"OperationalMode: %07b, Configuration: %06b}",
		c.AckNak(), c.DeviceType(), c.Denomination(),
		c.OperationalMode(), c.Configuration())
}

// OmnibusReply is the device's standard status answer: six status bytes
// directly after the control byte.
type OmnibusReply struct {
	statusReply
}

func NewOmnibusReply() *OmnibusReply {
	return &OmnibusReply{statusReply{
		newMessage(omnibusReplyLen, OmnibusReplyMsg), dataIndex,
	}}
}

func (r *OmnibusReply) String() string {
	return fmt.Sprintf(
		"OmnibusReply{AckNak: %t, DeviceType: %s, DeviceState: %07b, "+
			"DeviceStatus: %07b, ExceptionStatus: %07b, "+
			"MiscDeviceState: %07b, ModelNumber: %d, CodeRevision: %d}",
		r.AckNak(), r.DeviceType(), r.DeviceState(), r.DeviceStatus(),
		r.ExceptionStatus(), r.MiscDeviceState(), r.ModelNumber(),
		r.CodeRevision())
}
