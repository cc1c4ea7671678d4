package ebds

import "fmt"

const (
	bookmarkStatusIndex = 7
	bookmarkAckIndex    = 10
)

// AdvancedBookmarkModeCommand enables or disables advanced bookmark
// mode, in which the next inserted document is stacked unvalidated.
type AdvancedBookmarkModeCommand struct {
	extCommand
}

func NewAdvancedBookmarkModeCommand() *AdvancedBookmarkModeCommand {
	return &AdvancedBookmarkModeCommand{newExtCommand(
		advancedBookmarkModeCommandLen, AdvancedBookmarkExt)}
}

func (c *AdvancedBookmarkModeCommand) Enabled() bool {
	return c.buf[bookmarkStatusIndex]&0b1 != 0
}

func (c *AdvancedBookmarkModeCommand) SetEnabled(v bool) {
	if v {
		c.put(bookmarkStatusIndex, 0x01)
	} else {
		c.put(bookmarkStatusIndex, 0x00)
	}
}

func (c *AdvancedBookmarkModeCommand) String() string {
	return fmt.Sprintf(
		"AdvancedBookmarkModeCommand{AckNak: %t, DeviceType: %s, "+
			"Enabled: %t}",
		c.AckNak(), c.DeviceType(), c.Enabled())
}

// AdvancedBookmarkModeReply acknowledges the mode change: byte 10
// echoes whether the setting was accepted.
type AdvancedBookmarkModeReply struct {
	extReply
}

func NewAdvancedBookmarkModeReply() *AdvancedBookmarkModeReply {
	return &AdvancedBookmarkModeReply{newExtReply(
		advancedBookmarkModeReplyLen, AdvancedBookmarkExt)}
}

func (r *AdvancedBookmarkModeReply) Accepted() bool {
	return r.buf[bookmarkAckIndex]&0b1 != 0
}

func (r *AdvancedBookmarkModeReply) SetAccepted(v bool) {
	if v {
		r.put(bookmarkAckIndex, 0x01)
	} else {
		r.put(bookmarkAckIndex, 0x00)
	}
}

func (r *AdvancedBookmarkModeReply) String() string {
	return fmt.Sprintf(
		"AdvancedBookmarkModeReply{AckNak: %t, DeviceType: %s, "+
			"Accepted: %t}",
		r.AckNak(), r.DeviceType(), r.Accepted())
}
