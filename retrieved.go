package ebds

import "fmt"

const (
	retrievedStatusIndex = 7
	retrievedIndex       = 10

	// Marker byte for the unsolicited retrieval event.
	noteRetrievedEvent = 0x7f
)

// NoteRetrievedCommand enables or disables unsolicited note-retrieved
// events: status byte 0x01 enables, 0x00 disables.
type NoteRetrievedCommand struct {
	extCommand
}

func NewNoteRetrievedCommand() *NoteRetrievedCommand {
	return &NoteRetrievedCommand{newExtCommand(
		noteRetrievedCommandLen, NoteRetrievedExt)}
}

func (c *NoteRetrievedCommand) Enabled() bool {
	return c.buf[retrievedStatusIndex]&0b1 != 0
}

func (c *NoteRetrievedCommand) SetEnabled(v bool) {
	if v {
		c.put(retrievedStatusIndex, 0x01)
	} else {
		c.put(retrievedStatusIndex, 0x00)
	}
}

func (c *NoteRetrievedCommand) String() string {
	return fmt.Sprintf(
		"NoteRetrievedCommand{AckNak: %t, DeviceType: %s, Enabled: %t}",
		c.AckNak(), c.DeviceType(), c.Enabled())
}

// NoteRetrievedReply acknowledges a NoteRetrievedCommand: byte 10 echoes
// whether the setting was accepted.
type NoteRetrievedReply struct {
	extReply
}

func NewNoteRetrievedReply() *NoteRetrievedReply {
	return &NoteRetrievedReply{newExtReply(
		noteRetrievedReplyLen, NoteRetrievedExt)}
}

func (r *NoteRetrievedReply) Accepted() bool {
	return r.buf[retrievedIndex]&0b1 != 0
}

func (r *NoteRetrievedReply) SetAccepted(v bool) {
	if v {
		r.put(retrievedIndex, 0x01)
	} else {
		r.put(retrievedIndex, 0x00)
	}
}

func (r *NoteRetrievedReply) String() string {
	return fmt.Sprintf(
		"NoteRetrievedReply{AckNak: %t, DeviceType: %s, Accepted: %t}",
		r.AckNak(), r.DeviceType(), r.Accepted())
}

// NoteRetrievedEvent is the unsolicited message the device pushes when
// the customer takes back a returned note. Byte 10 always carries 0x7f.
type NoteRetrievedEvent struct {
	extReply
}

func NewNoteRetrievedEvent() *NoteRetrievedEvent {
	r := &NoteRetrievedEvent{newExtReply(
		noteRetrievedEventLen, NoteRetrievedExt)}
	r.put(retrievedIndex, noteRetrievedEvent)
	return r
}

func (r *NoteRetrievedEvent) Event() byte {
	return r.buf[retrievedIndex]
}

func (r *NoteRetrievedEvent) String() string {
	return fmt.Sprintf(
		"NoteRetrievedEvent{AckNak: %t, DeviceType: %s, Event: 0x%02x}",
		r.AckNak(), r.DeviceType(), r.Event())
}
