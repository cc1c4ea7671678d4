package ebds

import "fmt"

const enableNoteIndex = 7

// EnableNote is one byte of the extended inhibits table: bit N-1 enables
// extended note index 8*(byte position)+N.
type EnableNote byte

const AllNotes EnableNote = 0b111_1111

func (e EnableNote) Note(i int) bool {
	if i < 1 || i > 7 {
		panic(badNote(i))
	}
	return e&(1<<(i-1)) != 0
}

func (e *EnableNote) SetNote(i int, v bool) {
	if i < 1 || i > 7 {
		panic(badNote(i))
	}
	if v {
		*e |= 1 << (i - 1)
	} else {
		*e &^= 1 << (i - 1)
	}
}

// SetExtendedNoteInhibitsCFSC enables extended note indices on CFSC
// note tables: 8 enable bytes covering indices 1-64.
type SetExtendedNoteInhibitsCFSC struct {
	extCommand
}

func NewSetExtendedNoteInhibitsCFSC() *SetExtendedNoteInhibitsCFSC {
	return &SetExtendedNoteInhibitsCFSC{newExtCommand(
		setExtendedNoteInhibitsCFSC, SetNoteInhibitsExt)}
}

func (c *SetExtendedNoteInhibitsCFSC) EnabledNotes() []EnableNote {
	return enabledNotes(c.buf, cfscEnableLen)
}

func (c *SetExtendedNoteInhibitsCFSC) SetEnabledNotes(notes ...EnableNote) {
	setEnabledNotes(&c.message, cfscEnableLen, notes)
}

func (c *SetExtendedNoteInhibitsCFSC) String() string {
	return fmt.Sprintf(
		"SetExtendedNoteInhibitsCFSC{AckNak: %t, DeviceType: %s, "+
			"EnabledNotes: % X}",
		c.AckNak(), c.DeviceType(), c.buf[enableNoteIndex:c.etxIndex()])
}

// SetExtendedNoteInhibitsSC is the SC note table variant: 19 enable
// bytes covering indices 1-152.
type SetExtendedNoteInhibitsSC struct {
	extCommand
}

func NewSetExtendedNoteInhibitsSC() *SetExtendedNoteInhibitsSC {
	return &SetExtendedNoteInhibitsSC{newExtCommand(
		setExtendedNoteInhibitsSC, SetNoteInhibitsExt)}
}

func (c *SetExtendedNoteInhibitsSC) EnabledNotes() []EnableNote {
	return enabledNotes(c.buf, scEnableLen)
}

func (c *SetExtendedNoteInhibitsSC) SetEnabledNotes(notes ...EnableNote) {
	setEnabledNotes(&c.message, scEnableLen, notes)
}

func (c *SetExtendedNoteInhibitsSC) String() string {
	return fmt.Sprintf(
		"SetExtendedNoteInhibitsSC{AckNak: %t, DeviceType: %s, "+
			"EnabledNotes: % X}",
		c.AckNak(), c.DeviceType(), c.buf[enableNoteIndex:c.etxIndex()])
}

func enabledNotes(buf []byte, n int) []EnableNote {
	notes := make([]EnableNote, n)
	for i, b := range buf[enableNoteIndex : enableNoteIndex+n] {
		notes[i] = EnableNote(b)
	}
	return notes
}

func setEnabledNotes(m *message, n int, notes []EnableNote) {
	if len(notes) > n {
		notes = notes[:n]
	}
	for i, note := range notes {
		m.buf[enableNoteIndex+i] = byte(note)
	}
	m.SetChecksum()
}

// ExtendedNoteInhibitsReplyAlt acknowledges a SetExtendedNoteInhibits
// command: the six status bytes and nothing else.
type ExtendedNoteInhibitsReplyAlt struct {
	extReply
}

func NewExtendedNoteInhibitsReplyAlt() *ExtendedNoteInhibitsReplyAlt {
	return &ExtendedNoteInhibitsReplyAlt{newExtReply(
		extendedNoteInhibitsReplyLen, SetNoteInhibitsExt)}
}

func (r *ExtendedNoteInhibitsReplyAlt) String() string {
	return fmt.Sprintf(
		"ExtendedNoteInhibitsReplyAlt{AckNak: %t, DeviceType: %s, "+
			"DeviceState: %07b, DeviceStatus: %07b}",
		r.AckNak(), r.DeviceType(), r.DeviceState(), r.DeviceStatus())
}
