package ebds

import "fmt"

// ExtendedType is the subtype byte at offset 3 of every Extended message.
type ExtendedType byte

const (
	ReservedExt          ExtendedType = 0x00
	BarcodeReplyExt      ExtendedType = 0x01
	NoteSpecificationExt ExtendedType = 0x02
	SetNoteInhibitsExt   ExtendedType = 0x03
	SetEscrowTimeoutExt  ExtendedType = 0x04
	QueryValueTableExt   ExtendedType = 0x06
	NoteRetrievedExt     ExtendedType = 0x0b
	AdvancedBookmarkExt  ExtendedType = 0x0d
	ClearAuditDataExt    ExtendedType = 0x1d
)

func (t ExtendedType) IsValid() bool {
	switch t {
	case BarcodeReplyExt, NoteSpecificationExt, SetNoteInhibitsExt,
		SetEscrowTimeoutExt, QueryValueTableExt, NoteRetrievedExt,
		AdvancedBookmarkExt, ClearAuditDataExt:
		return true
	default:
		return false
	}
}

func (t ExtendedType) String() string {
	switch t {
	case BarcodeReplyExt:
		return "ExtendedBarcodeReply"
	case NoteSpecificationExt:
		return "ExtendedNoteSpecification"
	case SetNoteInhibitsExt:
		return "SetExtendedNoteInhibits"
	case SetEscrowTimeoutExt:
		return "SetEscrowTimeout"
	case QueryValueTableExt:
		return "QueryValueTable"
	case NoteRetrievedExt:
		return "NoteRetrieved"
	case AdvancedBookmarkExt:
		return "AdvancedBookmark"
	case ClearAuditDataExt:
		return "ClearAuditDataRequest"
	default:
		return "Reserved"
	}
}

func (t ExtendedType) MarshalText() ([]byte, error) {
	if t.IsValid() {
		return []byte(t.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid ExtendedType: 0x%02x", byte(t))
	}
}

func (t *ExtendedType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ExtendedBarcodeReply":
		*t = BarcodeReplyExt
	case "ExtendedNoteSpecification":
		*t = NoteSpecificationExt
	case "SetExtendedNoteInhibits":
		*t = SetNoteInhibitsExt
	case "SetEscrowTimeout":
		*t = SetEscrowTimeoutExt
	case "QueryValueTable":
		*t = QueryValueTableExt
	case "NoteRetrieved":
		*t = NoteRetrievedExt
	case "AdvancedBookmark":
		*t = AdvancedBookmarkExt
	case "ClearAuditDataRequest":
		*t = ClearAuditDataExt
	default:
		return fmt.Errorf("Invalid ExtendedType from %q", b)
	}
	return nil
}

const extSubtypeIndex = 3

// extCommand is the base of every Extended command: subtype byte at offset
// 3, then the Omnibus Command data bytes shifted to offset 4.
type extCommand struct {
	commandBase
}

func newExtCommand(n int, sub ExtendedType) extCommand {
	c := extCommand{commandBase{newMessage(n, ExtendedMsg), dataIndex + 1}}
	c.put(extSubtypeIndex, byte(sub))
	return c
}

func (c *extCommand) ExtendedType() ExtendedType {
	return ExtendedType(c.buf[extSubtypeIndex])
}

// extReply is the base of every Extended reply: subtype byte at offset 3,
// then the Omnibus Reply status bytes shifted to offset 4.
type extReply struct {
	statusReply
}

func newExtReply(n int, sub ExtendedType) extReply {
	r := extReply{statusReply{newMessage(n, ExtendedMsg), dataIndex + 1}}
	r.put(extSubtypeIndex, byte(sub))
	return r
}

func (r *extReply) ExtendedType() ExtendedType {
	return ExtendedType(r.buf[extSubtypeIndex])
}
