package ebds

import "fmt"

// BanknoteOrientation is how the note entered the acceptor.
type BanknoteOrientation byte

const (
	RightEdgeFaceUp   BanknoteOrientation = 0x00
	RightEdgeFaceDown BanknoteOrientation = 0x01
	LeftEdgeFaceUp    BanknoteOrientation = 0x02
	LeftEdgeFaceDown  BanknoteOrientation = 0x03
)

func (o BanknoteOrientation) IsValid() bool {
	return o <= LeftEdgeFaceDown
}

func (o BanknoteOrientation) String() string {
	switch o {
	case RightEdgeFaceUp:
		return "RightEdgeFaceUp"
	case RightEdgeFaceDown:
		return "RightEdgeFaceDown"
	case LeftEdgeFaceUp:
		return "LeftEdgeFaceUp"
	case LeftEdgeFaceDown:
		return "LeftEdgeFaceDown"
	default:
		return "Unknown"
	}
}

// BanknoteClassification is the recognition verdict for an escrowed note.
type BanknoteClassification byte

const (
	ClassificationDisabled BanknoteClassification = 0x00
	Unidentified           BanknoteClassification = 0x01
	SuspectedCounterfeit   BanknoteClassification = 0x02
	SuspectedZero          BanknoteClassification = 0x03
	Genuine                BanknoteClassification = 0x04
)

func (c BanknoteClassification) IsValid() bool {
	return c <= Genuine
}

func (c BanknoteClassification) String() string {
	switch c {
	case ClassificationDisabled:
		return "DisabledOrNotSupported"
	case Unidentified:
		return "Unidentified"
	case SuspectedCounterfeit:
		return "SuspectedCounterfeit"
	case SuspectedZero:
		return "SuspectedZero"
	case Genuine:
		return "Genuine"
	default:
		return "Unknown"
	}
}

// NoteType, NoteSeries, NoteCompatibility and NoteVersion are single
// ASCII letters from the variant identity card.
type NoteType byte

func (t NoteType) String() string { return string([]byte{byte(t)}) }

type NoteSeries byte

func (s NoteSeries) String() string { return string([]byte{byte(s)}) }

type NoteCompatibility byte

func (c NoteCompatibility) String() string { return string([]byte{byte(c)}) }

type NoteVersion byte

func (v NoteVersion) String() string { return string([]byte{byte(v)}) }

const noteIndexIdx = 7

// QueryExtendedNoteSpecification asks for the banknote description at a
// note table index (1-based, 0 is the null note).
type QueryExtendedNoteSpecification struct {
	extCommand
}

func NewQueryExtendedNoteSpecification() *QueryExtendedNoteSpecification {
	return &QueryExtendedNoteSpecification{newExtCommand(
		queryExtendedNoteSpecificationLen, NoteSpecificationExt)}
}

func (c *QueryExtendedNoteSpecification) NoteIndex() int {
	return int(c.buf[noteIndexIdx])
}

func (c *QueryExtendedNoteSpecification) SetNoteIndex(i int) {
	c.put(noteIndexIdx, byte(i))
}

func (c *QueryExtendedNoteSpecification) String() string {
	return fmt.Sprintf(
		"QueryExtendedNoteSpecification{AckNak: %t, DeviceType: %s, "+
			"NoteIndex: %d}",
		c.AckNak(), c.DeviceType(), c.NoteIndex())
}

// Banknote description field offsets within ExtendedNoteReply.
const (
	noteSpecIndex          = 10
	noteSpecISO            = 11
	noteSpecBase           = 14
	noteSpecSign           = 17
	noteSpecExponent       = 18
	noteSpecOrientation    = 20
	noteSpecType           = 21
	noteSpecSeries         = 22
	noteSpecCompatibility  = 23
	noteSpecVersion        = 24
	noteSpecClassification = 25
)

// ExtendedNoteReply answers QueryExtendedNoteSpecification with the full
// banknote description after the six status bytes. It is also pushed
// unsolicited when extended note reporting is set and a note reaches
// escrow.
type ExtendedNoteReply struct {
	extReply
}

func NewExtendedNoteReply() *ExtendedNoteReply {
	return &ExtendedNoteReply{newExtReply(
		extendedNoteReplyLen, NoteSpecificationExt)}
}

func (r *ExtendedNoteReply) NoteIndex() int {
	return int(r.buf[noteSpecIndex])
}

func (r *ExtendedNoteReply) SetNoteIndex(i int) {
	r.put(noteSpecIndex, byte(i))
}

func (r *ExtendedNoteReply) ISOCode() ISOCode {
	return ParseISOCode(r.buf[noteSpecISO : noteSpecISO+3])
}

func (r *ExtendedNoteReply) SetISOCode(c ISOCode) {
	copy(r.buf[noteSpecISO:noteSpecISO+3], c[:])
	r.SetChecksum()
}

func (r *ExtendedNoteReply) BaseValue() BaseValue {
	return ParseBaseValue(r.buf[noteSpecBase : noteSpecBase+baseValueLen])
}

func (r *ExtendedNoteReply) SetBaseValue(v BaseValue) {
	b := v.Bytes()
	copy(r.buf[noteSpecBase:noteSpecBase+baseValueLen], b[:])
	r.SetChecksum()
}

func (r *ExtendedNoteReply) Sign() Sign {
	return ParseSign(r.buf[noteSpecSign])
}

func (r *ExtendedNoteReply) SetSign(s Sign) {
	r.put(noteSpecSign, byte(s))
}

func (r *ExtendedNoteReply) Exponent() Exponent {
	return ParseExponent(r.buf[noteSpecExponent : noteSpecExponent+exponentLen])
}

func (r *ExtendedNoteReply) SetExponent(e Exponent) {
	b := e.Bytes()
	copy(r.buf[noteSpecExponent:noteSpecExponent+exponentLen], b[:])
	r.SetChecksum()
}

func (r *ExtendedNoteReply) Orientation() BanknoteOrientation {
	return BanknoteOrientation(r.buf[noteSpecOrientation])
}

func (r *ExtendedNoteReply) SetOrientation(o BanknoteOrientation) {
	r.put(noteSpecOrientation, byte(o))
}

func (r *ExtendedNoteReply) NoteType() NoteType {
	return NoteType(r.buf[noteSpecType])
}

func (r *ExtendedNoteReply) NoteSeries() NoteSeries {
	return NoteSeries(r.buf[noteSpecSeries])
}

func (r *ExtendedNoteReply) NoteCompatibility() NoteCompatibility {
	return NoteCompatibility(r.buf[noteSpecCompatibility])
}

func (r *ExtendedNoteReply) NoteVersion() NoteVersion {
	return NoteVersion(r.buf[noteSpecVersion])
}

func (r *ExtendedNoteReply) Classification() BanknoteClassification {
	return BanknoteClassification(r.buf[noteSpecClassification])
}

func (r *ExtendedNoteReply) SetClassification(c BanknoteClassification) {
	r.put(noteSpecClassification, byte(c))
}

// Value is the denominated note value, e.g. base 5 exponent 2 is 500.
func (r *ExtendedNoteReply) Value() float64 {
	return NoteValue(r.BaseValue(), r.Sign(), r.Exponent())
}

// IsNull reports an all-zero description, the device's answer for an
// unoccupied note table index.
func (r *ExtendedNoteReply) IsNull() bool {
	for _, b := range r.buf[noteSpecIndex:r.etxIndex()] {
		if b != 0 {
			return false
		}
	}
	return true
}

func (r *ExtendedNoteReply) String() string {
	return fmt.Sprintf(
		"ExtendedNoteReply{AckNak: %t, DeviceType: %s, NoteIndex: %d, "+
			"ISOCode: %s, Value: %v, Orientation: %s, "+
			"Classification: %s}",
		r.AckNak(), r.DeviceType(), r.NoteIndex(), r.ISOCode(),
		r.Value(), r.Orientation(), r.Classification())
}
